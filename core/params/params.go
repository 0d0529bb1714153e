package params

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageNumber = 1
	defaultPageSize   = 20
	maxPageSize       = 100
)

type QueryParams struct {
	PageNumber int
	PageSize   int
	Search     string
}

// NewQueryParams reads page/limit/search from the request with sane bounds.
func NewQueryParams(c echo.Context) *QueryParams {
	p := &QueryParams{
		PageNumber: defaultPageNumber,
		PageSize:   defaultPageSize,
		Search:     c.QueryParam("search"),
	}

	if raw := c.QueryParam("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			p.PageNumber = n
		}
	}
	if raw := c.QueryParam("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			p.PageSize = n
		}
	}
	if p.PageSize > maxPageSize {
		p.PageSize = maxPageSize
	}

	return p
}
