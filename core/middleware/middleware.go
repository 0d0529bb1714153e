package middleware

import (
	"net/http"

	"timeweave/core/config"
	"timeweave/core/constants"
	"timeweave/core/controller"
	"timeweave/core/errors"
	"timeweave/core/utils"

	"github.com/labstack/echo/v4"
)

type Middleware struct{}

func NewMiddleware() *Middleware {
	return &Middleware{}
}

// AuthMiddleware validates the creator session token and stores its claims
// in the request context under constants.ContextTokenData.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, appErr := utils.GetTokenFromHeader(c)
			if appErr != nil {
				return controller.NewErrorResponse(http.StatusUnauthorized, appErr.Code, appErr.Message)
			}

			claims, appErr := utils.ValidateAndParseToken(token)
			if appErr != nil {
				return controller.NewErrorResponse(http.StatusUnauthorized, appErr.Code, appErr.Message)
			}

			if claims.Scope != constants.ScopeTokenCreator {
				return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrUnauthorized, "invalid token scope")
			}

			c.Set(constants.ContextTokenData, claims)
			return next(c)
		}
	}
}

// AdminKeyMiddleware guards the admin surface with a static API key checked
// against the bcrypt hash from configuration.
func (m *Middleware) AdminKeyMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cfg, ok := config.GetSafe()
			if !ok || cfg.Admin.APIKeyHash == "" {
				return controller.NewErrorResponse(http.StatusForbidden, errors.ErrForbidden, "admin access is not configured")
			}

			key := c.Request().Header.Get("X-Admin-Key")
			if key == "" {
				return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrUnauthorized, "missing admin key")
			}

			if !utils.ComparePassword(cfg.Admin.APIKeyHash, key) {
				return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrUnauthorized, "invalid admin key")
			}

			return next(c)
		}
	}
}
