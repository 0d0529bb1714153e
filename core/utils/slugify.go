package utils

import (
	"strings"

	"github.com/gosimple/slug"
)

const maxSlugBaseLength = 60

// GenerateSlug builds a URL slug from a meeting title plus a short random
// suffix so that identical titles still produce unique share links.
func GenerateSlug(title string) string {
	base := slug.Make(title)
	if len(base) > maxSlugBaseLength {
		base = strings.Trim(base[:maxSlugBaseLength], "-")
	}
	suffix := GenerateSlugSuffix()
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}
