// Package permalink derives URL paths for generated category index pages.
package permalink

import (
	"strings"

	goslug "github.com/gosimple/slug"
)

// CategoryPathSegment is the path segment under which generated category
// index pages live.
const CategoryPathSegment = "category"

// ForCategory returns the default permalink of a category's generated index
// page: the docs base path, the category segment, then the slugged label.
func ForCategory(basePath, label string) string {
	return Normalize(basePath + "/" + CategoryPathSegment + "/" + Slug(label))
}

// Slug converts a category label to a URL-friendly slug.
func Slug(label string) string {
	return goslug.Make(label)
}

// Normalize forces a leading slash, collapses duplicate slashes, and trims a
// trailing slash (except for the root path).
func Normalize(p string) string {
	parts := strings.FieldsFunc(p, func(r rune) bool { return r == '/' })
	if len(parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(parts, "/")
}
