package pathutil

import (
	"regexp"
	"strings"
)

// staticPaths lists routes that must never be rewritten even though
// their final segment would otherwise look like a slug.
var staticPaths = map[string]struct{}{
	"/api/articles":          {},
	"/api/articles/featured": {},
	"/api/articles/recent":   {},
	"/api/articles/search":   {},
	"/api/categories":        {},
	"/api/solutions":         {},
	"/api/contact":           {},
	"/api/health":            {},
	"/metrics":               {},
}

// pathPattern pairs a compiled pattern with its normalized template.
type pathPattern struct {
	pattern  *regexp.Regexp
	template string
}

// pathPatterns defines the list of patterns for dynamic routes.
// Evaluated in order from most specific to least specific and
// pre-compiled at initialization.
var pathPatterns = []pathPattern{
	{pattern: regexp.MustCompile(`^/api/articles/category/[^/]+$`), template: "/api/articles/category/:slug"},
	{pattern: regexp.MustCompile(`^/api/articles/\d+$`), template: "/api/articles/:id"},
	{pattern: regexp.MustCompile(`^/api/articles/[^/]+$`), template: "/api/articles/:slug"},
	{pattern: regexp.MustCompile(`^/api/categories/[^/]+$`), template: "/api/categories/:slug"},
	{pattern: regexp.MustCompile(`^/api/download/[^/]+$`), template: "/api/download/:filename"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label
// cardinality explosion. It converts paths with IDs or slugs
// (e.g., /api/articles/unfair-dismissal-first-steps) to template format
// (e.g., /api/articles/:slug). Static paths remain unchanged.
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		return "/"
	}

	if _, ok := staticPaths[path]; ok {
		return path
	}

	for _, p := range pathPatterns {
		if p.pattern.MatchString(path) {
			return p.template
		}
	}
	return path
}
