package pathutil

import (
	"regexp"
	"strings"
)

// pathPattern pairs a route regex with its normalized template.
type pathPattern struct {
	pattern  *regexp.Regexp
	template string
}

// pathPatterns lists the dynamic routes, most specific first.
// Pre-compiled at initialization so normalization stays cheap on the
// request path.
var pathPatterns = []*pathPattern{
	{pattern: regexp.MustCompile(`^/api/subjects/\d+$`), template: "/api/subjects/:id"},
	{pattern: regexp.MustCompile(`^/api/findings/\d+$`), template: "/api/findings/:id"},
	{pattern: regexp.MustCompile(`^/api/contacts/\d+$`), template: "/api/contacts/:id"},
	{pattern: regexp.MustCompile(`^/api/monitor/twitter/\d+$`), template: "/api/monitor/twitter/:id"},
	{pattern: regexp.MustCompile(`^/api/monitor/news/\d+$`), template: "/api/monitor/news/:id"},
}

// NormalizePath converts ID-bearing paths to template form so metrics
// labels stay at a fixed cardinality. Static paths pass through unchanged.
//
// Examples:
//
//	NormalizePath("/api/subjects/123")        // "/api/subjects/:id"
//	NormalizePath("/api/monitor/news/7")      // "/api/monitor/news/:id"
//	NormalizePath("/api/search?name=x")       // "/api/search"
//	NormalizePath("/healthz")                 // "/healthz" (unchanged)
func NormalizePath(path string) string {
	// Strip query parameters if present
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	// Strip trailing slash if present (except for root path)
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.pattern.MatchString(path) {
			return p.template
		}
	}

	// Static paths like /healthz and /metrics pass through unchanged
	return path
}
