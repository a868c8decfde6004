// Package pathutil maps request paths onto bounded metric labels.
package pathutil

import (
	"regexp"
	"strings"
)

// Unmatched is the label used for every path outside the site's routes.
const Unmatched = "/:unmatched"

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns collapse parameterized routes. Evaluated in order.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/api/sections/[^/]+$`), Template: "/api/sections/:name"},
	{Pattern: regexp.MustCompile(`^/assets/.+$`), Template: "/assets/:file"},
}

// staticPaths are reported unchanged.
var staticPaths = regexp.MustCompile(
	`^/(|about|travel-agents|investors|otas|terms|health|live|ready|metrics|api/sections|api/terms|api/(aboutUs|otas)/[A-Za-z]{1,32})$`,
)

// NormalizePath normalizes URL paths to prevent metrics label cardinality explosion.
//
// Examples:
//
//	NormalizePath("/api/sections/vision")   // "/api/sections/:name"
//	NormalizePath("/assets/carousel.js")    // "/assets/:file"
//	NormalizePath("/about/")                // "/about"
//	NormalizePath("/api/aboutUs/vision")    // "/api/aboutUs/vision" (unchanged)
//	NormalizePath("/wp-login.php")          // "/:unmatched"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	if staticPaths.MatchString(path) {
		return path
	}
	return Unmatched
}
