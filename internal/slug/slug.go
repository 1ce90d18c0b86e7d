// Package slug derives URL-safe identifiers from display names.
package slug

import (
	"regexp"
	"strings"
)

var separators = regexp.MustCompile(`[^a-z0-9]+`)

// Make lowercases s, turns every run of characters outside [a-z0-9] into a
// single hyphen and trims hyphens from both ends. Make(Make(s)) == Make(s).
func Make(s string) string {
	return strings.Trim(separators.ReplaceAllString(strings.ToLower(s), "-"), "-")
}
