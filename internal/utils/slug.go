package utils

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Slugify lowercases input and replaces each run of whitespace with a hyphen.
// Other characters are kept as-is so ids stay stable for existing titles.
func Slugify(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	return whitespaceRun.ReplaceAllString(s, "-")
}
