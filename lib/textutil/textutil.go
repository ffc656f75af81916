package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// Collapse trims s and replaces inner runs of whitespace with a single space.
func Collapse(s string) string {
	s = strings.Trim(s, " \n\t\r ")
	return whitespaceRegex.ReplaceAllString(s, " ")
}

// Fold normalizes s for case-insensitive comparison.
func Fold(s string) string {
	return strings.ToLower(Collapse(s))
}

// FoldSet returns the folded values of names as a set.
func FoldSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[Fold(n)] = struct{}{}
	}
	return set
}
