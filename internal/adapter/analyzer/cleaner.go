package analyzer

import (
	"regexp"
	"strings"
)

var (
	// Anything that is not a letter, a number, or whitespace. \p{L} covers
	// CJK ideographs as well as Latin letters.
	symbolPattern = regexp.MustCompile(`[^\p{L}\p{N}\s]`)
	digitPattern  = regexp.MustCompile(`\p{Nd}+`)
	spacePattern  = regexp.MustCompile(`\s+`)
)

// Clean removes symbols and digits from normalized text, replacing them with
// spaces so segmentation boundaries survive, then collapses whitespace.
func Clean(text string) string {
	text = symbolPattern.ReplaceAllString(text, " ")
	text = digitPattern.ReplaceAllString(text, " ")
	text = spacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
