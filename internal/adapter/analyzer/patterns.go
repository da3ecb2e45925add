package analyzer

import (
	"regexp"
	"strings"
)

// Matches letter-symbol-letter sequences such as "I/O" or "A/B" that the
// cleaner would otherwise destroy. The middle class must exclude all Unicode
// letters and digits, not just ASCII \w: a CJK character between two Latin
// letters is ordinary text for the segmenter, not a symbol.
var specialPattern = regexp.MustCompile(`[A-Za-z][^\p{L}\p{N}_\s][A-Za-z]`)

// ExtractPatterns pulls special patterns like "I/O" out of the text and
// returns them alongside the remaining text. Duplicates are collapsed,
// first-seen order preserved.
func ExtractPatterns(text string) ([]string, string) {
	matches := specialPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil, text
	}

	seen := make(map[string]struct{}, len(matches))
	patterns := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		patterns = append(patterns, m)
		text = strings.ReplaceAll(text, m, " ")
	}
	return patterns, text
}
