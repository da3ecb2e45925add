package segmenter

import (
	"strings"
	"unicode"
)

// UnigramTokenizer is a dictionary-free fallback segmenter: each Han
// ideograph becomes its own token while contiguous runs of other letters and
// digits stay together. Useful when the jieba engine is unavailable.
type UnigramTokenizer struct{}

// NewUnigramTokenizer creates a new UnigramTokenizer.
func NewUnigramTokenizer() *UnigramTokenizer {
	return &UnigramTokenizer{}
}

// Segment cuts text into single ideographs and alphanumeric runs.
func (t *UnigramTokenizer) Segment(text string) ([]string, error) {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, r := range text {
		switch {
		case unicode.Is(unicode.Han, r):
			flush()
			tokens = append(tokens, string(r))
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			current.WriteRune(r)
		default:
			flush()
		}
	}
	flush()

	return tokens, nil
}
