package analyzer

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// fullToHalf maps full-width codepoints (U+FF01..U+FF5E) onto their ASCII
// counterparts by fixed offset, and the ideographic space (U+3000) onto a
// plain space. Everything else passes through unchanged.
var fullToHalf = runes.Map(func(r rune) rune {
	switch {
	case r == 0x3000:
		return ' '
	case r >= 0xFF01 && r <= 0xFF5E:
		return r - 0xFEE0
	}
	return r
})

// Normalize converts full-width characters to their half-width equivalents.
// Total over its input and idempotent.
func Normalize(text string) string {
	out, _, err := transform.String(fullToHalf, text)
	if err != nil {
		return text
	}
	return out
}
