package vectorizer

import "strings"

// ngrams expands a token sequence into space-joined n-grams for every size
// in [min, max]. Callers guarantee 1 <= min <= max.
func ngrams(tokens []string, min, max int) []string {
	if len(tokens) == 0 {
		return nil
	}

	var out []string
	for n := min; n <= max; n++ {
		if n > len(tokens) {
			break
		}
		for i := 0; i+n <= len(tokens); i++ {
			out = append(out, strings.Join(tokens[i:i+n], " "))
		}
	}
	return out
}
