package usecase

import (
	"sort"

	"zhprep/internal/domain"
)

// ExtractKeywords selects the terms of one document whose weight is strictly
// greater than the threshold, ordered by descending weight with ties broken
// by vocabulary (column) order. Pure function.
func ExtractKeywords(row []float64, vocab domain.Vocabulary, threshold float64) []domain.Keyword {
	keywords := make([]domain.Keyword, 0)
	for col, weight := range row {
		if weight > threshold {
			keywords = append(keywords, domain.Keyword{Term: vocab.Terms[col], Weight: weight})
		}
	}

	// Entries start in column order, so a stable sort keeps vocabulary
	// order for equal weights.
	sort.SliceStable(keywords, func(i, j int) bool {
		return keywords[i].Weight > keywords[j].Weight
	})

	return keywords
}
