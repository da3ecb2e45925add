package vectorizer

import (
	"math"

	"zhprep/internal/domain"
)

// TfidfVectorizer weighs term counts by smoothed inverse document frequency
// and L2-normalizes each document row, so weights are comparable across
// documents and fall in [0, 1].
type TfidfVectorizer struct {
	counts *CountVectorizer
}

// NewTfidfVectorizer creates a TF-IDF vectorizer for the given n-gram range.
func NewTfidfVectorizer(ngramMin, ngramMax int) *TfidfVectorizer {
	return &TfidfVectorizer{counts: NewCountVectorizer(ngramMin, ngramMax)}
}

// FitTransform builds the vocabulary, computes tf × idf with
// idf = ln((1+N)/(1+df)) + 1, and L2-normalizes each row.
func (v *TfidfVectorizer) FitTransform(docs [][]string) (domain.TermMatrix, error) {
	m, err := v.counts.FitTransform(docs)
	if err != nil {
		return domain.TermMatrix{}, err
	}

	n := float64(len(m.Rows))
	idf := make([]float64, m.Vocab.Size())
	for col := range idf {
		df := 0.0
		for _, row := range m.Rows {
			if row[col] > 0 {
				df++
			}
		}
		idf[col] = math.Log((1+n)/(1+df)) + 1
	}

	for _, row := range m.Rows {
		norm := 0.0
		for col := range row {
			row[col] *= idf[col]
			norm += row[col] * row[col]
		}
		if norm == 0 {
			continue
		}
		norm = math.Sqrt(norm)
		for col := range row {
			row[col] /= norm
		}
	}

	return m, nil
}
