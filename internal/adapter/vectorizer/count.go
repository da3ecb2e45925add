package vectorizer

import (
	"fmt"
	"sort"

	"zhprep/internal/domain"
)

// CountVectorizer turns token sequences into a raw term-count matrix over a
// sorted n-gram vocabulary.
type CountVectorizer struct {
	ngramMin int
	ngramMax int
}

// NewCountVectorizer creates a count vectorizer for the given n-gram range.
func NewCountVectorizer(ngramMin, ngramMax int) *CountVectorizer {
	if ngramMin < 1 {
		ngramMin = 1
	}
	if ngramMax < ngramMin {
		ngramMax = ngramMin
	}
	return &CountVectorizer{ngramMin: ngramMin, ngramMax: ngramMax}
}

// FitTransform builds the vocabulary from all documents and returns the
// documents × vocabulary count matrix. An empty vocabulary is an input
// error, never a silent empty matrix.
func (v *CountVectorizer) FitTransform(docs [][]string) (domain.TermMatrix, error) {
	features := make([][]string, len(docs))
	unique := make(map[string]struct{})
	for i, tokens := range docs {
		features[i] = ngrams(tokens, v.ngramMin, v.ngramMax)
		for _, f := range features[i] {
			unique[f] = struct{}{}
		}
	}

	if len(unique) == 0 {
		return domain.TermMatrix{}, fmt.Errorf("%w: empty vocabulary, all documents reduced to zero tokens", domain.ErrInput)
	}

	terms := make([]string, 0, len(unique))
	for f := range unique {
		terms = append(terms, f)
	}
	sort.Strings(terms)
	vocab := domain.NewVocabulary(terms)

	rows := make([][]float64, len(docs))
	for i, fs := range features {
		row := make([]float64, vocab.Size())
		for _, f := range fs {
			row[vocab.Index[f]]++
		}
		rows[i] = row
	}

	return domain.TermMatrix{Rows: rows, Vocab: vocab}, nil
}
