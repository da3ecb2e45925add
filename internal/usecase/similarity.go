package usecase

import (
	"fmt"
	"math"
	"sort"

	"zhprep/internal/domain"
)

// cosine computes the cosine similarity of two weight rows. Zero rows have
// no direction and score zero against everything.
func cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// SimilarPairs returns the row pairs (i < j) whose cosine similarity is
// strictly greater than the threshold, in row order.
func SimilarPairs(m domain.TermMatrix, threshold float64) []domain.SimilarPair {
	var pairs []domain.SimilarPair
	for i := 0; i < len(m.Rows); i++ {
		for j := i + 1; j < len(m.Rows); j++ {
			if score := cosine(m.Rows[i], m.Rows[j]); score > threshold {
				pairs = append(pairs, domain.SimilarPair{I: i, J: j, Score: score})
			}
		}
	}
	return pairs
}

// MostSimilar ranks corpus rows by cosine similarity to the query row,
// descending, ties broken by row order, truncated to topN.
func MostSimilar(m domain.TermMatrix, query []float64, topN int) []domain.Match {
	matches := make([]domain.Match, len(m.Rows))
	for i, row := range m.Rows {
		matches[i] = domain.Match{Index: i, Score: cosine(query, row)}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if topN > 0 && len(matches) > topN {
		matches = matches[:topN]
	}
	return matches
}

// SimilarPairs vectorizes already-segmented documents and returns the pairs
// whose similarity is strictly greater than the threshold.
func (p *Preprocessor) SimilarPairs(tokenized [][]string, threshold float64) ([]domain.SimilarPair, error) {
	matrix, err := p.vectorizer.FitTransform(tokenized)
	if err != nil {
		return nil, err
	}

	pairs := SimilarPairs(matrix, threshold)
	p.log.Debug("similarity pairs", "documents", len(tokenized), "pairs", len(pairs), "threshold", threshold)
	return pairs, nil
}

// MostSimilar cleans and segments the query text, vectorizes it together
// with the corpus so they share one vocabulary, and returns the topN corpus
// documents ranked by similarity to the query.
func (p *Preprocessor) MostSimilar(text string, tokenized [][]string, topN int) ([]domain.Match, error) {
	if len(tokenized) == 0 {
		return nil, fmt.Errorf("%w: empty corpus", domain.ErrInput)
	}

	queryTokens, err := p.Process(text)
	if err != nil {
		return nil, err
	}

	all := make([][]string, 0, len(tokenized)+1)
	all = append(all, tokenized...)
	all = append(all, queryTokens)

	matrix, err := p.vectorizer.FitTransform(all)
	if err != nil {
		return nil, err
	}

	query := matrix.Rows[len(matrix.Rows)-1]
	corpus := domain.TermMatrix{Rows: matrix.Rows[:len(matrix.Rows)-1], Vocab: matrix.Vocab}

	matches := MostSimilar(corpus, query, topN)
	p.log.Debug("similarity ranking", "documents", len(tokenized), "query_tokens", queryTokens)
	return matches, nil
}
