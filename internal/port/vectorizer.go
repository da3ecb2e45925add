package port

import "zhprep/internal/domain"

// Vectorizer turns token sequences into a weight matrix plus the vocabulary
// mapping features to columns. An empty vocabulary is domain.ErrInput.
type Vectorizer interface {
	FitTransform(docs [][]string) (domain.TermMatrix, error)
}
