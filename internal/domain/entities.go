package domain

// Vocabulary maps feature terms to matrix columns. Terms holds the features
// in column order; Index is the reverse lookup.
type Vocabulary struct {
	Terms []string
	Index map[string]int
}

// NewVocabulary builds a Vocabulary from terms already in column order.
func NewVocabulary(terms []string) Vocabulary {
	idx := make(map[string]int, len(terms))
	for i, t := range terms {
		idx[t] = i
	}
	return Vocabulary{Terms: terms, Index: idx}
}

// Size returns the number of features.
func (v Vocabulary) Size() int {
	return len(v.Terms)
}

// TermMatrix is the output of vectorization: one weight row per input
// document, columns ordered by Vocab.
type TermMatrix struct {
	Rows  [][]float64
	Vocab Vocabulary
}

// Keyword is a term paired with its weight in one document.
type Keyword struct {
	Term   string  `json:"term"`
	Weight float64 `json:"weight"`
}

// DocumentResult holds the per-document output of a corpus run.
type DocumentResult struct {
	Text     string    `json:"text"`
	Tokens   []string  `json:"tokens"`
	Keywords []Keyword `json:"keywords"`
}

// SimilarPair references two corpus documents (row indices, i < j) whose
// cosine similarity exceeds a threshold.
type SimilarPair struct {
	I     int     `json:"i"`
	J     int     `json:"j"`
	Score float64 `json:"score"`
}

// Match is a corpus document ranked against a query.
type Match struct {
	Index int     `json:"index"`
	Score float64 `json:"score"`
}
