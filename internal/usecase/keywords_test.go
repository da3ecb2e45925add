package usecase

import (
	"reflect"
	"testing"

	"zhprep/internal/domain"
)

func TestExtractKeywords_StrictThreshold(t *testing.T) {
	vocab := domain.NewVocabulary([]string{"a", "b", "c"})
	row := []float64{0.3, 0.5, 0.1}

	// Strictly greater: a weight equal to the threshold is excluded.
	got := ExtractKeywords(row, vocab, 0.3)
	if len(got) != 1 || got[0].Term != "b" {
		t.Errorf("threshold 0.3: expected [b], got %v", got)
	}

	// Just below the boundary the equal-weight term is included.
	got = ExtractKeywords(row, vocab, 0.2999)
	if len(got) != 2 {
		t.Errorf("threshold 0.2999: expected 2 keywords, got %v", got)
	}
}

func TestExtractKeywords_NeverAtOrBelowThreshold(t *testing.T) {
	vocab := domain.NewVocabulary([]string{"w", "x", "y", "z"})
	row := []float64{0.0, 0.25, 0.25, 0.9}

	for _, threshold := range []float64{0, 0.1, 0.25, 0.5, 1} {
		for _, kw := range ExtractKeywords(row, vocab, threshold) {
			if kw.Weight <= threshold {
				t.Errorf("keyword %v returned at threshold %f", kw, threshold)
			}
		}
	}
}

func TestExtractKeywords_Monotone(t *testing.T) {
	vocab := domain.NewVocabulary([]string{"a", "b", "c", "d"})
	row := []float64{0.1, 0.4, 0.7, 0.2}

	prev := len(ExtractKeywords(row, vocab, 0))
	for _, threshold := range []float64{0.1, 0.2, 0.4, 0.7, 1} {
		n := len(ExtractKeywords(row, vocab, threshold))
		if n > prev {
			t.Errorf("raising threshold to %f grew the set: %d > %d", threshold, n, prev)
		}
		prev = n
	}
}

func TestExtractKeywords_OrderedByWeightThenColumn(t *testing.T) {
	vocab := domain.NewVocabulary([]string{"a", "b", "c", "d"})
	row := []float64{0.5, 0.9, 0.5, 0.7}

	got := ExtractKeywords(row, vocab, 0.1)
	terms := make([]string, len(got))
	for i, kw := range got {
		terms[i] = kw.Term
	}

	// Descending weight; "a" and "c" tie and keep vocabulary order.
	want := []string{"b", "d", "a", "c"}
	if !reflect.DeepEqual(terms, want) {
		t.Errorf("order = %v, want %v", terms, want)
	}
}

func TestExtractKeywords_Empty(t *testing.T) {
	vocab := domain.NewVocabulary([]string{"a"})
	got := ExtractKeywords([]float64{0.1}, vocab, 0.5)
	if len(got) != 0 {
		t.Errorf("expected no keywords, got %v", got)
	}
}
