package analyzer

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"zhprep/internal/domain"
)

//go:embed stopwords_default.txt
var defaultStopWords string

// StopWordSet is a read-only set of stop words, loaded once at construction.
type StopWordSet struct {
	words map[string]struct{}
}

// LoadStopWords reads a stop-word file (UTF-8, one word per line). An empty
// path selects the embedded default list; a missing file is a configuration
// error raised here, not at first use.
func LoadStopWords(path string) (*StopWordSet, error) {
	if path == "" {
		return parseStopWords(strings.NewReader(defaultStopWords))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: stop words file: %v", domain.ErrConfig, err)
	}
	defer f.Close()

	return parseStopWords(f)
}

func parseStopWords(r io.Reader) (*StopWordSet, error) {
	set := &StopWordSet{words: make(map[string]struct{})}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		set.words[word] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading stop words: %v", domain.ErrConfig, err)
	}
	return set, nil
}

// Contains reports whether the word is a stop word.
func (s *StopWordSet) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Len returns the number of stop words loaded.
func (s *StopWordSet) Len() int {
	return len(s.words)
}

// Filter returns the tokens not present in the set, preserving order. Blank
// tokens are dropped as well. Idempotent.
func (s *StopWordSet) Filter(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if strings.TrimSpace(tok) == "" {
			continue
		}
		if s.Contains(tok) {
			continue
		}
		out = append(out, tok)
	}
	return out
}
