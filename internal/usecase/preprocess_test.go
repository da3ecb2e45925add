package usecase

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"zhprep/config"
	"zhprep/internal/adapter/vectorizer"
	"zhprep/internal/domain"
)

// dictTokenizer is a fixed-dictionary segmentation stub so tests do not
// depend on the jieba engine.
type dictTokenizer struct {
	cuts map[string][]string
	err  error
}

func (t *dictTokenizer) Segment(text string) ([]string, error) {
	if t.err != nil {
		return nil, t.err
	}
	if tokens, ok := t.cuts[text]; ok {
		return tokens, nil
	}
	return nil, fmt.Errorf("no segmentation for %q", text)
}

func testConfig(t *testing.T, stopWords string) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stop_words.txt")
	if err := os.WriteFile(path, []byte(stopWords), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := config.DefaultConfig()
	cfg.Preprocess.StopWordsFile = path
	return cfg
}

func TestNewPreprocessor_ConfigErrors(t *testing.T) {
	tok := &dictTokenizer{}
	vec := vectorizer.NewTfidfVectorizer(1, 1)

	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"negative threshold", func(c *config.Config) { c.Vectorize.KeywordThreshold = -0.1 }},
		{"unordered ngram range", func(c *config.Config) { c.Vectorize.NgramMin = 3; c.Vectorize.NgramMax = 1 }},
		{"zero ngram min", func(c *config.Config) { c.Vectorize.NgramMin = 0 }},
		{"missing stop words file", func(c *config.Config) { c.Preprocess.StopWordsFile = "/nonexistent/stop.txt" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t, "的\n")
			tt.mutate(cfg)
			_, err := NewPreprocessor(cfg, tok, vec, nil)
			if err == nil {
				t.Fatal("expected construction to fail")
			}
			if !errors.Is(err, domain.ErrConfig) {
				t.Errorf("expected ErrConfig, got %v", err)
			}
		})
	}
}

func TestProcess_StopWordScenario(t *testing.T) {
	cfg := testConfig(t, "的\n")
	tok := &dictTokenizer{cuts: map[string][]string{
		"这是的测试": {"这", "是", "的", "测试"},
	}}

	p, err := NewPreprocessor(cfg, tok, vectorizer.NewTfidfVectorizer(1, 1), nil)
	if err != nil {
		t.Fatal(err)
	}

	tokens, err := p.Process("这是的测试")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"这", "是", "测试"}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("Process = %v, want %v", tokens, want)
	}
}

func TestProcess_EmptyDocument(t *testing.T) {
	cfg := testConfig(t, "的\n")
	p, err := NewPreprocessor(cfg, &dictTokenizer{}, vectorizer.NewTfidfVectorizer(1, 1), nil)
	if err != nil {
		t.Fatal(err)
	}

	for _, in := range []string{"", "   ", "\n"} {
		_, err := p.Process(in)
		if !errors.Is(err, domain.ErrInput) {
			t.Errorf("Process(%q): expected ErrInput, got %v", in, err)
		}
	}
}

func TestProcess_KeepsSpecialPatterns(t *testing.T) {
	cfg := testConfig(t, "的\n")
	tok := &dictTokenizer{cuts: map[string][]string{
		"磁盘 性能": {"磁盘", "性能"},
	}}

	p, err := NewPreprocessor(cfg, tok, vectorizer.NewTfidfVectorizer(1, 1), nil)
	if err != nil {
		t.Fatal(err)
	}

	tokens, err := p.Process("磁盘I/O性能")
	if err != nil {
		t.Fatal(err)
	}

	found := false
	for _, tk := range tokens {
		if tk == "I/O" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected I/O pattern to survive, got %v", tokens)
	}
}

func TestProcess_DependencyError(t *testing.T) {
	cfg := testConfig(t, "的\n")
	tok := &dictTokenizer{err: fmt.Errorf("%w: engine unavailable", domain.ErrDependency)}

	p, err := NewPreprocessor(cfg, tok, vectorizer.NewTfidfVectorizer(1, 1), nil)
	if err != nil {
		t.Fatal(err)
	}

	_, err = p.Process("任意文本")
	if !errors.Is(err, domain.ErrDependency) {
		t.Errorf("expected ErrDependency, got %v", err)
	}
}

func TestProcessCorpus_KeywordScenario(t *testing.T) {
	cfg := testConfig(t, "的\n")
	cfg.Vectorize.KeywordThreshold = 0.3
	tok := &dictTokenizer{cuts: map[string][]string{
		"猫喜欢鱼":  {"猫", "喜欢", "鱼"},
		"狗喜欢骨头": {"狗", "喜欢", "骨头"},
	}}

	p, err := NewPreprocessor(cfg, tok, vectorizer.NewTfidfVectorizer(1, 1), nil)
	if err != nil {
		t.Fatal(err)
	}

	results, err := p.ProcessCorpus([]string{"猫喜欢鱼", "狗喜欢骨头"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	sets := make([]map[string]bool, 2)
	for i, r := range results {
		sets[i] = make(map[string]bool)
		for _, kw := range r.Keywords {
			sets[i][kw.Term] = true
		}
	}

	// Non-shared terms stay with their own document.
	for term, docIdx := range map[string]int{"猫": 0, "鱼": 0, "狗": 1, "骨头": 1} {
		if !sets[docIdx][term] {
			t.Errorf("expected %s in document %d keywords: %v", term, docIdx, results[docIdx].Keywords)
		}
		if sets[1-docIdx][term] {
			t.Errorf("term %s leaked into document %d keywords", term, 1-docIdx)
		}
	}

	// Raising the threshold above the shared term's weight drops 喜欢
	// from both documents but keeps each document's unique terms.
	cfg.Vectorize.KeywordThreshold = 0.5
	p, err = NewPreprocessor(cfg, tok, vectorizer.NewTfidfVectorizer(1, 1), nil)
	if err != nil {
		t.Fatal(err)
	}
	results, err = p.ProcessCorpus([]string{"猫喜欢鱼", "狗喜欢骨头"})
	if err != nil {
		t.Fatal(err)
	}
	for i, r := range results {
		for _, kw := range r.Keywords {
			if kw.Term == "喜欢" {
				t.Errorf("document %d still contains the shared term: %v", i, r.Keywords)
			}
		}
		if len(r.Keywords) == 0 {
			t.Errorf("document %d lost its unique keywords", i)
		}
	}
}

func TestProcessCorpus_EmptyVocabulary(t *testing.T) {
	cfg := testConfig(t, "的\n是\n")
	tok := &dictTokenizer{cuts: map[string][]string{
		"的": {"的"},
	}}

	p, err := NewPreprocessor(cfg, tok, vectorizer.NewTfidfVectorizer(1, 1), nil)
	if err != nil {
		t.Fatal(err)
	}

	_, err = p.ProcessCorpus([]string{"的"})
	if !errors.Is(err, domain.ErrInput) {
		t.Errorf("expected ErrInput for all-stopword corpus, got %v", err)
	}
}
