package usecase

import (
	"fmt"
	"log/slog"
	"strings"

	"zhprep/config"
	"zhprep/internal/adapter/analyzer"
	"zhprep/internal/domain"
	"zhprep/internal/port"
)

// Preprocessor sequences the cleaning pipeline: normalize, extract special
// patterns, remove symbols and digits, segment, filter stop words. The
// configuration and stop-word set are fixed at construction; every call is
// side-effect free apart from log records.
type Preprocessor struct {
	stopWords    *analyzer.StopWordSet
	tokenizer    port.Tokenizer
	vectorizer   port.Vectorizer
	keepPatterns bool
	threshold    float64
	log          *slog.Logger
}

// NewPreprocessor validates the configuration and loads the stop-word set.
// Invalid thresholds, unordered n-gram ranges, and missing stop-word files
// fail here with domain.ErrConfig, not at first use.
func NewPreprocessor(cfg *config.Config, tokenizer port.Tokenizer, vectorizer port.Vectorizer, log *slog.Logger) (*Preprocessor, error) {
	if tokenizer == nil {
		return nil, fmt.Errorf("%w: tokenizer is required", domain.ErrConfig)
	}
	if vectorizer == nil {
		return nil, fmt.Errorf("%w: vectorizer is required", domain.ErrConfig)
	}
	if cfg.Vectorize.KeywordThreshold < 0 {
		return nil, fmt.Errorf("%w: keyword threshold must be >= 0, got %g", domain.ErrConfig, cfg.Vectorize.KeywordThreshold)
	}
	if cfg.Vectorize.NgramMin < 1 || cfg.Vectorize.NgramMin > cfg.Vectorize.NgramMax {
		return nil, fmt.Errorf("%w: n-gram range must satisfy 1 <= min <= max, got (%d,%d)",
			domain.ErrConfig, cfg.Vectorize.NgramMin, cfg.Vectorize.NgramMax)
	}

	stopWords, err := analyzer.LoadStopWords(cfg.Preprocess.StopWordsFile)
	if err != nil {
		return nil, err
	}

	if log == nil {
		log = slog.Default()
	}
	log.Info("preprocessor initialized",
		"stop_words", stopWords.Len(),
		"use_tfidf", cfg.Vectorize.UseTFIDF,
		"ngram_range", fmt.Sprintf("(%d,%d)", cfg.Vectorize.NgramMin, cfg.Vectorize.NgramMax),
		"keyword_threshold", cfg.Vectorize.KeywordThreshold,
	)

	return &Preprocessor{
		stopWords:    stopWords,
		tokenizer:    tokenizer,
		vectorizer:   vectorizer,
		keepPatterns: cfg.Preprocess.KeepPatterns,
		threshold:    cfg.Vectorize.KeywordThreshold,
		log:          log,
	}, nil
}

// Process cleans and segments one document, returning the filtered token
// sequence in segmentation order. Blank input is an input error.
func (p *Preprocessor) Process(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty document", domain.ErrInput)
	}

	var patterns []string
	if p.keepPatterns {
		patterns, text = analyzer.ExtractPatterns(text)
	}

	text = analyzer.Normalize(text)
	text = analyzer.Clean(text)
	p.log.Debug("cleaned", "text", text, "patterns", patterns)

	tokens, err := p.tokenizer.Segment(text)
	if err != nil {
		return nil, err
	}

	tokens = p.stopWords.Filter(tokens)
	tokens = append(tokens, patterns...)
	p.log.Debug("tokenized", "tokens", tokens)

	return tokens, nil
}

// ProcessCorpus runs Process on every document, vectorizes the corpus, and
// extracts per-document keywords above the threshold. IDF weighting is only
// corpus-meaningful with more than one document, but a single document is
// accepted.
func (p *Preprocessor) ProcessCorpus(texts []string) ([]domain.DocumentResult, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("%w: empty corpus", domain.ErrInput)
	}

	results := make([]domain.DocumentResult, len(texts))
	tokenized := make([][]string, len(texts))
	for i, text := range texts {
		tokens, err := p.Process(text)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		results[i] = domain.DocumentResult{Text: text, Tokens: tokens}
		tokenized[i] = tokens
	}

	keywords, err := p.Keywords(tokenized)
	if err != nil {
		return nil, err
	}
	for i := range results {
		results[i].Keywords = keywords[i]
	}

	return results, nil
}

// Keywords vectorizes already-segmented documents as one corpus and extracts
// per-document keywords above the threshold.
func (p *Preprocessor) Keywords(tokenized [][]string) ([][]domain.Keyword, error) {
	matrix, err := p.vectorizer.FitTransform(tokenized)
	if err != nil {
		return nil, err
	}

	keywords := make([][]domain.Keyword, len(tokenized))
	for i := range tokenized {
		keywords[i] = ExtractKeywords(matrix.Rows[i], matrix.Vocab, p.threshold)
	}
	p.log.Debug("vectorized", "documents", len(tokenized), "vocabulary", matrix.Vocab.Size())

	return keywords, nil
}
