package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the preprocessing tool.
type Config struct {
	Preprocess PreprocessConfig `yaml:"preprocess"`
	Vectorize  VectorizeConfig  `yaml:"vectorize"`
	Similar    SimilarConfig    `yaml:"similar"`
	Batch      BatchConfig      `yaml:"batch"`
	Cache      CacheConfig      `yaml:"cache"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// PreprocessConfig holds cleaning and segmentation configuration.
type PreprocessConfig struct {
	StopWordsFile string `yaml:"stop_words_file"` // empty = embedded default list
	Segmenter     string `yaml:"segmenter"`       // "jieba", "unigram"
	HMM           bool   `yaml:"hmm"`             // jieba new-word discovery
	KeepPatterns  bool   `yaml:"keep_patterns"`   // preserve tokens like "I/O"
}

// VectorizeConfig holds vectorization and keyword extraction configuration.
type VectorizeConfig struct {
	UseTFIDF bool `yaml:"use_tfidf"` // TF-IDF weights; false = raw counts
	NgramMin int  `yaml:"ngram_min"`
	NgramMax int  `yaml:"ngram_max"`
	// KeywordThreshold selects keywords with weight strictly greater than
	// this value.
	KeywordThreshold float64 `yaml:"keyword_threshold"`
}

// SimilarConfig holds document similarity configuration.
type SimilarConfig struct {
	// Threshold reports document pairs with cosine similarity strictly
	// greater than this value.
	Threshold    float64 `yaml:"threshold"`
	TopN         int     `yaml:"top_n"`         // results returned for a query
	TokensColumn string  `yaml:"tokens_column"` // header of the tokens column
}

// BatchConfig holds CSV batch processing configuration.
type BatchConfig struct {
	TextColumn string   `yaml:"text_column"` // header of the column to process
	Includes   []string `yaml:"includes"`
	Excludes   []string `yaml:"excludes"`
}

// CacheConfig holds segmentation cache configuration.
type CacheConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Path       string `yaml:"path"` // bbolt file; empty = in-memory LRU
	MaxSize    int    `yaml:"max_size"`
	TTLSeconds int    `yaml:"ttl_seconds"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Preprocess: PreprocessConfig{
			StopWordsFile: "",
			Segmenter:     "jieba",
			HMM:           true,
			KeepPatterns:  true,
		},
		Vectorize: VectorizeConfig{
			UseTFIDF:         true,
			NgramMin:         1,
			NgramMax:         1,
			KeywordThreshold: 0.1,
		},
		Similar: SimilarConfig{
			Threshold:    0.6,
			TopN:         5,
			TokensColumn: "tokens",
		},
		Batch: BatchConfig{
			TextColumn: "question",
			Includes:   []string{"**/*.csv"},
			Excludes:   []string{"**/*_processed.csv"},
		},
		Cache: CacheConfig{
			Enabled:    true,
			MaxSize:    1024,
			TTLSeconds: 300,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for zhprep.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "zhprep.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".zhprep", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
