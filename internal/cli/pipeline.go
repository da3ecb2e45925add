package cli

import (
	"fmt"
	"log/slog"
	"time"

	"zhprep/config"
	"zhprep/internal/adapter/cache"
	"zhprep/internal/adapter/segmenter"
	"zhprep/internal/adapter/store"
	"zhprep/internal/adapter/vectorizer"
	"zhprep/internal/domain"
	"zhprep/internal/port"
	"zhprep/internal/usecase"
)

// buildPreprocessor wires the tokenizer, cache, and vectorizer selected by
// the configuration. The returned cleanup releases the jieba engine and any
// on-disk cache and must run before exit.
func buildPreprocessor(cfg *config.Config, log *slog.Logger) (*usecase.Preprocessor, func(), error) {
	var cleanups []func()
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	var tokenizer port.Tokenizer
	switch cfg.Preprocess.Segmenter {
	case "", "jieba":
		jieba, err := segmenter.NewJiebaTokenizer(cfg.Preprocess.HMM)
		if err != nil {
			return nil, nil, err
		}
		cleanups = append(cleanups, jieba.Close)
		tokenizer = jieba
	case "unigram":
		tokenizer = segmenter.NewUnigramTokenizer()
	default:
		return nil, nil, fmt.Errorf("%w: unknown segmenter %q", domain.ErrConfig, cfg.Preprocess.Segmenter)
	}

	if cfg.Cache.Enabled {
		var tokenCache port.TokenCache
		if cfg.Cache.Path != "" {
			boltCache, err := store.NewBoltCache(cfg.Cache.Path)
			if err != nil {
				cleanup()
				return nil, nil, err
			}
			cleanups = append(cleanups, func() {
				if err := boltCache.Close(); err != nil {
					log.Warn("failed to close token cache", "error", err)
				}
			})
			tokenCache = boltCache
		} else {
			tokenCache = cache.NewTokenCache(cfg.Cache.MaxSize, time.Duration(cfg.Cache.TTLSeconds)*time.Second)
		}
		tokenizer = cache.NewCachedTokenizer(tokenizer, tokenCache)
	}

	var vec port.Vectorizer
	if cfg.Vectorize.UseTFIDF {
		vec = vectorizer.NewTfidfVectorizer(cfg.Vectorize.NgramMin, cfg.Vectorize.NgramMax)
	} else {
		vec = vectorizer.NewCountVectorizer(cfg.Vectorize.NgramMin, cfg.Vectorize.NgramMax)
	}

	pre, err := usecase.NewPreprocessor(cfg, tokenizer, vec, log)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return pre, cleanup, nil
}
