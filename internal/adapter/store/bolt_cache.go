package store

import (
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"zhprep/internal/adapter/cache"
)

var bucketTokens = []byte("tokens")

// BoltCache is a persistent token cache on bbolt, for batch runs that revisit
// the same documents across invocations. Read failures and corrupt entries
// degrade to cache misses.
type BoltCache struct {
	db *bbolt.DB
}

// NewBoltCache opens (or creates) the cache database at path.
func NewBoltCache(path string) (*BoltCache, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open token cache: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketTokens)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tokens bucket: %w", err)
	}

	return &BoltCache{db: db}, nil
}

// Get returns the stored token sequence for the text, if any.
func (s *BoltCache) Get(text string) ([]string, bool) {
	var tokens []string
	found := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketTokens).Get([]byte(cache.Key(text)))
		if data == nil {
			return nil
		}
		if err := json.Unmarshal(data, &tokens); err != nil {
			return nil // corrupt entry, treat as miss
		}
		found = true
		return nil
	})
	if err != nil || !found {
		return nil, false
	}
	return tokens, true
}

// Put stores the token sequence for the text. Write failures are silent; the
// cache is advisory.
func (s *BoltCache) Put(text string, tokens []string) {
	data, err := json.Marshal(tokens)
	if err != nil {
		return
	}
	s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketTokens).Put([]byte(cache.Key(text)), data)
	})
}

// Count returns the number of cached documents.
func (s *BoltCache) Count() (int, error) {
	count := 0
	err := s.db.View(func(tx *bbolt.Tx) error {
		count = tx.Bucket(bucketTokens).Stats().KeyN
		return nil
	})
	return count, err
}

// Clear drops all cached entries.
func (s *BoltCache) Clear() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketTokens); err != nil {
			return err
		}
		_, err := tx.CreateBucket(bucketTokens)
		return err
	})
}

// Close closes the underlying database.
func (s *BoltCache) Close() error {
	return s.db.Close()
}
