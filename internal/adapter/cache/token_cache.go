package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"zhprep/internal/port"
)

// TokenCache is an in-memory LRU cache of segmentation results keyed by the
// document text. Safe for concurrent use.
type TokenCache struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
	order   []string
	maxSize int
	ttl     time.Duration
}

type cacheEntry struct {
	tokens    []string
	timestamp time.Time
}

// NewTokenCache creates a token cache with the given capacity and TTL.
func NewTokenCache(maxSize int, ttl time.Duration) *TokenCache {
	if maxSize <= 0 {
		maxSize = 1024
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &TokenCache{
		entries: make(map[string]*cacheEntry),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
		ttl:     ttl,
	}
}

// Key hashes document text into a fixed-size cache key.
func Key(text string) string {
	hash := sha256.Sum256([]byte(text))
	return hex.EncodeToString(hash[:16])
}

// Get returns the cached token sequence for the text, if present and fresh.
func (c *TokenCache) Get(text string) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := Key(text)
	entry, exists := c.entries[key]
	if !exists {
		return nil, false
	}

	if time.Since(entry.timestamp) > c.ttl {
		delete(c.entries, key)
		c.removeFromOrder(key)
		return nil, false
	}

	c.moveToEnd(key)
	return entry.tokens, true
}

// Put stores the token sequence for the text, evicting the least recently
// used entry when full.
func (c *TokenCache) Put(text string, tokens []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := Key(text)
	if _, exists := c.entries[key]; exists {
		c.entries[key] = &cacheEntry{tokens: tokens, timestamp: time.Now()}
		c.moveToEnd(key)
		return
	}

	if len(c.entries) >= c.maxSize {
		c.evictOldest()
	}

	c.entries[key] = &cacheEntry{tokens: tokens, timestamp: time.Now()}
	c.order = append(c.order, key)
}

// Invalidate drops all entries.
func (c *TokenCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*cacheEntry)
	c.order = c.order[:0]
}

// Size returns the number of cached entries.
func (c *TokenCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *TokenCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.entries, oldest)
}

func (c *TokenCache) moveToEnd(key string) {
	c.removeFromOrder(key)
	c.order = append(c.order, key)
}

func (c *TokenCache) removeFromOrder(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

// CachedTokenizer decorates a tokenizer with a token cache.
type CachedTokenizer struct {
	tokenizer port.Tokenizer
	cache     port.TokenCache
}

// NewCachedTokenizer wraps the tokenizer with the given cache.
func NewCachedTokenizer(tokenizer port.Tokenizer, cache port.TokenCache) *CachedTokenizer {
	return &CachedTokenizer{
		tokenizer: tokenizer,
		cache:     cache,
	}
}

// Segment returns cached tokens when available, delegating to the wrapped
// tokenizer otherwise. Errors are never cached.
func (t *CachedTokenizer) Segment(text string) ([]string, error) {
	if tokens, hit := t.cache.Get(text); hit {
		return tokens, nil
	}

	tokens, err := t.tokenizer.Segment(text)
	if err != nil {
		return nil, err
	}

	t.cache.Put(text, tokens)
	return tokens, nil
}
