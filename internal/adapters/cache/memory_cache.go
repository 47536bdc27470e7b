// Package cache provides the durable backends for the result cache
// contract: in-memory, SQLite, and MySQL. All three enforce the same
// staleness rule (now - timestamp >= ttl) and run a periodic cleanup task.
package cache

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/pagelens/bias-filter/internal/core"
)

var (
	// ErrNotFound is returned when a cache entry is not found.
	ErrNotFound = errors.New("cache entry not found")
	// ErrExpired is returned when a cache entry has expired.
	ErrExpired = errors.New("cache entry expired")
)

// MemoryCache is an in-memory implementation of core.ResultCache.
type MemoryCache struct {
	content map[string]*core.CacheEntry
	authors map[string]*core.AuthorCacheEntry
	mu      sync.RWMutex

	logger      *zap.Logger
	cleanupFreq time.Duration
	nowFn       func() time.Time
	stopCh      chan struct{}
	stopOnce    sync.Once
}

// NewMemoryCache creates an in-memory cache and starts its background
// cleanup task.
func NewMemoryCache(logger *zap.Logger, cleanupFreq time.Duration) *MemoryCache {
	c := &MemoryCache{
		content:     make(map[string]*core.CacheEntry),
		authors:     make(map[string]*core.AuthorCacheEntry),
		logger:      logger,
		cleanupFreq: cleanupFreq,
		nowFn:       time.Now,
		stopCh:      make(chan struct{}),
	}
	if cleanupFreq > 0 {
		go c.startCleanupTask()
	}
	return c
}

// SetClock substitutes the time source; expiry tests inject a fake clock.
func (c *MemoryCache) SetClock(nowFn func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nowFn = nowFn
}

// GetResult retrieves a fresh content entry.
func (c *MemoryCache) GetResult(ctx context.Context, key string) (*core.CacheEntry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.content[key]
	if !ok {
		return nil, ErrNotFound
	}
	if entry.Expired(c.nowFn()) {
		return nil, ErrExpired
	}
	return entry, nil
}

// SetResult upserts a content entry; last write wins.
func (c *MemoryCache) SetResult(ctx context.Context, entry *core.CacheEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.content[entry.Key] = entry
	return nil
}

// DeleteResult removes a content entry.
func (c *MemoryCache) DeleteResult(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.content, key)
	return nil
}

// GetAuthor retrieves a fresh author entry.
func (c *MemoryCache) GetAuthor(ctx context.Context, key string) (*core.AuthorCacheEntry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.authors[key]
	if !ok {
		return nil, ErrNotFound
	}
	if entry.Expired(c.nowFn()) {
		return nil, ErrExpired
	}
	return entry, nil
}

// SetAuthor upserts an author entry; last write wins.
func (c *MemoryCache) SetAuthor(ctx context.Context, entry *core.AuthorCacheEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.authors[entry.Key] = entry
	return nil
}

// DeleteAuthor removes an author entry.
func (c *MemoryCache) DeleteAuthor(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.authors, key)
	return nil
}

// Cleanup removes expired entries.
func (c *MemoryCache) Cleanup(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.nowFn()
	expired := 0
	for key, entry := range c.content {
		if entry.Expired(now) {
			delete(c.content, key)
			expired++
		}
	}
	for key, entry := range c.authors {
		if entry.Expired(now) {
			delete(c.authors, key)
			expired++
		}
	}

	c.logger.Debug("Cleaned up expired cache entries", zap.Int("expired_count", expired))
	return nil
}

func (c *MemoryCache) startCleanupTask() {
	ticker := time.NewTicker(c.cleanupFreq)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := c.Cleanup(context.Background()); err != nil {
				c.logger.Error("Failed to clean up cache", zap.Error(err))
			}
		case <-c.stopCh:
			return
		}
	}
}

// Stop stops the background cleanup task.
func (c *MemoryCache) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}
