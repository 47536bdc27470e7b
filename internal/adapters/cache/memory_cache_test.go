package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pagelens/bias-filter/internal/core"
)

func newTestCache() *MemoryCache {
	// No background cleanup; tests drive the clock themselves.
	return NewMemoryCache(zap.NewNop(), 0)
}

func contentEntry(key string, ts time.Time, ttl time.Duration) *core.CacheEntry {
	return &core.CacheEntry{
		Key:       key,
		Result:    &core.ClassificationResult{Economic: 42, TruthScore: 50},
		Timestamp: ts,
		TTL:       ttl,
	}
}

func TestMemoryCacheMissingKey(t *testing.T) {
	c := newTestCache()
	_, err := c.GetResult(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = c.GetAuthor(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCacheFreshEntryRetrievable(t *testing.T) {
	c := newTestCache()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c.SetClock(func() time.Time { return base })

	require.NoError(t, c.SetResult(context.Background(), contentEntry("k1", base, time.Hour)))

	got, err := c.GetResult(context.Background(), "k1")
	require.NoError(t, err)
	assert.Equal(t, 42, got.Result.Economic)

	// Still fresh one second before the TTL elapses.
	c.SetClock(func() time.Time { return base.Add(time.Hour - time.Second) })
	_, err = c.GetResult(context.Background(), "k1")
	assert.NoError(t, err)
}

func TestMemoryCacheExpiryBoundary(t *testing.T) {
	c := newTestCache()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, c.SetResult(context.Background(), contentEntry("k1", base, time.Hour)))

	// Exactly at timestamp+ttl the entry is already stale.
	c.SetClock(func() time.Time { return base.Add(time.Hour) })
	_, err := c.GetResult(context.Background(), "k1")
	assert.ErrorIs(t, err, ErrExpired)

	c.SetClock(func() time.Time { return base.Add(2 * time.Hour) })
	_, err = c.GetResult(context.Background(), "k1")
	assert.ErrorIs(t, err, ErrExpired)
}

func TestMemoryCacheLastWriteWins(t *testing.T) {
	c := newTestCache()
	base := time.Now()
	ctx := context.Background()

	require.NoError(t, c.SetResult(ctx, contentEntry("k1", base, time.Hour)))
	second := contentEntry("k1", base, time.Hour)
	second.Result.Economic = -30
	require.NoError(t, c.SetResult(ctx, second))

	got, err := c.GetResult(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, -30, got.Result.Economic)
}

func TestMemoryCacheDelete(t *testing.T) {
	c := newTestCache()
	ctx := context.Background()

	require.NoError(t, c.SetResult(ctx, contentEntry("k1", time.Now(), time.Hour)))
	require.NoError(t, c.DeleteResult(ctx, "k1"))

	_, err := c.GetResult(ctx, "k1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCacheAuthorEntries(t *testing.T) {
	c := newTestCache()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c.SetClock(func() time.Time { return base })
	ctx := context.Background()

	entry := &core.AuthorCacheEntry{
		Key:            "twitter:someone",
		Classification: &core.AuthorClassification{Authenticity: 70, Coordination: 10},
		Timestamp:      base,
		TTL:            6 * time.Hour,
	}
	require.NoError(t, c.SetAuthor(ctx, entry))

	got, err := c.GetAuthor(ctx, "twitter:someone")
	require.NoError(t, err)
	assert.Equal(t, 70, got.Classification.Authenticity)

	c.SetClock(func() time.Time { return base.Add(6 * time.Hour) })
	_, err = c.GetAuthor(ctx, "twitter:someone")
	assert.ErrorIs(t, err, ErrExpired)

	require.NoError(t, c.DeleteAuthor(ctx, "twitter:someone"))
	c.SetClock(func() time.Time { return base })
	_, err = c.GetAuthor(ctx, "twitter:someone")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCacheCleanup(t *testing.T) {
	c := newTestCache()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	require.NoError(t, c.SetResult(ctx, contentEntry("stale", base, time.Minute)))
	require.NoError(t, c.SetResult(ctx, contentEntry("fresh", base, 24*time.Hour)))
	require.NoError(t, c.SetAuthor(ctx, &core.AuthorCacheEntry{
		Key:            "twitter:stale",
		Classification: &core.AuthorClassification{},
		Timestamp:      base,
		TTL:            time.Minute,
	}))

	c.SetClock(func() time.Time { return base.Add(time.Hour) })
	require.NoError(t, c.Cleanup(ctx))

	// Rewind the clock: removed entries stay gone, fresh ones survive.
	c.SetClock(func() time.Time { return base })
	_, err := c.GetResult(ctx, "stale")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = c.GetAuthor(ctx, "twitter:stale")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = c.GetResult(ctx, "fresh")
	assert.NoError(t, err)
}

func TestMemoryCacheStopIdempotent(t *testing.T) {
	c := NewMemoryCache(zap.NewNop(), time.Hour)
	c.Stop()
	c.Stop()
}
