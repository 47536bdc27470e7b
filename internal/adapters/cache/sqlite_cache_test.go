package cache

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pagelens/bias-filter/internal/core"
)

func newSQLiteTestCache(t *testing.T) *SQLiteCache {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cache.db")
	c, err := NewSQLiteCache(path, zap.NewNop(), 0)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestSQLiteCacheRoundTrip(t *testing.T) {
	c := newSQLiteTestCache(t)
	ctx := context.Background()

	entry := &core.CacheEntry{
		Key: "content-key",
		Result: &core.ClassificationResult{
			Economic:   -60,
			TruthScore: 70,
			Confidence: 0.8,
			SourceTag:  core.SourceTagKeyword,
		},
		Timestamp: time.Now(),
		TTL:       time.Hour,
	}
	require.NoError(t, c.SetResult(ctx, entry))

	got, err := c.GetResult(ctx, "content-key")
	require.NoError(t, err)
	assert.Equal(t, -60, got.Result.Economic)
	assert.Equal(t, 70, got.Result.TruthScore)
	assert.Equal(t, core.SourceTagKeyword, got.Result.SourceTag)
}

func TestSQLiteCacheMissingKey(t *testing.T) {
	c := newSQLiteTestCache(t)
	_, err := c.GetResult(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteCacheExpiredEntry(t *testing.T) {
	c := newSQLiteTestCache(t)
	ctx := context.Background()

	entry := &core.CacheEntry{
		Key:       "stale",
		Result:    &core.ClassificationResult{},
		Timestamp: time.Now().Add(-2 * time.Hour),
		TTL:       time.Hour,
	}
	require.NoError(t, c.SetResult(ctx, entry))

	_, err := c.GetResult(ctx, "stale")
	assert.ErrorIs(t, err, ErrExpired)
}

func TestSQLiteCacheUpsert(t *testing.T) {
	c := newSQLiteTestCache(t)
	ctx := context.Background()

	first := &core.CacheEntry{
		Key:       "k",
		Result:    &core.ClassificationResult{Economic: 10},
		Timestamp: time.Now(),
		TTL:       time.Hour,
	}
	require.NoError(t, c.SetResult(ctx, first))

	second := &core.CacheEntry{
		Key:       "k",
		Result:    &core.ClassificationResult{Economic: -10},
		Timestamp: time.Now(),
		TTL:       time.Hour,
	}
	require.NoError(t, c.SetResult(ctx, second))

	got, err := c.GetResult(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, -10, got.Result.Economic)
}

func TestSQLiteCacheDelete(t *testing.T) {
	c := newSQLiteTestCache(t)
	ctx := context.Background()

	entry := &core.CacheEntry{
		Key:       "gone",
		Result:    &core.ClassificationResult{},
		Timestamp: time.Now(),
		TTL:       time.Hour,
	}
	require.NoError(t, c.SetResult(ctx, entry))
	require.NoError(t, c.DeleteResult(ctx, "gone"))

	_, err := c.GetResult(ctx, "gone")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteCacheAuthorRoundTrip(t *testing.T) {
	c := newSQLiteTestCache(t)
	ctx := context.Background()

	entry := &core.AuthorCacheEntry{
		Key: "twitter:someone",
		Classification: &core.AuthorClassification{
			Authenticity: 35,
			Coordination: 25,
			Intent: core.IntentProfile{
				Primary:    core.IntentTroll,
				Confidence: 0.4,
				Breakdown:  map[core.Intent]float64{core.IntentTroll: 0.4, core.IntentOrganic: 0.6},
			},
			DataQuality: core.QualityMedium,
		},
		Timestamp: time.Now(),
		TTL:       6 * time.Hour,
	}
	require.NoError(t, c.SetAuthor(ctx, entry))

	got, err := c.GetAuthor(ctx, "twitter:someone")
	require.NoError(t, err)
	assert.Equal(t, 35, got.Classification.Authenticity)
	assert.Equal(t, core.IntentTroll, got.Classification.Intent.Primary)
	assert.Equal(t, core.QualityMedium, got.Classification.DataQuality)

	require.NoError(t, c.DeleteAuthor(ctx, "twitter:someone"))
	_, err = c.GetAuthor(ctx, "twitter:someone")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteCacheCleanup(t *testing.T) {
	c := newSQLiteTestCache(t)
	ctx := context.Background()

	stale := &core.CacheEntry{
		Key:       "stale",
		Result:    &core.ClassificationResult{},
		Timestamp: time.Now().Add(-48 * time.Hour),
		TTL:       time.Hour,
	}
	fresh := &core.CacheEntry{
		Key:       "fresh",
		Result:    &core.ClassificationResult{},
		Timestamp: time.Now(),
		TTL:       24 * time.Hour,
	}
	require.NoError(t, c.SetResult(ctx, stale))
	require.NoError(t, c.SetResult(ctx, fresh))

	require.NoError(t, c.Cleanup(ctx))

	_, err := c.GetResult(ctx, "stale")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = c.GetResult(ctx, "fresh")
	assert.NoError(t, err)
}
