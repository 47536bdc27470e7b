package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"github.com/pagelens/bias-filter/internal/core"
)

// MySQLCache is a MySQL implementation of core.ResultCache, for
// deployments sharing one cache across engine instances.
type MySQLCache struct {
	db          *sql.DB
	logger      *zap.Logger
	cleanupFreq time.Duration
	nowFn       func() time.Time
	stopCh      chan struct{}
	stopOnce    sync.Once
}

// NewMySQLCache connects to MySQL, ensures the schema, and starts the
// background cleanup task.
func NewMySQLCache(dsn string, logger *zap.Logger, cleanupFreq time.Duration) (*MySQLCache, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL connection: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping MySQL: %w", err)
	}

	for _, stmt := range []string{
		`CREATE TABLE IF NOT EXISTS content_cache (
			cache_key VARCHAR(128) PRIMARY KEY,
			payload MEDIUMTEXT NOT NULL,
			created_at BIGINT NOT NULL,
			expires_at BIGINT NOT NULL,
			INDEX idx_content_expires (expires_at)
		)`,
		`CREATE TABLE IF NOT EXISTS author_cache (
			cache_key VARCHAR(255) PRIMARY KEY,
			payload MEDIUMTEXT NOT NULL,
			created_at BIGINT NOT NULL,
			expires_at BIGINT NOT NULL,
			INDEX idx_author_expires (expires_at)
		)`,
	} {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to initialize cache schema: %w", err)
		}
	}

	c := &MySQLCache{
		db:          db,
		logger:      logger,
		cleanupFreq: cleanupFreq,
		nowFn:       time.Now,
		stopCh:      make(chan struct{}),
	}
	if cleanupFreq > 0 {
		go c.startCleanupTask()
	}
	return c, nil
}

// GetResult retrieves a fresh content entry.
func (c *MySQLCache) GetResult(ctx context.Context, key string) (*core.CacheEntry, error) {
	payload, created, expires, err := c.getRow(ctx, "content_cache", key)
	if err != nil {
		return nil, err
	}

	var result core.ClassificationResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil, fmt.Errorf("failed to decode cached result: %w", err)
	}
	return &core.CacheEntry{
		Key:       key,
		Result:    &result,
		Timestamp: created,
		TTL:       expires.Sub(created),
	}, nil
}

// SetResult upserts a content entry; last write wins.
func (c *MySQLCache) SetResult(ctx context.Context, entry *core.CacheEntry) error {
	payload, err := json.Marshal(entry.Result)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return c.setRow(ctx, "content_cache", entry.Key, payload, entry.Timestamp, entry.TTL)
}

// DeleteResult removes a content entry.
func (c *MySQLCache) DeleteResult(ctx context.Context, key string) error {
	_, err := c.db.ExecContext(ctx, `DELETE FROM content_cache WHERE cache_key = ?`, key)
	return err
}

// GetAuthor retrieves a fresh author entry.
func (c *MySQLCache) GetAuthor(ctx context.Context, key string) (*core.AuthorCacheEntry, error) {
	payload, created, expires, err := c.getRow(ctx, "author_cache", key)
	if err != nil {
		return nil, err
	}

	var classification core.AuthorClassification
	if err := json.Unmarshal([]byte(payload), &classification); err != nil {
		return nil, fmt.Errorf("failed to decode cached author classification: %w", err)
	}
	return &core.AuthorCacheEntry{
		Key:            key,
		Classification: &classification,
		Timestamp:      created,
		TTL:            expires.Sub(created),
	}, nil
}

// SetAuthor upserts an author entry; last write wins.
func (c *MySQLCache) SetAuthor(ctx context.Context, entry *core.AuthorCacheEntry) error {
	payload, err := json.Marshal(entry.Classification)
	if err != nil {
		return fmt.Errorf("failed to encode author classification: %w", err)
	}
	return c.setRow(ctx, "author_cache", entry.Key, payload, entry.Timestamp, entry.TTL)
}

// DeleteAuthor removes an author entry.
func (c *MySQLCache) DeleteAuthor(ctx context.Context, key string) error {
	_, err := c.db.ExecContext(ctx, `DELETE FROM author_cache WHERE cache_key = ?`, key)
	return err
}

// Cleanup removes expired entries from both tables.
func (c *MySQLCache) Cleanup(ctx context.Context) error {
	now := c.nowFn().UnixMilli()
	total := int64(0)
	for _, table := range []string{"content_cache", "author_cache"} {
		res, err := c.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE expires_at <= ?`, now)
		if err != nil {
			return fmt.Errorf("failed to clean up %s: %w", table, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			total += n
		}
	}
	c.logger.Debug("Cleaned up expired cache entries", zap.Int64("expired_count", total))
	return nil
}

// Close stops the cleanup task and closes the connection pool.
func (c *MySQLCache) Close() error {
	c.stopOnce.Do(func() { close(c.stopCh) })
	return c.db.Close()
}

func (c *MySQLCache) getRow(ctx context.Context, table, key string) (payload string, created, expires time.Time, err error) {
	var createdMs, expiresMs int64
	row := c.db.QueryRowContext(ctx,
		`SELECT payload, created_at, expires_at FROM `+table+` WHERE cache_key = ?`, key)
	if err = row.Scan(&payload, &createdMs, &expiresMs); err != nil {
		if err == sql.ErrNoRows {
			return "", time.Time{}, time.Time{}, ErrNotFound
		}
		return "", time.Time{}, time.Time{}, fmt.Errorf("failed to read cache row: %w", err)
	}
	created = time.UnixMilli(createdMs)
	expires = time.UnixMilli(expiresMs)
	if !c.nowFn().Before(expires) {
		return "", time.Time{}, time.Time{}, ErrExpired
	}
	return payload, created, expires, nil
}

func (c *MySQLCache) setRow(ctx context.Context, table, key string, payload []byte, created time.Time, ttl time.Duration) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO `+table+` (cache_key, payload, created_at, expires_at)
		 VALUES (?, ?, ?, ?)
		 ON DUPLICATE KEY UPDATE
			payload = VALUES(payload),
			created_at = VALUES(created_at),
			expires_at = VALUES(expires_at)`,
		key, string(payload), created.UnixMilli(), created.Add(ttl).UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to write cache row: %w", err)
	}
	return nil
}

func (c *MySQLCache) startCleanupTask() {
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
