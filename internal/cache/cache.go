package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/SINANFIROZ/F1-Driver-Style-Analyzer/internal/telemetry"
)

const (
	createTableSQL = `CREATE TABLE IF NOT EXISTS responses (
        key        TEXT PRIMARY KEY,
        payload    BLOB NOT NULL,
        fetched_at INTEGER NOT NULL
    );`

	getResponseSQL = `SELECT payload, fetched_at FROM responses WHERE key = ?;`

	putResponseSQL = `INSERT INTO responses (key, payload, fetched_at)
    VALUES (?, ?, ?)
    ON CONFLICT (key) DO UPDATE
    SET payload    = excluded.payload,
        fetched_at = excluded.fetched_at;`

	pruneResponsesSQL = `DELETE FROM responses WHERE fetched_at < ?;`

	countResponsesSQL = `SELECT COUNT(*) FROM responses;`
)

// Cache is a sqlite-backed store for raw telemetry provider responses,
// keyed by request URL. Opening it creates the cache directory if absent;
// the path is taken as given and never derived from the working directory.
type Cache struct {
	db *sql.DB
}

// Open initialises the cache under dir.
func Open(dir string) (*Cache, error) {
	if dir == "" {
		return nil, errors.New("cache: directory not configured")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, "telemetry.db"))
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}

	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialise cache schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Get returns the cached payload for key. Entries older than maxAge are
// reported as misses; maxAge <= 0 disables expiry.
func (c *Cache) Get(ctx context.Context, key string, maxAge time.Duration) ([]byte, bool, error) {
	var payload []byte
	var fetchedAt int64
	err := c.db.QueryRowContext(ctx, getResponseSQL, key).Scan(&payload, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read cache entry: %w", err)
	}

	if maxAge > 0 && time.Since(time.Unix(0, fetchedAt)) > maxAge {
		return nil, false, nil
	}
	return payload, true, nil
}

// Put stores or replaces the payload for key.
func (c *Cache) Put(ctx context.Context, key string, payload []byte) error {
	if _, err := c.db.ExecContext(ctx, putResponseSQL, key, payload, time.Now().UnixNano()); err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	return nil
}

// Prune deletes entries fetched before the cutoff.
func (c *Cache) Prune(ctx context.Context, olderThan time.Time) error {
	if _, err := c.db.ExecContext(ctx, pruneResponsesSQL, olderThan.UnixNano()); err != nil {
		return fmt.Errorf("prune cache: %w", err)
	}
	return nil
}

// Count reports the number of cached responses.
func (c *Cache) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := c.db.QueryRowContext(ctx, countResponsesSQL).Scan(&count); err != nil {
		return 0, fmt.Errorf("count cache entries: %w", err)
	}
	return count, nil
}

// Close releases the underlying database handle.
func (c *Cache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

var _ telemetry.Cache = (*Cache)(nil)
