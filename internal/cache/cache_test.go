package cache

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestCache(t *testing.T, dir string) *Cache {
	t.Helper()
	c, err := Open(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestOpenRequiresDirectory(t *testing.T) {
	t.Parallel()

	_, err := Open("")
	assert.Error(t, err)
}

func TestOpenCreatesDirectory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "cache")
	c := openTestCache(t, dir)

	count, err := c.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPutGetRoundtrip(t *testing.T) {
	t.Parallel()

	c := openTestCache(t, t.TempDir())
	ctx := context.Background()

	payload, ok, err := c.Get(ctx, "k", 0)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, payload)

	require.NoError(t, c.Put(ctx, "k", []byte(`[{"speed": 312}]`)))

	payload, ok, err = c.Get(ctx, "k", 0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"speed": 312}]`, string(payload))
}

func TestPutReplacesExisting(t *testing.T) {
	t.Parallel()

	c := openTestCache(t, t.TempDir())
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "k", []byte("old")))
	require.NoError(t, c.Put(ctx, "k", []byte("new")))

	payload, ok, err := c.Get(ctx, "k", 0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "new", string(payload))

	count, err := c.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestGetExpiry(t *testing.T) {
	t.Parallel()

	c := openTestCache(t, t.TempDir())
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "k", []byte("v")))
	time.Sleep(10 * time.Millisecond)

	_, ok, err := c.Get(ctx, "k", time.Millisecond)
	require.NoError(t, err)
	assert.False(t, ok, "entry past maxAge should read as a miss")

	_, ok, err = c.Get(ctx, "k", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok, "fresh enough entry should hit")
}

func TestPrune(t *testing.T) {
	t.Parallel()

	c := openTestCache(t, t.TempDir())
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "old", []byte("v")))
	time.Sleep(10 * time.Millisecond)
	cutoff := time.Now()
	require.NoError(t, c.Put(ctx, "new", []byte("v")))

	require.NoError(t, c.Prune(ctx, cutoff))

	_, ok, err := c.Get(ctx, "old", 0)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = c.Get(ctx, "new", 0)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestReopenKeepsEntries(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx := context.Background()

	first, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, first.Put(ctx, "k", []byte("v")))
	require.NoError(t, first.Close())

	second := openTestCache(t, dir)
	payload, ok, err := second.Get(ctx, "k", 0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v", string(payload))
}
