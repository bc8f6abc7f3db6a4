package kvstore

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseKV(t *testing.T, kv KV) {
	ctx := context.Background()

	_, err := kv.Get(ctx, "teams")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, kv.Set(ctx, "teams", []byte(`[{"name":"Lions"}]`)))
	got, err := kv.Get(ctx, "teams")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"Lions"}]`, string(got))

	require.NoError(t, kv.Set(ctx, "teams", []byte(`[]`)))
	got, err = kv.Get(ctx, "teams")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(got))

	require.NoError(t, kv.Delete(ctx, "teams"))
	require.NoError(t, kv.Delete(ctx, "teams"), "deleting a missing key is not an error")
	_, err = kv.Get(ctx, "teams")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Error(t, kv.Set(ctx, "../escape", []byte("x")))
}

func TestFileKV(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)
	exerciseKV(t, kv)
}

func TestFileKVLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	kv, err := NewFileKV(dir)
	require.NoError(t, err)

	require.NoError(t, kv.Set(context.Background(), "seasons", []byte("[]")))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "seasons.json", entries[0].Name())
}

func TestMemoryKV(t *testing.T) {
	exerciseKV(t, NewMemoryKV())
}

func TestMemoryKVCopiesValues(t *testing.T) {
	kv := NewMemoryKV()
	buf := []byte("abc")
	require.NoError(t, kv.Set(context.Background(), "k", buf))
	buf[0] = 'z'

	got, err := kv.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestRedisKV(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	kv := NewRedisKV(RedisConfig{Addr: addr, Prefix: "league-test:"})
	defer kv.Close()
	require.NoError(t, kv.Ping(context.Background()))
	exerciseKV(t, kv)
}
