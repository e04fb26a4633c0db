package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okristaps/koknese-be/internal/storage"
)

func seedObject(t *testing.T, store *storage.MemoryStore, bucket, key, content string) {
	t.Helper()
	err := store.Put(context.Background(), bucket, key, strings.NewReader(content), int64(len(content)), "application/octet-stream", nil)
	require.NoError(t, err)
}

func TestDirectoryListFiltersByExtension(t *testing.T) {
	store := storage.NewMemoryStore()
	seedObject(t, store, "models", "statue.glb", "glb-bytes")
	seedObject(t, store, "models", "readme.txt", "not a model")
	seedObject(t, store, "models", "tower.GLB", "more glb")

	dir := NewDirectoryService(store)
	records, err := dir.List(context.Background(), Models, "", true)
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "statue.glb", records[0].Key)
	assert.Equal(t, "tower.GLB", records[1].Key)
}

func TestDirectoryListSkipsDirectoryMarker(t *testing.T) {
	store := storage.NewMemoryStore()
	seedObject(t, store, "images", "p1/", "")
	seedObject(t, store, "images", "p1/a.jpg", "a")
	seedObject(t, store, "images", "p1/b.jpg", "b")
	seedObject(t, store, "images", "p1/nested/c.jpg", "c")
	seedObject(t, store, "images", "p2/z.jpg", "z")

	dir := NewDirectoryService(store)
	records, err := dir.List(context.Background(), Images, "p1/", false)
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "p1/a.jpg", records[0].Key)
	assert.Equal(t, "p1/b.jpg", records[1].Key)
}

func TestDirectoryListPreservesStoreOrder(t *testing.T) {
	store := storage.NewMemoryStore()
	for _, key := range []string{"c.glb", "a.glb", "b.glb"} {
		seedObject(t, store, "models", key, key)
	}

	dir := NewDirectoryService(store)
	records, err := dir.List(context.Background(), Models, "", true)
	require.NoError(t, err)

	keys := make([]string, len(records))
	for i, r := range records {
		keys[i] = r.Key
	}
	assert.Equal(t, []string{"a.glb", "b.glb", "c.glb"}, keys)
}

func TestDirectoryListEmptyBucket(t *testing.T) {
	dir := NewDirectoryService(storage.NewMemoryStore())
	records, err := dir.List(context.Background(), Models, "", true)
	require.NoError(t, err)
	assert.Empty(t, records)
}
