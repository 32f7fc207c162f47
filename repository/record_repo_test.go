package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tieubaoca/memobox-be/types"
)

func setupFileStore(t *testing.T) (RecordStore, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := NewFileRecordStore(dir)
	require.NoError(t, err)
	return store, dir
}

func testDocument(id, createdAt string) *types.Document {
	return &types.Document{
		ID:            id,
		Content:       "content of " + id,
		Title:         "title of " + id,
		Type:          types.DocumentTypeNote,
		Status:        types.DocumentStatusDone,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
		ContainerTags: []string{},
		Metadata:      map[string]interface{}{},
		MemoryEntries: []interface{}{},
	}
}

func TestFileRecordStore_RoundTrip(t *testing.T) {
	store, _ := setupFileStore(t)
	ctx := context.Background()

	doc := testDocument("doc-1", "2024-05-01T10:00:00.000Z")
	doc.Metadata["source"] = "test"
	require.NoError(t, store.Put(ctx, doc))

	got, err := store.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, doc, got)

	// Repeated reads return identical data.
	again, err := store.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestFileRecordStore_GetMissing(t *testing.T) {
	store, _ := setupFileStore(t)

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileRecordStore_DeleteTwice(t *testing.T) {
	store, _ := setupFileStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, testDocument("doc-1", "2024-05-01T10:00:00.000Z")))
	require.NoError(t, store.Delete(ctx, "doc-1"))

	_, err := store.Get(ctx, "doc-1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "doc-1"), ErrNotFound)
}

func TestFileRecordStore_ListAllNewestFirst(t *testing.T) {
	store, _ := setupFileStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, testDocument("a", "2024-05-01T10:00:01.000Z")))
	require.NoError(t, store.Put(ctx, testDocument("b", "2024-05-01T10:00:02.000Z")))
	require.NoError(t, store.Put(ctx, testDocument("c", "2024-05-01T10:00:03.000Z")))

	docs, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "c", docs[0].ID)
	assert.Equal(t, "b", docs[1].ID)
	assert.Equal(t, "a", docs[2].ID)
}

func TestFileRecordStore_ListAllSkipsCorrupt(t *testing.T) {
	store, dir := setupFileStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, testDocument("a", "2024-05-01T10:00:01.000Z")))
	require.NoError(t, store.Put(ctx, testDocument("b", "2024-05-01T10:00:02.000Z")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0644))

	docs, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "b", docs[0].ID)
	assert.Equal(t, "a", docs[1].ID)
}

func TestFileRecordStore_GetCorrupt(t *testing.T) {
	_, dir := setupFileStore(t)
	store, err := NewFileRecordStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0644))
	_, err = store.Get(context.Background(), "bad")
	assert.ErrorIs(t, err, ErrNotFound)
}
