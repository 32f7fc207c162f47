package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSqliteStore(t *testing.T) RecordStore {
	t.Helper()
	store, err := NewSqliteRecordStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, store.(*sqliteRecordStore).Close())
	})
	return store
}

func TestSqliteRecordStore_RoundTrip(t *testing.T) {
	store := setupSqliteStore(t)
	ctx := context.Background()

	doc := testDocument("doc-1", "2024-05-01T10:00:00.000Z")
	require.NoError(t, store.Put(ctx, doc))

	got, err := store.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestSqliteRecordStore_PutOverwrites(t *testing.T) {
	store := setupSqliteStore(t)
	ctx := context.Background()

	doc := testDocument("doc-1", "2024-05-01T10:00:00.000Z")
	require.NoError(t, store.Put(ctx, doc))
	doc.Title = "renamed"
	require.NoError(t, store.Put(ctx, doc))

	got, err := store.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Title)

	docs, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestSqliteRecordStore_GetMissing(t *testing.T) {
	store := setupSqliteStore(t)

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSqliteRecordStore_DeleteTwice(t *testing.T) {
	store := setupSqliteStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, testDocument("doc-1", "2024-05-01T10:00:00.000Z")))
	require.NoError(t, store.Delete(ctx, "doc-1"))
	assert.ErrorIs(t, store.Delete(ctx, "doc-1"), ErrNotFound)
}

func TestSqliteRecordStore_ListAllNewestFirst(t *testing.T) {
	store := setupSqliteStore(t)
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

func TestSqliteRecordStore_ListAllSkipsCorrupt(t *testing.T) {
	store := setupSqliteStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, testDocument("a", "2024-05-01T10:00:01.000Z")))
	require.NoError(t, store.Put(ctx, testDocument("b", "2024-05-01T10:00:02.000Z")))

	// Corrupt one row behind the store's back.
	db := store.(*sqliteRecordStore).db
	_, err := db.Exec("UPDATE documents SET body = '{broken' WHERE id = ?", "a")
	require.NoError(t, err)

	docs, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "b", docs[0].ID)
}
