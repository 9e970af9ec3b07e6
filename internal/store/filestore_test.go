package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdhnkumar/faculty-econtent/pkg/apperror"
)

func newTestStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	s, err := NewFileStore(path)
	require.NoError(t, err)
	return s, path
}

func TestFileStorePutGetDelete(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	doc := Document{"id": "v1", "title": "Intro", "views": 0}
	require.NoError(t, s.Put(ctx, Videos, "v1", doc))

	got, err := s.Get(ctx, Videos, "v1")
	require.NoError(t, err)
	assert.Equal(t, "Intro", got["title"])

	docs, err := s.List(ctx, Videos)
	require.NoError(t, err)
	assert.Len(t, docs, 1)

	require.NoError(t, s.Delete(ctx, Videos, "v1"))

	_, err = s.Get(ctx, Videos, "v1")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, Videos, "v1"), apperror.ErrNotFound)
}

func TestFileStorePutReplacesExisting(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, Videos, "v1", Document{"id": "v1", "title": "Old"}))
	require.NoError(t, s.Put(ctx, Videos, "v1", Document{"id": "v1", "title": "New"}))

	docs, err := s.List(ctx, Videos)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "New", docs[0]["title"])
}

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	s, path := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, Materials, "m1", Document{"id": "m1", "title": "Notes", "downloads": 3}))

	reopened, err := NewFileStore(path)
	require.NoError(t, err)

	got, err := reopened.Get(ctx, Materials, "m1")
	require.NoError(t, err)
	assert.Equal(t, "Notes", got["title"])
	assert.EqualValues(t, 3, got["downloads"])
}

func TestFileStoreIncrement(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, Videos, "v1", Document{"id": "v1", "views": 0}))

	for want := int64(1); want <= 5; want++ {
		got, err := s.Increment(ctx, Videos, "v1", "views", 1)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	doc, err := s.Get(ctx, Videos, "v1")
	require.NoError(t, err)
	assert.EqualValues(t, 5, doc["views"])

	_, err = s.Increment(ctx, Videos, "missing", "views", 1)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestFileStoreUnknownCollection(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.List(context.Background(), "nope")
	assert.Error(t, err)
}

func TestFileStoreSingletonDefaultsToEmpty(t *testing.T) {
	s, _ := newTestStore(t)

	doc, err := s.GetSingleton(context.Background(), SingletonProfile)
	require.NoError(t, err)
	assert.Empty(t, doc)
}

func TestFileStoreMergeSingletonShallow(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.MergeSingleton(ctx, SingletonProfile, Document{"name": "Madhan", "phone": "123"})
	require.NoError(t, err)

	merged, err := s.MergeSingleton(ctx, SingletonProfile, Document{"phone": "456"})
	require.NoError(t, err)
	assert.Equal(t, "Madhan", merged["name"])
	assert.Equal(t, "456", merged["phone"])
}

func TestFileStoreMergeSingletonNestedOneLevel(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.MergeSingleton(ctx, SingletonProfile, Document{
		"social": map[string]any{"github": "mdhn", "twitter": "mdhn"},
	})
	require.NoError(t, err)

	merged, err := s.MergeSingleton(ctx, SingletonProfile, Document{
		"social": map[string]any{"twitter": "madhan_cs"},
	})
	require.NoError(t, err)

	social, ok := merged["social"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "mdhn", social["github"], "untouched nested key survives the merge")
	assert.Equal(t, "madhan_cs", social["twitter"])
}

func TestFileStoreMergeSingletonUndeclaredObjectReplacedWholesale(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.MergeSingleton(ctx, SingletonSiteContent, Document{
		"features": []any{"a", "b"},
		"hero":     map[string]any{"title": "Welcome", "ctaPrimary": "Explore"},
	})
	require.NoError(t, err)

	merged, err := s.MergeSingleton(ctx, SingletonSiteContent, Document{
		"features": []any{"c"},
		"hero":     map[string]any{"title": "Hello"},
	})
	require.NoError(t, err)

	assert.Equal(t, []any{"c"}, merged["features"], "top-level non-object keys overwrite")

	hero, ok := merged["hero"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Hello", hero["title"])
	assert.Equal(t, "Explore", hero["ctaPrimary"], "hero is a declared nested object")
}
