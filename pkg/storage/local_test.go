package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdhnkumar/faculty-econtent/pkg/apperror"
)

func TestLocalStorageSaveNamesAndStores(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(dir)
	require.NoError(t, err)

	ref, err := s.Save(context.Background(), strings.NewReader("content"), "my notes.pdf")
	require.NoError(t, err)

	// Timestamp prefix, spaces replaced, no path separators.
	assert.Regexp(t, `^\d+-my_notes\.pdf$`, ref)

	data, err := os.ReadFile(filepath.Join(dir, ref))
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestLocalStorageSaveStripsPathComponents(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	ref, err := s.Save(context.Background(), strings.NewReader("x"), "../../etc/passwd")
	require.NoError(t, err)
	assert.NotContains(t, ref, "/")
	assert.Regexp(t, `^\d+-passwd$`, ref)
}

func TestLocalStorageResolve(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(dir)
	require.NoError(t, err)
	ctx := context.Background()

	ref, err := s.Save(ctx, strings.NewReader("x"), "notes.pdf")
	require.NoError(t, err)

	blob, err := s.Resolve(ctx, ref)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ref), blob.Path)
	assert.Empty(t, blob.URL)

	_, err = s.Resolve(ctx, "missing.pdf")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestLocalStorageDeleteToleratesMissing(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	ref, err := s.Save(ctx, strings.NewReader("x"), "notes.pdf")
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, ref))
	require.NoError(t, s.Delete(ctx, ref), "deleting an already-removed file succeeds")
}

func TestLocalStorageDirExposesUploadRoot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	s, err := NewLocalStorage(dir)
	require.NoError(t, err)

	// The server mounts this path for static serving; it must be the same
	// directory Save writes into.
	assert.Equal(t, dir, s.Dir())
	assert.DirExists(t, dir)
}
