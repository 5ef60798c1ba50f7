package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_PutGet(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)

	_, ok, err := s.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Put("token", "abc"))
	v, ok, err := s.Get("token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc", v)
}

func TestStore_PutOverwrites(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)

	require.NoError(t, s.Put("token", "old"))
	require.NoError(t, s.Put("token", "new"))

	v, ok, err := s.Get("token")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "new", v)
}

func TestStore_Delete(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)

	require.NoError(t, s.Put("token", "abc"))
	require.NoError(t, s.Delete("token"))

	_, ok, err := s.Get("token")
	require.NoError(t, err)
	assert.False(t, ok)

	// deleting again is harmless
	require.NoError(t, s.Delete("token"))
}

func TestStore_SurvivesReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "store.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Put("token", "abc"))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	v, ok, err := s.Get("token")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "abc", v)
}

func TestOpen_CreatesParentDir(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "dir", "store.db")
	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Put("k", "v"))
}
