package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTest(t *testing.T) (*SQLite, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "data", "test.db")
	s, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, dbPath
}

func TestOpenCreatesParentDirectory(t *testing.T) {
	s, dbPath := openTest(t)
	require.NotNil(t, s)
	assert.FileExists(t, dbPath)
}

func TestGetMissingKey(t *testing.T) {
	s, _ := openTest(t)

	value, ok, err := s.Get("absent")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, value)
}

func TestPutGet(t *testing.T) {
	s, _ := openTest(t)

	require.NoError(t, s.Put("snapshot", []byte(`{"a":1}`)))

	value, ok, err := s.Get("snapshot")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`{"a":1}`), value)
}

func TestPutOverwrites(t *testing.T) {
	s, _ := openTest(t)

	require.NoError(t, s.Put("snapshot", []byte("first")))
	require.NoError(t, s.Put("snapshot", []byte("second")))

	value, ok, err := s.Get("snapshot")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("second"), value)
}

func TestDelete(t *testing.T) {
	s, _ := openTest(t)

	require.NoError(t, s.Put("snapshot", []byte("x")))
	require.NoError(t, s.Delete("snapshot"))

	_, ok, err := s.Get("snapshot")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is not an error.
	require.NoError(t, s.Delete("snapshot"))
}

func TestReopenKeepsData(t *testing.T) {
	s, dbPath := openTest(t)
	require.NoError(t, s.Put("snapshot", []byte("persisted")))
	require.NoError(t, s.Close())

	reopened, err := Open(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	value, ok, err := reopened.Get("snapshot")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("persisted"), value)
}
