package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStorageCreatesParents(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "output")
	s, err := NewStorage(dir)
	require.NoError(t, err)

	info, err := os.Stat(s.Dir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestPendingFileCommit(t *testing.T) {
	s, err := NewStorage(t.TempDir())
	require.NoError(t, err)

	f, err := s.Create("abcd.png")
	require.NoError(t, err)
	_, err = f.Write([]byte("image bytes"))
	require.NoError(t, err)
	assert.False(t, s.Exists("abcd.png"), "not visible before commit")

	require.NoError(t, f.Commit())
	assert.True(t, s.Exists("abcd.png"))
	data, err := os.ReadFile(s.Path("abcd.png"))
	require.NoError(t, err)
	assert.Equal(t, "image bytes", string(data))

	_, err = os.Stat(s.Path("abcd.png") + partSuffix)
	assert.True(t, os.IsNotExist(err))
}

func TestPendingFileAbort(t *testing.T) {
	s, err := NewStorage(t.TempDir())
	require.NoError(t, err)

	f, err := s.Create("abcd.png")
	require.NoError(t, err)
	_, _ = f.Write([]byte("partial"))
	f.Abort()

	assert.False(t, s.Exists("abcd.png"))
	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveText(t *testing.T) {
	s, err := NewStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.SaveText("abcd.txt", `long hair, \(ribbon\)`))
	data, err := os.ReadFile(s.Path("abcd.txt"))
	require.NoError(t, err)
	assert.Equal(t, `long hair, \(ribbon\)`, string(data))
}

func TestRejectsUnsafeNames(t *testing.T) {
	s, err := NewStorage(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{"", ".", "..", "../escape.png", `a\b.png`} {
		_, err = s.Create(name)
		assert.Error(t, err, name)
		assert.False(t, s.Exists(name), name)
	}
}
