package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomicWriteFile(t *testing.T) {
	t.Run("writes file with correct permissions", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "aliases.yaml")

		require.NoError(t, AtomicWriteFile(path, []byte("gs: git status\n"), 0600))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "gs: git status\n", string(data))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	})

	t.Run("replaces existing content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "aliases.yaml")
		require.NoError(t, AtomicWriteFile(path, []byte("old"), 0600))
		require.NoError(t, AtomicWriteFile(path, []byte("new"), 0600))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, AtomicWriteFile(filepath.Join(dir, "scopes.yaml"), []byte("{}"), 0600))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "scopes.yaml", entries[0].Name())
	})

	t.Run("refuses to write to symlink", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "target.yaml")
		link := filepath.Join(dir, "link.yaml")

		os.WriteFile(target, []byte("original"), 0600)
		os.Symlink(target, link)

		err := AtomicWriteFile(link, []byte("modified"), 0600)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "symlink")
	})

	t.Run("creates parent directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "subdir", "aliases.yaml")

		require.NoError(t, AtomicWriteFile(path, []byte("hello"), 0600))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(data))
	})
}

func TestReadPrivateFile(t *testing.T) {
	t.Run("missing file is not an error", func(t *testing.T) {
		data, ok, err := ReadPrivateFile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, data)
	})

	t.Run("reads 0600 file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "aliases.yaml")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0600))

		data, ok, err := ReadPrivateFile(path)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "x", string(data))
	})

	t.Run("rejects insecure permissions", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "aliases.yaml")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0600))
		require.NoError(t, os.Chmod(path, 0644))

		_, _, err := ReadPrivateFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "insecure permissions")
	})
}

func TestEnsureDir(t *testing.T) {
	t.Run("creates directory with 0700", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "new-dir")

		require.NoError(t, EnsureDir(dir, 0700))

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
		assert.Equal(t, os.FileMode(0700), info.Mode().Perm())
	})

	t.Run("succeeds if directory exists", func(t *testing.T) {
		assert.NoError(t, EnsureDir(t.TempDir(), 0700))
	})
}
