package editor

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

// writeScript creates an executable that stands in for $EDITOR.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script editors need a unix shell")
	}
	path := filepath.Join(t.TempDir(), "fake-editor")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0700))
	return path
}

func newTestEditor(t *testing.T, editor string) *Editor {
	return &Editor{
		Getenv:  env(map[string]string{"EDITOR": editor}),
		Stdout:  &bytes.Buffer{},
		Stderr:  &bytes.Buffer{},
		TempDir: t.TempDir(),
	}
}

func TestCommand(t *testing.T) {
	t.Run("unset", func(t *testing.T) {
		_, err := newTestEditor(t, "").Command()
		assert.ErrorIs(t, err, ErrNoEditor)
	})

	t.Run("blank", func(t *testing.T) {
		_, err := newTestEditor(t, "   ").Command()
		assert.ErrorIs(t, err, ErrNoEditor)
	})

	t.Run("splits arguments", func(t *testing.T) {
		argv, err := newTestEditor(t, "code --wait").Command()
		require.NoError(t, err)
		assert.Equal(t, []string{"code", "--wait"}, argv)
	})
}

func TestEdit(t *testing.T) {
	t.Run("returns edited content", func(t *testing.T) {
		script := writeScript(t, `printf 'git log --oneline' > "$1"`+"\n")

		got, err := newTestEditor(t, script).Edit(context.Background(), "gl", "git log")
		require.NoError(t, err)
		assert.Equal(t, "git log --oneline", got)
	})

	t.Run("editor sees current text", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "seen")
		script := writeScript(t, `cp "$1" "`+out+`"`+"\n")

		got, err := newTestEditor(t, script).Edit(context.Background(), "gl", "git log")
		require.NoError(t, err)
		assert.Equal(t, "git log", got)

		seen, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, "git log", string(seen))
	})

	t.Run("scratch file is removed", func(t *testing.T) {
		script := writeScript(t, "true\n")
		ed := newTestEditor(t, script)

		_, err := ed.Edit(context.Background(), "a/b c", "")
		require.NoError(t, err)

		entries, err := os.ReadDir(ed.TempDir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("non-zero exit fails", func(t *testing.T) {
		script := writeScript(t, "exit 3\n")

		_, err := newTestEditor(t, script).Edit(context.Background(), "gl", "git log")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "run editor")
	})

	t.Run("missing editor binary fails", func(t *testing.T) {
		ed := newTestEditor(t, filepath.Join(t.TempDir(), "no-such-editor"))

		_, err := ed.Edit(context.Background(), "gl", "")
		assert.Error(t, err)
	})

	t.Run("unset editor fails before creating a file", func(t *testing.T) {
		ed := newTestEditor(t, "")

		_, err := ed.Edit(context.Background(), "gl", "")
		assert.ErrorIs(t, err, ErrNoEditor)

		entries, err := os.ReadDir(ed.TempDir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
