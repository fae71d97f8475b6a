package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), SettingsFileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func TestLoadSettings(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		s, err := LoadSettings(filepath.Join(t.TempDir(), SettingsFileName))
		require.NoError(t, err)
		assert.Equal(t, DefaultSettings(), s)
	})

	t.Run("reads all keys", func(t *testing.T) {
		path := writeSettings(t, "shell = \"/bin/zsh\"\nlog_level = \"debug\"\ncolor = \"never\"\n")

		s, err := LoadSettings(path)
		require.NoError(t, err)
		assert.Equal(t, "/bin/zsh", s.Shell)
		assert.Equal(t, "debug", s.LogLevel)
		assert.Equal(t, ColorNever, s.Color)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		s, err := LoadSettings(writeSettings(t, "shell = \"/bin/bash\"\n"))
		require.NoError(t, err)
		assert.Equal(t, "info", s.LogLevel)
		assert.Equal(t, ColorAuto, s.Color)
	})

	t.Run("accepts world-readable file", func(t *testing.T) {
		path := writeSettings(t, "color = \"never\"\n")
		require.NoError(t, os.Chmod(path, 0644))

		s, err := LoadSettings(path)
		require.NoError(t, err)
		assert.Equal(t, ColorNever, s.Color)
	})

	t.Run("rejects malformed toml", func(t *testing.T) {
		_, err := LoadSettings(writeSettings(t, "shell = \n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse settings")
	})

	t.Run("rejects unknown color", func(t *testing.T) {
		_, err := LoadSettings(writeSettings(t, "color = \"rainbow\"\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "color must be one of")
	})

	t.Run("rejects unknown log level", func(t *testing.T) {
		_, err := LoadSettings(writeSettings(t, "log_level = \"loud\"\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown log_level")
	})
}

func TestShellPath(t *testing.T) {
	t.Run("settings override wins", func(t *testing.T) {
		t.Setenv("SHELL", "/bin/bash")
		s := &Settings{Shell: "/usr/bin/fish"}
		assert.Equal(t, "/usr/bin/fish", s.ShellPath())
	})

	t.Run("falls back to SHELL", func(t *testing.T) {
		t.Setenv("SHELL", "/bin/bash")
		assert.Equal(t, "/bin/bash", DefaultSettings().ShellPath())
	})

	t.Run("falls back to /bin/sh", func(t *testing.T) {
		t.Setenv("SHELL", "")
		assert.Equal(t, "/bin/sh", DefaultSettings().ShellPath())
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
