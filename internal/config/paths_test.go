package config

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDir(t *testing.T) {
	t.Run("uses AGAIN_CONFIG_DIR override", func(t *testing.T) {
		t.Setenv("AGAIN_CONFIG_DIR", "/tmp/again-test-config")
		dir, err := ConfigDir()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/again-test-config", dir)
	})

	t.Run("returns platform default when no override", func(t *testing.T) {
		t.Setenv("AGAIN_CONFIG_DIR", "")
		dir, err := ConfigDir()
		require.NoError(t, err)
		assert.NotEmpty(t, dir)
		if runtime.GOOS == "darwin" {
			assert.Contains(t, dir, "Application Support/again")
		}
	})
}

func TestLogDir(t *testing.T) {
	t.Run("follows config dir override", func(t *testing.T) {
		t.Setenv("AGAIN_CONFIG_DIR", "/tmp/again-test")
		dir, err := LogDir()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/again-test/logs", dir)
	})

	t.Run("returns platform default", func(t *testing.T) {
		t.Setenv("AGAIN_CONFIG_DIR", "")
		dir, err := LogDir()
		require.NoError(t, err)
		assert.NotEmpty(t, dir)
		if runtime.GOOS == "darwin" {
			assert.Contains(t, dir, "Logs/again")
		}
	})
}

func TestTablePaths(t *testing.T) {
	t.Setenv("AGAIN_CONFIG_DIR", "/tmp/again-test")

	tests := []struct {
		name string
		fn   func() (string, error)
		want string
	}{
		{"aliases", AliasesFilePath, "/tmp/again-test/aliases.yaml"},
		{"scopes", ScopesFilePath, "/tmp/again-test/scopes.yaml"},
		{"settings", SettingsFilePath, "/tmp/again-test/settings.toml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := tt.fn()
			require.NoError(t, err)
			assert.Equal(t, tt.want, path)
		})
	}
}
