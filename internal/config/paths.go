package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const (
	// AliasesFileName holds the alias -> command table.
	AliasesFileName = "aliases.yaml"
	// ScopesFileName holds the alias -> directory scope table.
	ScopesFileName = "scopes.yaml"
	// SettingsFileName holds user settings.
	SettingsFileName = "settings.toml"
)

// ConfigDir returns the again configuration directory.
// Respects AGAIN_CONFIG_DIR override.
func ConfigDir() (string, error) {
	if dir := os.Getenv("AGAIN_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config dir: %w", err)
	}
	return filepath.Join(base, "again"), nil
}

// LogDir returns the directory for again log files. An AGAIN_CONFIG_DIR
// override keeps logs inside that directory on every platform.
func LogDir() (string, error) {
	if runtime.GOOS == "darwin" && os.Getenv("AGAIN_CONFIG_DIR") == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("log dir: %w", err)
		}
		return filepath.Join(home, "Library", "Logs", "again"), nil
	}
	cfgDir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfgDir, "logs"), nil
}

// AliasesFilePath returns the path to aliases.yaml.
func AliasesFilePath() (string, error) {
	return inConfigDir(AliasesFileName)
}

// ScopesFilePath returns the path to scopes.yaml.
func ScopesFilePath() (string, error) {
	return inConfigDir(ScopesFileName)
}

// SettingsFilePath returns the path to settings.toml.
func SettingsFilePath() (string, error) {
	return inConfigDir(SettingsFileName)
}

func inConfigDir(name string) (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}
