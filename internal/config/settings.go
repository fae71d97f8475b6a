package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Color modes accepted in settings.toml.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Settings are optional user preferences read from settings.toml.
type Settings struct {
	// Shell overrides $SHELL for `again run`.
	Shell    string `toml:"shell"`
	LogLevel string `toml:"log_level"`
	Color    string `toml:"color"`
}

func DefaultSettings() *Settings {
	return &Settings{
		LogLevel: "info",
		Color:    ColorAuto,
	}
}

// LoadSettings reads settings from path. A missing file yields defaults;
// keys absent from the file keep their default values.
func LoadSettings(path string) (*Settings, error) {
	s := DefaultSettings()

	// Settings hold no secrets, so unlike the alias tables any file mode is accepted.
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	if _, err := toml.Decode(string(data), s); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("validate settings %s: %w", path, err)
	}
	return s, nil
}

// Validate checks that enumerated fields hold known values.
func (s *Settings) Validate() error {
	if _, err := ParseLevel(s.LogLevel); err != nil {
		return err
	}
	switch s.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be one of auto, always, never (got %q)", s.Color)
	}
	return nil
}

// ShellPath returns the shell used to run aliases: the settings override,
// then $SHELL, then /bin/sh.
func (s *Settings) ShellPath() string {
	if s.Shell != "" {
		return s.Shell
	}
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	return "/bin/sh"
}

// ParseLevel maps a log_level setting to a slog level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log_level %q", level)
}
