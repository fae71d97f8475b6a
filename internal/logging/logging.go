// Package logging writes the again activity log: JSON slog records in a
// size-rotated file, with secrets scrubbed from messages and attributes.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// LogFileName is the name of the active log file inside the log directory.
const LogFileName = "again.log"

const (
	maxLogBytes = 1 << 20
	maxLogAge   = 14 * 24 * time.Hour
)

// secretPatterns matches secret formats that tend to show up in saved command lines.
var secretPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)bearer\s+\S+`),
	regexp.MustCompile(`(?i)(api[_-]?key|token|secret|password|authorization)\s*[:=]\s*\S+`),
	regexp.MustCompile(`(?i)\b[a-z][a-z0-9+.-]*://[^\s:/@]+:[^\s@]+@`),
	regexp.MustCompile(`sk_live_\S+`),
	regexp.MustCompile(`gh[pousr]_\S+`),
	regexp.MustCompile(`AKIA[A-Z0-9]{16}`),
}

const redactedPlaceholder = "[REDACTED]"

// ScrubSecrets replaces known secret patterns in a string.
func ScrubSecrets(s string) string {
	for _, pat := range secretPatterns {
		s = pat.ReplaceAllString(s, redactedPlaceholder)
	}
	return s
}

// RotatingWriter writes to a log file with size-based rotation.
// When the file exceeds maxBytes, it is renamed to .1 and a new file is opened.
// Old rotated files beyond maxAge are deleted.
type RotatingWriter struct {
	mu       sync.Mutex
	path     string
	maxBytes int64
	maxAge   time.Duration
	file     *os.File
	size     int64
}

// NewRotatingWriter creates a writer that rotates at maxBytes and removes
// rotated files older than maxAge.
func NewRotatingWriter(path string, maxBytes int64, maxAge time.Duration) (*RotatingWriter, error) {
	rw := &RotatingWriter{
		path:     path,
		maxBytes: maxBytes,
		maxAge:   maxAge,
	}
	if err := rw.openFile(); err != nil {
		return nil, err
	}
	return rw, nil
}

func (rw *RotatingWriter) openFile() error {
	f, err := os.OpenFile(rw.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("stat log file: %w", err)
	}
	rw.file = f
	rw.size = info.Size()
	return nil
}

func (rw *RotatingWriter) Write(p []byte) (int, error) {
	rw.mu.Lock()
	defer rw.mu.Unlock()

	// Rotation failure is not worth losing the record over.
	if rw.size+int64(len(p)) > rw.maxBytes {
		_ = rw.rotate()
	}

	n, err := rw.file.Write(p)
	rw.size += int64(n)
	return n, err
}

// rotate runs synchronously: a CLI process exits right after logging, so a
// background cleanup goroutine would rarely get to finish.
func (rw *RotatingWriter) rotate() error {
	rw.file.Close()

	if err := os.Rename(rw.path, rw.path+".1"); err != nil {
		f, openErr := os.OpenFile(rw.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if openErr != nil {
			return fmt.Errorf("rotate: rename failed (%v), truncate also failed: %w", err, openErr)
		}
		rw.file = f
		rw.size = 0
		return fmt.Errorf("rotate rename: %w", err)
	}

	if err := rw.openFile(); err != nil {
		return err
	}
	rw.cleanOld()
	return nil
}

func (rw *RotatingWriter) cleanOld() {
	dir := filepath.Dir(rw.path)
	base := filepath.Base(rw.path)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	cutoff := time.Now().Add(-rw.maxAge)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), base+".") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			os.Remove(filepath.Join(dir, entry.Name()))
		}
	}
}

// Close closes the underlying file.
func (rw *RotatingWriter) Close() error {
	rw.mu.Lock()
	defer rw.mu.Unlock()
	if rw.file != nil {
		return rw.file.Close()
	}
	return nil
}

// ScrubbingHandler wraps a slog.Handler to scrub secret patterns from log attributes.
type ScrubbingHandler struct {
	inner slog.Handler
}

// NewScrubbingHandler wraps handler to scrub secrets from string attribute values.
func NewScrubbingHandler(inner slog.Handler) *ScrubbingHandler {
	return &ScrubbingHandler{inner: inner}
}

func (h *ScrubbingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *ScrubbingHandler) Handle(ctx context.Context, r slog.Record) error {
	r2 := slog.NewRecord(r.Time, r.Level, ScrubSecrets(r.Message), r.PC)
	r.Attrs(func(a slog.Attr) bool {
		r2.AddAttrs(scrubAttr(a))
		return true
	})
	return h.inner.Handle(ctx, r2)
}

func (h *ScrubbingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	scrubbed := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		scrubbed[i] = scrubAttr(a)
	}
	return &ScrubbingHandler{inner: h.inner.WithAttrs(scrubbed)}
}

func (h *ScrubbingHandler) WithGroup(name string) slog.Handler {
	return &ScrubbingHandler{inner: h.inner.WithGroup(name)}
}

func scrubAttr(a slog.Attr) slog.Attr {
	switch a.Value.Kind() {
	case slog.KindString:
		return slog.String(a.Key, ScrubSecrets(a.Value.String()))
	case slog.KindGroup:
		attrs := a.Value.Group()
		scrubbed := make([]any, len(attrs))
		for i, ga := range attrs {
			scrubbed[i] = scrubAttr(ga)
		}
		return slog.Group(a.Key, scrubbed...)
	}
	return a
}

// Options configures Setup.
type Options struct {
	Level slog.Level
	// Stderr mirrors records to stderr (the --verbose flag).
	Stderr bool
	// Command is the subcommand name recorded on every line.
	Command string
}

// Setup creates the invocation logger writing JSON to again.log in logDir.
// Every record carries a fresh invocation id so that interleaved lines from
// concurrent processes can be told apart.
// Returns the logger and a cleanup function to close the log file.
func Setup(logDir string, opts Options) (*slog.Logger, func(), error) {
	rw, err := NewRotatingWriter(filepath.Join(logDir, LogFileName), maxLogBytes, maxLogAge)
	if err != nil {
		return nil, nil, fmt.Errorf("setup logging: %w", err)
	}

	var writer io.Writer = rw
	if opts.Stderr {
		writer = io.MultiWriter(rw, os.Stderr)
	}

	handler := NewScrubbingHandler(slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: opts.Level}))
	logger := slog.New(handler).With(
		"invocation", uuid.NewString(),
		"pid", os.Getpid(),
	)
	if opts.Command != "" {
		logger = logger.With("command", opts.Command)
	}

	return logger, func() { rw.Close() }, nil
}

// Discard returns a logger that drops everything; used when the log file
// cannot be opened.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// AliasLogger creates a child logger tagged with the alias name.
func AliasLogger(parent *slog.Logger, alias string) *slog.Logger {
	return parent.With("alias", alias)
}
