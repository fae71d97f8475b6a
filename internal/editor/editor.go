// Package editor opens the user's $EDITOR on a scratch file holding an
// alias command and reads the result back.
package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strings"
)

// ErrNoEditor is returned when $EDITOR is unset.
var ErrNoEditor = errors.New("EDITOR is not set. Export it first, for example: export EDITOR=vim")

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)

// Editor runs an external editor with inherited standard streams.
type Editor struct {
	Getenv func(string) string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// TempDir holds scratch files; os.TempDir() when empty.
	TempDir string
}

// New returns an Editor bound to the process environment and terminal.
func New() *Editor {
	return &Editor{
		Getenv: os.Getenv,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Command returns the configured editor argv, split on whitespace so values
// such as "code --wait" work.
func (e *Editor) Command() ([]string, error) {
	argv := strings.Fields(e.Getenv("EDITOR"))
	if len(argv) == 0 {
		return nil, ErrNoEditor
	}
	return argv, nil
}

// Edit writes text to a scratch file, blocks until the editor exits and
// returns the file's new content. A non-zero editor exit is an error.
func (e *Editor) Edit(ctx context.Context, alias, text string) (string, error) {
	argv, err := e.Command()
	if err != nil {
		return "", err
	}

	f, err := os.CreateTemp(e.TempDir, "again-"+unsafeChars.ReplaceAllString(alias, "_")+"-*.sh")
	if err != nil {
		return "", fmt.Errorf("create scratch file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.WriteString(text); err != nil {
		f.Close()
		return "", fmt.Errorf("write scratch file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close scratch file: %w", err)
	}

	cmd := exec.CommandContext(ctx, argv[0], append(argv[1:], path)...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("run editor %s: %w", argv[0], err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read scratch file: %w", err)
	}
	return string(data), nil
}
