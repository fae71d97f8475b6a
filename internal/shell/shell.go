// Package shell runs an alias command through the user's shell as
// `<shell> -c <command>`, taking over the current process.
package shell

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Executor runs commands with a fixed shell.
type Executor struct {
	// Shell is a path or a name resolved through $PATH.
	Shell string
	// Env is the child environment; os.Environ() when nil.
	Env []string
}

// New returns an Executor for the given shell.
func New(shell string) *Executor {
	return &Executor{Shell: shell}
}

// Argv returns the argument vector handed to the shell.
func (e *Executor) Argv(command string) []string {
	return []string{e.Shell, "-c", command}
}

func (e *Executor) resolve() (string, error) {
	path, err := exec.LookPath(e.Shell)
	if err != nil {
		return "", fmt.Errorf("start shell %s: %w", e.Shell, err)
	}
	return path, nil
}

func (e *Executor) env() []string {
	if e.Env != nil {
		return e.Env
	}
	return os.Environ()
}

// exitCode maps the result of waiting on the shell to a process exit status.
// A child killed by a signal reports -1, which becomes 1.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
		return exitErr.ExitCode()
	}
	return 1
}
