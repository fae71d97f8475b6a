//go:build unix

package shell

import (
	"context"
	"fmt"
	"syscall"
)

// Exec replaces the current process image with the shell running command.
// It only returns if the shell could not be started.
func (e *Executor) Exec(_ context.Context, command string) error {
	path, err := e.resolve()
	if err != nil {
		return err
	}
	if err := syscall.Exec(path, e.Argv(command), e.env()); err != nil {
		return fmt.Errorf("exec %s: %w", path, err)
	}
	return nil
}
