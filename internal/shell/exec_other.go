//go:build !unix

package shell

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// Exec runs the shell as a child with inherited standard streams and exits
// the current process with the child's status once it finishes. It only
// returns if the shell could not be started.
func (e *Executor) Exec(ctx context.Context, command string) error {
	path, err := e.resolve()
	if err != nil {
		return err
	}
	argv := e.Argv(command)
	cmd := exec.CommandContext(ctx, path, argv[1:]...)
	cmd.Env = e.env()
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start shell %s: %w", path, err)
	}

	os.Exit(exitCode(cmd.Wait()))
	return nil
}
