package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/davebream/again/internal/config"
	"github.com/davebream/again/internal/logging"
)

func newLogsCmd() *cobra.Command {
	var (
		follow bool
		lines  int
	)
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the activity log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logDir, err := config.LogDir()
			if err != nil {
				return err
			}

			logFile := filepath.Join(logDir, logging.LogFileName)
			if _, err := os.Stat(logFile); os.IsNotExist(err) {
				fmt.Fprintln(cmd.OutOrStdout(), "No log file found at", logFile)
				return nil
			}

			tailArgs := []string{"-n", strconv.Itoa(lines), logFile}
			if follow {
				tailArgs = []string{"-f", logFile}
			}
			tailCmd := exec.CommandContext(cmd.Context(), "tail", tailArgs...)
			tailCmd.Stdout = cmd.OutOrStdout()
			tailCmd.Stderr = cmd.ErrOrStderr()
			return tailCmd.Run()
		},
	}
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Follow log output")
	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "Number of lines to show")
	return cmd
}
