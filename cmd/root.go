package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/davebream/again/internal/config"
	"github.com/davebream/again/internal/editor"
	"github.com/davebream/again/internal/logging"
	"github.com/davebream/again/internal/registry"
	"github.com/davebream/again/internal/shell"
	"github.com/davebream/again/internal/store"
	"github.com/davebream/again/internal/ui"
)

// deps are the process-touching collaborators, swapped out in tests.
type deps struct {
	executor func(s *config.Settings) registry.Executor
	editor   func(cmd *cobra.Command) registry.Editor
}

func defaultDeps() *deps {
	return &deps{
		executor: func(s *config.Settings) registry.Executor {
			return shell.New(s.ShellPath())
		},
		editor: func(cmd *cobra.Command) registry.Editor {
			ed := editor.New()
			ed.Stdin = cmd.InOrStdin()
			return ed
		},
	}
}

type rootOptions struct {
	verbose bool
}

func newRootCmd(d *deps) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "again",
		Short: "A commands alias manager",
		Long: `again binds short names to shell command lines and runs them later.

Aliases can be scoped to a directory with --local; scoped aliases are listed
only from that directory and below, unless --all is given.

Examples:
  again save gs git status
  again save --local build make -j8
  again run gs
  again ls --all`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Mirror debug logs to stderr")

	root.AddCommand(
		newRunCmd(d, opts),
		newSaveCmd(opts),
		newDeleteCmd(opts),
		newRenameCmd(opts),
		newListCmd(opts),
		newEditCmd(d, opts),
		newCompletionsCmd(),
		newVersionCmd(),
		newDoctorCmd(),
		newLogsCmd(),
	)
	return root
}

func Execute() {
	if err := newRootCmd(defaultDeps()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "again:", err)
		os.Exit(1)
	}
}

// session is everything one invocation needs: settings, its logger and the
// registry loaded from disk. It is built once per command and passed along.
type session struct {
	settings *config.Settings
	logger   *slog.Logger
	registry *registry.Registry
	out      *ui.Printer
	errOut   *ui.Printer
	cleanup  func()
}

func openSession(cmd *cobra.Command, opts *rootOptions) (*session, error) {
	settingsPath, err := config.SettingsFilePath()
	if err != nil {
		return nil, err
	}
	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return nil, err
	}

	logger, cleanup := setupLogger(cmd, settings, opts)

	st, err := store.Open()
	if err != nil {
		cleanup()
		return nil, err
	}
	reg, err := registry.Open(st, registry.WithLogger(logger))
	if err != nil {
		logger.Error("registry load failed", "error", err)
		cleanup()
		return nil, err
	}

	return &session{
		settings: settings,
		logger:   logger,
		registry: reg,
		out:      ui.NewPrinter(cmd.OutOrStdout(), settings.Color),
		errOut:   ui.NewPrinter(cmd.ErrOrStderr(), settings.Color),
		cleanup:  cleanup,
	}, nil
}

// setupLogger opens the activity log. Logging problems never fail a command.
func setupLogger(cmd *cobra.Command, settings *config.Settings, opts *rootOptions) (*slog.Logger, func()) {
	level, _ := config.ParseLevel(settings.LogLevel)
	if opts.verbose {
		level = slog.LevelDebug
	}

	logDir, err := config.LogDir()
	if err == nil {
		err = config.EnsureDir(logDir, 0700)
	}
	if err == nil {
		logger, cleanup, setupErr := logging.Setup(logDir, logging.Options{
			Level:   level,
			Stderr:  opts.verbose,
			Command: cmd.Name(),
		})
		if setupErr == nil {
			return logger, cleanup
		}
		err = setupErr
	}

	if opts.verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "again: cannot set up file logging: %v\n", err)
		logger := slog.New(logging.NewScrubbingHandler(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		return logger, func() {}
	}
	return logging.Discard(), func() {}
}

// completeAliases offers bound alias names for the first maxArgs positions.
func completeAliases(maxArgs int) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) >= maxArgs {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		st, err := store.Open()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		reg, err := registry.Open(st)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return reg.Names(), cobra.ShellCompDirectiveNoFileComp
	}
}
