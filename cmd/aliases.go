package cmd

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/davebream/again/internal/editor"
	"github.com/davebream/again/internal/registry"
)

func newRunCmd(d *deps, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "run <alias>",
		Short:             "Run an alias",
		Long:              "Run the command bound to an alias through your shell. The shell replaces the again process.",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeAliases(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			defer s.cleanup()

			alias := args[0]
			err = s.registry.Run(cmd.Context(), d.executor(s.settings), alias)
			switch {
			case errors.Is(err, registry.ErrAliasNotFound):
				s.out.NotFound(alias)
			case err != nil:
				// A shell that fails to start is reported, but the exit status stays 0.
				s.logger.Error("shell failed to start", "alias", alias, "error", err)
				s.errOut.Warn("again: %v", err)
			}
			return nil
		},
	}
}

func newSaveCmd(opts *rootOptions) *cobra.Command {
	var local bool
	cmd := &cobra.Command{
		Use:   "save [--local] <alias> [command...]",
		Short: "Save a command",
		Long: `Bind an alias to a command line. Everything after the alias is taken
verbatim, flags included, and joined with single spaces. An empty command
deletes the alias.

Examples:
  again save gs git status
  again save gl git log --oneline -n 20
  again save --local build make -j8`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			defer s.cleanup()

			change, err := s.registry.Set(args[0], strings.Join(args[1:], " "), local)
			if err != nil {
				return err
			}
			printChange(s, change)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&local, "local", "l", false, "Scope the alias to the current directory")
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "delete <alias>",
		Aliases:           []string{"rm"},
		Short:             "Remove a command",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeAliases(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			defer s.cleanup()

			change, err := s.registry.Delete(args[0])
			if errors.Is(err, registry.ErrAliasNotFound) {
				s.out.NotFound(args[0])
				return nil
			}
			if err != nil {
				return err
			}
			s.out.Deleted(change)
			return nil
		},
	}
}

func newRenameCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "rename <source> <destination>",
		Aliases:           []string{"mv"},
		Short:             "Rename an alias",
		Long:              "Move a command to a new alias. The destination must not exist. The alias loses its directory scope.",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeAliases(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			defer s.cleanup()

			src, dst := args[0], args[1]
			err = s.registry.Rename(src, dst)
			var exists *registry.ExistsError
			switch {
			case err == nil:
				s.out.Renamed(src, dst)
			case errors.Is(err, registry.ErrAliasNotFound):
				s.out.Missing(src)
			case errors.As(err, &exists):
				s.out.Exists(exists.Alias, exists.Command)
			default:
				return err
			}
			return nil
		},
	}
}

func newListCmd(opts *rootOptions) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List aliases",
		Long: `List aliases visible from the current directory: unscoped aliases and
aliases scoped to this directory or one of its parents. With --all, every
alias is listed and scoped ones are prefixed with [directory].`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			defer s.cleanup()

			entries, err := s.registry.List(all)
			if err != nil {
				return err
			}
			for e := range entries {
				s.out.Entry(e, all)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "List aliases from every directory")
	return cmd
}

func newEditCmd(d *deps, opts *rootOptions) *cobra.Command {
	var local bool
	cmd := &cobra.Command{
		Use:   "edit [--local] <alias>",
		Short: "Edit a command in your editor",
		Long: `Open the command bound to an alias in $EDITOR and save the result.
A new alias starts from an empty file; emptying the file deletes the alias.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeAliases(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			defer s.cleanup()

			change, err := s.registry.Edit(cmd.Context(), d.editor(cmd), args[0], local)
			if errors.Is(err, editor.ErrNoEditor) {
				s.errOut.Warn("again: %v", err)
				return nil
			}
			if err != nil {
				return err
			}
			printChange(s, change)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&local, "local", "l", false, "Scope the alias to the current directory")
	return cmd
}

func printChange(s *session, change registry.Change) {
	switch {
	case !change.Deleted():
		s.out.Saved(change)
	case change.Replaced:
		s.out.Deleted(change)
	default:
		s.out.NotFound(change.Alias)
	}
}
