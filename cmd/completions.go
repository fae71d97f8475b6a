package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCompletionsCmd() *cobra.Command {
	var exe string
	cmd := &cobra.Command{
		Use:   "completions <shell>",
		Short: "Generate shell completions",
		Long: `Print a completion script for bash, zsh, fish or powershell.

Use --exe when again is installed under another name.

Examples:
  again completions bash > /etc/bash_completion.d/again
  again completions zsh --exe ag > "${fpath[1]}/_ag"`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			root.Use = exe

			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(out)
			}
			return fmt.Errorf("unsupported shell %q (want bash, zsh, fish or powershell)", args[0])
		},
	}
	cmd.Flags().StringVar(&exe, "exe", "again", "Executable name the completions are generated for")
	return cmd
}
