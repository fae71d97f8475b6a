package cmd

import (
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/davebream/again/internal/config"
	"github.com/davebream/again/internal/editor"
	"github.com/davebream/again/internal/store"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check again configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			allOK := true

			// 1. Settings
			settings := config.DefaultSettings()
			settingsPath, err := config.SettingsFilePath()
			if err != nil {
				fmt.Fprintf(out, "Settings: FAIL (cannot determine path: %v)\n", err)
				allOK = false
			} else if loaded, err := config.LoadSettings(settingsPath); err != nil {
				fmt.Fprintf(out, "Settings: FAIL (%v)\n", err)
				allOK = false
			} else {
				settings = loaded
				fmt.Fprintf(out, "Settings: OK (%s)\n", settingsPath)
			}

			// 2. Tables
			st, err := store.Open()
			if err != nil {
				fmt.Fprintf(out, "Aliases:  FAIL (%v)\n", err)
				allOK = false
			} else if tables, err := st.Load(); err != nil {
				fmt.Fprintf(out, "Aliases:  FAIL (%v)\n", err)
				allOK = false
			} else {
				orphans := 0
				for alias := range tables.Scopes {
					if _, ok := tables.Commands[alias]; !ok {
						orphans++
					}
				}
				fmt.Fprintf(out, "Aliases:  OK (%d aliases, %d scoped, %s)\n", len(tables.Commands), len(tables.Scopes)-orphans, st.Dir())
				if orphans > 0 {
					fmt.Fprintf(out, "Scopes:   WARN (%d scope entries without an alias)\n", orphans)
				}
			}

			// 3. Shell
			if path, err := exec.LookPath(settings.ShellPath()); err != nil {
				fmt.Fprintf(out, "Shell:    FAIL (%q not found)\n", settings.ShellPath())
				allOK = false
			} else {
				fmt.Fprintf(out, "Shell:    OK (%s)\n", path)
			}

			// 4. Editor
			if argv, err := editor.New().Command(); err != nil {
				fmt.Fprintln(out, "Editor:   WARN (EDITOR is not set, `again edit` will not work)")
			} else if _, err := exec.LookPath(argv[0]); err != nil {
				fmt.Fprintf(out, "Editor:   WARN (%q not found in PATH)\n", argv[0])
			} else {
				fmt.Fprintf(out, "Editor:   OK (%s)\n", argv[0])
			}

			if !allOK {
				return fmt.Errorf("some checks failed")
			}
			return nil
		},
	}
}
