// Package cmd wires hookman's cobra commands together.
package cmd

import (
	"github.com/mindriot101/hookman/cli"
	"github.com/mindriot101/hookman/tui"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the hookman command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := cli.NewStandardCommand(
		"hookman",
		"Install git hook scripts from a TOML configuration file",
	)
	rootCmd.Long = `Install git hook scripts from a TOML configuration file.

Hooks are read from .hookman.toml in the current directory and, when it
exists, from the user-global hookman.toml. One script is written per stage
into the repository's hook directory.

Examples:
  hookman example > .hookman.toml
  hookman install --dry-run
  hookman install --force`

	rootCmd.AddCommand(NewInstallCmd())
	rootCmd.AddCommand(NewUninstallCmd())
	rootCmd.AddCommand(NewExampleCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewSchemaCmd())
	rootCmd.AddCommand(cli.NewVersionCommand("hookman"))

	cli.ApplyStyledHelpRecursive(rootCmd)
	return rootCmd
}

// Execute runs the root command and reports any error on stderr.
func Execute() error {
	tui.InitializeTUI()

	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
		return cli.NewErrorHandler(verbose).WithWriter(rootCmd.ErrOrStderr()).Handle(err)
	}
	return nil
}
