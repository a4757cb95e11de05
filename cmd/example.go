package cmd

import (
	"github.com/mindriot101/hookman/config"
	"github.com/spf13/cobra"
)

func NewExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example",
		Short: "Print an example configuration file",
		Long: `Print an example configuration file.

Examples:
  hookman example > .hookman.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write(config.Example())
			return err
		},
	}
}
