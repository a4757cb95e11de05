package cmd

import (
	"fmt"

	"github.com/mindriot101/hookman/cli"
	"github.com/mindriot101/hookman/hooks"
	"github.com/mindriot101/hookman/logging"
	"github.com/mindriot101/hookman/tui/theme"
	"github.com/spf13/cobra"
)

func NewUninstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the hook scripts hookman wrote",
		Long: `Remove the stage scripts hookman generated from the hook directory.
Scripts that were not written by hookman are left in place.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := cli.BindFlags(cmd)
			if err != nil {
				return err
			}

			installer := hooks.NewInstaller(newRepository(), cmd.OutOrStdout(), logging.NewLogger("installer"))
			result, err := installer.Uninstall(cmd.Context(), hooks.Options{DryRun: v.GetBool("dry-run")})
			if err != nil {
				return err
			}

			errOut := cmd.ErrOrStderr()
			pretty := logging.NewPrettyLogger().WithWriter(errOut)
			for _, path := range result.Removed {
				fmt.Fprintln(errOut, "  "+theme.RenderStatus("info", path))
			}
			for _, path := range result.Skipped {
				pretty.WarnPretty(fmt.Sprintf("Left %s in place: not written by hookman", path))
			}
			if result.DryRun {
				pretty.InfoPretty(fmt.Sprintf("Dry run: %d script(s) would be removed", len(result.Removed)))
				return nil
			}
			pretty.Success(fmt.Sprintf("Removed %d hook script(s)", len(result.Removed)))
			return nil
		},
	}

	cmd.Flags().BoolP("dry-run", "n", false, "Print the scripts that would be removed")
	return cmd
}
