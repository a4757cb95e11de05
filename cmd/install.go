package cmd

import (
	"fmt"

	"github.com/mindriot101/hookman/cli"
	"github.com/mindriot101/hookman/config"
	"github.com/mindriot101/hookman/git"
	"github.com/mindriot101/hookman/hooks"
	"github.com/mindriot101/hookman/logging"
	"github.com/mindriot101/hookman/util/pathutil"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newRepository is replaced in tests.
var newRepository = func() git.RepositoryProvider { return git.NewCLIRepository() }

func NewInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Write hook scripts for the configured hooks",
		Long: `Write one hook script per stage into the repository's hook directory.

Existing regular files in the hook directory are removed first unless
--no-remove is given. Files matching a --keep pattern are never removed.

Examples:
  hookman install --dry-run
  hookman install --config ~/dotfiles/hookman.toml --force
  hookman install --no-remove --keep 'commit-msg'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := cli.BindFlags(cmd)
			if err != nil {
				return err
			}

			configPath, err := configPathFrom(v)
			if err != nil {
				return err
			}
			logger := logging.NewLogger("install")
			cfg, err := config.LoadMerged(configPath, logger)
			if err != nil {
				return err
			}

			opts := hooks.Options{
				DryRun:      v.GetBool("dry-run"),
				Force:       v.GetBool("force"),
				NoRemove:    v.GetBool("no-remove"),
				Keep:        v.GetStringSlice("keep"),
				RandomNames: v.GetBool("random-names"),
			}
			installer := hooks.NewInstaller(newRepository(), cmd.OutOrStdout(), logging.NewLogger("installer"))
			result, err := installer.Install(cmd.Context(), cfg.Config, opts)
			if err != nil {
				return err
			}

			pretty := logging.NewPrettyLogger().WithWriter(cmd.ErrOrStderr())
			if result.DryRun {
				pretty.InfoPretty(fmt.Sprintf("Dry run: %d script(s) would be written, %d file(s) would be removed",
					len(result.Written), len(result.Removed)))
				return nil
			}
			pretty.Success(fmt.Sprintf("Installed %d hook script(s)", len(result.Written)))
			for _, path := range result.Written {
				pretty.Path("wrote", path)
			}
			return nil
		},
	}

	cmd.Flags().StringP("config", "c", config.DefaultConfigPath, "Path to the configuration file")
	cmd.Flags().BoolP("dry-run", "n", false, "Print the scripts instead of writing them")
	cmd.Flags().BoolP("force", "f", false, "Overwrite existing hook scripts")
	cmd.Flags().Bool("no-remove", false, "Do not remove existing files from the hook directory")
	cmd.Flags().StringSlice("keep", nil, "Glob pattern of hook directory files to keep (repeatable)")
	cmd.Flags().Bool("random-names", false, "Name anonymous hooks randomly instead of numbering them")

	return cmd
}

func configPathFrom(v *viper.Viper) (string, error) {
	path := v.GetString("config")
	if path == "" {
		path = config.DefaultConfigPath
	}
	expanded, err := pathutil.Expand(path)
	if err != nil {
		return "", fmt.Errorf("failed to expand config path: %w", err)
	}
	return expanded, nil
}
