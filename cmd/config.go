package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mindriot101/hookman/cli"
	"github.com/mindriot101/hookman/config"
	"github.com/mindriot101/hookman/logging"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config-layers",
		Short: "Display the configuration layers and the merged result",
		Long: `Shows how the hooks that install would write are assembled:
1. Project config (.hookman.toml, or --config)
2. Global config (hookman.toml in the user configuration directory)
Project hooks come first, followed by global hooks.
This is useful for debugging configuration issues.`,
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

			layered, err := config.LoadLayered(configPath, config.GlobalConfigPath(), logging.NewLogger("config"))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if cli.GetOptions(v).JSONOutput {
				return printLayersJSON(out, layered)
			}

			printLayer := func(title string, loc *config.ConfigLocation) error {
				if loc == nil {
					return nil
				}
				fmt.Fprintf(out, "--- # %s\n", title)
				if loc.Path != "" {
					fmt.Fprintf(out, "# Source: %s\n", loc.Path)
				}
				data, err := yaml.Marshal(loc.Config)
				if err != nil {
					return fmt.Errorf("failed to marshal %s: %w", title, err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			if err := printLayer("PROJECT CONFIG", layered.Local); err != nil {
				return err
			}
			if err := printLayer("GLOBAL CONFIG", layered.Global); err != nil {
				return err
			}
			return printLayer("FINAL MERGED CONFIG", &config.ConfigLocation{Config: layered.Final.Config})
		},
	}

	cmd.Flags().StringP("config", "c", config.DefaultConfigPath, "Path to the configuration file")
	return cmd
}

type layerOutput struct {
	Source string        `json:"source,omitempty"`
	Config config.Config `json:"config"`
}

func printLayersJSON(out io.Writer, layered *config.LayeredConfig) error {
	layers := map[string]layerOutput{
		"project": {Source: layered.Local.Path, Config: layered.Local.Config},
		"final":   {Config: layered.Final.Config},
	}
	if layered.Global != nil {
		layers["global"] = layerOutput{Source: layered.Global.Path, Config: layered.Global.Config}
	}
	data, err := json.MarshalIndent(layers, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal configuration layers: %w", err)
	}
	fmt.Fprintln(out, string(data))
	return nil
}
