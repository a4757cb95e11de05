// Package cli holds the pieces shared by hookman's cobra commands: standard
// flags, environment binding, styled help and error reporting.
package cli

import (
	"fmt"
	"strings"

	"github.com/mindriot101/hookman/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to flag names to form their environment variables,
// e.g. HOOKMAN_DRY_RUN for --dry-run.
const EnvPrefix = "HOOKMAN"

// CommandOptions holds the options every command accepts
type CommandOptions struct {
	Verbose    bool
	JSONOutput bool
}

// NewStandardCommand creates the root command with the standard flags.
// Flags are bound to the environment and the loggers are configured before
// any subcommand runs.
func NewStandardCommand(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v, err := BindFlags(cmd)
			if err != nil {
				return err
			}
			opts := GetOptions(v)
			logging.Configure(logging.Overrides{
				Verbose: opts.Verbose,
				JSON:    opts.JSONOutput,
			})
			return nil
		},
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")

	return cmd
}

// BindFlags binds every flag of cmd, including inherited ones, to a fresh
// viper instance. A flag that was not set on the command line takes its
// value from HOOKMAN_<NAME>, with dashes replaced by underscores.
func BindFlags(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()

	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if bindErr != nil || f.Name == "help" {
			return
		}
		if err := v.BindPFlag(f.Name, f); err != nil {
			bindErr = fmt.Errorf("failed to bind flag --%s: %w", f.Name, err)
		}
	})
	if bindErr != nil {
		return nil, bindErr
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v, nil
}

// GetOptions extracts the standard options
func GetOptions(v *viper.Viper) CommandOptions {
	return CommandOptions{
		Verbose:    v.GetBool("verbose"),
		JSONOutput: v.GetBool("json"),
	}
}
