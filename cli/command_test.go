package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommand() *cobra.Command {
	root := NewStandardCommand("hookman", "test")
	sub := &cobra.Command{Use: "install", RunE: func(*cobra.Command, []string) error { return nil }}
	sub.Flags().BoolP("dry-run", "n", false, "")
	sub.Flags().String("config", ".hookman.toml", "")
	root.AddCommand(sub)
	return root
}

func TestBindFlagsReadsEnvironment(t *testing.T) {
	t.Setenv("HOOKMAN_DRY_RUN", "true")
	t.Setenv("HOOKMAN_CONFIG", "other.toml")

	root := newTestCommand()
	sub, _, err := root.Find([]string{"install"})
	require.NoError(t, err)

	v, err := BindFlags(sub)
	require.NoError(t, err)
	assert.True(t, v.GetBool("dry-run"))
	assert.Equal(t, "other.toml", v.GetString("config"))
}

func TestBindFlagsPrefersCommandLine(t *testing.T) {
	t.Setenv("HOOKMAN_CONFIG", "other.toml")

	root := newTestCommand()
	sub, _, err := root.Find([]string{"install"})
	require.NoError(t, err)
	require.NoError(t, sub.Flags().Set("config", "cli.toml"))

	v, err := BindFlags(sub)
	require.NoError(t, err)
	assert.Equal(t, "cli.toml", v.GetString("config"))
	assert.False(t, v.GetBool("dry-run"))
}

func TestGetOptionsIncludesInheritedFlags(t *testing.T) {
	root := newTestCommand()
	root.SetArgs([]string{"install", "--verbose", "--json"})

	var opts CommandOptions
	sub, _, err := root.Find([]string{"install"})
	require.NoError(t, err)
	sub.RunE = func(cmd *cobra.Command, args []string) error {
		v, err := BindFlags(cmd)
		if err != nil {
			return err
		}
		opts = GetOptions(v)
		return nil
	}

	require.NoError(t, root.Execute())
	assert.True(t, opts.Verbose)
	assert.True(t, opts.JSONOutput)
}

func TestStandardCommandSilencesCobraOutput(t *testing.T) {
	cmd := NewStandardCommand("hookman", "test")

	assert.True(t, cmd.SilenceUsage)
	assert.True(t, cmd.SilenceErrors)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("verbose"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("json"))
}
