package main

import (
	"fmt"
	"path/filepath"

	"github.com/grovetools/tend/pkg/assert"
	"github.com/grovetools/tend/pkg/fs"
	"github.com/grovetools/tend/pkg/harness"
)

// ConfigMissingScenario tests the error when no configuration file exists.
func ConfigMissingScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "hookman-config-missing",
		Description: "Fails with a hint pointing at 'hookman example' when .hookman.toml is absent.",
		Tags:        []string{"hookman", "config"},
		Steps: []harness.Step{
			harness.NewStep("Run install without a configuration", func(ctx *harness.Context) error {
				projectDir, err := setupProject(ctx, "missing-config", "")
				if err != nil {
					return err
				}
				hookmanBinary, err := findHookmanBinary()
				if err != nil {
					return err
				}

				cmd := ctx.Command(hookmanBinary, "install", "--config", "absent.toml").Dir(projectDir)
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)
				if result.ExitCode == 0 {
					return fmt.Errorf("install should fail without a configuration file")
				}
				if err := assert.Contains(result.Stderr, "configuration file not found", "error message"); err != nil {
					return err
				}
				return assert.Contains(result.Stderr, "hookman example", "error hint")
			}),
		},
	}
}

// ConfigMalformedScenario tests the error for an unknown stage.
func ConfigMalformedScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "hookman-config-malformed",
		Description: "Rejects a configuration with an unknown stage before writing anything.",
		Tags:        []string{"hookman", "config", "errors"},
		Steps: []harness.Step{
			harness.NewStep("Run install with an unknown stage", func(ctx *harness.Context) error {
				projectDir, err := setupProject(ctx, "malformed-config", "[[hooks]]\ncommand = \"true\"\nstage = \"pre-rebase\"\n")
				if err != nil {
					return err
				}
				hookmanBinary, err := findHookmanBinary()
				if err != nil {
					return err
				}

				cmd := ctx.Command(hookmanBinary, "install").Dir(projectDir)
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)
				if result.ExitCode == 0 {
					return fmt.Errorf("install should fail for an unknown stage")
				}
				return assert.Contains(result.Stderr, "invalid configuration", "error message")
			}),
		},
	}
}

// ConfigGlobalLayerScenario verifies that the user-global configuration is
// appended after the project hooks.
func ConfigGlobalLayerScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "hookman-config-global-layer",
		Description: "Merges hooks from the global configuration after the project hooks.",
		Tags:        []string{"hookman", "config"},
		Steps: []harness.Step{
			{
				Name: "Setup global configuration and inspect layers",
				Func: func(ctx *harness.Context) error {
					projectDir, err := setupProject(ctx, "layered-project", projectConfig)
					if err != nil {
						return err
					}
					globalConfig := filepath.Join(ctx.ConfigDir(), "hookman", "hookman.toml")
					if err := fs.WriteString(globalConfig, "[[hooks]]\nname = \"Secrets\"\ncommand = \"gitleaks protect\"\n"); err != nil {
						return err
					}

					hookmanBinary, err := findHookmanBinary()
					if err != nil {
						return err
					}
					cmd := ctx.Command(hookmanBinary, "config-layers").Dir(projectDir)
					result := cmd.Run()
					ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)
					if err := assert.Equal(0, result.ExitCode, "config-layers should exit successfully"); err != nil {
						return err
					}
					if err := assert.Contains(result.Stdout, "GLOBAL CONFIG", "global layer should be shown"); err != nil {
						return err
					}
					return assert.Contains(result.Stdout, "gitleaks protect", "global hook should be merged")
				},
			},
			{
				Name: "Install writes global hooks after project hooks",
				Func: func(ctx *harness.Context) error {
					projectDir := ctx.GetString("projectDir")
					hookmanBinary, err := findHookmanBinary()
					if err != nil {
						return err
					}
					cmd := ctx.Command(hookmanBinary, "install").Dir(projectDir)
					result := cmd.Run()
					ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)
					if err := assert.Equal(0, result.ExitCode, "install should succeed"); err != nil {
						return err
					}

					script, err := fs.ReadString(hookPath(projectDir, "pre-commit"))
					if err != nil {
						return err
					}
					return assert.Contains(script, "gitleaks protect", "global hook should be installed")
				},
			},
		},
	}
}
