package main

import (
	"github.com/grovetools/tend/pkg/assert"
	"github.com/grovetools/tend/pkg/command"
	"github.com/grovetools/tend/pkg/harness"
)

// VersionScenario tests the 'version' command.
func VersionScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "hookman-basic-version",
		Steps: []harness.Step{
			harness.NewStep("Run 'hookman version'", func(ctx *harness.Context) error {
				hookmanBinary, err := findHookmanBinary()
				if err != nil {
					return err
				}

				cmd := command.New(hookmanBinary, "version")
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "hookman version should exit successfully"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stdout, "Version:", "Output should contain Version"); err != nil {
					return err
				}
				return assert.Contains(result.Stdout, "Build Date:", "Output should contain Build Date")
			}),
		},
	}
}

// ExampleScenario checks that the bundled example configuration is printed.
func ExampleScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "hookman-basic-example",
		Steps: []harness.Step{
			harness.NewStep("Run 'hookman example'", func(ctx *harness.Context) error {
				hookmanBinary, err := findHookmanBinary()
				if err != nil {
					return err
				}

				cmd := command.New(hookmanBinary, "example")
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "hookman example should exit successfully"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stdout, "[[hooks]]", "Output should be a hooks table"); err != nil {
					return err
				}
				return assert.Contains(result.Stdout, `stage = "post-commit"`, "Output should show a stage")
			}),
		},
	}
}
