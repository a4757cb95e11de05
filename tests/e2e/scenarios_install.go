package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/grovetools/tend/pkg/assert"
	"github.com/grovetools/tend/pkg/fs"
	"github.com/grovetools/tend/pkg/harness"
)

// InstallScenario installs hooks into a fresh repository and checks that
// git runs them.
func InstallScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "hookman-install",
		Description: "Installs one script per stage and verifies git runs the pre-commit hook.",
		Tags:        []string{"hookman", "install"},
		Steps: []harness.Step{
			{
				Name: "Install hooks",
				Func: func(ctx *harness.Context) error {
					projectDir, err := setupProject(ctx, "install-project", projectConfig)
					if err != nil {
						return err
					}
					// A stale file from another hook manager is cleared.
					if err := fs.WriteString(hookPath(projectDir, "commit-msg"), "#!/bin/sh\nexit 1\n"); err != nil {
						return err
					}

					hookmanBinary, err := findHookmanBinary()
					if err != nil {
						return err
					}
					cmd := ctx.Command(hookmanBinary, "install").Dir(projectDir)
					result := cmd.Run()
					ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)
					if err := assert.Equal(0, result.ExitCode, "hookman install should exit successfully"); err != nil {
						return err
					}

					for _, stage := range []string{"pre-commit", "pre-push", "post-commit"} {
						info, err := os.Stat(hookPath(projectDir, stage))
						if err != nil {
							return fmt.Errorf("%s script was not written: %w", stage, err)
						}
						if info.Mode().Perm() != 0755 {
							return fmt.Errorf("%s script has mode %v, want 0755", stage, info.Mode().Perm())
						}
					}
					if _, err := os.Stat(hookPath(projectDir, "commit-msg")); !os.IsNotExist(err) {
						return fmt.Errorf("commit-msg should have been removed")
					}

					prePush, err := fs.ReadString(hookPath(projectDir, "pre-push"))
					if err != nil {
						return err
					}
					return assert.Contains(prePush, "hook_1", "anonymous hook should be numbered")
				},
			},
			{
				Name: "Commit runs the pre-commit hook",
				Func: func(ctx *harness.Context) error {
					projectDir := ctx.GetString("projectDir")

					cmd := ctx.Command("git", "commit", "--allow-empty", "-m", "trigger hooks").Dir(projectDir)
					result := cmd.Run()
					ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)
					if err := assert.Equal(0, result.ExitCode, "git commit should succeed"); err != nil {
						return err
					}

					content, err := fs.ReadString(filepath.Join(projectDir, "lint.out"))
					if err != nil {
						return fmt.Errorf("pre-commit hook did not run: %w", err)
					}
					return assert.Contains(content, "lint-ran", "pre-commit hook output")
				},
			},
		},
	}
}

// InstallDryRunScenario verifies that --dry-run prints scripts without
// touching the hook directory.
func InstallDryRunScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "hookman-install-dry-run",
		Description: "Prints the generated scripts and leaves the hook directory alone.",
		Tags:        []string{"hookman", "install", "dry-run"},
		Steps: []harness.Step{
			{
				Name: "Run install --dry-run",
				Func: func(ctx *harness.Context) error {
					projectDir, err := setupProject(ctx, "dry-run-project", projectConfig)
					if err != nil {
						return err
					}
					existing := hookPath(projectDir, "commit-msg")
					if err := fs.WriteString(existing, "#!/bin/sh\n"); err != nil {
						return err
					}

					hookmanBinary, err := findHookmanBinary()
					if err != nil {
						return err
					}
					cmd := ctx.Command(hookmanBinary, "install", "--dry-run").Dir(projectDir)
					result := cmd.Run()
					ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)
					if err := assert.Equal(0, result.ExitCode, "dry run should exit successfully"); err != nil {
						return err
					}

					if err := assert.Contains(result.Stdout, "would install pre-commit script:", "dry run output"); err != nil {
						return err
					}
					if err := assert.Contains(result.Stdout, "would remove "+existing, "dry run clearing output"); err != nil {
						return err
					}
					if _, err := os.Stat(existing); err != nil {
						return fmt.Errorf("dry run removed %s", existing)
					}
					if _, err := os.Stat(hookPath(projectDir, "pre-commit")); !os.IsNotExist(err) {
						return fmt.Errorf("dry run wrote the pre-commit script")
					}
					return nil
				},
			},
		},
	}
}

// InstallForceScenario verifies overwrite protection when clearing is disabled.
func InstallForceScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "hookman-install-force",
		Description: "Refuses to overwrite an existing script without --force.",
		Tags:        []string{"hookman", "install", "force"},
		Steps: []harness.Step{
			{
				Name: "Install without --force fails",
				Func: func(ctx *harness.Context) error {
					projectDir, err := setupProject(ctx, "force-project", projectConfig)
					if err != nil {
						return err
					}
					if err := fs.WriteString(hookPath(projectDir, "pre-commit"), "#!/bin/sh\necho mine\n"); err != nil {
						return err
					}

					hookmanBinary, err := findHookmanBinary()
					if err != nil {
						return err
					}
					cmd := ctx.Command(hookmanBinary, "install", "--no-remove").Dir(projectDir)
					result := cmd.Run()
					ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)
					if result.ExitCode == 0 {
						return fmt.Errorf("install should fail when the pre-commit script exists")
					}
					if err := assert.Contains(result.Stderr, "--force", "error should suggest --force"); err != nil {
						return err
					}

					content, err := fs.ReadString(hookPath(projectDir, "pre-commit"))
					if err != nil {
						return err
					}
					return assert.Equal("#!/bin/sh\necho mine\n", content, "existing script must be untouched")
				},
			},
			{
				Name: "Install with --force overwrites",
				Func: func(ctx *harness.Context) error {
					projectDir := ctx.GetString("projectDir")
					hookmanBinary, err := findHookmanBinary()
					if err != nil {
						return err
					}
					cmd := ctx.Command(hookmanBinary, "install", "--no-remove", "--force").Dir(projectDir)
					result := cmd.Run()
					ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)
					if err := assert.Equal(0, result.ExitCode, "forced install should succeed"); err != nil {
						return err
					}

					content, err := fs.ReadString(hookPath(projectDir, "pre-commit"))
					if err != nil {
						return err
					}
					return assert.Contains(content, "# Generated by hookman", "script should be replaced")
				},
			},
		},
	}
}

// InstallOutsideRepositoryScenario verifies the error outside a git repository.
func InstallOutsideRepositoryScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "hookman-install-no-repository",
		Description: "Fails with a hint when run outside a git repository.",
		Tags:        []string{"hookman", "install", "errors"},
		Steps: []harness.Step{
			harness.NewStep("Run install outside a repository", func(ctx *harness.Context) error {
				dir := ctx.NewDir("not-a-repo")
				if err := fs.WriteString(filepath.Join(dir, ".hookman.toml"), projectConfig); err != nil {
					return err
				}

				hookmanBinary, err := findHookmanBinary()
				if err != nil {
					return err
				}
				cmd := ctx.Command(hookmanBinary, "install").Dir(dir)
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)
				if result.ExitCode == 0 {
					return fmt.Errorf("install should fail outside a git repository")
				}
				return assert.Contains(result.Stderr, "inside a git repository", "error should explain the failure")
			}),
		},
	}
}

// UninstallScenario verifies that only hookman's scripts are removed.
func UninstallScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "hookman-uninstall",
		Description: "Removes generated scripts and keeps foreign ones.",
		Tags:        []string{"hookman", "uninstall"},
		Steps: []harness.Step{
			{
				Name: "Install then uninstall",
				Func: func(ctx *harness.Context) error {
					projectDir, err := setupProject(ctx, "uninstall-project", "[[hooks]]\ncommand = \"true\"\n")
					if err != nil {
						return err
					}

					hookmanBinary, err := findHookmanBinary()
					if err != nil {
						return err
					}
					install := ctx.Command(hookmanBinary, "install").Dir(projectDir)
					result := install.Run()
					ctx.ShowCommandOutput(install.String(), result.Stdout, result.Stderr)
					if err := assert.Equal(0, result.ExitCode, "install should succeed"); err != nil {
						return err
					}
					foreign := hookPath(projectDir, "pre-push")
					if err := fs.WriteString(foreign, "#!/bin/sh\n"); err != nil {
						return err
					}

					uninstall := ctx.Command(hookmanBinary, "uninstall").Dir(projectDir)
					result = uninstall.Run()
					ctx.ShowCommandOutput(uninstall.String(), result.Stdout, result.Stderr)
					if err := assert.Equal(0, result.ExitCode, "uninstall should succeed"); err != nil {
						return err
					}

					if _, err := os.Stat(hookPath(projectDir, "pre-commit")); !os.IsNotExist(err) {
						return fmt.Errorf("pre-commit script should have been removed")
					}
					if _, err := os.Stat(foreign); err != nil {
						return fmt.Errorf("foreign pre-push script should be kept: %w", err)
					}
					return nil
				},
			},
		},
	}
}
