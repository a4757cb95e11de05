package main

import (
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/grovetools/tend/pkg/fs"
	"github.com/grovetools/tend/pkg/git"
	"github.com/grovetools/tend/pkg/harness"
)

// findHookmanBinary finds the hookman binary under test.
// It relies on the Makefile setting the PATH to include the local ./bin directory.
func findHookmanBinary() (string, error) {
	path, err := exec.LookPath("hookman")
	if err != nil {
		return "", fmt.Errorf("could not find 'hookman' binary in PATH. Ensure 'make test-e2e' is used")
	}
	return path, nil
}

const projectConfig = `[[hooks]]
name = "Lint"
command = "echo lint-ran > lint.out"

[[hooks]]
command = "echo anonymous"
stage = "pre-push"

[[hooks]]
name = "Tags"
command = "true"
stage = "post-commit"
background = true
`

// setupProject creates a committed git repository containing a hookman
// configuration and stores its path under "projectDir".
func setupProject(ctx *harness.Context, name, configContent string) (string, error) {
	projectDir := ctx.NewDir(name)
	if err := fs.WriteString(filepath.Join(projectDir, ".hookman.toml"), configContent); err != nil {
		return "", err
	}
	repo, err := git.SetupTestRepo(projectDir)
	if err != nil {
		return "", err
	}
	if err := repo.AddCommit("initial commit"); err != nil {
		return "", err
	}
	ctx.Set("projectDir", projectDir)
	return projectDir, nil
}

// hookPath returns the path of a stage script in the project's hook directory.
func hookPath(projectDir, stage string) string {
	return filepath.Join(projectDir, ".git", "hooks", stage)
}
