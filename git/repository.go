package git

import (
	"context"
	stderrors "errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/mindriot101/hookman/command"
	"github.com/mindriot101/hookman/errors"
)

// CLIRepository implements RepositoryProvider using the git CLI
type CLIRepository struct {
	cmdBuilder *command.SafeBuilder
}

// Ensure it implements the interface
var _ RepositoryProvider = (*CLIRepository)(nil)

// NewCLIRepository creates a new CLI repository provider
func NewCLIRepository() *CLIRepository {
	return NewCLIRepositoryWithExecutor(nil)
}

// NewCLIRepositoryWithExecutor creates a CLI repository provider that starts
// git through executor. A nil executor runs the real git binary.
func NewCLIRepositoryWithExecutor(executor command.Executor) *CLIRepository {
	return &CLIRepository{
		cmdBuilder: command.NewSafeBuilderWithExecutor(executor),
	}
}

// GitDir runs `git rev-parse --git-dir` in dir. Git prints a path relative
// to dir when run from the top of a work tree, so the result is resolved
// against dir before it is returned.
func (r *CLIRepository) GitDir(ctx context.Context, dir string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", errors.RootNotFound(dir, err)
		}
		dir = cwd
	}

	cmd, err := r.cmdBuilder.Build(ctx, "git", "rev-parse", "--git-dir")
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInternal, "failed to build command")
	}
	output, err := cmd.Dir(dir).Output()
	if err != nil {
		rootErr := errors.RootNotFound(dir, err)
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			rootErr.WithDetail("stderr", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", rootErr
	}

	gitDir := strings.TrimSpace(string(output))
	if gitDir == "" {
		return "", errors.RootNotFound(dir, stderrors.New("git printed an empty git directory"))
	}
	if !filepath.IsAbs(gitDir) {
		gitDir = filepath.Join(dir, gitDir)
	}
	return filepath.Clean(gitDir), nil
}

// HooksDir returns <git dir>/hooks.
func (r *CLIRepository) HooksDir(ctx context.Context, dir string) (string, error) {
	gitDir, err := r.GitDir(ctx, dir)
	if err != nil {
		return "", err
	}
	return filepath.Join(gitDir, "hooks"), nil
}
