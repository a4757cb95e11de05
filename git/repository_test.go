package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/mindriot101/hookman/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptExecutor replaces every command with a shell snippet and records
// what was asked for.
type scriptExecutor struct {
	script string
	name   string
	args   []string
}

func (e *scriptExecutor) Command(name string, args ...string) *exec.Cmd {
	e.name, e.args = name, args
	return exec.Command("sh", "-c", e.script)
}

func (e *scriptExecutor) CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd {
	e.name, e.args = name, args
	return exec.CommandContext(ctx, "sh", "-c", e.script)
}

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestHooksDirResolvesRelativeGitDir(t *testing.T) {
	requireShell(t)
	dir := t.TempDir()
	fake := &scriptExecutor{script: "echo .git"}
	repo := NewCLIRepositoryWithExecutor(fake)

	hooksDir, err := repo.HooksDir(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, ".git", "hooks"), hooksDir)
	assert.Equal(t, "git", fake.name)
	assert.Equal(t, []string{"rev-parse", "--git-dir"}, fake.args)
}

func TestHooksDirKeepsAbsoluteGitDir(t *testing.T) {
	requireShell(t)
	gitDir := filepath.Join(t.TempDir(), "worktrees", "feature")
	repo := NewCLIRepositoryWithExecutor(&scriptExecutor{script: "echo " + gitDir})

	hooksDir, err := repo.HooksDir(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(gitDir, "hooks"), hooksDir)
}

func TestHooksDirOutsideRepository(t *testing.T) {
	requireShell(t)
	repo := NewCLIRepositoryWithExecutor(&scriptExecutor{
		script: "echo 'fatal: not a git repository' >&2; exit 128",
	})

	_, err := repo.HooksDir(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeRootNotFound))

	herr, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, "fatal: not a git repository", herr.Details["stderr"])
}

func TestHooksDirEmptyOutput(t *testing.T) {
	requireShell(t)
	repo := NewCLIRepositoryWithExecutor(&scriptExecutor{script: "true"})

	_, err := repo.HooksDir(context.Background(), t.TempDir())
	assert.True(t, errors.Is(err, errors.ErrCodeRootNotFound))
}

func TestHooksDirWithRealGit(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	dir := t.TempDir()
	cmd := exec.Command("git", "init", "-q")
	cmd.Dir = dir
	require.NoError(t, cmd.Run())

	repo := NewCLIRepository()
	hooksDir, err := repo.HooksDir(context.Background(), dir)
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(filepath.Join(dir, ".git"))
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(filepath.Dir(hooksDir))
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, "hooks", filepath.Base(hooksDir))

	sub := filepath.Join(dir, "nested", "deeper")
	require.NoError(t, os.MkdirAll(sub, 0755))
	fromSub, err := repo.HooksDir(context.Background(), sub)
	require.NoError(t, err)
	gotSub, err := filepath.EvalSymlinks(filepath.Dir(fromSub))
	require.NoError(t, err)
	assert.Equal(t, want, gotSub)
}

func TestIsManagedHook(t *testing.T) {
	dir := t.TempDir()
	managed := filepath.Join(dir, "pre-commit")
	foreign := filepath.Join(dir, "pre-push")
	require.NoError(t, os.WriteFile(managed, []byte("#!/bin/sh\n"+ManagedMarker+"\n"), 0755))
	require.NoError(t, os.WriteFile(foreign, []byte("#!/bin/sh\necho mine\n"), 0755))

	assert.True(t, IsManagedHook(managed))
	assert.False(t, IsManagedHook(foreign))
	assert.False(t, IsManagedHook(filepath.Join(dir, "missing")))
}
