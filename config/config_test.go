package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mindriot101/hookman/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromBytes(t *testing.T) {
	data := []byte(`
[[hooks]]
name = "Test"
command = "pytest"
stage = "pre-push"

[[hooks]]
command = "pylint"

[[hooks]]
name = "Generate hooks"
command = "ctags -R"
stage = "post-commit"
background = true
pass_git_files = true
`)

	cfg, err := LoadFromBytes(data)
	require.NoError(t, err)
	require.Len(t, cfg.Hooks, 3)

	assert.Equal(t, Hook{Name: "Test", Command: "pytest", Stage: PrePush}, cfg.Hooks[0])
	assert.Equal(t, Hook{Command: "pylint", Stage: PreCommit}, cfg.Hooks[1])
	assert.Equal(t, Hook{
		Name:         "Generate hooks",
		Command:      "ctags -R",
		Stage:        PostCommit,
		Background:   true,
		PassGitFiles: true,
	}, cfg.Hooks[2])
}

func TestLoadFromBytesIsDeterministic(t *testing.T) {
	data := []byte(`
[[hooks]]
command = "a"
[[hooks]]
command = "b"
stage = "pre-push"
`)
	first, err := LoadFromBytes(data)
	require.NoError(t, err)
	second, err := LoadFromBytes(data)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLoadFromBytesEmptyHookList(t *testing.T) {
	cfg, err := LoadFromBytes([]byte("hooks = []\n"))
	require.NoError(t, err)
	assert.NotNil(t, cfg.Hooks)
	assert.Empty(t, cfg.Hooks)
}

func TestLoadFromBytesCommandIsNotValidated(t *testing.T) {
	cfg, err := LoadFromBytes([]byte("[[hooks]]\ncommand = \"\"\n"))
	require.NoError(t, err)
	require.Len(t, cfg.Hooks, 1)
	assert.Equal(t, "", cfg.Hooks[0].Command)
}

func TestLoadFromBytesMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax error", "[[hooks]\ncommand = \"x\"\n"},
		{"missing hooks", "# nothing here\n"},
		{"missing command", "[[hooks]]\nname = \"x\"\n"},
		{"unknown stage", "[[hooks]]\ncommand = \"x\"\nstage = \"pre-merge\"\n"},
		{"wrong type for background", "[[hooks]]\ncommand = \"x\"\nbackground = \"yes\"\n"},
		{"wrong type for command", "[[hooks]]\ncommand = 3\n"},
		{"unknown hook key", "[[hooks]]\ncommand = \"x\"\ntimeout = 3\n"},
		{"unknown top-level key", "verbose = true\nhooks = []\n"},
		{"hooks is not a list", "hooks = \"pytest\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFromBytes([]byte(tt.data))
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.True(t, errors.Is(err, errors.ErrCodeConfigMalformed), "got %v", err)
		})
	}
}

func TestLoadSyntaxErrorReportsPosition(t *testing.T) {
	_, err := LoadFromBytes([]byte("[[hooks]]\ncommand = \n"))
	require.Error(t, err)

	herr, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, 2, herr.Details["line"])
}

func TestLoadNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeConfigNotFound))
}

func TestLoadUnreadable(t *testing.T) {
	// A directory cannot be read as a file.
	dir := t.TempDir()

	_, err := Load(dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeConfigUnreadable))
}

func TestLoadMalformedCarriesPath(t *testing.T) {
	path := writeConfig(t, t.TempDir(), ".hookman.toml", "[[hooks]]\nstage = \"pre-push\"\n")

	_, err := Load(path)
	require.Error(t, err)
	herr, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeConfigMalformed, herr.Code)
	assert.Equal(t, path, herr.Details["path"])
}

func TestLoadExample(t *testing.T) {
	cfg, err := LoadFromBytes(Example())
	require.NoError(t, err)
	require.Len(t, cfg.Hooks, 3)
	assert.Equal(t, PrePush, cfg.Hooks[0].Stage)
	assert.True(t, cfg.Hooks[1].Background)
	assert.True(t, cfg.Hooks[1].PassGitFiles)
	assert.Equal(t, PreCommit, cfg.Hooks[2].Stage)
}

func TestLoadLayered(t *testing.T) {
	dir := t.TempDir()
	localPath := writeConfig(t, dir, ".hookman.toml", "[[hooks]]\ncommand = \"local\"\n")
	globalPath := writeConfig(t, dir, "global.toml", "[[hooks]]\ncommand = \"global\"\nstage = \"pre-push\"\n")

	layered, err := LoadLayered(localPath, globalPath, nil)
	require.NoError(t, err)

	require.NotNil(t, layered.Global)
	assert.Equal(t, localPath, layered.Local.Path)
	assert.Equal(t, globalPath, layered.Global.Path)
	assert.Equal(t, localPath, layered.Final.Path)
	require.Len(t, layered.Final.Config.Hooks, 2)
	assert.Equal(t, "local", layered.Final.Config.Hooks[0].Command)
	assert.Equal(t, "global", layered.Final.Config.Hooks[1].Command)
}

func TestLoadLayeredWithoutGlobal(t *testing.T) {
	dir := t.TempDir()
	localPath := writeConfig(t, dir, ".hookman.toml", "[[hooks]]\ncommand = \"local\"\n")
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	layered, err := LoadLayered(localPath, filepath.Join(dir, "absent.toml"), logger)
	require.NoError(t, err)

	assert.Nil(t, layered.Global)
	assert.Same(t, layered.Local, layered.Final)

	var messages []string
	for _, entry := range hook.AllEntries() {
		messages = append(messages, entry.Message)
	}
	assert.Contains(t, messages, "No global configuration found")
}

func TestLoadLayeredBrokenGlobalIsAnError(t *testing.T) {
	dir := t.TempDir()
	localPath := writeConfig(t, dir, ".hookman.toml", "[[hooks]]\ncommand = \"local\"\n")
	globalPath := writeConfig(t, dir, "global.toml", "hooks = 1\n")

	_, err := LoadLayered(localPath, globalPath, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeConfigMalformed))
}

func TestLoadMergedUsesHookmanHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOOKMAN_HOME", home)
	globalDir := filepath.Join(home, "config", "hookman")
	require.NoError(t, os.MkdirAll(globalDir, 0755))
	writeConfig(t, globalDir, "hookman.toml", "[[hooks]]\ncommand = \"global\"\n")
	localPath := writeConfig(t, t.TempDir(), ".hookman.toml", "[[hooks]]\ncommand = \"local\"\n")

	final, err := LoadMerged(localPath, nil)
	require.NoError(t, err)
	require.Len(t, final.Config.Hooks, 2)
	assert.Equal(t, "global", final.Config.Hooks[1].Command)
}

func TestLoadLayeredGlobalSameAsLocal(t *testing.T) {
	localPath := writeConfig(t, t.TempDir(), "hookman.toml", "[[hooks]]\ncommand = \"only\"\n")

	layered, err := LoadLayered(localPath, localPath, nil)
	require.NoError(t, err)
	assert.Nil(t, layered.Global)
	assert.Len(t, layered.Final.Config.Hooks, 1)
}
