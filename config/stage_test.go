package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageDefaultsToPreCommit(t *testing.T) {
	var hook Hook
	assert.Equal(t, PreCommit, hook.Stage)
}

func TestStageFileNames(t *testing.T) {
	tests := []struct {
		stage Stage
		file  string
	}{
		{PreCommit, "pre-commit"},
		{PrePush, "pre-push"},
		{PostCommit, "post-commit"},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			assert.Equal(t, tt.file, tt.stage.FileName())

			parsed, err := ParseStage(tt.file)
			require.NoError(t, err)
			assert.Equal(t, tt.stage, parsed)
		})
	}
}

func TestStageFileNamesAreDistinct(t *testing.T) {
	seen := map[string]bool{}
	for _, stage := range Stages() {
		assert.False(t, seen[stage.FileName()], "duplicate file name %s", stage.FileName())
		seen[stage.FileName()] = true
	}
	assert.Len(t, seen, 3)
}

func TestParseStageRejectsUnknown(t *testing.T) {
	for _, s := range []string{"", "Pre-Commit", "commit-msg", "pre_commit"} {
		_, err := ParseStage(s)
		assert.Error(t, err, s)
	}
}

func TestStageText(t *testing.T) {
	text, err := PostCommit.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "post-commit", string(text))

	var s Stage
	require.NoError(t, s.UnmarshalText([]byte("pre-push")))
	assert.Equal(t, PrePush, s)

	_, err = Stage(7).MarshalText()
	assert.Error(t, err)
	assert.Panics(t, func() { Stage(7).FileName() })
}
