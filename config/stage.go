package config

import (
	"fmt"

	"github.com/invopop/jsonschema"
)

// Stage is the git lifecycle point a hook runs at.
type Stage int

const (
	// PreCommit is the default stage for hooks that do not name one.
	PreCommit Stage = iota
	PrePush
	PostCommit
)

// Stages returns every stage in the order scripts are generated.
func Stages() []Stage {
	return []Stage{PreCommit, PrePush, PostCommit}
}

// String returns the identifier used in the configuration file.
func (s Stage) String() string {
	switch s {
	case PreCommit:
		return "pre-commit"
	case PrePush:
		return "pre-push"
	case PostCommit:
		return "post-commit"
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// FileName returns the name git expects the stage's hook script to have.
func (s Stage) FileName() string {
	switch s {
	case PreCommit:
		return "pre-commit"
	case PrePush:
		return "pre-push"
	case PostCommit:
		return "post-commit"
	}
	panic(fmt.Sprintf("config: no hook file for %v", s))
}

// ParseStage converts a configuration identifier into a Stage.
func ParseStage(s string) (Stage, error) {
	for _, stage := range Stages() {
		if stage.String() == s {
			return stage, nil
		}
	}
	return 0, fmt.Errorf("unknown stage %q (expected one of pre-commit, pre-push, post-commit)", s)
}

// MarshalText implements encoding.TextMarshaler.
func (s Stage) MarshalText() ([]byte, error) {
	if s < PreCommit || s > PostCommit {
		return nil, fmt.Errorf("invalid stage %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Stage) UnmarshalText(text []byte) error {
	stage, err := ParseStage(string(text))
	if err != nil {
		return err
	}
	*s = stage
	return nil
}

// JSONSchema describes Stage as a string enum when the config schema is generated.
func (Stage) JSONSchema() *jsonschema.Schema {
	enum := make([]any, 0, len(Stages()))
	for _, stage := range Stages() {
		enum = append(enum, stage.String())
	}
	return &jsonschema.Schema{
		Type:        "string",
		Enum:        enum,
		Default:     PreCommit.String(),
		Description: "Git hook the command is installed into",
	}
}
