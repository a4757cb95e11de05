package config

// Hook is one command declared in the configuration file.
type Hook struct {
	// Name is an optional label. An empty name means the hook is anonymous
	// and receives a generated name at install time.
	Name string `toml:"name,omitempty" yaml:"name,omitempty" json:"name,omitempty" jsonschema:"description=Optional human readable label"`
	// Command is passed to the shell untouched.
	Command string `toml:"command" yaml:"command" json:"command" jsonschema:"description=Shell command line to run"`
	// Stage defaults to pre-commit.
	Stage Stage `toml:"stage,omitempty" yaml:"stage" json:"stage,omitempty"`
	// Background hooks are started by the generated script but never awaited.
	Background bool `toml:"background,omitempty" yaml:"background,omitempty" json:"background,omitempty" jsonschema:"description=Start the command without waiting for it,default=false"`
	// PassGitFiles appends the list of tracked files to the command.
	PassGitFiles bool `toml:"pass_git_files,omitempty" yaml:"pass_git_files,omitempty" json:"pass_git_files,omitempty" jsonschema:"description=Append the files tracked by git to the command,default=false"`
}

// Config is the ordered list of hooks from one or more configuration files.
type Config struct {
	Hooks []Hook `toml:"hooks" yaml:"hooks" json:"hooks" jsonschema:"description=Hooks to install in execution order"`
}

// ConfigLocation is a Config together with the file it was read from.
type ConfigLocation struct {
	Config Config
	Path   string
}

// LayeredConfig holds each configuration source separately, for display,
// along with the merged result used for installation.
type LayeredConfig struct {
	Local *ConfigLocation
	// Global is nil when no user-global configuration file exists.
	Global *ConfigLocation
	Final  *ConfigLocation
}
