package logging

import (
	"os"
	"strconv"
	"strings"
)

// Config defines how loggers are built. It is read from HOOKMAN_LOG_*
// environment variables.
type Config struct {
	// Level is the minimum log level to output (e.g., "debug", "info", "warn", "error").
	Level string

	// ReportCaller, if true, includes the file, line, and function name in the log output.
	ReportCaller bool

	// File configures logging to a rotating file.
	File FileSinkConfig

	// Format configures the appearance of the log output.
	Format FormatConfig
}

// FileSinkConfig configures the file logging sink.
type FileSinkConfig struct {
	// Path is the full path to the log file. Empty disables the sink.
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// FormatConfig controls the log output format.
type FormatConfig struct {
	// Preset can be "default" (rich text), "simple" (minimal text), or "json".
	Preset string
	// DisableTimestamp disables the timestamp from the "default" and "simple" formats.
	DisableTimestamp bool
	// DisableComponent disables the component name from the "default" and "simple" formats.
	DisableComponent bool
	// StructuredToStderr controls when structured logs are sent to stderr.
	// Can be "auto" (default), "always", or "never".
	StructuredToStderr string
}

const (
	defaultMaxSizeMB  = 10
	defaultMaxBackups = 3
	defaultMaxAgeDays = 28
)

// ConfigFromEnv reads the logging configuration from the environment:
//
//	HOOKMAN_LOG_LEVEL   minimum level, default info
//	HOOKMAN_LOG_FORMAT  default, simple or json
//	HOOKMAN_LOG_CALLER  true to report the calling function
//	HOOKMAN_LOG_STDERR  auto, always or never
//	HOOKMAN_LOG_FILE    path of a rotating log file
func ConfigFromEnv() Config {
	cfg := Config{
		Level: "info",
		File: FileSinkConfig{
			MaxSizeMB:  defaultMaxSizeMB,
			MaxBackups: defaultMaxBackups,
			MaxAgeDays: defaultMaxAgeDays,
		},
		Format: FormatConfig{
			Preset:             "default",
			StructuredToStderr: "auto",
		},
	}

	if level := os.Getenv("HOOKMAN_LOG_LEVEL"); level != "" {
		cfg.Level = level
	}
	if caller, err := strconv.ParseBool(os.Getenv("HOOKMAN_LOG_CALLER")); err == nil {
		cfg.ReportCaller = caller
	}
	if preset := strings.ToLower(os.Getenv("HOOKMAN_LOG_FORMAT")); preset != "" {
		cfg.Format.Preset = preset
	}
	if mode := strings.ToLower(os.Getenv("HOOKMAN_LOG_STDERR")); mode != "" {
		cfg.Format.StructuredToStderr = mode
	}
	cfg.File.Path = os.Getenv("HOOKMAN_LOG_FILE")

	return cfg
}
