// Package logging builds the per-component logrus loggers used across hookman.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/mindriot101/hookman/util/pathutil"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex

	// fileSinks shares one rotating writer per log file between components.
	fileSinks = make(map[string]*lumberjack.Logger)

	overrides Overrides
)

// Overrides are applied on top of the environment configuration, to every
// logger already created and to those created later.
type Overrides struct {
	// Verbose forces the debug level.
	Verbose bool
	// JSON switches to the JSON formatter.
	JSON bool
}

// NewLogger creates and returns a pre-configured logger for a specific component.
// It uses a singleton pattern per component to avoid re-initializing.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	entry := buildLogger(overrides).WithField("component", component)
	loggers[component] = entry
	return entry
}

// Configure applies overrides to every logger. Command-line flags call it
// once the flags have been parsed. Loggers handed out earlier are rebuilt in
// place.
func Configure(o Overrides) {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	overrides = o
	for _, entry := range loggers {
		entry.Logger = buildLogger(o)
	}
}

func buildLogger(o Overrides) *logrus.Logger {
	cfg := ConfigFromEnv()
	if o.Verbose {
		cfg.Level = logrus.DebugLevel.String()
	}
	if o.JSON {
		cfg.Format.Preset = "json"
	}
	isInteractive := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	return newLogger(cfg, os.Stderr, isInteractive)
}

// newLogger builds a logger from cfg. Structured output goes to stderr
// according to cfg.Format.StructuredToStderr and, when configured, to a
// rotating log file.
func newLogger(cfg Config, stderr io.Writer, isInteractive bool) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	logger.SetReportCaller(cfg.ReportCaller)

	switch cfg.Format.Preset {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "simple":
		logger.SetFormatter(&TextFormatter{Config: FormatConfig{
			DisableTimestamp: true,
			DisableComponent: true,
		}})
	default:
		logger.SetFormatter(&TextFormatter{Config: cfg.Format})
	}

	var writers []io.Writer

	if cfg.File.Path != "" {
		if sink := fileSink(cfg.File); sink != nil {
			writers = append(writers, sink)
		}
	}

	shouldLogToStderr := false
	switch cfg.Format.StructuredToStderr {
	case "always":
		shouldLogToStderr = true
	case "never":
		shouldLogToStderr = false
	default:
		// "auto": show structured logs when debugging, or when stderr is
		// not a terminal (piped output, CI).
		shouldLogToStderr = logger.GetLevel() >= logrus.DebugLevel || !isInteractive
	}
	if shouldLogToStderr {
		writers = append(writers, stderr)
	}

	switch len(writers) {
	case 0:
		logger.SetOutput(io.Discard)
	case 1:
		logger.SetOutput(writers[0])
	default:
		logger.SetOutput(io.MultiWriter(writers...))
	}

	return logger
}

// fileSink returns the shared rotating writer for cfg.Path, or nil when its
// directory cannot be created.
func fileSink(cfg FileSinkConfig) io.Writer {
	path, err := pathutil.Expand(cfg.Path)
	if err != nil {
		logrus.Warnf("Failed to expand log file path %s: %v", cfg.Path, err)
		return nil
	}
	if sink, ok := fileSinks[path]; ok {
		return sink
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		logrus.Warnf("Failed to create log directory %s: %v", filepath.Dir(path), err)
		return nil
	}
	sink := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	}
	fileSinks[path] = sink
	return sink
}
