package errors

import (
	"fmt"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *HookmanError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigUnreadable creates an error for a configuration file that exists but cannot be read
func ConfigUnreadable(path string, err error) *HookmanError {
	return Wrap(err, ErrCodeConfigUnreadable, fmt.Sprintf("failed to read configuration file: %s", path)).
		WithDetail("path", path)
}

// ConfigMalformed creates an error for a configuration document that does not match the schema
func ConfigMalformed(reason string, err error) *HookmanError {
	return Wrap(err, ErrCodeConfigMalformed, fmt.Sprintf("invalid configuration: %s", reason))
}

// RootNotFound creates an error for a missing git hook directory
func RootNotFound(dir string, err error) *HookmanError {
	return Wrap(err, ErrCodeRootNotFound, fmt.Sprintf("could not find a git directory from %s", dir)).
		WithDetail("dir", dir)
}

// ClearFailure creates an error for a hook file that could not be removed
func ClearFailure(path string, err error) *HookmanError {
	return Wrap(err, ErrCodeClearFailure, fmt.Sprintf("removing file %s", path)).
		WithDetail("path", path)
}

// DestinationExists creates the overwrite-protection error
func DestinationExists(path string) *HookmanError {
	return New(ErrCodeDestinationExists, fmt.Sprintf("file %s exists and -f/--force not given", path)).
		WithDetail("path", path)
}

// WriteFailure creates an error for a hook script that could not be written
func WriteFailure(path string, err error) *HookmanError {
	return Wrap(err, ErrCodeWriteFailure, fmt.Sprintf("writing hook file %s", path)).
		WithDetail("path", path)
}

// InvalidArgument creates an error for a command-line value that cannot be used
func InvalidArgument(flag, value string, err error) *HookmanError {
	return Wrap(err, ErrCodeInvalidArgument, fmt.Sprintf("invalid value %q for %s", value, flag)).
		WithDetail("flag", flag).
		WithDetail("value", value)
}
