package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mindriot101/hookman/errors"
	"github.com/mindriot101/hookman/logging"
	"github.com/mindriot101/hookman/tui/theme"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
	out     io.Writer
}

// NewErrorHandler creates a new error handler writing to stderr
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
		out:     os.Stderr,
	}
}

// WithWriter sets where messages are written
func (h *ErrorHandler) WithWriter(w io.Writer) *ErrorHandler {
	h.out = w
	return h
}

// Handle reports err with a hint based on its error code and returns it
// unchanged.
func (h *ErrorHandler) Handle(err error) error {
	if err == nil {
		return nil
	}

	pretty := logging.NewPrettyLogger().WithWriter(h.out)
	pretty.ErrorPretty("Error", err)

	if hint := Hint(err); hint != "" {
		fmt.Fprintln(h.out, theme.DefaultTheme.Muted.Render(hint))
	}

	if h.Verbose {
		if herr, ok := errors.As(err); ok {
			fmt.Fprintln(h.out, "\n"+theme.RenderHeader("Error details"))
			pretty.Code(herr.ToJSON())
		}
	}
	return err
}

// Hint returns a suggestion for resolving err, or "" when there is none.
func Hint(err error) string {
	herr, _ := errors.As(err)
	detail := func(key string) interface{} {
		if herr == nil {
			return ""
		}
		return herr.Details[key]
	}

	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		return fmt.Sprintf("Create one with 'hookman example > %v' and edit it, or pass --config.", detail("path"))
	case errors.ErrCodeConfigMalformed:
		return "Check the file against 'hookman schema'; 'hookman example' shows a valid configuration."
	case errors.ErrCodeRootNotFound:
		return "Run hookman from inside a git repository."
	case errors.ErrCodeDestinationExists:
		return "Re-run with --force to overwrite it, or without --no-remove to clear the hook directory first."
	case errors.ErrCodeClearFailure, errors.ErrCodeWriteFailure:
		return fmt.Sprintf("Check the permissions of %v.", detail("path"))
	case errors.ErrCodeInvalidArgument:
		return fmt.Sprintf("Fix the value passed to %v.", detail("flag"))
	}
	return ""
}
