package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigNotFound   ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigUnreadable ErrorCode = "CONFIG_UNREADABLE"
	ErrCodeConfigMalformed  ErrorCode = "CONFIG_MALFORMED"

	// Hook directory errors
	ErrCodeRootNotFound      ErrorCode = "ROOT_NOT_FOUND"
	ErrCodeClearFailure      ErrorCode = "CLEAR_FAILURE"
	ErrCodeDestinationExists ErrorCode = "DESTINATION_EXISTS"
	ErrCodeWriteFailure      ErrorCode = "WRITE_FAILURE"

	// Command-line errors
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"

	// General errors
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// HookmanError represents a structured error with context
type HookmanError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *HookmanError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *HookmanError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *HookmanError) WithDetail(key string, value interface{}) *HookmanError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *HookmanError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new HookmanError
func New(code ErrorCode, message string) *HookmanError {
	return &HookmanError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a HookmanError
func Wrap(err error, code ErrorCode, message string) *HookmanError {
	return &HookmanError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// As returns the outermost HookmanError in err's chain.
func As(err error) (*HookmanError, bool) {
	for err != nil {
		if hErr, ok := err.(*HookmanError); ok {
			return hErr, true
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil, false
		}
		err = unwrapper.Unwrap()
	}
	return nil, false
}

// Is checks if an error is a specific HookmanError code.
// Nested HookmanErrors are searched as well, so a WRITE_FAILURE wrapped
// in an INTERNAL error still matches.
func Is(err error, code ErrorCode) bool {
	for err != nil {
		if hErr, ok := err.(*HookmanError); ok && hErr.Code == code {
			return true
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = unwrapper.Unwrap()
	}
	return false
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	hErr, ok := As(err)
	if !ok {
		return ""
	}
	return hErr.Code
}
