package errors

import (
	"fmt"
	"testing"
)

func TestHookmanError(t *testing.T) {
	// Test basic error creation
	err := New(ErrCodeDestinationExists, "file exists")
	if err.Code != ErrCodeDestinationExists {
		t.Errorf("expected code %s, got %s", ErrCodeDestinationExists, err.Code)
	}

	// Test error wrapping
	cause := fmt.Errorf("underlying error")
	wrapped := Wrap(cause, ErrCodeWriteFailure, "write failed")

	if wrapped.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	// Test Is function
	if !Is(wrapped, ErrCodeWriteFailure) {
		t.Error("Is should return true for matching code")
	}

	if Is(wrapped, ErrCodeClearFailure) {
		t.Error("Is should return false for non-matching code")
	}

	// Test WithDetail
	detailed := err.WithDetail("path", "/tmp/x").WithDetail("stage", "pre-commit")
	if detailed.Details["path"] != "/tmp/x" {
		t.Error("WithDetail should add details")
	}
}

func TestIsThroughFmtWrapping(t *testing.T) {
	err := fmt.Errorf("generate hook for stage pre-push: %w", DestinationExists(".git/hooks/pre-push"))

	if !Is(err, ErrCodeDestinationExists) {
		t.Error("Is should see through fmt.Errorf wrapping")
	}
	if got := GetCode(err); got != ErrCodeDestinationExists {
		t.Errorf("expected code %s, got %s", ErrCodeDestinationExists, got)
	}

	hErr, ok := As(err)
	if !ok {
		t.Fatal("As should find the HookmanError")
	}
	if hErr.Details["path"] != ".git/hooks/pre-push" {
		t.Errorf("unexpected path detail: %v", hErr.Details["path"])
	}
}

func TestIsNestedCodes(t *testing.T) {
	inner := WriteFailure("/tmp/hooks/pre-commit", fmt.Errorf("disk full"))
	outer := Wrap(inner, ErrCodeInternal, "install failed")

	if !Is(outer, ErrCodeWriteFailure) {
		t.Error("Is should match a nested HookmanError code")
	}
	if GetCode(outer) != ErrCodeInternal {
		t.Error("GetCode should return the outermost code")
	}
	if GetCode(fmt.Errorf("plain")) != "" {
		t.Error("GetCode should return empty code for plain errors")
	}
	if Is(nil, ErrCodeInternal) {
		t.Error("Is should return false for nil")
	}
}

func TestErrorConstructors(t *testing.T) {
	err := ConfigNotFound(".hookman.toml")
	if err.Code != ErrCodeConfigNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeConfigNotFound, err.Code)
	}
	if err.Details["path"] != ".hookman.toml" {
		t.Error("ConfigNotFound should include path detail")
	}

	err = ClearFailure("/repo/.git/hooks/pre-commit", fmt.Errorf("permission denied"))
	if err.Code != ErrCodeClearFailure {
		t.Errorf("expected code %s, got %s", ErrCodeClearFailure, err.Code)
	}
	if err.Details["path"] != "/repo/.git/hooks/pre-commit" {
		t.Error("ClearFailure should include path detail")
	}

	err = DestinationExists("/repo/.git/hooks/pre-push")
	if err.Cause != nil {
		t.Error("DestinationExists should not carry a cause")
	}

	err = InvalidArgument("--keep", "[", fmt.Errorf("syntax error in pattern"))
	if err.Code != ErrCodeInvalidArgument {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidArgument, err.Code)
	}
	if err.Details["flag"] != "--keep" || err.Details["value"] != "[" {
		t.Error("InvalidArgument should include flag and value details")
	}
}
