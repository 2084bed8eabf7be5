package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	err := New(ErrCodeInvalidInput, "missing field %q", "source")
	want := `INVALID_INPUT: missing field "source"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestError_ErrorWithCause(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(ErrCodeFileNotFound, cause, "open %s", "budget.json")
	want := "FILE_NOT_FOUND: open budget.json: boom"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(ErrCodeInternal, cause, "render failed")
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeInvalidTheme, "bad palette")

	if !Is(err, ErrCodeInvalidTheme) {
		t.Error("Is() should match the error's code")
	}
	if Is(err, ErrCodeInvalidInput) {
		t.Error("Is() should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeInvalidInput) {
		t.Error("Is() should not match plain errors")
	}
}

func TestIs_WrappedChain(t *testing.T) {
	inner := New(ErrCodeUnknownEndpoint, "node X")
	outer := fmt.Errorf("resolve: %w", inner)

	if !Is(outer, ErrCodeUnknownEndpoint) {
		t.Error("Is() should unwrap fmt.Errorf chains")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidFormat, "webp")); got != ErrCodeInvalidFormat {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeInvalidFormat)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode() = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidInput, "links collection is missing")
	if got := UserMessage(err); got != "links collection is missing" {
		t.Errorf("UserMessage() = %q", got)
	}

	plain := stderrors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage() = %q", got)
	}
}
