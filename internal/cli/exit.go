package cli

import (
	"errors"
	"fmt"
)

// Exit codes for the rpick binary.
const (
	ExitSuccess      = 0 // choice accepted and saved
	ExitFailure      = 1 // pick failed (unknown or invalid category)
	ExitCommandError = 2 // bad usage, or the config could not be read or written
)

// ExitError carries the exit code a failed run should end with.
type ExitError struct {
	Code    int
	Message string // optional context prepended to Err
	Err     error
}

func (e *ExitError) Error() string {
	switch {
	case e.Err == nil:
		return e.Message
	case e.Message == "":
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode lets main pick the process status without knowing this type.
func (e *ExitError) ExitCode() int { return e.Code }

// WrapExitError wraps err with an exit code and optional context.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error chain. Errors that
// carry none map to ExitFailure, and nil maps to ExitSuccess.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return ExitFailure
}
