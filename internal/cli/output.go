package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Exit codes for mutatorctl
const (
	ExitSuccess      = 0 // Definitions loaded cleanly
	ExitFailure      = 1 // Definitions have problems
	ExitCommandError = 2 // Bad flags, missing directory, unknown mutator
)

// ExitError is an error carrying the process exit code
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error. Errors that are not an
// ExitError count as failures.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// printer writes a command's result in the selected format
type printer struct {
	format string
	out    io.Writer
}

func (p *printer) json() bool {
	return p.format == "json"
}

func (p *printer) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *printer) encode(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return WrapExitError(ExitCommandError, "failed to encode output", err)
	}
	return nil
}
