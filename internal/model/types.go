package model

import "fmt"

// Description is the result of a successful label lookup.
// It is built once per invocation and never mutated afterwards.
type Description struct {
	// Path is the Dockerfile path that was read, after defaulting.
	Path string `json:"path" yaml:"path"`

	// Label is the OCI annotation key that was searched for.
	Label string `json:"label" yaml:"label"`

	// Value is the captured, unquoted label value, verbatim.
	Value string `json:"description" yaml:"description"`
}

// String returns the bare label value, which is what text output prints.
func (d *Description) String() string {
	return d.Value
}

// ExitCode defines the CLI exit codes. Callers (release pipelines, CI
// scripts) branch on these, so the numeric values are part of the contract.
type ExitCode int

const (
	// ExitSuccess indicates the label was found and printed.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates a usage error or any failure that has
	// no dedicated code (bad flag, too many arguments).
	ExitGeneralError ExitCode = 1

	// ExitReadFailed indicates the Dockerfile could not be read as text:
	// missing file, permission denied, a directory, or invalid UTF-8.
	ExitReadFailed ExitCode = 2

	// ExitLabelMissing indicates the Dockerfile was read but contains no
	// description label assignment.
	ExitLabelMissing ExitCode = 3
)

// Int returns the exit code as a plain int for os.Exit.
func (c ExitCode) Int() int {
	return int(c)
}

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
