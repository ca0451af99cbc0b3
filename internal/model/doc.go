// Package model defines the value types shared by the oci-description CLI.
//
// This package contains plain data structures with no external dependencies:
// the extraction result (Description), the process exit codes (ExitCode),
// and an error type (CLIError) that carries an exit code so the CLI layer
// can turn a failure into the right OS exit status.
package model
