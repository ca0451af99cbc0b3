package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestExitCode_Values pins the numeric exit codes, which callers parse.
func TestExitCode_Values(t *testing.T) {
	tests := []struct {
		code     ExitCode
		expected int
	}{
		{ExitSuccess, 0},
		{ExitGeneralError, 1},
		{ExitReadFailed, 2},
		{ExitLabelMissing, 3},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("code-%d", tt.expected), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.code.Int())
		})
	}
}

func TestDescription_String(t *testing.T) {
	d := &Description{Path: "Dockerfile", Label: "k", Value: "A sample image"}
	assert.Equal(t, "A sample image", d.String())
}

// TestCLIError verifies the custom error type used for exit code mapping.
func TestCLIError(t *testing.T) {
	t.Run("simple error", func(t *testing.T) {
		err := NewCLIError(ExitLabelMissing, "Missing org.opencontainers.image.description label in Dockerfile")
		assert.Equal(t, ExitLabelMissing, err.Code)
		assert.Equal(t, "Missing org.opencontainers.image.description label in Dockerfile", err.Error())
		assert.Nil(t, err.Unwrap())
	})

	t.Run("wrapped error", func(t *testing.T) {
		inner := errors.New("permission denied")
		err := WrapCLIError(ExitReadFailed, "Failed to read Dockerfile at ./Dockerfile", inner)
		assert.Equal(t, ExitReadFailed, err.Code)
		assert.Equal(t, "Failed to read Dockerfile at ./Dockerfile: permission denied", err.Error())
		assert.Equal(t, inner, err.Unwrap())
	})

	t.Run("errors.As through a wrap", func(t *testing.T) {
		inner := errors.New("no such file or directory")
		wrapped := fmt.Errorf("extract: %w", WrapCLIError(ExitReadFailed, "Failed to read Dockerfile at x", inner))

		var cliErr *CLIError
		assert.True(t, errors.As(wrapped, &cliErr))
		assert.Equal(t, ExitReadFailed, cliErr.Code)
		assert.True(t, errors.Is(wrapped, inner))
	})
}
