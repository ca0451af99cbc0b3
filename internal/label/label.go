package label

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"unicode/utf8"

	ocispec "github.com/opencontainers/image-spec/specs-go/v1"

	"github.com/shinji-kodama/oci-description/internal/model"
)

const (
	// Key is the OCI annotation key whose value is extracted.
	// Value: "org.opencontainers.image.description".
	Key = ocispec.AnnotationDescription

	// DefaultDockerfile is the path used when no argument is given,
	// relative to the current working directory.
	DefaultDockerfile = "Dockerfile"
)

// MissingMessage is printed verbatim when the label is absent.
// Release tooling matches on this text, so it must not change.
const MissingMessage = "Missing " + Key + " label in Dockerfile"

// errNotText is returned for files that are not valid UTF-8.
var errNotText = errors.New("file is not valid UTF-8 text")

// whitespace is any Unicode whitespace: ASCII space and controls \t-\r,
// the separators \x1c-\x1f, NEL and every Z-category rune (NBSP, the
// U+2000 block, U+3000, line and paragraph separators).
const whitespace = `[\s\v\x{1c}-\x{1f}\x{85}\p{Z}]`

// Pattern matches the key, optional whitespace, '=', optional whitespace,
// and a double-quoted value. The value is capture group 1 and must be
// non-empty; it stops at the first double quote, so escaped quotes are
// not understood.
var Pattern = regexp.MustCompile(regexp.QuoteMeta(Key) +
	whitespace + `*=` + whitespace + `*"([^"]+)"`)

// Find returns the value of the first description assignment in text.
// The boolean is false when the text contains no assignment.
func Find(text string) (string, bool) {
	m := Pattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ResolvePath returns path, or DefaultDockerfile when path is empty.
func ResolvePath(path string) string {
	if path == "" {
		return DefaultDockerfile
	}
	return path
}

// ReadDockerfile reads the whole file at path as text.
//
// Any failure is returned as a *model.CLIError with ExitReadFailed whose
// message names the path. os.ReadFile closes the file before returning.
func ReadDockerfile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", readError(path, err)
	}
	if !utf8.Valid(data) {
		return "", readError(path, errNotText)
	}
	return string(data), nil
}

func readError(path string, err error) *model.CLIError {
	return model.WrapCLIError(model.ExitReadFailed,
		fmt.Sprintf("Failed to read Dockerfile at %s", path), err)
}

// FromFile reads the Dockerfile at path (DefaultDockerfile when empty)
// and extracts the description label.
//
// Errors are *model.CLIError values: ExitReadFailed when the file cannot
// be read, ExitLabelMissing when no assignment is present.
func FromFile(path string) (*model.Description, error) {
	path = ResolvePath(path)

	text, err := ReadDockerfile(path)
	if err != nil {
		return nil, err
	}

	value, ok := Find(text)
	if !ok {
		return nil, model.NewCLIError(model.ExitLabelMissing, MissingMessage)
	}

	return &model.Description{
		Path:  path,
		Label: Key,
		Value: value,
	}, nil
}
