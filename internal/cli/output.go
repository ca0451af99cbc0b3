package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/oci-description/internal/model"
)

// outputFormat selects how a successful result is written to stdout.
type outputFormat string

const (
	// formatText prints the bare value followed by a newline.
	formatText outputFormat = "text"

	// formatJSON prints path, label and value as an indented JSON object.
	formatJSON outputFormat = "json"

	// formatYAML prints path, label and value as a YAML document.
	formatYAML outputFormat = "yaml"
)

func parseOutputFormat(s string) (outputFormat, error) {
	switch f := outputFormat(s); f {
	case formatText, formatJSON, formatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (valid: text, json, yaml)", s)
	}
}

// writeDescription renders desc to w in the given format.
func writeDescription(w io.Writer, format outputFormat, desc *model.Description) error {
	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(desc, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON output: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err

	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(desc); err != nil {
			return fmt.Errorf("failed to encode YAML output: %w", err)
		}
		return enc.Close()

	default:
		_, err := fmt.Fprintln(w, desc.String())
		return err
	}
}

// errorJSON is the JSON shape of a failure on stderr.
type errorJSON struct {
	Error errorDetailJSON `json:"error"`
}

type errorDetailJSON struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// writeErrorJSON writes a single-line JSON error object to w.
// json.Marshal output is compact, so the object never spans lines.
func writeErrorJSON(w io.Writer, code model.ExitCode, message string, underlying error) {
	obj := errorJSON{Error: errorDetailJSON{Code: code.Int(), Message: message}}
	if underlying != nil {
		obj.Error.Detail = underlying.Error()
	}
	data, _ := json.Marshal(obj)
	fmt.Fprintln(w, string(data))
}
