// Package output renders values as JSON, YAML, or pterm tables.
//
// The JSON and YAML formatters are parameterized by indent width and are
// used by the interactive wizard to preview in-progress values. Table is a
// thin wrapper over pterm for list commands.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultIndent is the indent width used when neither the command line nor
// the profile configuration specifies one.
const DefaultIndent = 2

// Formatter renders a value to a string.
type Formatter func(value any) (string, error)

// JSON returns a formatter rendering values as indented JSON.
func JSON(indent int) Formatter {
	if indent <= 0 {
		indent = DefaultIndent
	}
	return func(value any) (string, error) {
		data, err := json.MarshalIndent(value, "", strings.Repeat(" ", indent))
		if err != nil {
			return "", fmt.Errorf("failed to encode JSON: %w", err)
		}
		return string(data) + "\n", nil
	}
}

// YAML returns a formatter rendering values as YAML.
func YAML(indent int) Formatter {
	if indent <= 0 {
		indent = DefaultIndent
	}
	return func(value any) (string, error) {
		var buf bytes.Buffer
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(indent)
		if err := encoder.Encode(value); err != nil {
			return "", fmt.Errorf("failed to encode YAML: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return "", fmt.Errorf("failed to encode YAML: %w", err)
		}
		return buf.String(), nil
	}
}
