package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/contactform/internal/contact"
)

// OutputFormat selects how an accepted record is shown in the output panel.
type OutputFormat string

const (
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// ErrUnknownOutputFormat is returned for formats other than json and yaml.
var ErrUnknownOutputFormat = errors.New("unknown output format")

// ParseOutputFormat validates s. An empty string selects JSON.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case "", OutputJSON:
		return OutputJSON, nil
	case OutputYAML:
		return OutputYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOutputFormat, s)
}

// Render serialises u. JSON uses a two space indent.
func (f OutputFormat) Render(u contact.NormalizedUser) (string, error) {
	switch f {
	case OutputJSON, "":
		b, err := json.MarshalIndent(u, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encode json output: %w", err)
		}
		return string(b), nil
	case OutputYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(u); err != nil {
			return "", fmt.Errorf("encode yaml output: %w", err)
		}
		if err := enc.Close(); err != nil {
			return "", fmt.Errorf("encode yaml output: %w", err)
		}
		return buf.String(), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOutputFormat, string(f))
}
