// Package render writes annual reviews in the supported output formats.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/naka-gawa/github-annual-review/internal/config"
	"github.com/naka-gawa/github-annual-review/internal/domain"
	"gopkg.in/yaml.v3"
)

// Write renders the review to w in the given format.
func Write(w io.Writer, review *domain.AnnualReview, format config.Format) error {
	switch format {
	case config.FormatJSON:
		return writeJSON(w, review)
	case config.FormatYAML:
		return writeYAML(w, review)
	case config.FormatText:
		return writeText(w, review)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	// Marshal the results into a pretty-printed JSON string.
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results to JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(jsonData))
	return err
}

// writeYAML reuses the JSON field names and order: JSON is valid YAML, so the
// JSON document is decoded into a node tree and re-encoded as block YAML.
func writeYAML(w io.Writer, v any) error {
	jsonData, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal results to JSON: %w", err)
	}
	var node yaml.Node
	if err := yaml.Unmarshal(jsonData, &node); err != nil {
		return fmt.Errorf("failed to convert results to YAML: %w", err)
	}
	clearFlowStyle(&node)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return fmt.Errorf("failed to write YAML: %w", err)
	}
	return enc.Close()
}

// clearFlowStyle turns the inline {...} and [...] collections of a
// JSON-sourced node tree into block style.
func clearFlowStyle(n *yaml.Node) {
	n.Style &^= yaml.FlowStyle
	if n.Kind == yaml.ScalarNode && n.Tag == "!!str" {
		// Keep quotes only where YAML needs them, e.g. "null" or "2024".
		n.Style &^= yaml.DoubleQuotedStyle
	}
	for _, c := range n.Content {
		clearFlowStyle(c)
	}
}
