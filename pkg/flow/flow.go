// Package flow defines the flow-graph data model and its codecs.
//
// A flow graph is a set of named nodes plus an ordered sequence of weighted
// directed links. The package reads graphs from JSON or YAML documents,
// validates their structure, and resolves string node ids into positional
// indices for the transform stages.
//
// The Graph is read-only after load; everything downstream works on derived,
// immutable artifacts.
package flow

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mwehrli/flowsankey/pkg/errors"
)

// Input formats accepted by Decode.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// =============================================================================
// Reading
// =============================================================================

// ReadFile reads and validates a flow graph from a file. The codec is chosen
// by file extension: .yaml/.yml decode as YAML, everything else as JSON.
func ReadFile(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Decode(data, formatForPath(path))
}

// Read decodes and validates a JSON flow graph from an io.Reader.
// Use ReadFile for files, which also detects YAML by extension.
func Read(r io.Reader) (*Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return Decode(data, FormatJSON)
}

// Decode parses the given document and validates it. Unknown fields are
// ignored; a missing collection or a node/link missing a required field is
// an ErrCodeInvalidInput error.
func Decode(data []byte, format string) (*Graph, error) {
	var g Graph
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &g); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode yaml")
		}
	case FormatJSON, "":
		if err := json.Unmarshal(data, &g); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode json")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported input format: %s", format)
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}
	return &g, nil
}

// =============================================================================
// Writing
// =============================================================================

// Marshal serializes a graph to indented JSON.
func Marshal(g *Graph) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(g); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile writes a graph as indented JSON to a file with 0644 permissions.
func WriteFile(g *Graph, path string) error {
	data, err := Marshal(g)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// formatForPath maps a file extension to an input format.
func formatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}
