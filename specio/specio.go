// Package specio loads and serializes OpenAPI documents for the editor.
// The core never reads or writes bytes; this package is that boundary.
package specio

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reiwata/oasprune"
)

// Format identifies a wire encoding for documents.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatYAML, fmt.Errorf("specio: unknown format %q (want yaml or json)", name)
	}
}

// FormatForPath picks a format from the file extension, defaulting to YAML.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	default:
		return FormatYAML
	}
}

// Options control decoding.
type Options struct {
	// Strict rejects YAML documents containing duplicate mapping keys, which
	// yaml.v3 would otherwise resolve silently in favor of the last value.
	Strict bool
}

// Unmarshal decodes data as JSON or YAML. Input whose first non-space byte
// opens a JSON object or array is treated as JSON; everything else as YAML.
func Unmarshal(data []byte, opts Options) (*oasprune.Document, error) {
	if sniffJSON(data) {
		return UnmarshalJSON(data)
	}
	return UnmarshalYAML(data, opts)
}

// UnmarshalJSON decodes a JSON document.
func UnmarshalJSON(data []byte) (*oasprune.Document, error) {
	var doc oasprune.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("specio: invalid JSON document: %w", err)
	}
	return &doc, nil
}

// UnmarshalYAML decodes a YAML document.
func UnmarshalYAML(data []byte, opts Options) (*oasprune.Document, error) {
	if opts.Strict {
		if err := checkDuplicateKeys(data); err != nil {
			return nil, fmt.Errorf("specio: %w", err)
		}
	}
	var doc oasprune.Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("specio: invalid YAML document: %w", err)
	}
	return &doc, nil
}

// Marshal encodes doc in the given format. JSON output is indented; YAML uses
// two-space indents.
func Marshal(doc *oasprune.Document, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		b, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("specio: encode JSON: %w", err)
		}
		return append(b, '\n'), nil
	default:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("specio: encode YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("specio: encode YAML: %w", err)
		}
		return buf.Bytes(), nil
	}
}

// ReadFile loads a document from disk, sniffing the encoding from content.
func ReadFile(path string, opts Options) (*oasprune.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("specio: %w", err)
	}
	return Unmarshal(data, opts)
}

func sniffJSON(data []byte) bool {
	for _, c := range data {
		switch c {
		case ' ', '\t', '\r', '\n':
			continue
		case '{', '[':
			return true
		default:
			return false
		}
	}
	return false
}
