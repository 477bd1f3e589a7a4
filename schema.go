package oasprune

import (
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Schema is a recursive schema node. A node is either a reference into the
// schema pool ($ref set, everything else ignored) or an inline node whose
// children are reachable through items, properties, additionalProperties and
// the allOf/oneOf/anyOf combinator lists. Reference cycles across the pool
// are structurally legal.
type Schema struct {
	Ref string `json:"$ref,omitempty" yaml:"$ref,omitempty"`

	Type        string   `json:"type,omitempty" yaml:"type,omitempty"`
	Format      string   `json:"format,omitempty" yaml:"format,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Required    []string `json:"required,omitempty" yaml:"required,omitempty"`
	Enum        []any    `json:"enum,omitempty" yaml:"enum,omitempty"`
	Default     any      `json:"default,omitempty" yaml:"default,omitempty"`
	Nullable    bool     `json:"nullable,omitempty" yaml:"nullable,omitempty"`

	Items                *Schema               `json:"items,omitempty" yaml:"items,omitempty"`
	Properties           map[string]*Schema    `json:"properties,omitempty" yaml:"properties,omitempty"`
	AdditionalProperties *AdditionalProperties `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`

	AllOf []*Schema `json:"allOf,omitempty" yaml:"allOf,omitempty"`
	OneOf []*Schema `json:"oneOf,omitempty" yaml:"oneOf,omitempty"`
	AnyOf []*Schema `json:"anyOf,omitempty" yaml:"anyOf,omitempty"`
}

// AdditionalProperties models the additionalProperties keyword, which on the
// wire is either a boolean flag or a nested schema. Exactly one of Bool and
// Schema is set after decoding.
type AdditionalProperties struct {
	Bool   *bool
	Schema *Schema
}

func (a *AdditionalProperties) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		a.Bool = &b
		a.Schema = nil
		return nil
	}
	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	a.Bool = nil
	a.Schema = &s
	return nil
}

func (a AdditionalProperties) MarshalJSON() ([]byte, error) {
	if a.Bool != nil {
		return json.Marshal(*a.Bool)
	}
	return json.Marshal(a.Schema)
}

func (a *AdditionalProperties) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.Tag == "!!bool" {
		var b bool
		if err := value.Decode(&b); err != nil {
			return err
		}
		a.Bool = &b
		a.Schema = nil
		return nil
	}
	var s Schema
	if err := value.Decode(&s); err != nil {
		return err
	}
	a.Bool = nil
	a.Schema = &s
	return nil
}

func (a AdditionalProperties) MarshalYAML() (any, error) {
	if a.Bool != nil {
		return *a.Bool, nil
	}
	return a.Schema, nil
}

// refName extracts the component name from a $ref value such as
// "#/components/schemas/User". Only the segment after the final '/' counts,
// so names share one namespace across component kinds.
func refName(ref string) string {
	if i := strings.LastIndexByte(ref, '/'); i >= 0 {
		return ref[i+1:]
	}
	return ref
}
