// Package codec serializes tables in two shapes:
//
//   - row-sequence: a list of rows, each a map from column key to value,
//   - column-map: a map from column key to the list of that column's values.
//
// The wire format is pluggable through Format. JSON and YAML are built in.
package codec

import (
	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format encodes and decodes plain Go values.
// Implementations must be safe for concurrent use.
type Format interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in format by its stable name.
func ByName(name string) (Format, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "yaml":
		return YAML{}, true
	default:
		return nil, false
	}
}

// Default is the format used when none is given.
var Default Format = JSON{}

// JSON is a JSON format backed by github.com/goccy/go-json.
//
// Map keys must be strings, integers or implement encoding.TextMarshaler.
type JSON struct{}

func (JSON) Marshal(v any) ([]byte, error) { return gojson.Marshal(v) }

func (JSON) Unmarshal(data []byte, v any) error { return gojson.Unmarshal(data, v) }

// Name returns "json".
func (JSON) Name() string { return "json" }

// YAML is a YAML format backed by gopkg.in/yaml.v3.
type YAML struct{}

func (YAML) Marshal(v any) ([]byte, error) { return yaml.Marshal(v) }

func (YAML) Unmarshal(data []byte, v any) error { return yaml.Unmarshal(data, v) }

// Name returns "yaml".
func (YAML) Name() string { return "yaml" }
