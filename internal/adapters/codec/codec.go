// Package codec turns persistable objects into bytes and back. Decoding
// writes into an existing value, so fields absent from the payload keep
// their in-memory values.
package codec

import (
	"bytes"
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type Codec interface {
	Name() string
	Marshal(value any, pretty bool) ([]byte, error)
	Unmarshal(data []byte, target any) error
}

const (
	FormatJSON = "json"
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

func ForFormat(format string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatJSON:
		return JSON{}, nil
	case FormatTOML:
		return TOML{}, nil
	case FormatYAML, "yml":
		return YAML{}, nil
	default:
		return nil, fmt.Errorf("unsupported save format %q", format)
	}
}

type JSON struct{}

func (JSON) Name() string { return FormatJSON }

func (JSON) Marshal(value any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(value, "", "    ")
	}
	return json.Marshal(value)
}

func (JSON) Unmarshal(data []byte, target any) error {
	return json.Unmarshal(data, target)
}

// TOML documents must be tables. Values that do not encode as a table
// (slices, scalars, text marshalers) are stored under a single "value" key
// and unwrapped again on decode.
type TOML struct{}

const tomlValueKey = "value"

var textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()

func (TOML) Name() string { return FormatTOML }

func (TOML) Marshal(value any, pretty bool) ([]byte, error) {
	if value == nil {
		return nil, errors.New("toml: cannot encode nil value")
	}
	if !tomlTable(reflect.TypeOf(value)) {
		value = map[string]any{tomlValueKey: value}
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(pretty)
	if err := enc.Encode(value); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (TOML) Unmarshal(data []byte, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("toml: decode target must be a non-nil pointer, got %T", target)
	}
	elem := rv.Elem()
	if tomlTable(elem.Type()) {
		return toml.Unmarshal(data, target)
	}

	wrapperType := reflect.StructOf([]reflect.StructField{{
		Name: "Value",
		Type: elem.Type(),
		Tag:  reflect.StructTag(`toml:"` + tomlValueKey + `"`),
	}})
	wrapper := reflect.New(wrapperType)
	wrapper.Elem().Field(0).Set(elem)
	if err := toml.Unmarshal(data, wrapper.Interface()); err != nil {
		return err
	}
	elem.Set(wrapper.Elem().Field(0))
	return nil
}

// tomlTable reports whether go-toml encodes values of t as a top-level table.
func tomlTable(t reflect.Type) bool {
	for t.Kind() == reflect.Pointer {
		if t.Implements(textMarshalerType) {
			return false
		}
		t = t.Elem()
	}
	if t.Implements(textMarshalerType) {
		return false
	}
	return t.Kind() == reflect.Struct || t.Kind() == reflect.Map
}

// YAML output is always block style; pretty has no effect.
type YAML struct{}

func (YAML) Name() string { return FormatYAML }

func (YAML) Marshal(value any, _ bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(value); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (YAML) Unmarshal(data []byte, target any) error {
	return yaml.Unmarshal(data, target)
}
