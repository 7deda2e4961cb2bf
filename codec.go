package fist

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Codec decodes a runtime Config for LoadConfig. JSONCodec and YAMLCodec
// cover the formats DetectCodec recognizes; implement Codec to read a
// Config from anything else.
type Codec interface {
	// Unmarshal decodes data into v, a *Config when called by LoadConfig.
	Unmarshal(data []byte, v any) error

	// ContentType returns the MIME type for observability and debugging.
	ContentType() string
}

// JSONCodec implements Codec using encoding/json.
type JSONCodec struct{}

// Unmarshal deserializes JSON bytes into v.
func (JSONCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// ContentType returns the JSON MIME type.
func (JSONCodec) ContentType() string {
	return "application/json"
}

// YAMLCodec implements Codec using gopkg.in/yaml.v3.
type YAMLCodec struct{}

// Unmarshal deserializes YAML bytes into v.
func (YAMLCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

// ContentType returns the YAML MIME type.
func (YAMLCodec) ContentType() string {
	return "application/x-yaml"
}

var (
	_ Codec = JSONCodec{}
	_ Codec = YAMLCodec{}
)

// DetectCodec picks a codec from the leading byte of data: JSON objects and
// arrays use JSONCodec, anything else is treated as YAML.
func DetectCodec(data []byte) Codec {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return JSONCodec{}
	}
	return YAMLCodec{}
}
