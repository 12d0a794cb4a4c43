// Package yaml provides a YAML codec implementation.
//
// Decoded YAML documents canonicalize like their JSON equivalents: mapping
// keys of any scalar type become strings, .nan and .inf are rejected.
package yaml

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"github.com/zoobzio/canon"
)

// yamlCodec implements canon.Codec for YAML.
type yamlCodec struct{}

// New returns a YAML codec.
func New() canon.Codec {
	return &yamlCodec{}
}

// ContentType returns the MIME type for YAML.
func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as YAML with two-space indentation.
func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a single YAML document into v.
func (c *yamlCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

// Canonicalize returns the canonical JSON encoding of a YAML document.
func Canonicalize(data []byte) ([]byte, error) {
	return canon.Canonicalize(New(), data)
}
