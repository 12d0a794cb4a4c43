// Package json provides a canonical JSON codec implementation.
//
// Marshal produces the canonical encoding; Unmarshal decodes with
// goccy/go-json, so numbers become float64 and duplicate keys resolve to
// the last occurrence.
package json

import (
	gojson "github.com/goccy/go-json"

	"github.com/zoobzio/canon"
)

// jsonCodec implements canon.Codec for JSON.
type jsonCodec struct{}

// New returns a JSON codec.
func New() canon.Codec {
	return &jsonCodec{}
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as canonical JSON.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	return canon.Marshal(v)
}

// Unmarshal decodes JSON data into v.
func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	return gojson.Unmarshal(data, v)
}

// Canonicalize rewrites a JSON document in canonical form.
func Canonicalize(data []byte) ([]byte, error) {
	return canon.Canonicalize(New(), data)
}

// Valid reports whether data is a syntactically valid JSON document.
func Valid(data []byte) bool {
	return gojson.Valid(data)
}
