// Package cbor provides a CBOR codec implementation.
//
// Marshal uses RFC 8949 canonical encoding options. Unmarshal rejects
// duplicate map keys, which a canonical encoding could not represent.
package cbor

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/zoobzio/canon"
)

// cborCodec implements canon.Codec for CBOR.
type cborCodec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

// New returns a CBOR codec.
func New() canon.Codec {
	enc, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	dec, err := cbor.DecOptions{
		DupMapKey: cbor.DupMapKeyEnforcedAPF,
	}.DecMode()
	if err != nil {
		panic(err)
	}
	return &cborCodec{enc: enc, dec: dec}
}

// ContentType returns the MIME type for CBOR.
func (c *cborCodec) ContentType() string {
	return "application/cbor"
}

// Marshal encodes v as canonical CBOR.
func (c *cborCodec) Marshal(v any) ([]byte, error) {
	return c.enc.Marshal(v)
}

// Unmarshal decodes CBOR data into v. Untyped maps decode with interface
// keys, which canon coerces to strings.
func (c *cborCodec) Unmarshal(data []byte, v any) error {
	return c.dec.Unmarshal(data, v)
}

// Canonicalize returns the canonical JSON encoding of a CBOR payload.
func Canonicalize(data []byte) ([]byte, error) {
	return canon.Canonicalize(New(), data)
}
