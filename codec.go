package canon

// Codec provides content-type aware marshaling.
// Codecs are the wire-format side of a Processor: they decode payloads into
// values that Encode then canonicalizes.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// Canonicalize decodes data with c into generic values and returns their
// canonical encoding. Payloads that differ only in key order or formatting
// canonicalize to the same bytes.
func Canonicalize(c Codec, data []byte) ([]byte, error) {
	if c == nil {
		return nil, newCodecError(ErrMissingCodec, nil)
	}
	var v any
	if err := c.Unmarshal(data, &v); err != nil {
		return nil, newCodecError(ErrUnmarshal, err)
	}
	return Marshal(v)
}
