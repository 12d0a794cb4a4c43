package canon

// Conversion hooks let a type replace its own field-by-field encoding.
// When a value implements one of these capabilities the encoder calls it and
// encodes the result instead, ignoring the value's fields entirely. The
// result is dispatched again from the top, so it may itself carry a hook.
//
// Precedence, highest first:
//
//  1. Canonicaler
//  2. json.Marshaler (the returned JSON text is decoded and re-encoded)
//  3. encoding.TextMarshaler (the returned text is encoded as a string)

// Canonicaler is implemented by types that supply their own canonical form.
type Canonicaler interface {
	// Canonical returns the value to encode in place of the receiver.
	// Returning an error aborts the encode with a *HookError.
	Canonical() (any, error)
}

// CanonicalFunc adapts an ordinary function to a Canonicaler.
type CanonicalFunc func() (any, error)

// Canonical calls f.
func (f CanonicalFunc) Canonical() (any, error) {
	return f()
}
