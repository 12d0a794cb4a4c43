// Package canon produces canonical, deterministic JSON encodings of Go values.
//
// Two structurally equal values always encode to byte-identical output,
// whatever order their keys were inserted in. The output is suitable for
// hashing, signing and diffing: content addresses, cache keys, audit logs.
//
// # Encoding
//
//	s, err := canon.Encode(map[string]any{"b": 123, "a": "string"})
//	// s == `{"a":"string","b":123}`
//
// The encoder dispatches on the kind of each value:
//
//   - nil, nil pointers, nil maps and nil slices encode as null
//   - funcs, channels and complex numbers are absent: null on their own or
//     in an array, omitted entirely as an object member
//   - numbers are IEEE-754 doubles formatted with the shortest round-trip
//     digits; NaN and infinities are errors
//   - strings must be valid UTF-8; only quote, backslash and control
//     characters are escaped
//   - arrays keep their order
//   - maps and structs become objects with keys sorted by UTF-16 code
//     unit, the order JavaScript uses when comparing strings
//
// # Errors
//
// Encoding fails fast with exactly one error:
//
//   - ErrNotANumber: "NaN is not allowed"
//   - ErrNotFinite: "Infinity is not allowed"
//   - ErrInvalidUnicode: "Strings must be valid Unicode and not contain any surrogate pairs"
//
// # Explicit Values
//
// Value is a closed variant for inputs built at runtime:
//
//	v := canon.Object(map[string]canon.Value{
//	    "id":   canon.Number(42),
//	    "tags": canon.Array(canon.String("a"), canon.String("b")),
//	    "gone": canon.Absent(),
//	})
//
// # Conversion Hooks
//
// Types can replace their own encoding by implementing Canonicaler. The
// returned value is encoded in place of the receiver:
//
//	func (u User) Canonical() (any, error) {
//	    return map[string]any{"id": u.ID, "email": u.Email}, nil
//	}
//
// json.Marshaler and encoding.TextMarshaler are honored the same way.
//
// # Struct Tags
//
// Struct fields are named by the canon tag, then the json tag:
//
//	type Event struct {
//	    ID   string `canon:"id"`
//	    Note string `json:"note,omitempty"`
//	    Raw  []byte `canon:"-"`
//	}
//
// # Digests and Identity
//
//	sum, _ := canon.Digest(v, canon.HashSHA256)
//	id, _ := canon.UUID(v)
//
// # Processors
//
// Processor[T] binds a type to a codec and hashers and reports each
// operation through capitan signals:
//
//	proc, _ := canon.NewProcessor[Event]()
//	proc.SetCodec(yaml.New())
//	data, _ := proc.Encode(ctx, &event)
//	norm, _ := proc.Canonicalize(ctx, yamlPayload)
//
// # Codec Providers
//
// The following codecs are available as subpackages:
//
//   - json - JSON (application/json), canonical on marshal
//   - yaml - YAML (application/yaml)
//   - msgpack - MessagePack (application/msgpack)
//   - cbor - CBOR (application/cbor)
package canon
