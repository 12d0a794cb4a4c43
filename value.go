package canon

import (
	"maps"
	"reflect"
)

// Kind classifies a value for encoding.
type Kind uint8

// Value kinds.
const (
	// KindAbsent covers missing and unrepresentable values (funcs, channels,
	// complex numbers). Standalone or in an array it encodes as null; as an
	// object field it is omitted.
	KindAbsent Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

var kindNames = [...]string{
	KindAbsent: "absent",
	KindNull:   "null",
	KindBool:   "bool",
	KindNumber: "number",
	KindString: "string",
	KindArray:  "array",
	KindObject: "object",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Value is an explicit, immutable representation of an encodable value.
// The zero Value is Absent.
//
// Callers that already hold Go maps, slices and structs can pass them to
// Encode directly; Value exists for building inputs whose shape is only
// known at runtime and for attaching conversion hooks to objects.
type Value struct {
	kind   Kind
	b      bool
	num    float64
	str    string
	items  []Value
	fields map[string]Value
	hook   Canonicaler
}

// Absent returns the absent value.
func Absent() Value { return Value{} }

// Null returns the explicit null value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number returns a numeric value. NaN and infinities are accepted here and
// rejected at encode time.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// String returns a string value. Validity is checked at encode time.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Array returns an ordered sequence of values.
func Array(items ...Value) Value {
	return Value{kind: KindArray, items: append([]Value(nil), items...)}
}

// Object returns a keyed mapping. The map is copied; insertion order is
// irrelevant to the encoding.
func Object(fields map[string]Value) Value {
	return Value{kind: KindObject, fields: maps.Clone(fields)}
}

// WithHook returns a copy of v carrying a conversion hook. When encoded,
// the hook's result replaces the value's own fields entirely.
// Hooks are only honored on objects; other kinds return v unchanged.
// A nil hook removes any hook already attached.
func (v Value) WithHook(h Canonicaler) Value {
	if v.kind != KindObject {
		return v
	}
	if h == nil || isNil(reflect.ValueOf(h)) {
		v.hook = nil
		return v
	}
	v.hook = h
	return v
}

// Kind reports the value's case.
func (v Value) Kind() Kind { return v.kind }

// Len returns the number of array items or object fields.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.items)
	case KindObject:
		return len(v.fields)
	}
	return 0
}

// MarshalJSON implements json.Marshaler with the canonical encoding, so a
// Value embedded in a document handled by another JSON library stays canonical.
func (v Value) MarshalJSON() ([]byte, error) {
	return Marshal(v)
}
