package canon

import (
	"encoding"
	"maps"
	"math"
	"reflect"
	"slices"

	gojson "github.com/goccy/go-json"
)

// Encode returns the canonical encoding of v as a string.
// Structurally equal inputs always produce identical output, whatever the
// insertion order of their keys. The first invalid number or string found
// anywhere in v aborts the call; no partial output is returned.
func Encode(v any) (string, error) {
	b, err := appendValue(nil, v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Marshal returns the canonical encoding of v.
func Marshal(v any) ([]byte, error) {
	b, err := appendValue(make([]byte, 0, 64), v)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Append appends the canonical encoding of v to dst.
// On error dst is returned with its original length.
func Append(dst []byte, v any) ([]byte, error) {
	out, err := appendValue(dst, v)
	if err != nil {
		return dst, err
	}
	return out, nil
}

// numberLiteral matches decoded JSON number types such as json.Number.
type numberLiteral interface {
	Float64() (float64, error)
	String() string
}

// appendValue is the kind dispatcher.
func appendValue(dst []byte, v any) ([]byte, error) {
	switch x := v.(type) {
	case nil:
		return append(dst, "null"...), nil
	case Value:
		return appendTagged(dst, x)
	case *Value:
		if x == nil {
			return append(dst, "null"...), nil
		}
		return appendTagged(dst, *x)
	case bool:
		return appendBool(dst, x), nil
	case string:
		return appendString(dst, x)
	case float64:
		return appendNumber(dst, x)
	case int:
		return appendNumber(dst, float64(x))
	case []any:
		return appendSlice(dst, x)
	case map[string]any:
		return appendObject(dst, keysOf(x), x)
	}

	rv := reflect.ValueOf(v)
	if !isNil(rv) {
		switch h := v.(type) {
		case Canonicaler:
			out, err := h.Canonical()
			if err != nil {
				return dst, newHookError(rv.Type().String(), err)
			}
			return appendValue(dst, out)
		case gojson.Marshaler:
			raw, err := h.MarshalJSON()
			if err != nil {
				return dst, newHookError(rv.Type().String(), err)
			}
			var out any
			if err := gojson.Unmarshal(raw, &out); err != nil {
				return dst, newHookError(rv.Type().String(), err)
			}
			return appendValue(dst, out)
		case encoding.TextMarshaler:
			text, err := h.MarshalText()
			if err != nil {
				return dst, newHookError(rv.Type().String(), err)
			}
			return appendString(dst, string(text))
		case numberLiteral:
			f, err := h.Float64()
			if err != nil && !math.IsInf(f, 0) {
				return dst, newHookError(rv.Type().String(), err)
			}
			return appendNumber(dst, f)
		}
	}
	return appendReflect(dst, rv)
}

// appendTagged encodes an explicit Value.
func appendTagged(dst []byte, v Value) ([]byte, error) {
	switch v.kind {
	case KindBool:
		return appendBool(dst, v.b), nil
	case KindNumber:
		return appendNumber(dst, v.num)
	case KindString:
		return appendString(dst, v.str)
	case KindArray:
		return appendSlice(dst, v.items)
	case KindObject:
		if v.hook != nil {
			out, err := v.hook.Canonical()
			if err != nil {
				return dst, newHookError("canon.Value", err)
			}
			return appendValue(dst, out)
		}
		return appendObject(dst, keysOf(v.fields), v.fields)
	}
	return append(dst, "null"...), nil
}

func appendBool(dst []byte, b bool) []byte {
	if b {
		return append(dst, "true"...)
	}
	return append(dst, "false"...)
}

// appendSlice encodes items in order. Absent items still occupy their slot.
func appendSlice[V any](dst []byte, items []V) ([]byte, error) {
	var err error
	dst = append(dst, '[')
	for i := range items {
		if i > 0 {
			dst = append(dst, ',')
		}
		if dst, err = appendValue(dst, items[i]); err != nil {
			return dst, err
		}
	}
	return append(dst, ']'), nil
}

// appendObject sorts keys and encodes each field whose value is not Absent.
func appendObject[V any](dst []byte, keys []string, fields map[string]V) ([]byte, error) {
	sortKeys(keys)

	var err error
	dst = append(dst, '{')
	wrote := false
	for _, key := range keys {
		val := fields[key]
		if KindOf(val) == KindAbsent {
			continue
		}
		if wrote {
			dst = append(dst, ',')
		}
		wrote = true
		if dst, err = appendString(dst, key); err != nil {
			return dst, err
		}
		dst = append(dst, ':')
		if dst, err = appendValue(dst, val); err != nil {
			return dst, err
		}
	}
	return append(dst, '}'), nil
}

func keysOf[V any](m map[string]V) []string {
	return slices.Collect(maps.Keys(m))
}
