package canon

import (
	"encoding"
	"encoding/base64"
	"reflect"
	"strconv"

	gojson "github.com/goccy/go-json"
)

// KindOf classifies v the way the encoder does before encoding it.
// Conversion hooks are not invoked: a value exposing one is an object.
func KindOf(v any) Kind {
	switch x := v.(type) {
	case nil:
		return KindNull
	case Value:
		return x.kind
	case *Value:
		if x == nil {
			return KindNull
		}
		return x.kind
	}

	rv := reflect.ValueOf(v)
	if isNil(rv) {
		if k := rv.Kind(); k == reflect.Func || k == reflect.Chan {
			return KindAbsent
		}
		return KindNull
	}
	if hasHook(v) {
		return KindObject
	}

	switch rv.Kind() {
	case reflect.Bool:
		return KindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.String:
		if _, ok := v.(numberLiteral); ok {
			return KindNumber
		}
		return KindString
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return KindString
		}
		return KindArray
	case reflect.Array:
		return KindArray
	case reflect.Map, reflect.Struct:
		return KindObject
	case reflect.Pointer, reflect.Interface:
		return KindOf(rv.Elem().Interface())
	}
	// Func, Chan, UnsafePointer, Complex64, Complex128.
	return KindAbsent
}

// hasHook reports whether v exposes a conversion capability.
func hasHook(v any) bool {
	switch v.(type) {
	case Canonicaler, gojson.Marshaler, encoding.TextMarshaler:
		return true
	}
	return false
}

// isNil reports whether rv is a nil reference. Invalid values count as nil.
func isNil(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// appendReflect encodes host values that have no fast path or hook.
func appendReflect(dst []byte, rv reflect.Value) ([]byte, error) {
	switch rv.Kind() {
	case reflect.Bool:
		return appendBool(dst, rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return appendNumber(dst, float64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return appendNumber(dst, float64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return appendNumber(dst, rv.Float())
	case reflect.String:
		return appendString(dst, rv.String())
	case reflect.Slice:
		if rv.IsNil() {
			return append(dst, "null"...), nil
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return appendString(dst, base64.StdEncoding.EncodeToString(rv.Bytes()))
		}
		return appendSeq(dst, rv)
	case reflect.Array:
		return appendSeq(dst, rv)
	case reflect.Map:
		if rv.IsNil() {
			return append(dst, "null"...), nil
		}
		return appendMap(dst, rv)
	case reflect.Struct:
		return appendStruct(dst, rv)
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return append(dst, "null"...), nil
		}
		return appendValue(dst, rv.Elem().Interface())
	}
	// Absent kinds and invalid values encode as null when standalone.
	return append(dst, "null"...), nil
}

func appendSeq(dst []byte, rv reflect.Value) ([]byte, error) {
	var err error
	dst = append(dst, '[')
	for i := 0; i < rv.Len(); i++ {
		if i > 0 {
			dst = append(dst, ',')
		}
		if dst, err = appendValue(dst, rv.Index(i).Interface()); err != nil {
			return dst, err
		}
	}
	return append(dst, ']'), nil
}

func appendMap(dst []byte, rv reflect.Value) ([]byte, error) {
	fields := make(map[string]any, rv.Len())
	keys := make([]string, 0, rv.Len())

	iter := rv.MapRange()
	for iter.Next() {
		key, ok, err := mapKey(iter.Key())
		if err != nil {
			return dst, err
		}
		if !ok {
			continue
		}
		if _, dup := fields[key]; dup {
			return dst, newDuplicateKeyError(ErrDuplicateKey, key)
		}
		fields[key] = iter.Value().Interface()
		keys = append(keys, key)
	}
	return appendObject(dst, keys, fields)
}

// mapKey coerces a map key to its property name. Keys of kinds that have no
// string form are reported as not ok and skipped by the caller.
func mapKey(k reflect.Value) (string, bool, error) {
	if k.Kind() == reflect.Interface {
		if k.IsNil() {
			return "", false, nil
		}
		k = k.Elem()
	}
	if k.Kind() == reflect.String {
		return k.String(), true, nil
	}
	if k.Kind() != reflect.Pointer || !k.IsNil() {
		if tm, ok := k.Interface().(encoding.TextMarshaler); ok {
			text, err := tm.MarshalText()
			if err != nil {
				return "", false, newHookError(k.Type().String(), err)
			}
			return string(text), true, nil
		}
	}
	switch k.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(k.Int(), 10), true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(k.Uint(), 10), true, nil
	case reflect.Float32, reflect.Float64:
		return formatKeyNumber(k.Float()), true, nil
	case reflect.Bool:
		return strconv.FormatBool(k.Bool()), true, nil
	}
	return "", false, nil
}

func appendStruct(dst []byte, rv reflect.Value) ([]byte, error) {
	plan := structFields(rv.Type())
	fields := make(map[string]any, len(plan))
	keys := make([]string, 0, len(plan))

	for _, f := range plan {
		fv, ok := fieldByIndex(rv, f.index)
		if !ok {
			continue
		}
		if f.omitEmpty && isEmptyValue(fv) {
			continue
		}
		fields[f.name] = fv.Interface()
		keys = append(keys, f.name)
	}
	return appendObject(dst, keys, fields)
}

// fieldByIndex walks index through embedded pointers, reporting false when
// a nil embedded pointer hides the field.
func fieldByIndex(rv reflect.Value, index []int) (reflect.Value, bool) {
	for i, x := range index {
		if i > 0 && rv.Kind() == reflect.Pointer {
			if rv.IsNil() {
				return reflect.Value{}, false
			}
			rv = rv.Elem()
		}
		rv = rv.Field(x)
	}
	return rv, true
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Interface, reflect.Pointer:
		return v.IsZero()
	}
	return false
}
