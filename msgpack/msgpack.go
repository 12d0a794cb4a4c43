// Package msgpack provides a MessagePack codec implementation.
//
// Struct fields honor json tags. Maps keyed by strings are written with
// sorted keys when they are the value itself or sit inside other maps and
// slices; maps held in struct fields and maps with other key types keep
// the encoder's iteration order.
package msgpack

import (
	"bytes"
	"reflect"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/zoobzio/canon"
)

// msgpackCodec implements canon.Codec for MessagePack.
type msgpackCodec struct{}

// New returns a MessagePack codec.
func New() canon.Codec {
	return &msgpackCodec{}
}

// ContentType returns the MIME type for MessagePack.
func (c *msgpackCodec) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes v as MessagePack.
func (c *msgpackCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(sortable(v)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// sortable rewrites string-keyed maps as map[string]any, the map shape the
// encoder sorts, descending through maps and slices.
func sortable(v any) any {
	switch v.(type) {
	case msgpack.CustomEncoder, msgpack.Marshaler:
		return v
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() || rv.Type().Key().Kind() != reflect.String {
			return v
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = sortable(iter.Value().Interface())
		}
		return out
	case reflect.Slice:
		if rv.IsNil() || rv.Type().Elem().Kind() == reflect.Uint8 {
			return v
		}
		switch rv.Type().Elem().Kind() {
		case reflect.Interface, reflect.Map, reflect.Slice:
		default:
			return v
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = sortable(rv.Index(i).Interface())
		}
		return out
	}
	return v
}

// Unmarshal decodes MessagePack data into v. Untyped integers decode as
// int64 or uint64 and floats as float64.
func (c *msgpackCodec) Unmarshal(data []byte, v any) error {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.UseLooseInterfaceDecoding(true)
	dec.SetCustomStructTag("json")
	return dec.Decode(v)
}

// Canonicalize returns the canonical JSON encoding of a MessagePack payload.
func Canonicalize(data []byte) ([]byte, error) {
	return canon.Canonicalize(New(), data)
}
