package msgpack

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/zoobzio/canon"
)

func TestNew(t *testing.T) {
	c := New()
	if c == nil {
		t.Error("New() should return non-nil codec")
	}
}

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/msgpack" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/msgpack")
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	c := New()

	type TestStruct struct {
		Name  string `json:"name"`
		Value int    `json:"value"`
	}

	original := TestStruct{Name: "test", Value: 42}

	data, err := c.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var restored TestStruct
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if restored != original {
		t.Errorf("round-trip failed: got %+v, want %+v", restored, original)
	}
}

func TestMarshal_SortedKeys(t *testing.T) {
	c := New()

	m := map[string]int{}
	for _, k := range []string{"d", "a", "c", "b", "e", "f", "g", "h"} {
		m[k] = len(k)
	}
	tests := []struct {
		name  string
		input any
	}{
		{"map of ints", m},
		{"nested maps", map[string]map[string]int{"x": m, "y": m}},
		{"maps in slice", []map[string]int{m, m}},
		{"maps in interface slice", []any{m, "s", []any{m}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, err := c.Marshal(tt.input)
			if err != nil {
				t.Fatalf("Marshal() error: %v", err)
			}
			for i := 0; i < 20; i++ {
				again, _ := c.Marshal(tt.input)
				if !bytes.Equal(first, again) {
					t.Fatal("Marshal() output is not deterministic")
				}
			}
		})
	}
}

func TestMarshal_SortedKeysOrder(t *testing.T) {
	c := New()
	data, err := c.Marshal(map[string]int{"c": 3, "b": 2, "a": 1, "d": 4})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	dec := msgpack.NewDecoder(bytes.NewReader(data))
	n, err := dec.DecodeMapLen()
	if err != nil {
		t.Fatalf("DecodeMapLen() error: %v", err)
	}
	var keys []string
	for i := 0; i < n; i++ {
		key, err := dec.DecodeString()
		if err != nil {
			t.Fatalf("DecodeString() error: %v", err)
		}
		keys = append(keys, key)
		if err := dec.Skip(); err != nil {
			t.Fatalf("Skip() error: %v", err)
		}
	}
	if strings.Join(keys, ",") != "a,b,c,d" {
		t.Errorf("keys = %v, want sorted", keys)
	}
}

func TestMarshal_SortableRoundTrip(t *testing.T) {
	c := New()
	original := map[string][]int{"a": {1, 2}, "b": nil}

	data, err := c.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	var restored map[string][]int
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if len(restored["a"]) != 2 || restored["a"][1] != 2 || restored["b"] != nil {
		t.Errorf("round-trip failed: got %v", restored)
	}
}

func TestCanonicalize(t *testing.T) {
	c := New()
	data, err := c.Marshal(map[string]any{
		"b":     int64(-3),
		"a":     uint8(200),
		"f":     0.25,
		"s":     "text",
		"list":  []any{true, nil},
		"inner": map[string]any{"z": 1, "y": 2},
	})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	got, err := Canonicalize(data)
	if err != nil {
		t.Fatalf("Canonicalize() error: %v", err)
	}
	want := `{"a":200,"b":-3,"f":0.25,"inner":{"y":2,"z":1},"list":[true,null],"s":"text"}`
	if string(got) != want {
		t.Errorf("Canonicalize() = %s, want %s", got, want)
	}
}

func TestCanonicalize_Invalid(t *testing.T) {
	_, err := Canonicalize([]byte{0xc1})
	if !errors.Is(err, canon.ErrUnmarshal) {
		t.Errorf("Canonicalize() error = %v, want ErrUnmarshal", err)
	}
}
