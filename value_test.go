package canon

import (
	"errors"
	"math"
	"testing"
)

func TestValue_Constructors(t *testing.T) {
	tests := []struct {
		name  string
		input Value
		kind  Kind
		want  string
	}{
		{"zero", Value{}, KindAbsent, `null`},
		{"absent", Absent(), KindAbsent, `null`},
		{"null", Null(), KindNull, `null`},
		{"bool", Bool(true), KindBool, `true`},
		{"number", Number(2.5), KindNumber, `2.5`},
		{"string", String("s"), KindString, `"s"`},
		{"array", Array(Number(1), Absent(), Null()), KindArray, `[1,null,null]`},
		{"empty array", Array(), KindArray, `[]`},
		{"object", Object(map[string]Value{"b": Bool(false), "a": Absent(), "c": Null()}), KindObject, `{"b":false,"c":null}`},
		{"empty object", Object(nil), KindObject, `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.input.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", tt.input.Kind(), tt.kind)
			}
			got, err := Encode(tt.input)
			if err != nil {
				t.Fatalf("Encode() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Encode() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestValue_Copies(t *testing.T) {
	items := []Value{Number(1)}
	arr := Array(items...)
	items[0] = Number(2)
	if got, _ := Encode(arr); got != `[1]` {
		t.Errorf("Array() aliases its input: %s", got)
	}

	fields := map[string]Value{"a": Number(1)}
	obj := Object(fields)
	fields["b"] = Number(2)
	if got, _ := Encode(obj); got != `{"a":1}` {
		t.Errorf("Object() aliases its input: %s", got)
	}
}

func TestValue_Len(t *testing.T) {
	if n := Array(Null(), Null()).Len(); n != 2 {
		t.Errorf("Array Len() = %d", n)
	}
	if n := Object(map[string]Value{"a": Null()}).Len(); n != 1 {
		t.Errorf("Object Len() = %d", n)
	}
	if n := String("abc").Len(); n != 0 {
		t.Errorf("String Len() = %d", n)
	}
}

func TestValue_WithHook(t *testing.T) {
	obj := Object(map[string]Value{"ignored": Number(1)})
	hooked := obj.WithHook(CanonicalFunc(func() (any, error) {
		return map[string]any{"b": 2, "a": 1}, nil
	}))

	got, err := Encode(hooked)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if got != `{"a":1,"b":2}` {
		t.Errorf("Encode() = %s", got)
	}

	// The original is unchanged.
	if got, _ := Encode(obj); got != `{"ignored":1}` {
		t.Errorf("WithHook() modified the receiver: %s", got)
	}

	// A nil hook clears it.
	if got, _ := Encode(hooked.WithHook(nil)); got != `{"ignored":1}` {
		t.Errorf("WithHook(nil) = %s", got)
	}
	var nilFunc CanonicalFunc
	if got, _ := Encode(hooked.WithHook(nilFunc)); got != `{"ignored":1}` {
		t.Errorf("WithHook(nil func) = %s", got)
	}
}

func TestValue_WithHookNonObject(t *testing.T) {
	v := String("s").WithHook(CanonicalFunc(func() (any, error) { return 1, nil }))
	if got, _ := Encode(v); got != `"s"` {
		t.Errorf("hook on a string should be ignored, got %s", got)
	}
}

func TestValue_HookError(t *testing.T) {
	cause := errors.New("bad")
	v := Object(nil).WithHook(CanonicalFunc(func() (any, error) { return nil, cause }))
	_, err := Encode(Array(v))
	var hookErr *HookError
	if !errors.As(err, &hookErr) {
		t.Fatalf("error = %v, want *HookError", err)
	}
	if hookErr.Type != "canon.Value" {
		t.Errorf("Type = %q", hookErr.Type)
	}
}

func TestValue_NumberValidatedAtEncode(t *testing.T) {
	v := Number(math.NaN())
	if v.Kind() != KindNumber {
		t.Errorf("Kind() = %v", v.Kind())
	}
	if _, err := Encode(v); err != ErrNotANumber {
		t.Errorf("Encode() error = %v", err)
	}
}

func TestValue_MarshalJSON(t *testing.T) {
	v := Object(map[string]Value{"z": Number(1), "a": Number(2)})
	data, err := v.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error: %v", err)
	}
	if string(data) != `{"a":2,"z":1}` {
		t.Errorf("MarshalJSON() = %s", data)
	}
}

func TestValue_PointerInput(t *testing.T) {
	v := Array(Bool(true))
	if got, _ := Encode(&v); got != `[true]` {
		t.Errorf("Encode(&v) = %s", got)
	}
}

func TestKind_String(t *testing.T) {
	tests := map[Kind]string{
		KindAbsent: "absent",
		KindNull:   "null",
		KindBool:   "bool",
		KindNumber: "number",
		KindString: "string",
		KindArray:  "array",
		KindObject: "object",
		Kind(99):   "unknown",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
