// Package testing provides test utilities for canon.
package testing

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/zoobzio/canon"
)

// Fixture pairs a JSON input document with its expected canonical output.
type Fixture struct {
	Name   string
	Input  []byte
	Output string
}

// LoadFixtures reads every file in dir/input and the file of the same name
// in dir/output. Expected outputs are trimmed of surrounding whitespace.
func LoadFixtures(tb testing.TB, dir string) []Fixture {
	tb.Helper()

	entries, err := os.ReadDir(filepath.Join(dir, "input"))
	if err != nil {
		tb.Fatalf("read fixtures: %v", err)
	}

	fixtures := make([]Fixture, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		input, err := os.ReadFile(filepath.Join(dir, "input", e.Name()))
		if err != nil {
			tb.Fatalf("read input %s: %v", e.Name(), err)
		}
		output, err := os.ReadFile(filepath.Join(dir, "output", e.Name()))
		if err != nil {
			tb.Fatalf("read output %s: %v", e.Name(), err)
		}
		fixtures = append(fixtures, Fixture{
			Name:   e.Name(),
			Input:  input,
			Output: strings.TrimSpace(string(output)),
		})
	}
	sort.Slice(fixtures, func(i, j int) bool { return fixtures[i].Name < fixtures[j].Name })
	return fixtures
}

// SimpleUser is a test type with plain json tags.
type SimpleUser struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Event is a test type exercising canon tags, omitempty and nesting.
type Event struct {
	ID       string            `canon:"id"`
	Kind     string            `canon:"kind"`
	Actor    SimpleUser        `canon:"actor"`
	Labels   map[string]string `canon:"labels,omitempty"`
	Sequence int               `canon:"seq"`
	Note     string            `json:"note,omitempty"`
	Internal string            `canon:"-"`
}

// Pair is a test type whose conversion hook lists its fields in reverse
// order; the canonical encoding must not depend on that order.
type Pair struct {
	A int
	B int
}

// Canonical implements canon.Canonicaler.
func (p Pair) Canonical() (any, error) {
	return map[string]any{"b": p.B, "a": p.A}, nil
}

// SampleDocument returns a document that every codec can represent.
func SampleDocument() map[string]any {
	return map[string]any{
		"name":    "canon",
		"version": 3,
		"ratio":   0.5,
		"enabled": true,
		"missing": nil,
		"tags":    []any{"b", "a", "c"},
		"owner": map[string]any{
			"id":    "u-1",
			"email": "alice@example.com",
		},
	}
}

// SampleCanonical is the canonical encoding of SampleDocument.
const SampleCanonical = `{"enabled":true,"missing":null,"name":"canon","owner":{"email":"alice@example.com","id":"u-1"},"ratio":0.5,"tags":["b","a","c"],"version":3}`

// MustEncode encodes v or fails the test.
func MustEncode(tb testing.TB, v any) string {
	tb.Helper()
	s, err := canon.Encode(v)
	if err != nil {
		tb.Fatalf("Encode() error: %v", err)
	}
	return s
}
