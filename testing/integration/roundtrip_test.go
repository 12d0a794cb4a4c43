package integration

import (
	"context"
	"testing"

	"github.com/zoobzio/canon"
	"github.com/zoobzio/canon/cbor"
	"github.com/zoobzio/canon/json"
	"github.com/zoobzio/canon/msgpack"
	canontest "github.com/zoobzio/canon/testing"
	"github.com/zoobzio/canon/yaml"
)

var codecs = map[string]canon.Codec{
	"json":    json.New(),
	"yaml":    yaml.New(),
	"msgpack": msgpack.New(),
	"cbor":    cbor.New(),
}

func TestCanonicalize_AcrossCodecs(t *testing.T) {
	doc := canontest.SampleDocument()

	for name, c := range codecs {
		t.Run(name, func(t *testing.T) {
			payload, err := c.Marshal(doc)
			if err != nil {
				t.Fatalf("Marshal() error: %v", err)
			}
			got, err := canon.Canonicalize(c, payload)
			if err != nil {
				t.Fatalf("Canonicalize() error: %v", err)
			}
			if string(got) != canontest.SampleCanonical {
				t.Errorf("Canonicalize() = %s, want %s", got, canontest.SampleCanonical)
			}
		})
	}
}

func TestDigest_AcrossCodecs(t *testing.T) {
	want, err := canon.Digest(canontest.SampleDocument(), canon.HashSHA256)
	if err != nil {
		t.Fatalf("Digest() error: %v", err)
	}

	for name, c := range codecs {
		t.Run(name, func(t *testing.T) {
			payload, err := c.Marshal(canontest.SampleDocument())
			if err != nil {
				t.Fatalf("Marshal() error: %v", err)
			}
			var decoded any
			if err := c.Unmarshal(payload, &decoded); err != nil {
				t.Fatalf("Unmarshal() error: %v", err)
			}
			got, err := canon.Digest(decoded, canon.HashSHA256)
			if err != nil {
				t.Fatalf("Digest() error: %v", err)
			}
			if got != want {
				t.Errorf("Digest() = %s, want %s", got, want)
			}
		})
	}
}

func TestProcessor_Canonicalize_AcrossCodecs(t *testing.T) {
	event := canontest.Event{
		ID:       "e-1",
		Kind:     "login",
		Actor:    canontest.SimpleUser{ID: "u-1", Name: "Alice"},
		Labels:   map[string]string{"region": "eu", "env": "prod"},
		Sequence: 3,
		Note:     "first",
	}
	const want = `{"actor":{"id":"u-1","name":"Alice"},"id":"e-1","kind":"login","labels":{"env":"prod","region":"eu"},"note":"first","seq":3}`

	encoder, err := canon.NewProcessor[canontest.Event]()
	if err != nil {
		t.Fatalf("NewProcessor() error: %v", err)
	}
	direct, err := encoder.Encode(context.Background(), &event)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if string(direct) != want {
		t.Fatalf("Encode() = %s, want %s", direct, want)
	}

	// Payloads produced by the canonical JSON codec decode back into the
	// same value through the processor.
	proc, err := canon.NewProcessor[canontest.Event]()
	if err != nil {
		t.Fatalf("NewProcessor() error: %v", err)
	}
	proc.SetCodec(json.New())

	payload, err := json.New().Marshal(event)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(payload) != want {
		t.Errorf("json.Marshal() = %s, want %s", payload, want)
	}
	id1, err := proc.UUID(context.Background(), &event)
	if err != nil {
		t.Fatalf("UUID() error: %v", err)
	}
	id2, err := canon.UUID(event)
	if err != nil {
		t.Fatalf("UUID() error: %v", err)
	}
	if id1 != id2 {
		t.Errorf("UUID mismatch: %s vs %s", id1, id2)
	}
}

func TestRegistry_Use(t *testing.T) {
	canon.Reset()

	for name, c := range codecs {
		t.Run(name, func(t *testing.T) {
			proc, err := canon.Use[map[string]any](c)
			if err != nil {
				t.Fatalf("Use() error: %v", err)
			}
			payload, err := c.Marshal(canontest.SampleDocument())
			if err != nil {
				t.Fatalf("Marshal() error: %v", err)
			}
			got, err := proc.Canonicalize(context.Background(), payload)
			if err != nil {
				t.Fatalf("Canonicalize() error: %v", err)
			}
			if string(got) != canontest.SampleCanonical {
				t.Errorf("Canonicalize() = %s, want %s", got, canontest.SampleCanonical)
			}
		})
	}
}
