package canon

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/zoobzio/sentinel"
)

// Processor binds a type to a wire codec and a set of hashers.
// It canonicalizes values of T, digests and identifies them, and decodes
// payloads into T before canonicalizing them, emitting signals for each
// operation.
//
// Processors are safe for concurrent use. SetCodec and SetHasher may be
// called at any time.
type Processor[T any] struct {
	mu      sync.RWMutex
	codec   Codec
	hashers map[HashAlgo]Hasher

	// Type metadata
	typeName string
}

// NewProcessor creates a new Processor for type T.
//
// Struct types are scanned once; canon tags with unknown options, invalid
// UTF-8 names or names used twice in one struct are rejected with
// ErrInvalidTag. The processor starts with the built-in hashers and no
// codec; set one with SetCodec before calling Decode or Canonicalize.
func NewProcessor[T any]() (*Processor[T], error) {
	return newProcessor[T](nil)
}

// newProcessor builds a processor bound to codec, which may be nil.
func newProcessor[T any](codec Codec) (*Processor[T], error) {
	typeName, err := scanType[T]()
	if err != nil {
		return nil, err
	}

	p := &Processor[T]{
		codec:    codec,
		hashers:  builtinHashers(),
		typeName: typeName,
	}

	contentType := ""
	if codec != nil {
		contentType = codec.ContentType()
	}
	emitProcessorCreated(context.Background(), contentType, typeName)
	return p, nil
}

// SetCodec sets the codec used by Decode and Canonicalize.
// Returns the processor for chaining. Safe for concurrent use.
func (p *Processor[T]) SetCodec(c Codec) *Processor[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.codec = c
	return p
}

// SetHasher registers a hasher for the given algorithm, replacing any
// built-in one. A nil hasher removes the algorithm. Returns the processor
// for chaining. Safe for concurrent use.
func (p *Processor[T]) SetHasher(algo HashAlgo, h Hasher) *Processor[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	if h == nil {
		delete(p.hashers, algo)
		return p
	}
	p.hashers[algo] = h
	return p
}

// TypeName returns the name of T as reported in signals.
func (p *Processor[T]) TypeName() string {
	return p.typeName
}

// Encode returns the canonical encoding of obj. A nil obj encodes as null.
func (p *Processor[T]) Encode(ctx context.Context, obj *T) ([]byte, error) {
	start := time.Now()
	emitEncodeStart(ctx, p.typeName)

	var retErr error
	var retData []byte
	defer func() {
		emitEncodeComplete(ctx, p.typeName, len(retData), time.Since(start), retErr)
	}()

	retData, retErr = Marshal(obj)
	return retData, retErr
}

// Marshal writes obj in the processor codec's wire format. Use Encode for
// the canonical form.
func (p *Processor[T]) Marshal(ctx context.Context, obj *T) ([]byte, error) {
	p.mu.RLock()
	c := p.codec
	p.mu.RUnlock()
	if c == nil {
		return nil, newCodecError(ErrMissingCodec, nil)
	}

	start := time.Now()
	var retErr error
	var retData []byte
	defer func() {
		emitMarshalComplete(ctx, c.ContentType(), p.typeName, len(retData), time.Since(start), retErr)
	}()

	var v any
	if obj != nil {
		v = obj
	}
	data, err := c.Marshal(v)
	if err != nil {
		retErr = newCodecError(ErrMarshal, err)
		return nil, retErr
	}
	retData = data
	return retData, nil
}

// Digest returns the hex digest of obj's canonical encoding.
// An empty algo selects DefaultHashAlgo.
func (p *Processor[T]) Digest(ctx context.Context, obj *T, algo HashAlgo) (string, error) {
	if algo == "" {
		algo = DefaultHashAlgo
	}
	start := time.Now()

	var retErr error
	defer func() {
		emitDigestComplete(ctx, p.typeName, algo, time.Since(start), retErr)
	}()

	p.mu.RLock()
	h, ok := p.hashers[algo]
	p.mu.RUnlock()
	if !ok {
		retErr = newConfigError(ErrMissingHasher, string(algo), "")
		return "", retErr
	}

	data, err := Marshal(obj)
	if err != nil {
		retErr = err
		return "", retErr
	}

	sum, err := h.Hash(data)
	if err != nil {
		retErr = fmt.Errorf("%w: %s: %w", ErrHash, algo, err)
		return "", retErr
	}
	return sum, nil
}

// UUID returns the content-addressed identifier of obj.
func (p *Processor[T]) UUID(ctx context.Context, obj *T) (uuid.UUID, error) {
	data, err := p.Encode(ctx, obj)
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.NewSHA1(Namespace, data), nil
}

// Decode unmarshals data into a new T with the processor's codec.
func (p *Processor[T]) Decode(ctx context.Context, data []byte) (*T, error) {
	p.mu.RLock()
	c := p.codec
	p.mu.RUnlock()
	if c == nil {
		return nil, newCodecError(ErrMissingCodec, nil)
	}

	start := time.Now()
	emitDecodeStart(ctx, c.ContentType(), p.typeName)

	var retErr error
	defer func() {
		emitDecodeComplete(ctx, c.ContentType(), p.typeName, len(data), time.Since(start), retErr)
	}()

	var obj T
	if err := c.Unmarshal(data, &obj); err != nil {
		retErr = newCodecError(ErrUnmarshal, err)
		return nil, retErr
	}
	return &obj, nil
}

// Canonicalize decodes data into T and returns its canonical encoding.
// Members of the payload that T does not declare are dropped.
func (p *Processor[T]) Canonicalize(ctx context.Context, data []byte) ([]byte, error) {
	obj, err := p.Decode(ctx, data)
	if err != nil {
		return nil, err
	}
	return p.Encode(ctx, obj)
}

// scanType validates T's canon tags and returns its name.
func scanType[T any]() (string, error) {
	rt := reflect.TypeFor[T]()
	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt.Kind() != reflect.Struct {
		return rt.String(), nil
	}

	var spec sentinel.Metadata
	if reflect.TypeFor[T]().Kind() == reflect.Struct {
		spec = sentinel.Scan[T]()
	} else {
		spec = structMetadata(rt)
	}
	visited := map[reflect.Type]bool{rt: true}
	if err := validateFields(rt, spec, visited, ""); err != nil {
		return "", err
	}
	return spec.TypeName, nil
}

// validateFields recursively checks the canon tags of a struct and its
// nested struct fields.
func validateFields(rt reflect.Type, spec sentinel.Metadata, visited map[reflect.Type]bool, namePrefix string) error {
	names := make(map[string]string)
	for _, field := range spec.Fields {
		fullName := field.Name
		if namePrefix != "" {
			fullName = namePrefix + "." + field.Name
		}

		if tag, ok := canonTag(rt, field); ok && tag != "-" {
			name, opts := splitTag(tag)
			if !utf8.ValidString(name) {
				return newConfigError(ErrInvalidTag, "", fullName)
			}
			for _, opt := range strings.Split(opts, ",") {
				if opt != "" && !IsValidTagOption(opt) {
					return newConfigError(ErrInvalidTag, opt, fullName)
				}
			}
			if name != "" {
				if prev, dup := names[name]; dup {
					return newConfigError(ErrInvalidTag, name, prev+", "+fullName)
				}
				names[name] = fullName
			}
		}

		// Handle nested structs and pointers to structs
		nested := field.ReflectType
		if field.Kind == sentinel.KindPointer {
			nested = nested.Elem()
		}
		if nested.Kind() != reflect.Struct || visited[nested] {
			continue
		}
		visited[nested] = true
		if err := validateFields(nested, structMetadata(nested), visited, fullName); err != nil {
			return err
		}
	}
	return nil
}

// canonTag returns the field's canon tag, falling back to the struct tag
// when the metadata did not capture it.
func canonTag(rt reflect.Type, field sentinel.FieldMetadata) (string, bool) {
	if tag, ok := field.Tags["canon"]; ok {
		return tag, true
	}
	if len(field.Index) == 0 {
		return "", false
	}
	return rt.FieldByIndex(field.Index).Tag.Lookup("canon")
}
