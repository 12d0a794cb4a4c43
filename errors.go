package canon

import (
	"errors"
	"fmt"
)

// Encoding errors. Their messages are part of the output contract and are
// returned unwrapped by Encode, Marshal and Append.
var (
	// ErrNotANumber indicates a NaN number was encountered.
	ErrNotANumber = errors.New("NaN is not allowed")

	// ErrNotFinite indicates a positive or negative infinity was encountered.
	ErrNotFinite = errors.New("Infinity is not allowed")

	// ErrInvalidUnicode indicates a string that is not well-formed Unicode.
	// In Go this is any invalid UTF-8, which includes encoded lone surrogates.
	ErrInvalidUnicode = errors.New("Strings must be valid Unicode and not contain any surrogate pairs")
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrHook indicates a conversion hook returned an error.
	ErrHook = errors.New("conversion hook failed")

	// ErrDuplicateKey indicates two map keys coerced to the same string.
	ErrDuplicateKey = errors.New("duplicate object key")

	// ErrMissingHasher indicates a required hasher was not registered.
	ErrMissingHasher = errors.New("missing hasher")

	// ErrMissingCodec indicates a processor operation needed a codec and none was set.
	ErrMissingCodec = errors.New("missing codec")

	// ErrInvalidTag indicates a struct tag has an invalid format or value.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")

	// ErrHash indicates hashing of canonical output failed.
	ErrHash = errors.New("hash failed")
)

// HookError reports a failed conversion hook.
type HookError struct {
	Type  string // Go type whose hook failed
	Cause error  // Error returned by the hook
}

func (e *HookError) Error() string {
	return fmt.Sprintf("%s for %s: %v", ErrHook.Error(), e.Type, e.Cause)
}

// Unwrap exposes both ErrHook and the hook's own error to errors.Is.
func (e *HookError) Unwrap() []error {
	return []error{ErrHook, e.Cause}
}

// DuplicateKeyError reports two map keys that coerce to the same property name.
type DuplicateKeyError struct {
	Err error  // Underlying sentinel error (ErrDuplicateKey)
	Key string // Coerced key string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s %q", e.Err.Error(), e.Key)
}

func (e *DuplicateKeyError) Unwrap() error {
	return e.Err
}

// ConfigError represents a processor configuration error.
// It wraps a sentinel error with additional context about the field and algorithm.
type ConfigError struct {
	Err       error  // Underlying sentinel error (ErrMissingHasher, ErrInvalidTag)
	Field     string // Field name that triggered the error
	Algorithm string // Algorithm or option that was missing/invalid
}

func (e *ConfigError) Error() string {
	if e.Field != "" && e.Algorithm != "" {
		return fmt.Sprintf("%s for algorithm %q (field %s)", e.Err.Error(), e.Algorithm, e.Field)
	}
	if e.Algorithm != "" {
		return fmt.Sprintf("%s for algorithm %q", e.Err.Error(), e.Algorithm)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s (field %s)", e.Err.Error(), e.Field)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal, ErrMissingCodec)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

func newHookError(typ string, cause error) error {
	return &HookError{Type: typ, Cause: cause}
}

func newDuplicateKeyError(sentinel error, key string) error {
	return &DuplicateKeyError{Err: sentinel, Key: key}
}

// newConfigError creates a ConfigError for missing handler scenarios.
func newConfigError(sentinel error, algorithm, field string) error {
	return &ConfigError{
		Err:       sentinel,
		Algorithm: algorithm,
		Field:     field,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
