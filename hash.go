package canon

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Hasher performs deterministic one-way hashing of canonical output.
type Hasher interface {
	// Hash returns the hex-encoded digest of data.
	Hash(data []byte) (string, error)
}

// sha256Hasher implements SHA-256 hashing.
type sha256Hasher struct{}

// SHA256Hasher returns a SHA-256 hasher.
// The result is a hex-encoded 64-character string.
func SHA256Hasher() Hasher {
	return &sha256Hasher{}
}

func (h *sha256Hasher) Hash(data []byte) (string, error) {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// sha512Hasher implements SHA-512 hashing.
type sha512Hasher struct{}

// SHA512Hasher returns a SHA-512 hasher.
// The result is a hex-encoded 128-character string.
func SHA512Hasher() Hasher {
	return &sha512Hasher{}
}

func (h *sha512Hasher) Hash(data []byte) (string, error) {
	sum := sha512.Sum512(data)
	return hex.EncodeToString(sum[:]), nil
}

// sha3Hasher implements SHA3-256 hashing.
type sha3Hasher struct{}

// SHA3Hasher returns a SHA3-256 hasher.
// The result is a hex-encoded 64-character string.
func SHA3Hasher() Hasher {
	return &sha3Hasher{}
}

func (h *sha3Hasher) Hash(data []byte) (string, error) {
	sum := sha3.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// blake2bHasher implements BLAKE2b hashing, optionally keyed.
type blake2bHasher struct {
	size int
	key  []byte
}

// BLAKE2b256Hasher returns an unkeyed BLAKE2b-256 hasher.
func BLAKE2b256Hasher() Hasher {
	return &blake2bHasher{size: blake2b.Size256}
}

// BLAKE2b512Hasher returns an unkeyed BLAKE2b-512 hasher.
func BLAKE2b512Hasher() Hasher {
	return &blake2bHasher{size: blake2b.Size}
}

// BLAKE2bMAC returns a keyed BLAKE2b-256 hasher. The digest doubles as a
// message authentication code over the canonical encoding.
// Keys must be between 1 and 64 bytes.
func BLAKE2bMAC(key []byte) (Hasher, error) {
	if len(key) == 0 || len(key) > blake2b.Size {
		return nil, fmt.Errorf("%w: BLAKE2b key must be 1 to %d bytes, got %d", ErrHash, blake2b.Size, len(key))
	}
	return &blake2bHasher{size: blake2b.Size256, key: append([]byte(nil), key...)}, nil
}

func (h *blake2bHasher) Hash(data []byte) (string, error) {
	d, err := blake2b.New(h.size, h.key)
	if err != nil {
		return "", fmt.Errorf("blake2b: %w", err)
	}
	d.Write(data)
	return hex.EncodeToString(d.Sum(nil)), nil
}

// builtinHashers returns the default hasher registry.
func builtinHashers() map[HashAlgo]Hasher {
	return map[HashAlgo]Hasher{
		HashSHA256:     SHA256Hasher(),
		HashSHA512:     SHA512Hasher(),
		HashBLAKE2b256: BLAKE2b256Hasher(),
		HashBLAKE2b512: BLAKE2b512Hasher(),
		HashSHA3256:    SHA3Hasher(),
	}
}

// Digest returns the hex digest of v's canonical encoding using a built-in
// algorithm. An empty algo selects DefaultHashAlgo.
func Digest(v any, algo HashAlgo) (string, error) {
	if algo == "" {
		algo = DefaultHashAlgo
	}
	if !IsValidHashAlgo(algo) {
		return "", newConfigError(ErrMissingHasher, string(algo), "")
	}
	h := builtinHashers()[algo]
	data, err := Marshal(v)
	if err != nil {
		return "", err
	}
	sum, err := h.Hash(data)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHash, err)
	}
	return sum, nil
}
