package canon

// HashAlgo represents a supported digest algorithm.
// All algorithms are deterministic: equal canonical encodings always produce
// equal digests.
type HashAlgo string

const (
	// HashSHA256 uses SHA-256.
	HashSHA256 HashAlgo = "sha256"

	// HashSHA512 uses SHA-512.
	HashSHA512 HashAlgo = "sha512"

	// HashBLAKE2b256 uses unkeyed BLAKE2b with a 256-bit output.
	HashBLAKE2b256 HashAlgo = "blake2b-256"

	// HashBLAKE2b512 uses unkeyed BLAKE2b with a 512-bit output.
	HashBLAKE2b512 HashAlgo = "blake2b-512"

	// HashSHA3256 uses SHA3-256.
	HashSHA3256 HashAlgo = "sha3-256"
)

// DefaultHashAlgo is used when no algorithm is specified.
const DefaultHashAlgo = HashSHA256

// validHashAlgos contains all built-in hash algorithms.
var validHashAlgos = map[HashAlgo]bool{
	HashSHA256:     true,
	HashSHA512:     true,
	HashBLAKE2b256: true,
	HashBLAKE2b512: true,
	HashSHA3256:    true,
}

// validTagOptions contains the options accepted after a field name in a
// canon struct tag.
var validTagOptions = map[string]bool{
	"omitempty": true,
}

// IsValidHashAlgo returns true if the algorithm is a known hash algorithm.
func IsValidHashAlgo(algo HashAlgo) bool {
	return validHashAlgos[algo]
}

// IsValidTagOption returns true if option may follow a field name in a canon tag.
func IsValidTagOption(option string) bool {
	return validTagOptions[option]
}
