package canon

import (
	"math"
	"strconv"
)

// appendNumber appends f using the ECMAScript Number-to-String rules that
// JSON number serialization follows: shortest round-trip digits, decimal
// notation for 1e-6 <= |f| < 1e21 and exponent notation elsewhere.
func appendNumber(dst []byte, f float64) ([]byte, error) {
	if math.IsNaN(f) {
		return dst, ErrNotANumber
	}
	if math.IsInf(f, 0) {
		return dst, ErrNotFinite
	}
	return appendFloat(dst, f), nil
}

// appendFloat formats a finite f. Negative zero renders as 0.
func appendFloat(dst []byte, f float64) []byte {
	if f == 0 {
		return append(dst, '0')
	}
	abs := math.Abs(f)
	fmt := byte('f')
	if abs < 1e-6 || abs >= 1e21 {
		fmt = 'e'
	}
	dst = strconv.AppendFloat(dst, f, fmt, -1, 64)
	if fmt == 'e' {
		// Clean up e-09 to e-9.
		n := len(dst)
		if n >= 4 && dst[n-4] == 'e' && dst[n-3] == '-' && dst[n-2] == '0' {
			dst[n-2] = dst[n-1]
			dst = dst[:n-1]
		}
	}
	return dst
}

// formatKeyNumber spells f the way a numeric property key is converted to a
// string: like appendFloat, but non-finite values become words instead of
// errors.
func formatKeyNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return string(appendFloat(nil, f))
}
