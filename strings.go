package canon

import (
	"unicode/utf8"

	"github.com/go-json-experiment/json/jsontext"
)

// fastPathLimit bounds the strings that may skip the escaping pass.
const fastPathLimit = 5000

// appendString validates s and appends it as a JSON string literal.
func appendString(dst []byte, s string) ([]byte, error) {
	if !utf8.ValidString(s) {
		return dst, ErrInvalidUnicode
	}
	if len(s) < fastPathLimit && !needsEscape(s) {
		dst = append(dst, '"')
		dst = append(dst, s...)
		return append(dst, '"'), nil
	}
	return appendQuoted(dst, s)
}

// appendQuoted is the escaping path. It produces the minimal form:
// quote, backslash and control characters are escaped, everything else is
// copied through as UTF-8.
func appendQuoted(dst []byte, s string) ([]byte, error) {
	out, err := jsontext.AppendQuote(dst, s)
	if err != nil {
		return dst, ErrInvalidUnicode
	}
	return out, nil
}

// needsEscape reports whether s holds a control character, '"' or '\'.
// Valid UTF-8 never encodes a surrogate, so no multi-byte check is needed.
func needsEscape(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < 0x20 || c == '"' || c == '\\' {
			return true
		}
	}
	return false
}
