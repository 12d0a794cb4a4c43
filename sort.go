package canon

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// insertionSortLimit is the largest key count sorted by insertion sort.
// Above it the general-purpose sort is cheaper.
const insertionSortLimit = 200

// sortKeys orders keys ascending by UTF-16 code unit, in place.
func sortKeys(keys []string) {
	if len(keys) > insertionSortLimit {
		slices.SortFunc(keys, compareKeys)
		return
	}
	insertionSort(keys)
}

func insertionSort(keys []string) {
	for i := 1; i < len(keys); i++ {
		current := keys[i]
		j := i
		for j > 0 && compareKeys(keys[j-1], current) > 0 {
			keys[j] = keys[j-1]
			j--
		}
		keys[j] = current
	}
}

// compareKeys compares a and b as sequences of UTF-16 code units.
//
// UTF-8 byte order agrees with code point order, which differs from code
// unit order only where a supplementary character meets one in
// U+E000..U+FFFF: the supplementary character's high surrogate sorts first.
func compareKeys(a, b string) int {
	i := 0
	for i < len(a) && i < len(b) && a[i] == b[i] {
		i++
	}
	if i == len(a) || i == len(b) {
		return len(a) - len(b)
	}
	if a[i] < utf8.RuneSelf && b[i] < utf8.RuneSelf {
		return int(a[i]) - int(b[i])
	}

	// Back up to the start of the differing rune.
	for i > 0 && !utf8.RuneStart(a[i]) {
		i--
	}
	ra, na := utf8.DecodeRuneInString(a[i:])
	rb, nb := utf8.DecodeRuneInString(b[i:])
	if (ra == utf8.RuneError && na == 1) || (rb == utf8.RuneError && nb == 1) {
		return strings.Compare(a[i:], b[i:])
	}
	if ua, ub := leadUnit(ra), leadUnit(rb); ua != ub {
		return int(ua) - int(ub)
	}
	return int(ra) - int(rb)
}

// leadUnit returns the first UTF-16 code unit of r.
func leadUnit(r rune) rune {
	if r >= 0x10000 {
		return 0xD800 + (r-0x10000)>>10
	}
	return r
}
