package canon

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"
	"unicode/utf16"
)

// utf16Less is the reference order: compare the strings as UTF-16 code units.
func utf16Less(a, b string) int {
	return slices.Compare(utf16.Encode([]rune(a)), utf16.Encode([]rune(b)))
}

func randomKeys(r *rand.Rand, n int) []string {
	alphabet := []rune{'a', 'b', 'Z', '0', '_', '\u00e9', '\u00df', '\uff61', '\ue000', '\U0001F600', '\U00010000'}
	keys := make([]string, 0, n)
	seen := make(map[string]bool, n)
	for len(keys) < n {
		runes := make([]rune, 1+r.IntN(6))
		for i := range runes {
			runes[i] = alphabet[r.IntN(len(alphabet))]
		}
		k := string(runes)
		if seen[k] {
			continue
		}
		seen[k] = true
		keys = append(keys, k)
	}
	return keys
}

func TestSortKeys_BranchesAgree(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for _, n := range []int{0, 1, 2, 10, 199, 200, 201, 202, 1000, 5000} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			keys := randomKeys(r, n)

			insertion := slices.Clone(keys)
			insertionSort(insertion)

			general := slices.Clone(keys)
			slices.SortFunc(general, compareKeys)

			dispatched := slices.Clone(keys)
			sortKeys(dispatched)

			reference := slices.Clone(keys)
			slices.SortFunc(reference, utf16Less)

			if !slices.Equal(insertion, general) {
				t.Error("insertion sort and general sort disagree")
			}
			if !slices.Equal(dispatched, reference) {
				t.Error("sortKeys disagrees with UTF-16 code unit order")
			}
		})
	}
}

func TestCompareKeys(t *testing.T) {
	tests := []struct {
		a, b string
		want int // sign
	}{
		{"a", "b", -1},
		{"b", "a", 1},
		{"a", "a", 0},
		{"", "a", -1},
		{"a", "ab", -1},
		{"Z", "a", -1},
		{"é", "z", 1},
		{"\U0001F600", "\uff61", -1},
		{"\uff61", "\U0001F600", 1},
		{"\U00010000", "\U0001F600", -1},
		{"x\U0001F600", "x\ue000", -1},
		{"x\U0001F600", "x", 1},
		{"é", "ê", -1},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q vs %q", tt.a, tt.b), func(t *testing.T) {
			got := compareKeys(tt.a, tt.b)
			if sign(got) != tt.want {
				t.Errorf("compareKeys() = %d, want sign %d", got, tt.want)
			}
			if sign(got) != sign(utf16Less(tt.a, tt.b)) {
				t.Errorf("compareKeys() disagrees with UTF-16 order")
			}
		})
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

func TestInsertionSort_InPlace(t *testing.T) {
	keys := []string{"c", "a", "b"}
	insertionSort(keys)
	if !slices.Equal(keys, []string{"a", "b", "c"}) {
		t.Errorf("insertionSort() = %v", keys)
	}
}
