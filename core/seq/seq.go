// core/seq/seq.go
// Aligned-sequence helpers: normalization, strict A/C/G/T validation and
// pairwise mismatch counting. The model packages assume input that has
// been through Validate, so they never re-check alphabet membership.
package seq

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrLengthMismatch is returned whenever two sequences that must be
// aligned differ in length. Callers wrap it with the observed lengths.
var ErrLengthMismatch = errors.New("sequence length mismatch")

// Normalize strips whitespace and stray quote characters (common when
// sequences are pasted from spreadsheets) and uppercases the rest.
func Normalize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r):
			return -1
		case r == '\'' || r == '"' || r == '`':
			return -1
		default:
			return unicode.ToUpper(r)
		}
	}, s)
}

// Validate normalizes s and checks it against the strict A/C/G/T
// alphabet. Ambiguity codes are rejected: the substitution model has no
// probability assignment for them. The position in the error is 1-based.
func Validate(s string) (string, error) {
	n := Normalize(s)
	if n == "" {
		return "", errors.New("empty sequence")
	}
	for i := 0; i < len(n); i++ {
		switch n[i] {
		case 'A', 'C', 'G', 'T':
		default:
			return "", fmt.Errorf("invalid base %q at %d; allowed: A C G T", n[i], i+1)
		}
	}
	return n, nil
}

// Mismatches counts aligned sites where a and b carry different bases.
// Comparison is byte-wise, so both strings should be normalized first.
func Mismatches(a, b string) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}
	k := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			k++
		}
	}
	return k, nil
}
