// Package letters implements letter-frequency multisets over a-z.
package letters

import (
	"fmt"
	"strings"

	"svw.info/anagram/internal/domain"
)

// Alphabet is the letter set scrambles and words are drawn from.
const Alphabet = "abcdefghijklmnopqrstuvwxyz"

// Multiset counts occurrences of each lowercase letter. It is comparable and may be
// used as a map key.
type Multiset [26]int

// FromString lowercases s and counts its letters. Any character outside a-z yields
// domain.ErrInvalidInput.
func FromString(s string) (Multiset, error) {
	var m Multiset
	for i, r := range strings.ToLower(s) {
		if r < 'a' || r > 'z' {
			return Multiset{}, fmt.Errorf("%w: %q at offset %d", domain.ErrInvalidInput, r, i)
		}
		m[r-'a']++
	}
	return m, nil
}

// MustFromString is FromString for inputs already known to be valid.
func MustFromString(s string) Multiset {
	m, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// IsSubset reports whether a[l] <= b[l] for every letter l.
func IsSubset(a, b Multiset) bool {
	for i := range a {
		if a[i] > b[i] {
			return false
		}
	}
	return true
}

// Subtract removes b's counts from a. b must be a subset of a.
func Subtract(a, b Multiset) (Multiset, error) {
	if !IsSubset(b, a) {
		return Multiset{}, domain.ErrInsufficientLetters
	}
	var out Multiset
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out, nil
}

// Len is the total number of letters.
func (m Multiset) Len() int {
	n := 0
	for _, c := range m {
		n += c
	}
	return n
}

// String spells the multiset in alphabetical order ("act" for "cat").
func (m Multiset) String() string {
	var b strings.Builder
	b.Grow(m.Len())
	for i, c := range m {
		for ; c > 0; c-- {
			b.WriteByte(byte('a' + i))
		}
	}
	return b.String()
}
