package basex

import (
	"errors"
	"fmt"
)

var (
	// ErrAlphabetTooShort is returned when an alphabet is constructed with
	// fewer than two symbols. A single symbol cannot express position.
	ErrAlphabetTooShort = errors.New("basex: alphabet needs at least two symbols")

	// ErrDuplicateSymbol is returned when a symbol appears more than once
	// in an alphabet. Duplicates make decoding ambiguous.
	ErrDuplicateSymbol = errors.New("basex: alphabet contains a duplicate symbol")
)

// Alphabet is an ordered set of unique symbols defining a base-N numeral
// system. The zero value is not usable; construct with NewAlphabet or
// MustAlphabet.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

// NewAlphabet builds an Alphabet from the symbols string. The symbol order
// is significant: the first rune represents zero, the last represents
// len-1. The string must contain at least two runes and no repeats.
func NewAlphabet(symbols string) (Alphabet, error) {
	runes := []rune(symbols)
	if len(runes) < 2 {
		return Alphabet{}, fmt.Errorf("%d symbols: %w", len(runes), ErrAlphabetTooShort)
	}
	index := make(map[rune]int, len(runes))
	for i, r := range runes {
		if _, ok := index[r]; ok {
			return Alphabet{}, fmt.Errorf("symbol %q: %w", r, ErrDuplicateSymbol)
		}
		index[r] = i
	}
	return Alphabet{symbols: runes, index: index}, nil
}

// MustAlphabet is NewAlphabet that panics on error. It is intended for the
// package level named alphabets and for alphabets known valid at compile
// time.
func MustAlphabet(symbols string) Alphabet {
	a, err := NewAlphabet(symbols)
	if err != nil {
		panic(err)
	}
	return a
}

// Len returns the base of the numeral system, the number of symbols.
func (a Alphabet) Len() int {
	return len(a.symbols)
}

// Symbol returns the rune for digit value i.
func (a Alphabet) Symbol(i int) rune {
	return a.symbols[i]
}

// Index returns the digit value of r and whether r belongs to the alphabet.
func (a Alphabet) Index(r rune) (int, bool) {
	i, ok := a.index[r]
	return i, ok
}

// String returns the alphabet's symbols in digit order.
func (a Alphabet) String() string {
	return string(a.symbols)
}
