package basex

import (
	"errors"
	"fmt"
	"math/big"
	"slices"
)

var (
	// ErrNegativeValue is returned by Encode for values below zero. The
	// positional encoding has no sign symbol.
	ErrNegativeValue = errors.New("basex: cannot encode a negative value")

	// ErrUnknownSymbol is returned by Decode when the input contains a
	// rune outside the alphabet.
	ErrUnknownSymbol = errors.New("basex: symbol not in alphabet")
)

// Encode renders v in the alphabet's numeral system, most significant
// symbol first. Zero encodes as the single zero symbol and no padding is
// applied. v must not be negative.
func (a Alphabet) Encode(v *big.Int) (string, error) {
	if a.Len() < 2 {
		return "", ErrAlphabetTooShort
	}
	if v.Sign() < 0 {
		return "", fmt.Errorf("%v: %w", v, ErrNegativeValue)
	}

	base := big.NewInt(int64(a.Len()))
	if v.Cmp(base) < 0 {
		return string(a.symbols[v.Int64()]), nil
	}

	var (
		quo = new(big.Int).Set(v)
		rem = new(big.Int)
		out []rune
	)
	for quo.Sign() > 0 {
		quo.QuoRem(quo, base, rem)
		out = append(out, a.symbols[rem.Int64()])
	}
	slices.Reverse(out)
	return string(out), nil
}

// Decode evaluates s as a number in the alphabet's numeral system. Every
// rune of s must belong to the alphabet. The empty string decodes to zero,
// matching Encode's no padding convention.
func (a Alphabet) Decode(s string) (*big.Int, error) {
	if a.Len() < 2 {
		return nil, ErrAlphabetTooShort
	}

	var (
		base  = big.NewInt(int64(a.Len()))
		digit = new(big.Int)
		v     = new(big.Int)
	)
	for _, r := range s {
		i, ok := a.index[r]
		if !ok {
			return nil, fmt.Errorf("symbol %q: %w", r, ErrUnknownSymbol)
		}
		v.Mul(v, base)
		v.Add(v, digit.SetInt64(int64(i)))
	}
	return v, nil
}
