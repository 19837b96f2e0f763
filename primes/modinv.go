package primes

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrNotInvertible is returned by ModInverse when the operands share a
// factor, so no inverse exists.
var ErrNotInvertible = errors.New("primes: no modular inverse exists")

// ModInverse returns x such that base * x = 1 (mod modulus).
func ModInverse(base, modulus *big.Int) (*big.Int, error) {
	inv := new(big.Int).ModInverse(base, modulus)
	if inv == nil {
		return nil, fmt.Errorf("%v is not coprime to %v: %w", base, modulus, ErrNotInvertible)
	}
	return inv, nil
}
