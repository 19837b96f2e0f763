package obfuskey

import (
	"fmt"
	"math/big"

	"github.com/bnlucas/obfuskey/basex"
	"github.com/bnlucas/obfuskey/primes"
)

var one = big.NewInt(1)

// DefaultPrimeMultiplier returns the golden ratio to eighteen decimal
// places, the derivation seed used when neither an explicit multiplier nor
// a seed is configured.
func DefaultPrimeMultiplier() *big.Rat {
	return big.NewRat(1618033988749894848, 1000000000000000000)
}

// GeneratePrime derives the multiplier an Obfuskey uses when none is set
// explicitly: the first prime strictly greater than maximum * seed, where
// maximum is base^keyLength - 1. A nil seed means DefaultPrimeMultiplier.
// The product is truncated exactly, so equal seeds always derive the same
// multiplier for a given alphabet and key length.
func GeneratePrime(alphabet basex.Alphabet, keyLength int, seed *big.Rat) (*big.Int, error) {
	if alphabet.Len() < 2 {
		return nil, fmt.Errorf("alphabet of %d symbols: %w", alphabet.Len(), basex.ErrAlphabetTooShort)
	}
	if keyLength < 1 {
		return nil, fmt.Errorf("key length %d: %w", keyLength, ErrKeyLength)
	}
	if seed == nil {
		seed = DefaultPrimeMultiplier()
	}
	if seed.Sign() <= 0 {
		return nil, fmt.Errorf("seed %v: %w", seed, ErrPrimeMultiplier)
	}

	base := big.NewInt(int64(alphabet.Len()))
	target := new(big.Int).Exp(base, big.NewInt(int64(keyLength)), nil)
	target.Sub(target, one)
	target.Mul(target, seed.Num())
	target.Quo(target, seed.Denom())
	return primes.NextPrime(target)
}
