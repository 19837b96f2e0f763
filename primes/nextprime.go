package primes

import (
	"errors"
	"fmt"
	"math/big"
)

// primeSearchMaxBits caps the wheel search. Alphabet and key length
// combinations whose multiplier target exceeds this are unsupported.
const primeSearchMaxBits = 512

// ErrPrimeSearchLimit is returned by NextPrime for targets wider than
// primeSearchMaxBits bits.
var ErrPrimeSearchLimit = errors.New("primes: search target exceeds 512 bits")

var (
	three  = big.NewInt(3)
	five   = big.NewInt(5)
	thirty = big.NewInt(30)
)

// wheelGap maps n mod 30 to the distance from n to the next integer coprime
// to 2, 3 and 5. Only such integers can be prime, so the walk never tests the
// other four fifths of the candidates.
var wheelGap = [30]int64{
	1, 6, 5, 4, 3, 2, 1, 4, 3, 2, 1, 2, 1, 4, 3,
	2, 1, 2, 1, 4, 3, 2, 1, 6, 5, 4, 3, 2, 1, 2,
}

// NextPrime returns the smallest prime strictly greater than n. It never
// returns n's storage and never mutates n.
func NextPrime(n *big.Int) (*big.Int, error) {
	if n.BitLen() > primeSearchMaxBits {
		return nil, fmt.Errorf("target of %d bits: %w", n.BitLen(), ErrPrimeSearchLimit)
	}

	if n.Cmp(two) < 0 {
		return big.NewInt(2), nil
	}
	if n.Cmp(five) < 0 {
		// n is 2, 3 or 4
		return big.NewInt([3]int64{3, 5, 5}[n.Int64()-2]), nil
	}

	p := new(big.Int).Set(n)
	if p.Bit(0) == 0 {
		p.Add(p, one)
	} else {
		p.Add(p, two)
	}

	rem := new(big.Int)
	if rem.Mod(p, three).Sign() == 0 || rem.Mod(p, five).Sign() == 0 {
		advance(p)
	}
	for !IsPrime(p) {
		advance(p)
	}

	return p, nil
}

// advance moves p to the next candidate coprime to 2, 3 and 5.
func advance(p *big.Int) {
	var rem big.Int
	rem.Mod(p, thirty)
	p.Add(p, big.NewInt(wheelGap[rem.Int64()]))
}
