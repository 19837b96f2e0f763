package primes

import "math/big"

const (
	// trialDivisionLimit is the crossover between exact trial division and
	// Miller-Rabin testing.
	trialDivisionLimit = 2000000

	// smallPrimorial is 2*3*5*7*11*13*17. A composite below
	// trialDivisionLimit^2 sharing a factor with it is rejected without any
	// division loop.
	smallPrimorial = 510510

	// deterministicLimit is the bound below which the mrWitnesses bases are a
	// proven deterministic Miller-Rabin set.
	deterministicLimit = 2047698921
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)

	bigPrimorial  = big.NewInt(smallPrimorial)
	bigTrialLimit = big.NewInt(trialDivisionLimit)
	bigSeventeen  = big.NewInt(17)

	// mrWitnesses are deterministic below deterministicLimit and
	// probabilistic above it.
	mrWitnesses = []*big.Int{
		big.NewInt(2),
		big.NewInt(13),
		big.NewInt(23),
		big.NewInt(1662803),
	}
)

// IsPrime reports whether n is prime. Below deterministicLimit the answer is
// exact; above it the answer is a four witness Miller-Rabin verdict.
func IsPrime(n *big.Int) bool {
	if n.Cmp(two) == 0 {
		return true
	}
	if n.Cmp(two) < 0 || n.Bit(0) == 0 {
		return false
	}

	if new(big.Int).GCD(nil, nil, n, bigPrimorial).Cmp(one) > 0 {
		if n.Cmp(bigSeventeen) > 0 {
			return false
		}
		switch n.Int64() {
		case 3, 5, 7, 11, 13, 17:
			return true
		}
		return false
	}

	if n.Cmp(bigTrialLimit) < 0 {
		return TrialDivision(n)
	}

	return SmallStrongPseudoprime(n)
}

// Factor computes s and d such that n - 1 = 2^s * d with d odd.
func Factor(n *big.Int) (int, *big.Int) {
	s := 0
	d := new(big.Int).Sub(n, one)

	for d.Bit(0) == 0 {
		s++
		d.Rsh(d, 1)
	}

	return s, d
}

// TrialDivision reports whether n is prime by dividing by every odd candidate
// up to the square root of n. Callers are expected to have dealt with even n
// already; IsPrime does.
func TrialDivision(n *big.Int) bool {
	if n.Cmp(one) <= 0 {
		return false
	}
	if n.Cmp(two) == 0 {
		return true
	}

	root := new(big.Int).Sqrt(n)
	rem := new(big.Int)

	for i := big.NewInt(3); i.Cmp(root) <= 0; i.Add(i, two) {
		if rem.Mod(n, i).Sign() == 0 {
			return false
		}
	}

	return true
}

// StrongPseudoprime runs one Miller-Rabin round for the given witness base.
// A false result proves n composite; a true result means n is prime or a
// strong pseudoprime to that base.
func StrongPseudoprime(n, base *big.Int) bool {
	if n.Bit(0) == 0 {
		return false
	}
	if n.Cmp(one) == 0 {
		return false
	}

	s, d := Factor(n)
	nMinusOne := new(big.Int).Sub(n, one)

	x := new(big.Int).Exp(base, d, n)
	if x.Cmp(one) == 0 || x.Cmp(nMinusOne) == 0 {
		return true
	}

	for i := 0; i < s-1; i++ {
		x.Exp(x, two, n)
		if x.Cmp(nMinusOne) == 0 {
			return true
		}
		if x.Cmp(one) == 0 {
			return false
		}
	}

	return false
}

// SmallStrongPseudoprime runs the mrWitnesses rounds, which are conclusive
// for every n below deterministicLimit.
func SmallStrongPseudoprime(n *big.Int) bool {
	for _, base := range mrWitnesses {
		if !StrongPseudoprime(n, base) {
			return false
		}
	}
	return true
}
