package primes

/*

# Primality primitives for multiplier derivation

This package provides the arbitrary precision number theory needed to derive
and invert obfuscation multipliers: primality testing, next-prime search and
modular inversion. Everything operates on *big.Int and nothing here mutates
its arguments.

## Testing policy

IsPrime layers cheap rejections in front of the expensive test:

 1. 2 is prime, anything below 2 or even is not.
 2. Candidates sharing a factor with 510510 (the product of the primes up to
    17) are composite unless they are one of those small primes themselves.
 3. Below 2,000,000 the answer comes from exact trial division.
 4. Above that, a Miller-Rabin round for each of the witness bases
    2, 13, 23 and 1662803.

The four witness bases are a deterministic set for every n below
2,047,698,921. Beyond that bound the answer is probabilistic. Multiplier
targets routinely exceed the bound, so NextPrime can in principle settle on a
strong pseudoprime; the chance is vanishing and the obfuscation round trip
only needs the result to be coprime to the modulus, which any odd candidate
clear of the modulus's factors is.

## Search ceiling

NextPrime walks candidates with a mod-30 wheel, skipping multiples of 2, 3
and 5. The walk is capped at 512 bit targets: past that the density of primes
makes a wheel search the wrong tool, and NextPrime returns
ErrPrimeSearchLimit rather than degrade into an unbounded scan.

*/
