package obfuskey

import "math/big"

// Options collects the tunable parameters of an Obfuskey. Zero fields keep
// their defaults: DefaultKeyLength symbols, a lazily derived prime
// multiplier seeded with the golden ratio.
type Options struct {
	KeyLength       int
	Multiplier      *big.Int
	PrimeMultiplier *big.Rat
}

// Option mutates Options before validation.
type Option func(*Options)

// WithKeyLength sets the exact number of symbols every generated key has.
func WithKeyLength(n int) Option {
	return func(o *Options) {
		o.KeyLength = n
	}
}

// WithMultiplier sets an explicit multiplier, skipping prime derivation
// entirely. The multiplier must be odd. It does not need to be prime, but
// it must be coprime to base^keyLength for keys to be decodable again.
func WithMultiplier(m *big.Int) Option {
	return func(o *Options) {
		o.Multiplier = m
	}
}

// WithPrimeMultiplier sets the seed used to derive the multiplier. The
// derived multiplier is the next prime after (base^keyLength - 1) * seed.
func WithPrimeMultiplier(seed *big.Rat) Option {
	return func(o *Options) {
		o.PrimeMultiplier = seed
	}
}
