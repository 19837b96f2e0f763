package obfuskey

import "errors"

var (
	// ErrKeyLength is returned when a key length option is not positive,
	// or when a key presented for decoding does not have exactly the
	// configured number of symbols.
	ErrKeyLength = errors.New("obfuskey: invalid key length")

	// ErrMultiplierNotOdd is returned when an explicit multiplier is
	// even. An even multiplier shares a factor with every even modulus
	// and can never be inverted there.
	ErrMultiplierNotOdd = errors.New("obfuskey: multiplier must be an odd integer")

	// ErrNegativeValue is returned by GetKey for values below zero. Keys
	// carry no sign.
	ErrNegativeValue = errors.New("obfuskey: cannot generate a key for a negative value")

	// ErrMaximumValue is returned by GetKey when the value cannot be
	// represented in keyLength symbols of the alphabet.
	ErrMaximumValue = errors.New("obfuskey: value exceeds the maximum for the alphabet and key length")

	// ErrPrimeMultiplier is returned when a prime multiplier seed is nil,
	// zero or negative.
	ErrPrimeMultiplier = errors.New("obfuskey: prime multiplier must be positive")
)
