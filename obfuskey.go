package obfuskey

import (
	"fmt"
	"math/big"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/bnlucas/obfuskey/basex"
	"github.com/bnlucas/obfuskey/primes"
)

// DefaultKeyLength is the number of symbols in a generated key when no
// WithKeyLength option is given.
const DefaultKeyLength = 6

// Obfuskey reversibly maps the integers 0 through base^keyLength - 1 onto
// fixed length strings over an alphabet. Construct with New or
// NewFromString; an Obfuskey is safe for concurrent use.
type Obfuskey struct {
	alphabet     basex.Alphabet
	keyLength    int
	maximumValue *big.Int
	modulus      *big.Int

	// multiplier is derived from primeMultiplier on first use unless set
	// explicitly. mu guards both fields.
	mu              sync.Mutex
	multiplier      *big.Int
	primeMultiplier *big.Rat
}

// New returns an Obfuskey over alphabet. Every generated key has exactly
// Options.KeyLength symbols, DefaultKeyLength unless overridden. An
// explicit multiplier must be odd; a derivation seed must be positive.
// When both are given the explicit multiplier wins.
func New(alphabet basex.Alphabet, opts ...Option) (*Obfuskey, error) {
	options := Options{KeyLength: DefaultKeyLength}
	for _, opt := range opts {
		opt(&options)
	}

	if alphabet.Len() < 2 {
		return nil, fmt.Errorf("alphabet of %d symbols: %w", alphabet.Len(), basex.ErrAlphabetTooShort)
	}
	if options.KeyLength < 1 {
		return nil, fmt.Errorf("key length %d: %w", options.KeyLength, ErrKeyLength)
	}
	if options.Multiplier != nil && options.Multiplier.Bit(0) == 0 {
		return nil, fmt.Errorf("multiplier %v: %w", options.Multiplier, ErrMultiplierNotOdd)
	}
	if options.PrimeMultiplier != nil && options.PrimeMultiplier.Sign() <= 0 {
		return nil, fmt.Errorf("seed %v: %w", options.PrimeMultiplier, ErrPrimeMultiplier)
	}

	modulus := new(big.Int).Exp(
		big.NewInt(int64(alphabet.Len())), big.NewInt(int64(options.KeyLength)), nil)
	o := &Obfuskey{
		alphabet:     alphabet,
		keyLength:    options.KeyLength,
		maximumValue: new(big.Int).Sub(modulus, one),
		modulus:      modulus,
	}
	if options.Multiplier != nil {
		o.multiplier = new(big.Int).Set(options.Multiplier)
	}
	if options.PrimeMultiplier != nil {
		o.primeMultiplier = new(big.Rat).Set(options.PrimeMultiplier)
	}
	return o, nil
}

// NewFromString is New over an alphabet built from symbols.
func NewFromString(symbols string, opts ...Option) (*Obfuskey, error) {
	alphabet, err := basex.NewAlphabet(symbols)
	if err != nil {
		return nil, err
	}
	return New(alphabet, opts...)
}

// GetKey transforms value into its key: value * multiplier mod
// base^keyLength, rendered in the alphabet and left padded with the zero
// symbol to exactly keyLength symbols. Zero maps to the all zero symbol
// key. value must lie in 0 through MaximumValue.
func (o *Obfuskey) GetKey(value *big.Int) (string, error) {
	if value.Sign() < 0 {
		return "", fmt.Errorf("value %v: %w", value, ErrNegativeValue)
	}
	if value.Cmp(o.maximumValue) > 0 {
		return "", fmt.Errorf("value %v is above %v: %w", value, o.maximumValue, ErrMaximumValue)
	}
	pad := string(o.alphabet.Symbol(0))
	if value.Sign() == 0 {
		return strings.Repeat(pad, o.keyLength), nil
	}

	multiplier, err := o.Multiplier()
	if err != nil {
		return "", err
	}
	masked := new(big.Int).Mul(value, multiplier)
	masked.Mod(masked, o.modulus)

	key, err := o.alphabet.Encode(masked)
	if err != nil {
		return "", err
	}
	if n := utf8.RuneCountInString(key); n < o.keyLength {
		key = strings.Repeat(pad, o.keyLength-n) + key
	}
	return key, nil
}

// GetValue reverses GetKey. The key must be exactly keyLength symbols of
// the alphabet; the all zero symbol key maps back to zero.
func (o *Obfuskey) GetValue(key string) (*big.Int, error) {
	decoded, err := o.alphabet.Decode(key)
	if err != nil {
		return nil, err
	}
	if n := utf8.RuneCountInString(key); n != o.keyLength {
		return nil, fmt.Errorf("key %q has %d symbols, want %d: %w", key, n, o.keyLength, ErrKeyLength)
	}
	if decoded.Sign() == 0 {
		return decoded, nil
	}

	multiplier, err := o.Multiplier()
	if err != nil {
		return nil, err
	}
	inverse, err := primes.ModInverse(multiplier, o.modulus)
	if err != nil {
		return nil, err
	}
	value := decoded.Mul(decoded, inverse)
	return value.Mod(value, o.modulus), nil
}

// Multiplier returns the active multiplier as a copy, deriving it on first
// use when only a seed is configured.
func (o *Obfuskey) Multiplier() (*big.Int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.multiplier == nil {
		derived, err := GeneratePrime(o.alphabet, o.keyLength, o.primeMultiplier)
		if err != nil {
			return nil, err
		}
		o.multiplier = derived
	}
	return new(big.Int).Set(o.multiplier), nil
}

// SetPrimeMultiplier replaces the derivation seed and discards any cached
// or explicit multiplier. The next GetKey, GetValue or Multiplier call
// derives afresh from seed. Keys generated under the old multiplier do not
// decode under the new one.
func (o *Obfuskey) SetPrimeMultiplier(seed *big.Rat) error {
	if seed == nil || seed.Sign() <= 0 {
		return fmt.Errorf("seed %v: %w", seed, ErrPrimeMultiplier)
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.primeMultiplier = new(big.Rat).Set(seed)
	o.multiplier = nil
	return nil
}

// Alphabet returns the alphabet keys are rendered in.
func (o *Obfuskey) Alphabet() basex.Alphabet {
	return o.alphabet
}

// KeyLength returns the exact symbol count of every key.
func (o *Obfuskey) KeyLength() int {
	return o.keyLength
}

// MaximumValue returns the largest value GetKey accepts,
// base^keyLength - 1, as a copy.
func (o *Obfuskey) MaximumValue() *big.Int {
	return new(big.Int).Set(o.maximumValue)
}

// String identifies the instance. It never includes the multiplier.
func (o *Obfuskey) String() string {
	return fmt.Sprintf("obfuskey(base=%d, keyLength=%d)", o.alphabet.Len(), o.keyLength)
}
