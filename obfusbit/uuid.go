package obfusbit

import (
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

// UUIDValue returns u as its 128 bit integer value, ready for a 128 bit
// schema field.
func UUIDValue(u uuid.UUID) *big.Int {
	return new(big.Int).SetBytes(u[:])
}

// UUIDFromValue reverses UUIDValue. v must lie in 0 through 2^128 - 1.
func UUIDFromValue(v *big.Int) (uuid.UUID, error) {
	if v == nil || v.Sign() < 0 || v.BitLen() > 128 {
		return uuid.Nil, fmt.Errorf("%v: %w", v, ErrUUIDRange)
	}
	var b [16]byte
	v.FillBytes(b[:])
	return uuid.UUID(b), nil
}
