package obfusbit

import (
	"fmt"
	"math/big"
	"slices"
)

// ByteOrder selects how packed integers are laid out in memory.
type ByteOrder uint8

const (
	// BigEndian puts the most significant byte first.
	BigEndian ByteOrder = iota
	// LittleEndian puts the least significant byte first.
	LittleEndian
)

// String names the byte order.
func (o ByteOrder) String() string {
	switch o {
	case BigEndian:
		return "big"
	case LittleEndian:
		return "little"
	}
	return fmt.Sprintf("byteorder(%d)", uint8(o))
}

// PackedToBytes renders an already packed integer as exactly ByteLen()
// bytes in the given order. Total bit widths that are not byte multiples
// leave the excess high bits zero. The integer must lie in 0 through
// MaxPacked.
func (s *Schema) PackedToBytes(packed *big.Int, order ByteOrder) ([]byte, error) {
	if order != BigEndian && order != LittleEndian {
		return nil, fmt.Errorf("%v: %w", order, ErrByteOrder)
	}
	if packed.Sign() < 0 || packed.Cmp(s.maxPacked) > 0 {
		return nil, fmt.Errorf("packed integer %v is outside 0 to %v: %w",
			packed, s.maxPacked, ErrPackedRange)
	}
	buf := make([]byte, s.ByteLen())
	packed.FillBytes(buf)
	if order == LittleEndian {
		slices.Reverse(buf)
	}
	return buf, nil
}

// PackedFromBytes reverses PackedToBytes. The input must be exactly
// ByteLen() bytes and is not modified.
func (s *Schema) PackedFromBytes(data []byte, order ByteOrder) (*big.Int, error) {
	if order != BigEndian && order != LittleEndian {
		return nil, fmt.Errorf("%v: %w", order, ErrByteOrder)
	}
	if len(data) != s.ByteLen() {
		return nil, fmt.Errorf("got %d bytes, the schema needs %d for its %d bits: %w",
			len(data), s.ByteLen(), s.totalBits, ErrByteLength)
	}
	if order == LittleEndian {
		data = slices.Clone(data)
		slices.Reverse(data)
	}
	return new(big.Int).SetBytes(data), nil
}

// PackBytes packs values and renders the result as exactly
// Schema.ByteLen() bytes in the given order.
func (ob *Obfusbit) PackBytes(values map[string]*big.Int, order ByteOrder) ([]byte, error) {
	packed, err := ob.Pack(values)
	if err != nil {
		return nil, err
	}
	return ob.schema.PackedToBytes(packed, order)
}

// UnpackBytes reverses PackBytes.
func (ob *Obfusbit) UnpackBytes(data []byte, order ByteOrder) (map[string]*big.Int, error) {
	packed, err := ob.schema.PackedFromBytes(data, order)
	if err != nil {
		return nil, err
	}
	return ob.Unpack(packed), nil
}
