package obfusbit

import (
	"fmt"
	"math/big"
	"slices"
	"strings"
)

var one = big.NewInt(1)

// Field declares one named span of bits in a schema.
type Field struct {
	Name string `json:"name" cbor:"name"`
	Bits int    `json:"bits" cbor:"bits"`
}

// FieldInfo locates a field inside the packed integer.
type FieldInfo struct {
	Bits  int
	Shift int
}

// Schema is an ordered list of bit fields. Field order fixes the layout:
// the last declared field occupies the least significant bits and the
// first declared field the most significant. Construct with NewSchema;
// a Schema is immutable afterwards.
type Schema struct {
	fields    []Field
	info      map[string]FieldInfo
	totalBits int
	maxPacked *big.Int
}

// NewSchema validates the field list and compiles the bit layout. Every
// field needs a unique non empty name and at least one bit.
func NewSchema(fields []Field) (*Schema, error) {
	if len(fields) == 0 {
		return nil, ErrSchemaEmpty
	}

	info := make(map[string]FieldInfo, len(fields))
	total := 0
	for _, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("unnamed field: %w", ErrSchemaField)
		}
		if f.Bits < 1 {
			return nil, fmt.Errorf("field %q has %d bits: %w", f.Name, f.Bits, ErrSchemaField)
		}
		if _, ok := info[f.Name]; ok {
			return nil, fmt.Errorf("field %q: %w", f.Name, ErrDuplicateField)
		}
		info[f.Name] = FieldInfo{Bits: f.Bits}
		total += f.Bits
	}

	// walk backwards so the last declared field lands at shift zero
	shift := 0
	for i := len(fields) - 1; i >= 0; i-- {
		fi := info[fields[i].Name]
		fi.Shift = shift
		info[fields[i].Name] = fi
		shift += fields[i].Bits
	}

	maxPacked := new(big.Int).Lsh(one, uint(total))
	maxPacked.Sub(maxPacked, one)
	return &Schema{
		fields:    slices.Clone(fields),
		info:      info,
		totalBits: total,
		maxPacked: maxPacked,
	}, nil
}

// Fields returns the declared fields in order, as a copy.
func (s *Schema) Fields() []Field {
	return slices.Clone(s.fields)
}

// TotalBits returns the summed width of all fields.
func (s *Schema) TotalBits() int {
	return s.totalBits
}

// MaxPacked returns the largest packed integer the schema can produce,
// 2^TotalBits - 1, as a copy.
func (s *Schema) MaxPacked() *big.Int {
	return new(big.Int).Set(s.maxPacked)
}

// ByteLen returns the number of bytes needed to hold TotalBits.
func (s *Schema) ByteLen() int {
	return (s.totalBits + 7) / 8
}

// GetFieldInfo returns the width and shift of the named field.
func (s *Schema) GetFieldInfo(name string) (FieldInfo, error) {
	fi, ok := s.info[name]
	if !ok {
		return FieldInfo{}, fmt.Errorf("field %q: %w", name, ErrFieldNotFound)
	}
	return fi, nil
}

// ValidateValues checks values against the schema without packing. Every
// schema field must have a non nil value, no extra names may appear, and
// every value must fit its field's bits. Missing fields are reported in
// schema order, unexpected names sorted.
func (s *Schema) ValidateValues(values map[string]*big.Int) error {
	var missing []string
	for _, f := range s.fields {
		if v, ok := values[f.Name]; !ok || v == nil {
			missing = append(missing, f.Name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("fields %s: %w", strings.Join(missing, ", "), ErrMissingField)
	}

	var unexpected []string
	for name := range values {
		if _, ok := s.info[name]; !ok {
			unexpected = append(unexpected, name)
		}
	}
	if len(unexpected) > 0 {
		slices.Sort(unexpected)
		return fmt.Errorf("fields %s: %w", strings.Join(unexpected, ", "), ErrUnexpectedField)
	}

	for _, f := range s.fields {
		v := values[f.Name]
		if v.Sign() < 0 || v.BitLen() > f.Bits {
			maximum := new(big.Int).Lsh(one, uint(f.Bits))
			maximum.Sub(maximum, one)
			return fmt.Errorf("field %q value %v exceeds its %d bits (maximum %v): %w",
				f.Name, v, f.Bits, maximum, ErrBitOverflow)
		}
	}
	return nil
}

// String identifies the schema by shape.
func (s *Schema) String() string {
	return fmt.Sprintf("schema(totalBits=%d, fields=%d)", s.totalBits, len(s.fields))
}
