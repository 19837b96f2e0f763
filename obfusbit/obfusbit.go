package obfusbit

import (
	"fmt"
	"math/big"

	"github.com/bnlucas/obfuskey"
)

// Obfusbit packs named field values into a single integer laid out by a
// Schema, and optionally renders that integer as an obfuscated key.
type Obfusbit struct {
	schema *Schema
	key    *obfuskey.Obfuskey
}

// Options collects the optional collaborators of an Obfusbit.
type Options struct {
	Obfuskey *obfuskey.Obfuskey
}

// Option mutates Options before validation.
type Option func(*Options)

// WithObfuskey attaches the key transform used by PackKey and UnpackKey.
// The obfuskey must be able to represent every packed integer the schema
// can produce.
func WithObfuskey(key *obfuskey.Obfuskey) Option {
	return func(o *Options) {
		o.Obfuskey = key
	}
}

// New returns an Obfusbit over schema. With WithObfuskey the schema's
// maximum packed integer must not exceed the obfuskey's maximum value.
func New(schema *Schema, opts ...Option) (*Obfusbit, error) {
	options := Options{}
	for _, opt := range opts {
		opt(&options)
	}

	if schema == nil {
		return nil, fmt.Errorf("nil schema: %w", ErrSchemaEmpty)
	}
	if options.Obfuskey != nil {
		maximum := options.Obfuskey.MaximumValue()
		if schema.maxPacked.Cmp(maximum) > 0 {
			return nil, fmt.Errorf(
				"the schema packs up to %v (%d bits) but the obfuskey can only represent %v (%d bits): %w",
				schema.maxPacked, schema.totalBits, maximum, maximum.BitLen(), ErrCapacity)
		}
	}
	return &Obfusbit{schema: schema, key: options.Obfuskey}, nil
}

// NewFromFields builds the schema and the Obfusbit in one step.
func NewFromFields(fields []Field, opts ...Option) (*Obfusbit, error) {
	schema, err := NewSchema(fields)
	if err != nil {
		return nil, err
	}
	return New(schema, opts...)
}

// Schema returns the layout this Obfusbit packs against.
func (ob *Obfusbit) Schema() *Schema {
	return ob.schema
}

// Obfuskey returns the attached key transform, nil when none was
// configured.
func (ob *Obfusbit) Obfuskey() *obfuskey.Obfuskey {
	return ob.key
}

// Pack validates values against the schema and packs them into one
// integer, first declared field in the most significant bits.
func (ob *Obfusbit) Pack(values map[string]*big.Int) (*big.Int, error) {
	if err := ob.schema.ValidateValues(values); err != nil {
		return nil, err
	}
	packed := new(big.Int)
	for _, f := range ob.schema.fields {
		packed.Lsh(packed, uint(f.Bits))
		packed.Or(packed, values[f.Name])
	}
	return packed, nil
}

// Unpack splits packed back into per field values. It accepts any
// integer; bits beyond the schema's total width are ignored, so Unpack
// inverts Pack for every valid packed value.
func (ob *Obfusbit) Unpack(packed *big.Int) map[string]*big.Int {
	values := make(map[string]*big.Int, len(ob.schema.fields))
	for _, f := range ob.schema.fields {
		mask := new(big.Int).Lsh(one, uint(f.Bits))
		mask.Sub(mask, one)
		v := new(big.Int).Rsh(packed, uint(ob.schema.info[f.Name].Shift))
		values[f.Name] = v.And(v, mask)
	}
	return values
}

// PackKey packs values and renders the result through the attached
// obfuskey.
func (ob *Obfusbit) PackKey(values map[string]*big.Int) (string, error) {
	packed, err := ob.Pack(values)
	if err != nil {
		return "", err
	}
	if ob.key == nil {
		return "", ErrNoObfuskey
	}
	return ob.key.GetKey(packed)
}

// UnpackKey reverses PackKey: the key is decoded through the attached
// obfuskey and the recovered integer unpacked into field values.
func (ob *Obfusbit) UnpackKey(key string) (map[string]*big.Int, error) {
	if ob.key == nil {
		return nil, ErrNoObfuskey
	}
	packed, err := ob.key.GetValue(key)
	if err != nil {
		return nil, err
	}
	return ob.Unpack(packed), nil
}
