package obfusbit

import "errors"

var (
	// ErrSchemaEmpty is returned when a schema is built with no fields.
	ErrSchemaEmpty = errors.New("obfusbit: schema has no fields")

	// ErrSchemaField is returned when a field has no name or a bit width
	// below one.
	ErrSchemaField = errors.New("obfusbit: invalid schema field")

	// ErrDuplicateField is returned when two fields share a name.
	ErrDuplicateField = errors.New("obfusbit: duplicate field name")

	// ErrFieldNotFound is returned by GetFieldInfo for names the schema
	// does not define.
	ErrFieldNotFound = errors.New("obfusbit: field not found in schema")

	// ErrMissingField is returned by Pack when the input values leave
	// schema fields without a value.
	ErrMissingField = errors.New("obfusbit: required field values are missing")

	// ErrUnexpectedField is returned by Pack when the input values name
	// fields the schema does not define.
	ErrUnexpectedField = errors.New("obfusbit: unexpected fields in input values")

	// ErrBitOverflow is returned by Pack when a value does not fit the
	// bits allocated to its field.
	ErrBitOverflow = errors.New("obfusbit: value exceeds its allocated bits")

	// ErrCapacity is returned by New when the schema can pack values the
	// configured obfuskey cannot represent.
	ErrCapacity = errors.New("obfusbit: schema exceeds the obfuskey capacity")

	// ErrNoObfuskey is returned by PackKey and UnpackKey when the
	// Obfusbit was built without WithObfuskey.
	ErrNoObfuskey = errors.New("obfusbit: no obfuskey configured")

	// ErrPackedRange is returned by PackBytes when the packed integer
	// does not fit the schema's total bits.
	ErrPackedRange = errors.New("obfusbit: packed integer out of range for the schema")

	// ErrByteLength is returned by UnpackBytes when the input is not
	// exactly the schema's byte length.
	ErrByteLength = errors.New("obfusbit: byte length does not match the schema")

	// ErrByteOrder is returned when a ByteOrder is neither BigEndian nor
	// LittleEndian.
	ErrByteOrder = errors.New("obfusbit: unknown byte order")

	// ErrUUIDRange is returned by UUIDFromValue for values outside the
	// 128 bit range.
	ErrUUIDRange = errors.New("obfusbit: value does not fit a uuid")
)
