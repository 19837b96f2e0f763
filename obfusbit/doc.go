package obfusbit

/*

# Packing several values into one key

Identifiers often carry more than one fact: a record id, a type, a couple
of flags. Obfusbit packs such a tuple into a single integer under a
declared bit layout, and with an attached obfuskey renders the whole tuple
as one fixed length key.

# Layout

A Schema is an ordered field list. The last declared field occupies the
least significant bits, the first declared field the most significant, so
a layout reads left to right from high bits to low bits exactly as
declared:

	fields:  id:10, type:2, flag:1            total 13 bits

	bits:    12........3  2...1  0
	         [    id    ][ type ][flag]

	packed = id<<3 | type<<1 | flag

	{id: 100, type: 2, flag: 1}  ->  100<<3 | 2<<1 | 1  =  805

Unpack reverses the walk with shifts and masks, so Unpack(Pack(values))
returns the values for every input the schema accepts.

# Keys and bytes

With WithObfuskey, PackKey runs the packed integer through the obfuskey
transform, producing one opaque key that carries all fields. New rejects
schemas whose maximum packed integer exceeds what the obfuskey can
represent; size the key length so base^keyLength - 1 covers TotalBits.

PackBytes renders the packed integer as a fixed byte string instead, big
or little endian, for binary storage. PackBytes and UnpackBytes always use
exactly ByteLen() bytes.

# Schemas at rest

A Schema serializes as its ordered field list, to JSON and to
deterministically encoded CBOR. Decoding re-runs the full schema
validation, so a corrupted field list is rejected rather than producing a
layout that misreads existing packed values. Field order is the layout;
two schemas with the same fields in a different order do not read each
other's integers.

*/
