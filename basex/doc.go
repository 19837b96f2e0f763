package basex

/*

# Positional base-N codec over caller supplied alphabets

An Alphabet is an ordered set of unique symbols. Its order fully defines a
numeral system: Symbol(0) is the zero digit, Symbol(1) the one digit, and so
on up to base B = Len(). Permuting the symbols permutes the meaning of every
encoded string, consistently for Encode and Decode.

Symbols are runes, not bytes, so alphabets drawn from the wider printable
range (Base94 spans all of ASCII 33 to 126) and non-ASCII alphabets both
work. Decode indexes by rune and Encode emits runes.

The round trip law is Decode(Encode(v)) == v for every v >= 0. Encode never
pads; fixed width rendering is layered on top by the obfuscation transform.

*/
