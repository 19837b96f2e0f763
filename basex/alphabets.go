package basex

// Symbol sets for the commonly used bases. Each is ordered, first symbol
// lowest, and is accepted directly by NewAlphabet.
const (
	// Base16 is the uppercase hexadecimal symbol set.
	Base16 = "0123456789ABCDEF"

	// Base32 holds the digits 2-7 and the uppercase letters, ordered
	// digits first.
	Base32 = "234567ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// CrockfordBase32 is Douglas Crockford's base 32 symbol set. It
	// excludes I, L, O and U to avoid misreadings and accidental words.
	CrockfordBase32 = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

	// ZBase32 is the z-base-32 symbol set, ordered for human transcription
	// rather than numerically.
	ZBase32 = "ybndrfg8ejkmcpqxot1uwisza345h769"

	// Base36 holds the digits and the uppercase letters.
	Base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// Base52 holds the digits and both letter cases with all vowels
	// removed, keeping generated keys free of real words.
	Base52 = "0123456789BCDFGHJKLMNPQRSTVWXYZbcdfghjklmnpqrstvwxyz"

	// Base56 is Base58 with the visually ambiguous 1, o and l removed as
	// well.
	Base56 = "23456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnpqrstuvwxyz"

	// Base58 is the Bitcoin symbol set: alphanumerics without 0, O, I
	// and l.
	Base58 = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

	// Base62 holds the digits, the uppercase letters and the lowercase
	// letters, in that order.
	Base62 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// Base64 extends Base62 with + and /. Unlike RFC 4648 it orders the
	// digits first, so encodings are not interchangeable with standard
	// base64.
	Base64 = Base62 + "+/"

	// Base64URLSafe extends Base62 with - and _, safe for URLs and file
	// names.
	Base64URLSafe = Base62 + "-_"

	// Base94 spans every printable ASCII character from ! through ~.
	Base94 = "!\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"
)
