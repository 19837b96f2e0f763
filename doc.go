package obfuskey

/*

# Reversible integer obfuscation

An integer identifier leaks information when shown raw: how many records
exist, which came first, how far apart two of them are. Obfuskey replaces
the raw integer with a fixed length key over a chosen alphabet, and
recovers the integer from the key on demand, with no storage and no shared
state beyond the configuration.

# The transform

An Obfuskey is configured with an alphabet of B symbols and a key length L.
It maps every value in [0, B^L - 1] to a distinct key of exactly L symbols:

	key   = render(value * multiplier mod B^L)
	value = decode(key) * multiplier^-1 mod B^L

The multiplier is odd and coprime to B^L, so multiplication modulo B^L is a
bijection and every key decodes back to the value that produced it. Rendered
keys shorter than L symbols are left padded with the alphabet's zero symbol,
and the value zero, which multiplication cannot disguise, becomes the all
zero symbol key.

Sequential values produce keys with no visible ordering. With the Base62
alphabet at the default key length of six:

	ob, _ := obfuskey.NewFromString(basex.Base62)
	key, _ := ob.GetKey(big.NewInt(1234))    // "eXkr94"
	key, _ = ob.GetKey(big.NewInt(1235))     // "GrTf1t"

# Choosing a multiplier

Unless one is set explicitly, the multiplier is derived on first use as the
next prime after (B^L - 1) * seed, with the golden ratio as the default
seed. A prime above the maximum value is coprime to B^L and spreads
consecutive values far apart. Instances built with the same alphabet, key
length and seed derive the same multiplier, so keys generated by one
process decode in another with no shared state.

WithMultiplier skips derivation for callers that manage their own secret.
Any odd multiplier coprime to B^L works; one that shares a factor with B^L
still generates keys but GetValue cannot invert them.

# What this is not

The transform hides ordering and magnitude from casual observation. It is
not encryption: anyone holding the alphabet, the key length and the
multiplier, or enough known value and key pairs to recover the multiplier,
can reverse it. Do not use keys as a secrecy boundary.

*/
