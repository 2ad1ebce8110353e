/*
Package uintvar implements the uintvar variable-length unsigned integer encoding.

Each encoded byte carries seven bits of the value in its low-order bits and a
continuation flag in its high-order bit. Groups are written most-significant
first, and the last byte of a value is the only one with the continuation bit
cleared:

	0x00       -> 00
	0x7f       -> 7f
	0x80       -> 81 00
	0x3fff     -> ff 7f
	0x4000     -> 81 80 00
	0xffffffff -> 8f ff ff ff 7f

Every operation is bounded by a Bound, which is either Unbounded or a positive
maximum number of bytes for one value. The same budget rule applies in both
directions, so a value is encodable within n bytes exactly when its encoding is
decodable within n bytes.

The easiest way to use this library is through the package-level functions:

	b, err := uintvar.Encode(big.NewInt(0x4000))
	v, rest, err := uintvar.Decode(b)

	b, err = uintvar.Encode32(0xffffffff)
	n, rest, err := uintvar.Decode32(b)

A Codec carries its own Bound and additionally exposes uint64 fast paths:

	c := uintvar.NewCodec(uintvar.MaxBytes(3))
	b, err := c.EncodeUint64(0x3fff)

All failures wrap ErrBadArgument.
*/
package uintvar
