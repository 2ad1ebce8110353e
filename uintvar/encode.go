package uintvar

import (
	"math/big"
)

const (
	continuationBit = 0x80
	groupMask       = 0x7f
	groupBits       = 7
)

var bigGroupMask = big.NewInt(groupMask)

// EncodeMax encodes v using at most max bytes.
func EncodeMax(max Bound, v *big.Int) ([]byte, error) {
	return NewCodec(max).Encode(v)
}

// Encode encodes v without a length limit.
func Encode(v *big.Int) ([]byte, error) {
	return defaultCodec.Encode(v)
}

// Encode32 encodes v within MaxLen32 bytes. Every 32-bit value fits; larger
// values are accepted as long as they fit in 35 bits.
func Encode32(v uint64) ([]byte, error) {
	return codec32.EncodeUint64(v)
}

// Encode encodes v within the codec's bound.
func (c *Codec) Encode(v *big.Int) ([]byte, error) {
	return c.Append(nil, v)
}

// Append appends the encoding of v to dst and returns the extended slice. dst
// is returned unmodified on error.
func (c *Codec) Append(dst []byte, v *big.Int) ([]byte, error) {
	if v == nil {
		return dst, badArgument("nil value")
	}
	if v.Sign() < 0 {
		return dst, badArgumentf("negative value %s", v)
	}
	if err := c.max.validate(); err != nil {
		return dst, err
	}

	buf := make([]byte, Size(v))
	x := new(big.Int).Set(v)
	g := new(big.Int)
	budget := c.max
	i := len(buf)
	for i == len(buf) || x.Sign() != 0 {
		var ok bool
		if budget, ok = budget.take(); !ok {
			return dst, badArgumentf("value %s needs %d bytes, bound is %s", v, len(buf), c.max)
		}
		i--
		buf[i] = byte(g.And(x, bigGroupMask).Uint64()) | continuationBit
		x.Rsh(x, groupBits)
	}
	buf[len(buf)-1] &^= continuationBit
	return append(dst, buf...), nil
}

// EncodeUint64 encodes v within the codec's bound.
func (c *Codec) EncodeUint64(v uint64) ([]byte, error) {
	return c.AppendUint64(nil, v)
}

// AppendUint64 appends the encoding of v to dst and returns the extended
// slice. dst is returned unmodified on error.
func (c *Codec) AppendUint64(dst []byte, v uint64) ([]byte, error) {
	if err := c.max.validate(); err != nil {
		return dst, err
	}

	var buf [MaxLen64]byte
	x := v
	budget := c.max
	i := len(buf)
	for i == len(buf) || x != 0 {
		var ok bool
		if budget, ok = budget.take(); !ok {
			return dst, badArgumentf("value %d needs %d bytes, bound is %s", v, SizeUint64(v), c.max)
		}
		i--
		buf[i] = byte(x&groupMask) | continuationBit
		x >>= groupBits
	}
	buf[len(buf)-1] &^= continuationBit
	return append(dst, buf[i:]...), nil
}
