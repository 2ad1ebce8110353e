package uintvar

import (
	"math"
	"math/big"
)

// DecodeMax decodes the uintvar at the start of b, reading at most max bytes.
// It returns the value and the bytes following it.
func DecodeMax(max Bound, b []byte) (*big.Int, []byte, error) {
	return NewCodec(max).Decode(b)
}

// Decode decodes the uintvar at the start of b without a length limit.
func Decode(b []byte) (*big.Int, []byte, error) {
	return defaultCodec.Decode(b)
}

// Decode32 decodes the uintvar at the start of b, reading at most MaxLen32
// bytes.
func Decode32(b []byte) (uint64, []byte, error) {
	return codec32.DecodeUint64(b)
}

// Decode decodes the uintvar at the start of b. On success rest is the
// sub-slice of b following the value; on failure rest is nil.
func (c *Codec) Decode(b []byte) (*big.Int, []byte, error) {
	if err := c.max.validate(); err != nil {
		return nil, nil, err
	}

	v := new(big.Int)
	g := new(big.Int)
	budget := c.max
	for i, octet := range b {
		var ok bool
		if budget, ok = budget.take(); !ok {
			return nil, nil, badArgumentf("no terminating byte within %s bytes", c.max)
		}
		v.Lsh(v, groupBits)
		v.Or(v, g.SetUint64(uint64(octet&groupMask)))
		if octet&continuationBit == 0 {
			return v, b[i+1:], nil
		}
	}
	return nil, nil, truncated(b)
}

// DecodeUint64 is like Decode but accumulates into a uint64, failing if the
// decoded value does not fit.
func (c *Codec) DecodeUint64(b []byte) (uint64, []byte, error) {
	if err := c.max.validate(); err != nil {
		return 0, nil, err
	}

	var v uint64
	budget := c.max
	for i, octet := range b {
		var ok bool
		if budget, ok = budget.take(); !ok {
			return 0, nil, badArgumentf("no terminating byte within %s bytes", c.max)
		}
		if v > math.MaxUint64>>groupBits {
			return 0, nil, badArgument("value overflows uint64")
		}
		v = v<<groupBits | uint64(octet&groupMask)
		if octet&continuationBit == 0 {
			return v, b[i+1:], nil
		}
	}
	return 0, nil, truncated(b)
}

func truncated(b []byte) error {
	if len(b) == 0 {
		return badArgument("empty input")
	}
	return badArgumentf("input ended after %d bytes without a terminating byte", len(b))
}
