package uintvar

import (
	"math/big"
	"math/bits"
)

// Size returns the number of bytes in the encoding of v. v must be non-nil.
func Size(v *big.Int) int {
	return groups(v.BitLen())
}

// SizeUint64 returns the number of bytes in the encoding of v.
func SizeUint64(v uint64) int {
	return groups(bits.Len64(v))
}

func groups(bitLen int) int {
	if bitLen == 0 {
		return 1
	}
	return (bitLen + groupBits - 1) / groupBits
}
