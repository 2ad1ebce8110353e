package uintvar

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func BenchmarkEncodeUint64(b *testing.B) {
	c := NewCodec(MaxBytes(MaxLen64))
	buf := make([]byte, 0, MaxLen64)
	var err error
	for n := 0; n < b.N; n++ {
		buf, err = c.AppendUint64(buf[:0], uint64(n))
		require.NoError(b, err)
	}
}

func BenchmarkDecodeUint64(b *testing.B) {
	enc, err := Encode32(0xffffffff)
	require.NoError(b, err)
	for n := 0; n < b.N; n++ {
		_, _, err := Decode32(enc)
		require.NoError(b, err)
	}
}

func BenchmarkEncodeBig256(b *testing.B) {
	v := new(big.Int).Lsh(big.NewInt(1), 255)
	for n := 0; n < b.N; n++ {
		_, err := Encode(v)
		require.NoError(b, err)
	}
}

func BenchmarkDecodeBig256(b *testing.B) {
	enc, err := Encode(new(big.Int).Lsh(big.NewInt(1), 255))
	require.NoError(b, err)
	for n := 0; n < b.N; n++ {
		_, _, err := Decode(enc)
		require.NoError(b, err)
	}
}
