package uintvar

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		input string
		exp   string
	}{
		{"00", "0"},
		{"7f", "7f"},
		{"8100", "80"},
		{"ff7f", "3fff"},
		{"818000", "4000"},
		{"8fffffff7f", "ffffffff"},
		{"82808080808080808000", "10000000000000000"},
		// leading zero groups are tolerated
		{"808001", "1"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			input, err := hex.DecodeString(tt.input)
			require.NoError(t, err)
			v, rest, err := Decode(input)
			require.NoError(t, err)
			require.Equal(t, 0, bigHex(t, tt.exp).Cmp(v), "got %x", v)
			require.Empty(t, rest)
		})
	}
}

func TestDecode_Rest(t *testing.T) {
	input := []byte{0x81, 0x80, 0x00, 0xca, 0xfe, 0x80}
	v, rest, err := Decode(input)
	require.NoError(t, err)
	require.EqualValues(t, 0x4000, v.Int64())
	require.Equal(t, []byte{0xca, 0xfe, 0x80}, rest)
	require.True(t, &input[3] == &rest[0], "rest must alias the input")

	n, rest, err := Decode32(input)
	require.NoError(t, err)
	require.EqualValues(t, 0x4000, n)
	require.Equal(t, []byte{0xca, 0xfe, 0x80}, rest)
}

func TestDecode_Errors(t *testing.T) {
	_, rest, err := Decode([]byte{0xff})
	require.True(t, IsBadArgument(err))
	require.Nil(t, rest)
	require.Contains(t, err.Error(), "without a terminating byte")

	_, _, err = Decode(nil)
	require.True(t, IsBadArgument(err))
	require.Contains(t, err.Error(), "empty input")

	_, rest, err = Decode32([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0x00})
	require.True(t, IsBadArgument(err))
	require.Nil(t, rest)
	require.Contains(t, err.Error(), "within 5 bytes")

	_, _, err = Decode32([]byte{0xff, 0xff, 0xff, 0xff, 0xff})
	require.True(t, IsBadArgument(err))

	_, _, err = DecodeMax(MaxBytes(2), []byte{0x81, 0x80, 0x00})
	require.True(t, IsBadArgument(err))

	_, _, err = DecodeMax(MaxBytes(0), []byte{0x00})
	require.True(t, IsBadArgument(err))
	require.True(t, errors.Is(err, ErrBadArgument))
}

func TestDecodeMax_Boundary(t *testing.T) {
	input := []byte{0xff, 0xff, 0xff, 0xff, 0x7f}
	v, rest, err := DecodeMax(MaxBytes(5), input)
	require.NoError(t, err)
	require.EqualValues(t, 1<<35-1, v.Uint64())
	require.Empty(t, rest)

	_, _, err = DecodeMax(MaxBytes(4), input)
	require.True(t, IsBadArgument(err))
}

func TestDecodeUint64_Overflow(t *testing.T) {
	c := NewCodec(Unbounded)
	max, err := c.EncodeUint64(^uint64(0))
	require.NoError(t, err)
	v, _, err := c.DecodeUint64(max)
	require.NoError(t, err)
	require.Equal(t, ^uint64(0), v)

	tooBig, err := Encode(new(big.Int).Lsh(big.NewInt(1), 64))
	require.NoError(t, err)
	_, _, err = c.DecodeUint64(tooBig)
	require.True(t, IsBadArgument(err))
	require.Contains(t, err.Error(), "overflows uint64")
}
