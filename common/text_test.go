package common

import (
	"math/big"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBig(t *testing.T) {
	tests := []struct {
		in   string
		base int
		want int64
	}{
		{"12", 0, 12},
		{" 12 ", 0, 12},
		{"0x10", 0, 16},
		{"0o17", 0, 15},
		{"0b101", 0, 5},
		{"ff", 16, 255},
		{"z", 36, 35},
		{"-3", 0, -3},
		{"010", 0, 10},
		{"0100", 0, 100},
		{"09", 0, 9},
		{"0", 0, 0},
		{"0X1f", 0, 31},
		{"0B11", 0, 3},
		{"-0x10", 0, -16},
	}
	for _, tt := range tests {
		v, err := ParseBig(tt.in, tt.base)
		require.NoError(t, err, "in=%q", tt.in)
		assert.Equal(t, tt.want, v.Int64(), "in=%q", tt.in)
	}

	_, err := ParseBig("0xzz", 0)
	assert.ErrorIs(t, err, ErrInvalidNumber)
	_, err = ParseBig("", 0)
	assert.ErrorIs(t, err, ErrInvalidNumber)
	_, err = ParseBig("1_000", 0)
	assert.ErrorIs(t, err, ErrInvalidNumber)
	_, err = ParseBig("0x_10", 0)
	assert.ErrorIs(t, err, ErrInvalidNumber)
	_, err = ParseBig("0x", 0)
	assert.ErrorIs(t, err, ErrInvalidNumber)
	_, err = ParseBig("0x-5", 0)
	assert.ErrorIs(t, err, ErrInvalidNumber)
	_, err = ParseBig("10", 37)
	assert.ErrorIs(t, err, ErrInvalidBase)
}

func TestParseBigBeyond256Bits(t *testing.T) {
	v, err := ParseBig("0x1"+"0000000000000000000000000000000000000000000000000000000000000000", 0)
	require.NoError(t, err)
	assert.Equal(t, 257, v.BitLen())
}

func TestToValue(t *testing.T) {
	v, err := ToValue(big.NewInt(7))
	require.NoError(t, err)
	assert.Equal(t, uint64(7), v.Uint64())

	_, err = ToValue(big.NewInt(-1))
	assert.ErrorIs(t, err, ErrValueTooLarge)
	_, err = ToValue(new(big.Int).Lsh(big.NewInt(1), 256))
	assert.ErrorIs(t, err, ErrValueTooLarge)
	_, err = ToValue(nil)
	assert.ErrorIs(t, err, ErrInvalidNumber)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		v    *uint256.Int
		base int
		want string
	}{
		{uint256.NewInt(0), 10, "0"},
		{uint256.NewInt(255), 16, "ff"},
		{uint256.NewInt(5), 2, "101"},
		{uint256.NewInt(35), 36, "z"},
		{NonFungibleFlag(), 10, flagDec},
		{NonFungibleFlag(), 16, "8000000000000000000000000000000000000000000000000000000000000000"},
	}
	for _, tt := range tests {
		got, err := Format(tt.v, tt.base)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	for _, base := range []int{0, 1, 37} {
		_, err := Format(uint256.NewInt(1), base)
		assert.ErrorIs(t, err, ErrInvalidBase, "base=%d", base)
	}
}
