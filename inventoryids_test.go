package inventoryids

import (
	"math/big"
	"strings"
	"testing"

	gethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weiihann/inventoryids/common"
)

const flagDec = "57896044618658097711785492504343953926634992332820282019728792003956564819968"

func TestKnownValues(t *testing.T) {
	id, err := MakeNonFungibleCollectionID(0, 1)
	require.NoError(t, err)
	assert.Equal(t, flagDec, id)

	id, err = MakeNonFungibleTokenID(1, 0, 255)
	require.NoError(t, err)
	want := uint256.MustFromHex("0x8000000000000000000000000000000000000000000000000000000000000001")
	assert.Equal(t, want.Dec(), id)

	limit, err := MaxFungibleBaseCollectionID(WithOutputBase(16))
	require.NoError(t, err)
	assert.Equal(t, "7FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF", strings.ToUpper(limit))

	limit, err = MaxNonFungibleBaseCollectionID(3)
	require.NoError(t, err)
	assert.Equal(t, "3", limit)

	fungible, err := IsFungible(NonFungibleFlag())
	require.NoError(t, err)
	assert.False(t, fungible)

	assert.Equal(t, 255, MaxNonFungibleMaskLength)
}

func TestInputForms(t *testing.T) {
	tests := []struct {
		name string
		in   any
	}{
		{"int", 5},
		{"int64", int64(5)},
		{"uint", uint(5)},
		{"uint64", uint64(5)},
		{"decimal", "5"},
		{"hex", "0x5"},
		{"binary", "0b101"},
		{"big", big.NewInt(5)},
		{"hexutil", (*hexutil.Big)(big.NewInt(5))},
		{"uint256 pointer", uint256.NewInt(5)},
		{"uint256 value", *uint256.NewInt(5)},
		{"hash", gethcommon.BigToHash(big.NewInt(5))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := GetFungibleCollectionID(tt.in)
			require.NoError(t, err)
			assert.Equal(t, "5", id)
		})
	}

	_, err := GetFungibleCollectionID(5.0)
	assert.ErrorIs(t, err, common.ErrInvalidNumber)
	_, err = GetFungibleCollectionID((*big.Int)(nil))
	assert.ErrorIs(t, err, common.ErrInvalidNumber)
	_, err = GetFungibleCollectionID("five")
	assert.ErrorIs(t, err, common.ErrInvalidNumber)
}

func TestDecimalLeadingZeros(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"010", "10"},
		{"0100", "100"},
		{"09", "9"},
		{"007", "7"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			id, err := MakeFungibleCollectionID(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}

	id, err := MakeNonFungibleTokenID("01", "010", 250)
	require.NoError(t, err)
	want, err := MakeNonFungibleTokenID(1, 10, 250)
	require.NoError(t, err)
	assert.Equal(t, want, id)

	_, err = MakeFungibleCollectionID("1_000")
	assert.ErrorIs(t, err, common.ErrInvalidNumber)
	_, err = GetFungibleCollectionID("0x_ff")
	assert.ErrorIs(t, err, common.ErrInvalidNumber)
}

func TestOutputBase(t *testing.T) {
	tests := []struct {
		base int
		want string
	}{
		{2, "11111111"},
		{8, "377"},
		{10, "255"},
		{16, "ff"},
		{36, "73"},
	}
	for _, tt := range tests {
		got, err := MakeFungibleCollectionID(255, WithOutputBase(tt.base))
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := MakeFungibleCollectionID(255, WithOutputBase(1))
	assert.ErrorIs(t, err, common.ErrInvalidBase)
}

func TestFungible(t *testing.T) {
	for _, v := range []string{"0", "1", "2"} {
		id, err := MakeFungibleCollectionID(v)
		require.NoError(t, err)
		assert.Equal(t, v, id)

		got, err := GetFungibleCollectionID(id)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	limit, err := MaxFungibleBaseCollectionID()
	require.NoError(t, err)
	id, err := MakeFungibleCollectionID(limit, WithOutputBase(16))
	require.NoError(t, err)
	assert.Equal(t, "7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff", id)

	overflow, _ := new(big.Int).SetString(limit, 10)
	overflow.Add(overflow, big.NewInt(1))
	_, err = MakeFungibleCollectionID(overflow)
	assert.ErrorIs(t, err, common.ErrValueTooLarge)
	_, err = GetFungibleCollectionID(overflow)
	assert.ErrorIs(t, err, common.ErrNotFungible)

	_, err = MakeFungibleCollectionID(-1)
	assert.ErrorIs(t, err, common.ErrValueTooLarge)
	_, err = MakeFungibleCollectionID(new(big.Int).Lsh(big.NewInt(1), 300))
	assert.ErrorIs(t, err, common.ErrValueTooLarge)
	_, err = GetFungibleCollectionID(new(big.Int).Lsh(big.NewInt(1), 256))
	assert.ErrorIs(t, err, common.ErrIDOutOfRange)
}

func TestNonFungibleRoundTrip(t *testing.T) {
	const n = 32
	collection, err := MakeNonFungibleCollectionID("1234", n)
	require.NoError(t, err)

	base, err := GetNonFungibleBaseCollectionID(collection, n)
	require.NoError(t, err)
	assert.Equal(t, "1234", base)

	token, err := MakeNonFungibleTokenID("0xdeadbeef", "1234", n, WithOutputBase(16))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(token, "800004d2"), token)
	assert.True(t, strings.HasSuffix(token, "deadbeef"), token)

	tokenHex := "0x" + token
	baseToken, err := GetNonFungibleBaseTokenID(tokenHex, n, WithOutputBase(16))
	require.NoError(t, err)
	assert.Equal(t, "deadbeef", baseToken)

	collectionOf, err := GetNonFungibleCollectionID(tokenHex, n)
	require.NoError(t, err)
	assert.Equal(t, collection, collectionOf)

	isToken, err := IsNonFungibleToken(tokenHex, n)
	require.NoError(t, err)
	assert.True(t, isToken)

	isToken, err = IsNonFungibleToken(collection, n)
	require.NoError(t, err)
	assert.False(t, isToken)

	maxToken, err := MaxNonFungibleBaseTokenID(255)
	require.NoError(t, err)
	assert.Equal(t, "1", maxToken)
}

func TestNonFungibleErrors(t *testing.T) {
	_, err := MakeNonFungibleTokenID(0, new(big.Int).Lsh(big.NewInt(1), 300), 8)
	assert.ErrorIs(t, err, common.ErrZeroTokenID)

	_, err = MakeNonFungibleTokenID(1, 0, 0)
	assert.ErrorIs(t, err, common.ErrInvalidMaskLength)

	_, err = MakeNonFungibleCollectionID(4, 3)
	assert.ErrorIs(t, err, common.ErrValueTooLarge)

	_, err = GetNonFungibleCollectionID(1, 8)
	assert.ErrorIs(t, err, common.ErrNotNonFungible)

	_, err = IsNonFungibleToken(new(big.Int).Lsh(big.NewInt(1), 256), 8)
	assert.ErrorIs(t, err, common.ErrIDOutOfRange)

	_, err = MaxNonFungibleBaseCollectionID(256)
	assert.ErrorIs(t, err, common.ErrInvalidMaskLength)
}

func TestIsFungibleUnchecked(t *testing.T) {
	// Bit 255 is clear, but the value does not fit 256 bits.
	big257 := new(big.Int).Lsh(big.NewInt(1), 256)
	fungible, err := IsFungible(big257)
	require.NoError(t, err)
	assert.True(t, fungible)
}
