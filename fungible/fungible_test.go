package fungible

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weiihann/inventoryids/common"
)

func TestMaxBaseCollectionID(t *testing.T) {
	assert.Equal(t, "0x7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff", MaxBaseCollectionID().Hex())

	// Callers must not be able to alter the package limit.
	MaxBaseCollectionID().SetUint64(0)
	assert.Equal(t, 255, MaxBaseCollectionID().BitLen())
}

func TestMakeCollectionID(t *testing.T) {
	for _, v := range []uint64{0, 1, 2} {
		id, err := MakeCollectionID(uint256.NewInt(v))
		require.NoError(t, err)
		assert.Equal(t, v, id.Uint64())
		assert.True(t, common.IsFungible(id))
	}

	id, err := MakeCollectionID(MaxBaseCollectionID())
	require.NoError(t, err)
	assert.True(t, id.Eq(MaxBaseCollectionID()))

	// One past the max overflows into the non-fungible flag.
	overflow := new(uint256.Int).AddUint64(MaxBaseCollectionID(), 1)
	_, err = MakeCollectionID(overflow)
	assert.ErrorIs(t, err, common.ErrValueTooLarge)

	_, err = MakeCollectionID(new(uint256.Int).SetAllOne())
	assert.ErrorIs(t, err, common.ErrValueTooLarge)
}

func TestGetCollectionID(t *testing.T) {
	tests := []*uint256.Int{
		uint256.NewInt(0),
		uint256.NewInt(1),
		uint256.NewInt(2),
		MaxBaseCollectionID(),
	}
	for _, id := range tests {
		got, err := GetCollectionID(id)
		require.NoError(t, err)
		assert.True(t, got.Eq(id), "id=%s got=%s", id.Hex(), got.Hex())
	}

	flag := *common.NonFungibleFlag()
	_, err := GetCollectionID(&flag)
	assert.ErrorIs(t, err, common.ErrNotFungible)
}

func TestCollectionIDRoundTrip(t *testing.T) {
	for bits := uint(0); bits <= 255; bits += 17 {
		base := common.Mask(bits)
		id, err := MakeCollectionID(base)
		require.NoError(t, err)
		got, err := GetCollectionID(id)
		require.NoError(t, err)
		assert.True(t, got.Eq(base), "bits=%d", bits)
	}
}

func TestAssertID(t *testing.T) {
	assert.NoError(t, AssertID(uint256.NewInt(9)))
	assert.ErrorIs(t, AssertID(common.Mask(256)), common.ErrNotFungible)
}
