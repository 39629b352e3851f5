// Copyright 2026 The inventoryids Authors
// This file is part of the inventoryids library.
//
// The inventoryids library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The inventoryids library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the inventoryids library. If not, see <http://www.gnu.org/licenses/>.

package nonfungible

import (
	"fmt"

	"github.com/holiman/uint256"
	"github.com/weiihann/inventoryids/common"
)

// Layout is a validated non-fungible mask length. It splits the 255 bits below
// the flag into a collection segment of MaskLength()-1 bits and a token
// segment of 256-MaskLength() bits. The zero Layout is not usable, build one
// with NewLayout.
type Layout struct {
	maskLength int
}

// NewLayout validates nfMaskLength and returns the layout it describes.
func NewLayout(nfMaskLength int) (Layout, error) {
	if err := AssertNfMaskLength(nfMaskLength); err != nil {
		return Layout{}, err
	}
	return Layout{maskLength: nfMaskLength}, nil
}

// MaskLength returns the number of bits covered by the flag and the
// collection segment.
func (l Layout) MaskLength() int { return l.maskLength }

// CollectionBits returns the width of the base collection id.
func (l Layout) CollectionBits() int { return l.maskLength - 1 }

// TokenBits returns the width of the base token id.
func (l Layout) TokenBits() int { return common.IDBits - l.maskLength }

func (l Layout) shift() uint { return uint(l.TokenBits()) }

// MaxBaseCollectionID returns 2^(n-1)-1.
func (l Layout) MaxBaseCollectionID() *uint256.Int {
	return common.Mask(uint(l.CollectionBits()))
}

// MaxBaseTokenID returns 2^(256-n)-1.
func (l Layout) MaxBaseTokenID() *uint256.Int {
	return common.Mask(uint(l.TokenBits()))
}

// CollectionMask covers the flag bit and the collection segment.
func (l Layout) CollectionMask() *uint256.Int {
	m := common.Mask(uint(l.maskLength))
	return m.Lsh(m, l.shift())
}

// TokenMask covers the token segment. It has the same value as MaxBaseTokenID.
func (l Layout) TokenMask() *uint256.Int {
	return l.MaxBaseTokenID()
}

// CollectionID places baseCollectionID in the collection segment and sets the
// non-fungible flag.
func (l Layout) CollectionID(baseCollectionID *uint256.Int) (*uint256.Int, error) {
	limit := l.MaxBaseCollectionID()
	if baseCollectionID.Gt(limit) {
		return nil, fmt.Errorf("%w: base collection id %s, max %s", common.ErrValueTooLarge, baseCollectionID.Dec(), limit.Dec())
	}
	id := new(uint256.Int).Lsh(baseCollectionID, l.shift())
	return id.Or(id, common.NonFungibleFlag()), nil
}

// TokenID combines a non-zero baseTokenID with the collection id of
// baseCollectionID. The segments are disjoint, so OR-ing them is lossless.
func (l Layout) TokenID(baseTokenID, baseCollectionID *uint256.Int) (*uint256.Int, error) {
	if baseTokenID.IsZero() {
		return nil, common.ErrZeroTokenID
	}
	limit := l.MaxBaseTokenID()
	if baseTokenID.Gt(limit) {
		return nil, fmt.Errorf("%w: base token id %s, max %s", common.ErrValueTooLarge, baseTokenID.Dec(), limit.Dec())
	}
	collectionID, err := l.CollectionID(baseCollectionID)
	if err != nil {
		return nil, err
	}
	return collectionID.Or(collectionID, baseTokenID), nil
}

// CollectionIDOf clears the token segment of a non-fungible id.
func (l Layout) CollectionIDOf(id *uint256.Int) (*uint256.Int, error) {
	if err := AssertID(id); err != nil {
		return nil, err
	}
	return new(uint256.Int).And(id, l.CollectionMask()), nil
}

// BaseCollectionIDOf recovers the base collection id of a non-fungible id.
func (l Layout) BaseCollectionIDOf(id *uint256.Int) (*uint256.Int, error) {
	collectionID, err := l.CollectionIDOf(id)
	if err != nil {
		return nil, err
	}
	collectionID.Xor(collectionID, common.NonFungibleFlag())
	return collectionID.Rsh(collectionID, l.shift()), nil
}

// BaseTokenIDOf returns the token segment of a non-fungible id. It is zero for
// a collection id.
func (l Layout) BaseTokenIDOf(id *uint256.Int) (*uint256.Int, error) {
	if err := AssertID(id); err != nil {
		return nil, err
	}
	return new(uint256.Int).And(id, l.TokenMask()), nil
}

// IsToken reports whether id is a non-fungible token under this layout.
func (l Layout) IsToken(id *uint256.Int) bool {
	return !common.IsFungible(id) && !new(uint256.Int).And(id, l.TokenMask()).IsZero()
}
