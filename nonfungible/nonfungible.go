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

// Package nonfungible encodes and decodes non-fungible collection and token
// identifiers.
//
// A non-fungible id has the flag bit set. For a mask length n the 255 bits
// below the flag are split as follows:
//
//	bit 255              flag, always 1
//	bits 254 .. 256-n    base collection id, n-1 bits
//	bits 255-n .. 0      base token id, 256-n bits, 0 for a collection id
//
// With n == 1 there is room for a single collection (base id 0) and 2^255-1
// tokens; with n == 255 there are 2^254 collections of a single token each.
package nonfungible

import (
	"fmt"

	"github.com/holiman/uint256"
	"github.com/weiihann/inventoryids/common"
)

// AssertNfMaskLength checks that n is a usable non-fungible mask length. Zero
// is rejected since the mask must at least cover the flag bit.
func AssertNfMaskLength(n int) error {
	if err := common.AssertNfMaskLength(n); err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: must be > 0 to manage non-fungibles", common.ErrInvalidMaskLength)
	}
	return nil
}

// AssertID checks that id has the non-fungible flag set.
func AssertID(id *uint256.Int) error {
	if common.IsFungible(id) {
		return fmt.Errorf("%w: %s", common.ErrNotNonFungible, id.Hex())
	}
	return nil
}

// MaxBaseCollectionID returns the largest base collection id for the mask length.
func MaxBaseCollectionID(nfMaskLength int) (*uint256.Int, error) {
	l, err := NewLayout(nfMaskLength)
	if err != nil {
		return nil, err
	}
	return l.MaxBaseCollectionID(), nil
}

// MakeCollectionMask returns the n-bit mask at the top of the id space
// isolating the flag and collection segment.
func MakeCollectionMask(nfMaskLength int) (*uint256.Int, error) {
	l, err := NewLayout(nfMaskLength)
	if err != nil {
		return nil, err
	}
	return l.CollectionMask(), nil
}

// MakeCollectionID computes (baseCollectionID << (256-n)) | NonFungibleFlag.
func MakeCollectionID(baseCollectionID *uint256.Int, nfMaskLength int) (*uint256.Int, error) {
	l, err := NewLayout(nfMaskLength)
	if err != nil {
		return nil, err
	}
	return l.CollectionID(baseCollectionID)
}

// GetCollectionID returns id with its token segment cleared.
func GetCollectionID(id *uint256.Int, nfMaskLength int) (*uint256.Int, error) {
	if err := AssertID(id); err != nil {
		return nil, err
	}
	l, err := NewLayout(nfMaskLength)
	if err != nil {
		return nil, err
	}
	return l.CollectionIDOf(id)
}

// GetBaseCollectionID recovers the base collection id passed to MakeCollectionID.
func GetBaseCollectionID(id *uint256.Int, nfMaskLength int) (*uint256.Int, error) {
	if err := AssertID(id); err != nil {
		return nil, err
	}
	l, err := NewLayout(nfMaskLength)
	if err != nil {
		return nil, err
	}
	return l.BaseCollectionIDOf(id)
}

// MaxBaseTokenID returns the largest base token id for the mask length.
func MaxBaseTokenID(nfMaskLength int) (*uint256.Int, error) {
	l, err := NewLayout(nfMaskLength)
	if err != nil {
		return nil, err
	}
	return l.MaxBaseTokenID(), nil
}

// MakeTokenMask returns the all-ones mask of the token segment.
func MakeTokenMask(nfMaskLength int) (*uint256.Int, error) {
	return MaxBaseTokenID(nfMaskLength)
}

// MakeTokenID composes a token id. Checks run in order: zero token, mask
// length, token range, then the collection checks of MakeCollectionID.
func MakeTokenID(baseTokenID, baseCollectionID *uint256.Int, nfMaskLength int) (*uint256.Int, error) {
	if baseTokenID.IsZero() {
		return nil, common.ErrZeroTokenID
	}
	l, err := NewLayout(nfMaskLength)
	if err != nil {
		return nil, err
	}
	return l.TokenID(baseTokenID, baseCollectionID)
}

// GetBaseTokenID returns the token segment of id.
func GetBaseTokenID(id *uint256.Int, nfMaskLength int) (*uint256.Int, error) {
	if err := AssertID(id); err != nil {
		return nil, err
	}
	l, err := NewLayout(nfMaskLength)
	if err != nil {
		return nil, err
	}
	return l.BaseTokenIDOf(id)
}
