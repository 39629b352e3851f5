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

// Package fungible encodes and decodes fungible collection identifiers.
//
// A fungible id has the non-fungible flag clear and carries its base
// collection id in the remaining 255 bits. There is no token segment, so a
// fungible id is its own collection id.
package fungible

import (
	"fmt"

	"github.com/holiman/uint256"
	"github.com/weiihann/inventoryids/common"
)

// baseCollectionBits is the width of the base collection id.
const baseCollectionBits = common.IDBits - 1

var maxBaseCollectionID = common.Mask(baseCollectionBits)

// AssertID checks that id has the non-fungible flag clear.
func AssertID(id *uint256.Int) error {
	if !common.IsFungible(id) {
		return fmt.Errorf("%w: %s", common.ErrNotFungible, id.Hex())
	}
	return nil
}

// MaxBaseCollectionID returns 2^255-1.
func MaxBaseCollectionID() *uint256.Int {
	return maxBaseCollectionID.Clone()
}

// MakeCollectionID returns the collection id for baseCollectionID. Any value
// below 2^255 already has the flag bit clear, so it is returned unchanged.
func MakeCollectionID(baseCollectionID *uint256.Int) (*uint256.Int, error) {
	if baseCollectionID.Gt(maxBaseCollectionID) {
		return nil, fmt.Errorf("%w: base collection id %s, max %s", common.ErrValueTooLarge, baseCollectionID.Dec(), maxBaseCollectionID.Dec())
	}
	return baseCollectionID.Clone(), nil
}

// GetCollectionID returns the collection id of a fungible id, which is the id itself.
func GetCollectionID(id *uint256.Int) (*uint256.Int, error) {
	if err := AssertID(id); err != nil {
		return nil, err
	}
	return id.Clone(), nil
}
