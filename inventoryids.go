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

// Package inventoryids builds and reads 256-bit inventory identifiers.
//
// The most significant bit of an identifier tells fungible resource pools
// (flag 0) from non-fungible items (flag 1). Fungible ids are made of a base
// collection id only. Non-fungible ids carry a base collection id and a base
// token id, split at a caller chosen mask length.
//
// The functions in this package accept numbers as decimal or prefixed text,
// native integers, *big.Int, uint256 values or 32-byte hashes, and return
// text in the radix selected with WithOutputBase. The typed building blocks
// live in the common, fungible and nonfungible packages.
package inventoryids

import (
	"github.com/holiman/uint256"
	"github.com/weiihann/inventoryids/common"
	"github.com/weiihann/inventoryids/fungible"
	"github.com/weiihann/inventoryids/nonfungible"
)

// MaxNonFungibleMaskLength is the largest non-fungible mask length.
const MaxNonFungibleMaskLength = common.MaxNonFungibleMaskLength

// NonFungibleFlag returns 2^255.
func NonFungibleFlag() *uint256.Int {
	return common.NonFungibleFlag()
}

// IsFungible reports whether bit 255 of id is clear. The id is not range checked.
func IsFungible(id any) (bool, error) {
	b, err := toBig(id)
	if err != nil {
		return false, err
	}
	return b.Bit(common.IDBits-1) == 0, nil
}

// IsNonFungibleToken reports whether id is a non-fungible id with a non-zero
// token segment.
func IsNonFungibleToken(id any, nfMaskLength int) (bool, error) {
	v, err := toID(id)
	if err != nil {
		return false, err
	}
	return common.IsNonFungibleToken(v, nfMaskLength)
}

// MaxFungibleBaseCollectionID returns 2^255-1.
func MaxFungibleBaseCollectionID(opts ...Option) (string, error) {
	return newOptions(opts).render(fungible.MaxBaseCollectionID(), nil)
}

// MakeFungibleCollectionID returns the fungible collection id of baseCollectionID.
func MakeFungibleCollectionID(baseCollectionID any, opts ...Option) (string, error) {
	base, err := toValue(baseCollectionID)
	if err != nil {
		return "", err
	}
	return newOptions(opts).render(fungible.MakeCollectionID(base))
}

// GetFungibleCollectionID returns the collection id of a fungible id.
func GetFungibleCollectionID(id any, opts ...Option) (string, error) {
	v, err := toID(id)
	if err != nil {
		return "", err
	}
	return newOptions(opts).render(fungible.GetCollectionID(v))
}

// MaxNonFungibleBaseCollectionID returns 2^(nfMaskLength-1)-1.
func MaxNonFungibleBaseCollectionID(nfMaskLength int, opts ...Option) (string, error) {
	return newOptions(opts).render(nonfungible.MaxBaseCollectionID(nfMaskLength))
}

// MakeNonFungibleCollectionID returns the non-fungible collection id of baseCollectionID.
func MakeNonFungibleCollectionID(baseCollectionID any, nfMaskLength int, opts ...Option) (string, error) {
	base, err := toValue(baseCollectionID)
	if err != nil {
		return "", err
	}
	return newOptions(opts).render(nonfungible.MakeCollectionID(base, nfMaskLength))
}

// GetNonFungibleCollectionID returns id with its token segment cleared.
func GetNonFungibleCollectionID(id any, nfMaskLength int, opts ...Option) (string, error) {
	v, err := toID(id)
	if err != nil {
		return "", err
	}
	return newOptions(opts).render(nonfungible.GetCollectionID(v, nfMaskLength))
}

// GetNonFungibleBaseCollectionID returns the base collection id of a non-fungible id.
func GetNonFungibleBaseCollectionID(id any, nfMaskLength int, opts ...Option) (string, error) {
	v, err := toID(id)
	if err != nil {
		return "", err
	}
	return newOptions(opts).render(nonfungible.GetBaseCollectionID(v, nfMaskLength))
}

// MaxNonFungibleBaseTokenID returns 2^(256-nfMaskLength)-1.
func MaxNonFungibleBaseTokenID(nfMaskLength int, opts ...Option) (string, error) {
	return newOptions(opts).render(nonfungible.MaxBaseTokenID(nfMaskLength))
}

// MakeNonFungibleTokenID returns the id of token baseTokenID in collection baseCollectionID.
func MakeNonFungibleTokenID(baseTokenID, baseCollectionID any, nfMaskLength int, opts ...Option) (string, error) {
	token, err := toValue(baseTokenID)
	if err != nil {
		return "", err
	}
	if token.IsZero() {
		return "", common.ErrZeroTokenID
	}
	collection, err := toValue(baseCollectionID)
	if err != nil {
		return "", err
	}
	return newOptions(opts).render(nonfungible.MakeTokenID(token, collection, nfMaskLength))
}

// GetNonFungibleBaseTokenID returns the base token id of a non-fungible id.
func GetNonFungibleBaseTokenID(id any, nfMaskLength int, opts ...Option) (string, error) {
	v, err := toID(id)
	if err != nil {
		return "", err
	}
	return newOptions(opts).render(nonfungible.GetBaseTokenID(v, nfMaskLength))
}
