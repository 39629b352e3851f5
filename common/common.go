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

// Package common contains the primitives shared by fungible and non-fungible
// inventory identifiers: masks, the non-fungible flag, range checks and the
// error kinds returned by every identifier operation.
//
// An identifier is a 256-bit unsigned integer. Its most significant bit is the
// fungibility flag: 0 for a fungible collection, 1 for a non-fungible
// collection or token.
package common

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

const (
	// IDBits is the width of an identifier.
	IDBits = 256

	// MaxNonFungibleMaskLength is the largest mask length a non-fungible id
	// can use. The mask covers the flag bit plus the collection segment.
	MaxNonFungibleMaskLength = IDBits - 1
)

// nonFungibleFlag is 2^255, the bit marking an id as non-fungible.
var nonFungibleFlag = uint256.Int{0, 0, 0, 1 << 63}

// NonFungibleFlag returns 2^255, the bit marking an id as non-fungible.
func NonFungibleFlag() *uint256.Int {
	return nonFungibleFlag.Clone()
}

// maxID is 2^256-1, the largest representable identifier.
var maxID = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), IDBits), big.NewInt(1))

// Mask returns an integer whose low nbBits bits are set, i.e. (1<<nbBits)-1.
// Widths of IDBits or more yield the all-ones identifier.
func Mask(nbBits uint) *uint256.Int {
	if nbBits >= IDBits {
		return new(uint256.Int).SetAllOne()
	}
	m := new(uint256.Int).Lsh(uint256.NewInt(1), nbBits)
	return m.Sub(m, uint256.NewInt(1))
}

// AssertID checks that id is in [0, 2^256-1].
func AssertID(id *big.Int) error {
	if id == nil || id.Sign() < 0 || id.Cmp(maxID) > 0 {
		return fmt.Errorf("%w: %v", ErrIDOutOfRange, id)
	}
	return nil
}

// ToID validates id with AssertID and converts it to its fixed-width form.
func ToID(id *big.Int) (*uint256.Int, error) {
	if err := AssertID(id); err != nil {
		return nil, err
	}
	v, _ := uint256.FromBig(id)
	return v, nil
}

// AssertNfMaskLength checks that n is in [0, MaxNonFungibleMaskLength].
func AssertNfMaskLength(n int) error {
	if n < 0 || n > MaxNonFungibleMaskLength {
		return fmt.Errorf("%w: %d, must be between 0 and %d", ErrInvalidMaskLength, n, MaxNonFungibleMaskLength)
	}
	return nil
}

// IsFungible reports whether the non-fungible flag of id is clear.
func IsFungible(id *uint256.Int) bool {
	return new(uint256.Int).And(id, &nonFungibleFlag).IsZero()
}

// IsNonFungibleToken reports whether id is a non-fungible token, as opposed to
// a fungible id or a non-fungible collection id whose token bits are all zero.
func IsNonFungibleToken(id *uint256.Int, nfMaskLength int) (bool, error) {
	if err := AssertNfMaskLength(nfMaskLength); err != nil {
		return false, err
	}
	if IsFungible(id) {
		return false, nil
	}
	token := new(uint256.Int).And(id, Mask(uint(IDBits-nfMaskLength)))
	return !token.IsZero(), nil
}
