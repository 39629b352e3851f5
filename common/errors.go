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

package common

import "errors"

var (
	// ErrIDOutOfRange is returned when an identifier does not fit in 256 unsigned bits.
	ErrIDOutOfRange = errors.New("id out of range (more than 256 bits)")

	// ErrInvalidMaskLength is returned for a non-fungible mask length outside
	// the range accepted by the operation.
	ErrInvalidMaskLength = errors.New("invalid non-fungible mask length")

	// ErrNotFungible is returned when a fungible id was expected but the
	// non-fungible flag is set.
	ErrNotFungible = errors.New("id must have the non-fungible flag set to 0")

	// ErrNotNonFungible is returned when a non-fungible id was expected but the
	// non-fungible flag is clear.
	ErrNotNonFungible = errors.New("id must have the non-fungible flag set to 1")

	// ErrValueTooLarge is returned when a base collection or base token id does
	// not fit in the bits allotted to it.
	ErrValueTooLarge = errors.New("value too large")

	// ErrZeroTokenID is returned when composing a token id from a zero base token id.
	ErrZeroTokenID = errors.New("base token id must not be 0")

	// ErrInvalidNumber is returned for input that cannot be read as an integer.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrInvalidBase is returned for a text radix outside [MinBase, MaxBase].
	ErrInvalidBase = errors.New("invalid radix")
)
