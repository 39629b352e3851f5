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

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

const (
	// MinBase and MaxBase bound the radix accepted by ParseBig and Format.
	MinBase = 2
	MaxBase = 36

	// DefaultBase is the radix of unprefixed text and of rendered results.
	DefaultBase = 10
)

// ParseBig reads s as an integer in the given base. With base 0 the radix is
// taken from a "0x", "0o" or "0b" prefix (either case) and text without one is
// decimal, leading zeros included. Digit separators are rejected.
func ParseBig(s string, base int) (*big.Int, error) {
	if base != 0 && (base < MinBase || base > MaxBase) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBase, base)
	}
	digits := strings.TrimSpace(s)
	neg := false
	if len(digits) > 0 && (digits[0] == '-' || digits[0] == '+') {
		neg = digits[0] == '-'
		digits = digits[1:]
	}
	if base == 0 {
		base, digits = splitPrefix(digits)
	}
	if digits == "" || digits[0] == '-' || digits[0] == '+' {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	v, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	if neg {
		v.Neg(v)
	}
	return v, nil
}

// splitPrefix returns the radix selected by the prefix of s and the digits
// that follow it.
func splitPrefix(s string) (int, string) {
	if len(s) > 1 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			return 16, s[2:]
		case 'o', 'O':
			return 8, s[2:]
		case 'b', 'B':
			return 2, s[2:]
		}
	}
	return DefaultBase, s
}

// ToValue converts a base collection or base token id to its fixed-width form.
// Anything outside [0, 2^256-1] can never fit a segment and fails with
// ErrValueTooLarge.
func ToValue(v *big.Int) (*uint256.Int, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil", ErrInvalidNumber)
	}
	if v.Sign() < 0 {
		return nil, fmt.Errorf("%w: %v is negative", ErrValueTooLarge, v)
	}
	u, overflow := uint256.FromBig(v)
	if overflow {
		return nil, fmt.Errorf("%w: %v exceeds %d bits", ErrValueTooLarge, v, IDBits)
	}
	return u, nil
}

// Format renders v in the given base using lower-case digits and no prefix.
func Format(v *uint256.Int, base int) (string, error) {
	if base < MinBase || base > MaxBase {
		return "", fmt.Errorf("%w: %d", ErrInvalidBase, base)
	}
	if base == 10 {
		return v.Dec(), nil
	}
	return v.ToBig().Text(base), nil
}
