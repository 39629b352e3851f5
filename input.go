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

package inventoryids

import (
	"fmt"
	"math/big"

	gethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"github.com/weiihann/inventoryids/common"
)

// toBig normalizes a caller supplied number. Strings may carry a 0x, 0o or 0b
// prefix and are decimal otherwise.
func toBig(v any) (*big.Int, error) {
	switch x := v.(type) {
	case string:
		return common.ParseBig(x, 0)
	case int:
		return big.NewInt(int64(x)), nil
	case int64:
		return big.NewInt(x), nil
	case uint:
		return new(big.Int).SetUint64(uint64(x)), nil
	case uint64:
		return new(big.Int).SetUint64(x), nil
	case *big.Int:
		if x == nil {
			break
		}
		return new(big.Int).Set(x), nil
	case *hexutil.Big:
		if x == nil {
			break
		}
		return new(big.Int).Set(x.ToInt()), nil
	case *uint256.Int:
		if x == nil {
			break
		}
		return x.ToBig(), nil
	case uint256.Int:
		return x.ToBig(), nil
	case gethcommon.Hash:
		return x.Big(), nil
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", common.ErrInvalidNumber, v)
	}
	return nil, fmt.Errorf("%w: nil %T", common.ErrInvalidNumber, v)
}

// toID normalizes an identifier, failing with common.ErrIDOutOfRange when it
// does not fit 256 bits.
func toID(v any) (*uint256.Int, error) {
	b, err := toBig(v)
	if err != nil {
		return nil, err
	}
	return common.ToID(b)
}

// toValue normalizes a base collection or base token id.
func toValue(v any) (*uint256.Int, error) {
	b, err := toBig(v)
	if err != nil {
		return nil, err
	}
	return common.ToValue(b)
}
