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
	"encoding/json"

	gethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"github.com/weiihann/inventoryids/common"
	"github.com/weiihann/inventoryids/nonfungible"
)

// Info is the decomposition of an identifier.
type Info struct {
	ID       *uint256.Int
	Fungible bool

	// MaskLength is the non-fungible mask length the id was read with. It is
	// zero for fungible ids.
	MaskLength int

	CollectionID     *uint256.Int
	BaseCollectionID *uint256.Int

	// BaseTokenID is nil for fungible ids and non-fungible collection ids.
	BaseTokenID *uint256.Int
}

// Hash returns the 32-byte big-endian form of the id.
func (info *Info) Hash() gethcommon.Hash {
	return gethcommon.Hash(info.ID.Bytes32())
}

// IsToken reports whether the id addresses a single non-fungible item.
func (info *Info) IsToken() bool {
	return info.BaseTokenID != nil
}

type infoJSON struct {
	ID               *hexutil.U256   `json:"id"`
	Hash             gethcommon.Hash `json:"hash"`
	Fungible         bool            `json:"fungible"`
	MaskLength       int             `json:"maskLength,omitempty"`
	CollectionID     *hexutil.U256   `json:"collectionId"`
	BaseCollectionID *hexutil.U256   `json:"baseCollectionId"`
	BaseTokenID      *hexutil.U256   `json:"baseTokenId,omitempty"`
}

// MarshalJSON encodes the numeric fields as 0x-prefixed hex quantities.
func (info *Info) MarshalJSON() ([]byte, error) {
	return json.Marshal(&infoJSON{
		ID:               (*hexutil.U256)(info.ID),
		Hash:             info.Hash(),
		Fungible:         info.Fungible,
		MaskLength:       info.MaskLength,
		CollectionID:     (*hexutil.U256)(info.CollectionID),
		BaseCollectionID: (*hexutil.U256)(info.BaseCollectionID),
		BaseTokenID:      (*hexutil.U256)(info.BaseTokenID),
	})
}

// Inspect decomposes id. The mask length is only used, and only validated,
// for non-fungible ids.
func Inspect(id any, nfMaskLength int) (*Info, error) {
	v, err := toID(id)
	if err != nil {
		return nil, err
	}
	if common.IsFungible(v) {
		return &Info{
			ID:               v,
			Fungible:         true,
			CollectionID:     v.Clone(),
			BaseCollectionID: v.Clone(),
		}, nil
	}
	layout, err := nonfungible.NewLayout(nfMaskLength)
	if err != nil {
		return nil, err
	}
	info := &Info{ID: v, MaskLength: nfMaskLength}
	if info.CollectionID, err = layout.CollectionIDOf(v); err != nil {
		return nil, err
	}
	if info.BaseCollectionID, err = layout.BaseCollectionIDOf(v); err != nil {
		return nil, err
	}
	token, err := layout.BaseTokenIDOf(v)
	if err != nil {
		return nil, err
	}
	if !token.IsZero() {
		info.BaseTokenID = token
	}
	return info, nil
}
