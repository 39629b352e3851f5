// Copyright 2026 The inventoryids Authors
// This file is part of invid.
//
// invid is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// invid is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with invid. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/holiman/uint256"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
	"github.com/weiihann/inventoryids"
	"github.com/weiihann/inventoryids/common"
	"github.com/weiihann/inventoryids/nonfungible"
)

var (
	inspectCommand = &cli.Command{
		Name:      "inspect",
		Usage:     "Decompose an id into its segments",
		ArgsUsage: "<id>",
		Flags:     []cli.Flag{jsonFlag},
		Action:    inspect,
		Description: `The id may be decimal or carry a 0x, 0o or 0b prefix. Fungible ids are
decomposed without a mask length; non-fungible ids need --mask-length.`,
	}
	layoutCommand = &cli.Command{
		Name:   "layout",
		Usage:  "Show the bit layout of non-fungible ids for the mask length",
		Action: layout,
	}
)

func inspect(ctx *cli.Context) error {
	if err := checkArgs(ctx, 1); err != nil {
		return err
	}
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	info, err := inventoryids.Inspect(ctx.Args().Get(0), cfg.Inventory.MaskLength)
	if err != nil {
		return err
	}
	if ctx.Bool(jsonFlag.Name) {
		out, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(ctx.App.Writer, string(out))
		return err
	}

	base := cfg.Inventory.OutputBase
	kind := "non-fungible collection"
	switch {
	case info.Fungible:
		kind = "fungible collection"
	case info.IsToken():
		kind = "non-fungible token"
	}
	data := [][]string{
		{"Kind", kind},
		{"Hash", info.Hash().Hex()},
		{"ID", formatValue(info.ID, base)},
		{"Collection ID", formatValue(info.CollectionID, base)},
		{"Base collection ID", formatValue(info.BaseCollectionID, base)},
	}
	if !info.Fungible {
		data = append(data, []string{"Mask length", strconv.Itoa(info.MaskLength)})
	}
	if info.IsToken() {
		data = append(data, []string{"Base token ID", formatValue(info.BaseTokenID, base)})
	}
	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetHeader([]string{"Field", "Value"})
	table.AppendBulk(data)
	table.Render()
	return nil
}

func layout(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	l, err := nonfungible.NewLayout(cfg.Inventory.MaskLength)
	if err != nil {
		return err
	}
	base := cfg.Inventory.OutputBase
	tokenBits := l.TokenBits()
	data := [][]string{
		{"flag", "255", "1", "1"},
		{"base collection id", bitRange(common.IDBits-2, tokenBits), strconv.Itoa(l.CollectionBits()), formatValue(l.MaxBaseCollectionID(), base)},
		{"base token id", bitRange(tokenBits-1, 0), strconv.Itoa(tokenBits), formatValue(l.MaxBaseTokenID(), base)},
	}
	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetHeader([]string{"Segment", "Bits", "Width", "Max"})
	table.AppendBulk(data)
	table.Render()
	return nil
}

// bitRange renders an inclusive bit range, or "-" when it is empty.
func bitRange(hi, lo int) string {
	switch {
	case hi < lo:
		return "-"
	case hi == lo:
		return strconv.Itoa(hi)
	}
	return fmt.Sprintf("%d..%d", hi, lo)
}

// formatValue renders v in the given base. The base was validated when the
// configuration was built.
func formatValue(v *uint256.Int, base int) string {
	s, err := common.Format(v, base)
	if err != nil {
		return v.Dec()
	}
	return s
}
