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
	"fmt"

	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"
	"github.com/weiihann/inventoryids"
)

var (
	fungibleCommand = &cli.Command{
		Name:  "fungible",
		Usage: "Fungible collection ids",
		Subcommands: []*cli.Command{
			{
				Name:   "max",
				Usage:  "Print the largest fungible base collection id",
				Action: fungibleMax,
			},
			{
				Name:      "make",
				Usage:     "Compose a fungible collection id",
				ArgsUsage: "<base collection id>",
				Action:    fungibleMake,
			},
			{
				Name:      "get",
				Usage:     "Print the collection id of a fungible id",
				ArgsUsage: "<id>",
				Action:    fungibleGet,
			},
		},
	}
	nonFungibleCommand = &cli.Command{
		Name:    "nonfungible",
		Aliases: []string{"nf"},
		Usage:   "Non-fungible collection and token ids",
		Subcommands: []*cli.Command{
			{
				Name:   "max-collection",
				Usage:  "Print the largest base collection id for the mask length",
				Action: nfMaxCollection,
			},
			{
				Name:   "max-token",
				Usage:  "Print the largest base token id for the mask length",
				Action: nfMaxToken,
			},
			{
				Name:      "make-collection",
				Usage:     "Compose a non-fungible collection id",
				ArgsUsage: "<base collection id>",
				Action:    nfMakeCollection,
			},
			{
				Name:      "make-token",
				Usage:     "Compose a non-fungible token id",
				ArgsUsage: "<base token id> <base collection id>",
				Action:    nfMakeToken,
			},
			{
				Name:      "get-collection",
				Usage:     "Print the collection id of a non-fungible id",
				ArgsUsage: "<id>",
				Action:    nfGetCollection,
			},
			{
				Name:      "get-base-collection",
				Usage:     "Print the base collection id of a non-fungible id",
				ArgsUsage: "<id>",
				Action:    nfGetBaseCollection,
			},
			{
				Name:      "get-token",
				Usage:     "Print the base token id of a non-fungible id",
				ArgsUsage: "<id>",
				Action:    nfGetToken,
			},
		},
	}
	isTokenCommand = &cli.Command{
		Name:      "is-token",
		Usage:     "Report whether an id is a non-fungible token",
		ArgsUsage: "<id>",
		Action:    isToken,
	}
)

// checkArgs fails unless exactly n positional arguments were given.
func checkArgs(ctx *cli.Context, n int) error {
	if ctx.NArg() != n {
		return fmt.Errorf("required arguments: %v", ctx.Command.ArgsUsage)
	}
	return nil
}

// printResult writes a result line to the app writer.
func printResult(ctx *cli.Context, v string, err error) error {
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.App.Writer, v)
	return err
}

func fungibleMax(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	v, err := inventoryids.MaxFungibleBaseCollectionID(cfg.outputBase())
	return printResult(ctx, v, err)
}

func fungibleMake(ctx *cli.Context) error {
	if err := checkArgs(ctx, 1); err != nil {
		return err
	}
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	v, err := inventoryids.MakeFungibleCollectionID(ctx.Args().Get(0), cfg.outputBase())
	return printResult(ctx, v, err)
}

func fungibleGet(ctx *cli.Context) error {
	if err := checkArgs(ctx, 1); err != nil {
		return err
	}
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	v, err := inventoryids.GetFungibleCollectionID(ctx.Args().Get(0), cfg.outputBase())
	return printResult(ctx, v, err)
}

func nfMaxCollection(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	v, err := inventoryids.MaxNonFungibleBaseCollectionID(cfg.Inventory.MaskLength, cfg.outputBase())
	return printResult(ctx, v, err)
}

func nfMaxToken(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	v, err := inventoryids.MaxNonFungibleBaseTokenID(cfg.Inventory.MaskLength, cfg.outputBase())
	return printResult(ctx, v, err)
}

func nfMakeCollection(ctx *cli.Context) error {
	if err := checkArgs(ctx, 1); err != nil {
		return err
	}
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	base := ctx.Args().Get(0)
	id, err := inventoryids.MakeNonFungibleCollectionID(base, cfg.Inventory.MaskLength, cfg.outputBase())
	if err == nil {
		log.Debug("Composed collection id", "base", base, "mask", cfg.Inventory.MaskLength)
	}
	return printResult(ctx, id, err)
}

func nfMakeToken(ctx *cli.Context) error {
	if err := checkArgs(ctx, 2); err != nil {
		return err
	}
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	token, collection := ctx.Args().Get(0), ctx.Args().Get(1)
	id, err := inventoryids.MakeNonFungibleTokenID(token, collection, cfg.Inventory.MaskLength, cfg.outputBase())
	if err == nil {
		log.Debug("Composed token id", "token", token, "collection", collection, "mask", cfg.Inventory.MaskLength)
	}
	return printResult(ctx, id, err)
}

func nfGetCollection(ctx *cli.Context) error {
	if err := checkArgs(ctx, 1); err != nil {
		return err
	}
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	v, err := inventoryids.GetNonFungibleCollectionID(ctx.Args().Get(0), cfg.Inventory.MaskLength, cfg.outputBase())
	return printResult(ctx, v, err)
}

func nfGetBaseCollection(ctx *cli.Context) error {
	if err := checkArgs(ctx, 1); err != nil {
		return err
	}
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	v, err := inventoryids.GetNonFungibleBaseCollectionID(ctx.Args().Get(0), cfg.Inventory.MaskLength, cfg.outputBase())
	return printResult(ctx, v, err)
}

func nfGetToken(ctx *cli.Context) error {
	if err := checkArgs(ctx, 1); err != nil {
		return err
	}
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	v, err := inventoryids.GetNonFungibleBaseTokenID(ctx.Args().Get(0), cfg.Inventory.MaskLength, cfg.outputBase())
	return printResult(ctx, v, err)
}

func isToken(ctx *cli.Context) error {
	if err := checkArgs(ctx, 1); err != nil {
		return err
	}
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	ok, err := inventoryids.IsNonFungibleToken(ctx.Args().Get(0), cfg.Inventory.MaskLength)
	return printResult(ctx, fmt.Sprint(ok), err)
}
