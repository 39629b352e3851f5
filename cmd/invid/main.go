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

// invid composes and decomposes 256-bit inventory identifiers.
package main

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"
)

var (
	configFileFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	maskLengthFlag = &cli.IntFlag{
		Name:    "mask-length",
		Aliases: []string{"n"},
		Usage:   "Non-fungible mask length (flag bit + collection bits, 1-255)",
	}
	outputBaseFlag = &cli.IntFlag{
		Name:  "output-base",
		Usage: "Radix of printed values (2-36)",
		Value: 10,
	}
	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print results as JSON",
	}
	verbosityFlag = &cli.IntFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity: 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=detail",
		Value: 3,
	}
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "invid",
		Usage: "inventory identifier tool",
		Flags: []cli.Flag{
			configFileFlag,
			maskLengthFlag,
			outputBaseFlag,
			verbosityFlag,
		},
		Commands: []*cli.Command{
			fungibleCommand,
			nonFungibleCommand,
			inspectCommand,
			layoutCommand,
			isTokenCommand,
			dumpConfigCommand,
		},
		Before: setupLogging,
	}
}

func setupLogging(ctx *cli.Context) error {
	useColor := (isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())) && os.Getenv("TERM") != "dumb"
	lvl := log.FromLegacyLevel(ctx.Int(verbosityFlag.Name))
	log.SetDefault(log.NewLogger(log.NewTerminalHandlerWithLevel(os.Stderr, lvl, useColor)))
	return nil
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
