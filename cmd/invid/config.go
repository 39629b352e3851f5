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
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"

	"github.com/ethereum/go-ethereum/log"
	"github.com/naoina/toml"
	"github.com/urfave/cli/v2"
	"github.com/weiihann/inventoryids"
	"github.com/weiihann/inventoryids/common"
)

var dumpConfigCommand = &cli.Command{
	Name:        "dumpconfig",
	Usage:       "Export configuration values in a TOML format",
	ArgsUsage:   "<dumpfile (optional)>",
	Action:      dumpConfig,
	Description: `Export configuration values in TOML format (to stdout by default).`,
}

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

// InventoryConfig holds the defaults applied to every identifier command.
type InventoryConfig struct {
	// MaskLength is the non-fungible mask length. Zero leaves it unset, which
	// makes non-fungible commands fail until --mask-length is given.
	MaskLength int `toml:",omitempty"`

	// OutputBase is the radix used to print values.
	OutputBase int
}

type invidConfig struct {
	Inventory InventoryConfig
}

var defaultConfig = invidConfig{
	Inventory: InventoryConfig{
		OutputBase: common.DefaultBase,
	},
}

func loadConfig(file string, cfg *invidConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// makeConfig loads the configuration file, if any, and applies flags on top.
func makeConfig(ctx *cli.Context) (*invidConfig, error) {
	cfg := defaultConfig
	if file := ctx.String(configFileFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", file, err)
		}
		log.Debug("Loaded configuration", "file", file)
	}
	if ctx.IsSet(maskLengthFlag.Name) {
		cfg.Inventory.MaskLength = ctx.Int(maskLengthFlag.Name)
	}
	if ctx.IsSet(outputBaseFlag.Name) || cfg.Inventory.OutputBase == 0 {
		cfg.Inventory.OutputBase = ctx.Int(outputBaseFlag.Name)
	}
	if b := cfg.Inventory.OutputBase; b < common.MinBase || b > common.MaxBase {
		return nil, fmt.Errorf("%w: output base %d", common.ErrInvalidBase, b)
	}
	return &cfg, nil
}

// dumpConfig is the dumpconfig command.
func dumpConfig(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	out, err := tomlSettings.Marshal(cfg)
	if err != nil {
		return err
	}

	dump := ctx.App.Writer
	if ctx.NArg() > 0 {
		f, err := os.OpenFile(ctx.Args().Get(0), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		dump = f
	}
	_, err = dump.Write(out)
	return err
}

func (cfg *invidConfig) outputBase() inventoryids.Option {
	return inventoryids.WithOutputBase(cfg.Inventory.OutputBase)
}
