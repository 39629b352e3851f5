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
	"github.com/holiman/uint256"
	"github.com/weiihann/inventoryids/common"
)

// Option configures how a result is rendered.
type Option func(*options)

type options struct {
	outputBase int
}

// WithOutputBase sets the radix of returned values, between 2 and 36.
// Results are decimal when the option is not given.
func WithOutputBase(base int) Option {
	return func(o *options) {
		o.outputBase = base
	}
}

func newOptions(opts []Option) *options {
	o := &options{outputBase: common.DefaultBase}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// render formats the result of an identifier operation, passing errors through.
func (o *options) render(v *uint256.Int, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return common.Format(v, o.outputBase)
}
