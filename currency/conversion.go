// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currency

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/steemtx/fault"
)

// Amount - a scaled integer quantity of an asset
//
// the number of implied decimal places is the asset's precision
type Amount struct {
	Value int64
	Asset Asset
}

// NewAmount - amount from an already scaled value
func NewAmount(value int64, asset Asset) Amount {
	return Amount{
		Value: value,
		Asset: asset,
	}
}

// ParseAmount - convert "1.000 STEEM" using any known symbol
func ParseAmount(s string) (Amount, error) {
	number, symbol, err := split(s)
	if nil != err {
		return Amount{}, err
	}
	asset, err := AssetFromSymbol(symbol)
	if nil != err {
		return Amount{}, err
	}
	return parseNumber(number, asset)
}

// Parse - convert "1.000 STEEM" restricted to this chain's symbols
func (assets Assets) Parse(s string) (Amount, error) {
	number, symbol, err := split(s)
	if nil != err {
		return Amount{}, err
	}
	asset, err := assets.BySymbol(symbol)
	if nil != err {
		return Amount{}, err
	}
	return parseNumber(number, asset)
}

// FromNAI - convert the (amount, precision, nai) tuple form
//
// amount is the scaled integer as a decimal string
func (assets Assets) FromNAI(amount string, precision uint8, nai string) (Amount, error) {
	asset, err := assets.ByNAI(nai)
	if nil != err {
		return Amount{}, err
	}
	if precision != asset.Precision {
		return Amount{}, errors.Wrapf(fault.ErrInvalidPrecision, "nai: %s precision: %d expected: %d", nai, precision, asset.Precision)
	}
	d, err := decimal.NewFromString(amount)
	if nil != err || !d.IsInteger() || !d.BigInt().IsInt64() {
		return Amount{}, errors.Wrapf(fault.ErrInvalidAmount, "amount: %q", amount)
	}
	return NewAmount(d.IntPart(), asset), nil
}

// Rebind - same quantity expressed in this chain's asset of the same kind
func (assets Assets) Rebind(amount Amount) (Amount, error) {
	asset, err := assets.ByNAI(amount.Asset.NAI)
	if nil != err {
		return Amount{}, err
	}
	amount.Asset = asset
	return amount, nil
}

// Decimal - the exact display quantity
func (amount Amount) Decimal() decimal.Decimal {
	return decimal.New(amount.Value, -int32(amount.Asset.Precision))
}

// String - display form with exactly precision fractional digits
func (amount Amount) String() string {
	return amount.Decimal().StringFixed(int32(amount.Asset.Precision)) + " " + amount.Asset.Symbol
}

// split "number symbol"
func split(s string) (string, string, error) {
	fields := strings.Fields(s)
	if 2 != len(fields) {
		return "", "", errors.Wrapf(fault.ErrInvalidAmount, "amount: %q", s)
	}
	return fields[0], fields[1], nil
}

// scale a display number to the asset's precision without rounding
func parseNumber(number string, asset Asset) (Amount, error) {
	d, err := decimal.NewFromString(number)
	if nil != err {
		return Amount{}, errors.Wrapf(fault.ErrInvalidAmount, "amount: %q", number)
	}
	scaled := d.Shift(int32(asset.Precision))
	if !scaled.IsInteger() {
		return Amount{}, errors.Wrapf(fault.ErrInvalidPrecision, "amount: %q precision: %d", number, asset.Precision)
	}
	if !scaled.BigInt().IsInt64() {
		return Amount{}, errors.Wrapf(fault.ErrInvalidAmount, "amount: %q out of range", number)
	}
	return NewAmount(scaled.IntPart(), asset), nil
}
