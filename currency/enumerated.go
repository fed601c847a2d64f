// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currency

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/steemtx/fault"
)

// numeric asset identifiers, the same on every chain
const (
	CoreNAI   = "@@000000021"
	DebtNAI   = "@@000000013"
	StakedNAI = "@@000000037"
)

// TagLength - bytes occupied by an asset tag on the wire
const TagLength = 7

// Asset - one chain asset
type Asset struct {
	Symbol    string // display symbol
	Tag       string // wire tag, at most TagLength bytes
	NAI       string
	Precision uint8
}

// all known assets
var (
	Steem = Asset{Symbol: "STEEM", Tag: "STEEM", NAI: CoreNAI, Precision: 3}
	SBD   = Asset{Symbol: "SBD", Tag: "SBD", NAI: DebtNAI, Precision: 3}
	Vests = Asset{Symbol: "VESTS", Tag: "VESTS", NAI: StakedNAI, Precision: 6}
	Tests = Asset{Symbol: "TESTS", Tag: "TESTS", NAI: CoreNAI, Precision: 3}
	TBD   = Asset{Symbol: "TBD", Tag: "TBD", NAI: DebtNAI, Precision: 3}
	Hive  = Asset{Symbol: "HIVE", Tag: "STEEM", NAI: CoreNAI, Precision: 3}
	HBD   = Asset{Symbol: "HBD", Tag: "SBD", NAI: DebtNAI, Precision: 3}
)

// the per chain sets
var (
	SteemAssets = Assets{Core: Steem, Debt: SBD, Staked: Vests}
	TestAssets  = Assets{Core: Tests, Debt: TBD, Staked: Vests}
	HiveAssets  = Assets{Core: Hive, Debt: HBD, Staked: Vests}
)

// symbols are unique across all chains
var bySymbol = map[string]Asset{
	Steem.Symbol: Steem,
	SBD.Symbol:   SBD,
	Vests.Symbol: Vests,
	Tests.Symbol: Tests,
	TBD.Symbol:   TBD,
	Hive.Symbol:  Hive,
	HBD.Symbol:   HBD,
}

// AssetFromSymbol - look up any known asset by its display symbol
func AssetFromSymbol(symbol string) (Asset, error) {
	a, ok := bySymbol[strings.ToUpper(symbol)]
	if !ok {
		return Asset{}, errors.Wrapf(fault.ErrUnknownAsset, "symbol: %q", symbol)
	}
	return a, nil
}

// String - the display symbol
func (asset Asset) String() string {
	return asset.Symbol
}

// GoString - for debugging
func (asset Asset) GoString() string {
	return fmt.Sprintf("<Asset:%s/%s %s %d>", asset.Symbol, asset.Tag, asset.NAI, asset.Precision)
}

// Assets - the three assets of one chain
type Assets struct {
	Core   Asset
	Debt   Asset
	Staked Asset
}

// List - assets in core, debt, staked order
func (assets Assets) List() []Asset {
	return []Asset{assets.Core, assets.Debt, assets.Staked}
}

// ByTag - resolve a wire tag
func (assets Assets) ByTag(tag string) (Asset, error) {
	for _, a := range assets.List() {
		if tag == a.Tag {
			return a, nil
		}
	}
	return Asset{}, errors.Wrapf(fault.ErrUnknownAsset, "tag: %q", tag)
}

// BySymbol - resolve a display symbol
func (assets Assets) BySymbol(symbol string) (Asset, error) {
	s := strings.ToUpper(symbol)
	for _, a := range assets.List() {
		if s == a.Symbol {
			return a, nil
		}
	}
	return Asset{}, errors.Wrapf(fault.ErrUnknownAsset, "symbol: %q", symbol)
}

// ByNAI - resolve a numeric asset identifier
func (assets Assets) ByNAI(nai string) (Asset, error) {
	for _, a := range assets.List() {
		if nai == a.NAI {
			return a, nil
		}
	}
	return Asset{}, errors.Wrapf(fault.ErrUnknownAsset, "nai: %q", nai)
}

// Contains - true if the asset belongs to this set
func (assets Assets) Contains(asset Asset) bool {
	for _, a := range assets.List() {
		if asset == a {
			return true
		}
	}
	return false
}
