// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/steemtx/currency"
	"github.com/bitmark-inc/steemtx/fault"
)

// names of all chains
const (
	Steem = "steem"
	Test  = "test"
	Hive  = "hive"
)

// chain identifiers
const (
	SteemChainID = "0000000000000000000000000000000000000000000000000000000000000000"
	TestChainID  = "46d82ab7d8db682eb1959aed0ada039a6d49afa1602491f93dde9cac3e8e6c32"
	HiveChainID  = "beeab0de00000000000000000000000000000000000000000000000000000000"
)

// ChainIDLength - bytes in a chain identifier
const ChainIDLength = 32

// Context - everything about a chain the codec and signer need
type Context struct {
	Name    string
	ChainID []byte // prepended to the transaction before hashing
	Prefix  string // public key prefix
	Assets  currency.Assets
	Testnet bool
}

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Steem, Test, Hive:
		return true
	default:
		return false
	}
}

// Get - context for one of the supported chains
func Get(name string) (*Context, error) {
	switch strings.ToLower(name) {
	case Steem:
		return makeContext(Steem, SteemChainID, "STM", currency.SteemAssets, false), nil
	case Test:
		return makeContext(Test, TestChainID, "TST", currency.TestAssets, true), nil
	case Hive:
		return makeContext(Hive, HiveChainID, "STM", currency.HiveAssets, false), nil
	default:
		return nil, errors.Wrapf(fault.ErrUnsupportedChain, "chain: %q", name)
	}
}

// WithChainID - context for a supported chain running under another id
//
// a testnet cannot use a mainnet id and a mainnet cannot use a testnet id
func WithChainID(name string, chainID string) (*Context, error) {
	c, err := Get(name)
	if nil != err {
		return nil, err
	}

	id, err := hex.DecodeString(chainID)
	if nil != err || ChainIDLength != len(id) {
		return nil, errors.Wrapf(fault.ErrUnsupportedChain, "chain id: %q", chainID)
	}

	lower := strings.ToLower(chainID)
	if c.Testnet && (SteemChainID == lower || HiveChainID == lower) {
		return nil, errors.Wrapf(fault.ErrUnsupportedChain, "testnet with mainnet chain id: %s", chainID)
	}
	if !c.Testnet && TestChainID == lower {
		return nil, errors.Wrapf(fault.ErrUnsupportedChain, "mainnet with testnet chain id: %s", chainID)
	}

	c.ChainID = id
	return c, nil
}

// ChainIDHex - the identifier as lower case hex
func (c *Context) ChainIDHex() string {
	return hex.EncodeToString(c.ChainID)
}

func makeContext(name string, chainID string, prefix string, assets currency.Assets, testnet bool) *Context {
	id, err := hex.DecodeString(chainID)
	if nil != err {
		fault.Panicf("chain: %s has invalid id: %q", name, chainID)
	}
	return &Context{
		Name:    name,
		ChainID: id,
		Prefix:  prefix,
		Assets:  assets,
		Testnet: testnet,
	}
}
