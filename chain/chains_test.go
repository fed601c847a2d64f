// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/steemtx/chain"
	"github.com/bitmark-inc/steemtx/currency"
	"github.com/bitmark-inc/steemtx/fault"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		prefix  string
		core    currency.Asset
		testnet bool
	}{
		{chain.Steem, chain.SteemChainID, "STM", currency.Steem, false},
		{chain.Test, chain.TestChainID, "TST", currency.Tests, true},
		{chain.Hive, chain.HiveChainID, "STM", currency.Hive, false},
		{"STEEM", chain.SteemChainID, "STM", currency.Steem, false},
	}

	for i, item := range tests {
		c, err := chain.Get(item.name)
		if nil != err {
			t.Errorf("%d: Get(%q) error: %s", i, item.name, err)
			continue
		}
		assert.Equal(t, item.id, c.ChainIDHex(), "%d: wrong chain id", i)
		assert.Equal(t, item.prefix, c.Prefix, "%d: wrong prefix", i)
		assert.Equal(t, item.core, c.Assets.Core, "%d: wrong core asset", i)
		assert.Equal(t, currency.Vests, c.Assets.Staked, "%d: wrong staked asset", i)
		assert.Equal(t, item.testnet, c.Testnet, "%d: wrong testnet flag", i)
		assert.Equal(t, chain.ChainIDLength, len(c.ChainID), "%d: wrong id length", i)
	}
}

func TestUnsupported(t *testing.T) {
	_, err := chain.Get("bitcoin")
	assert.ErrorIs(t, err, fault.ErrUnsupportedChain, "unknown chain accepted")
	assert.False(t, chain.Valid("bitcoin"), "unknown chain valid")
	assert.True(t, chain.Valid(chain.Hive), "hive not valid")
}

func TestWithChainID(t *testing.T) {
	const custom = "18dcf0a285365fc58b71f18b3d3fec954aa0c141c44e4e5cb4cf777b9eab274e"

	c, err := chain.WithChainID(chain.Test, custom)
	assert.Nil(t, err, "custom testnet id")
	assert.Equal(t, custom, c.ChainIDHex(), "wrong id")
	assert.Equal(t, "TST", c.Prefix, "wrong prefix")

	_, err = chain.WithChainID(chain.Test, chain.SteemChainID)
	assert.ErrorIs(t, err, fault.ErrUnsupportedChain, "testnet with mainnet id")

	_, err = chain.WithChainID(chain.Steem, chain.TestChainID)
	assert.ErrorIs(t, err, fault.ErrUnsupportedChain, "mainnet with testnet id")

	_, err = chain.WithChainID(chain.Steem, "abcd")
	assert.ErrorIs(t, err, fault.ErrUnsupportedChain, "short id")

	// contexts are independent
	s1, _ := chain.Get(chain.Steem)
	s2, _ := chain.Get(chain.Steem)
	s1.ChainID[0] = 0xff
	assert.Equal(t, byte(0), s2.ChainID[0], "contexts share storage")
}
