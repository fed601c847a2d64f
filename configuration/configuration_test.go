// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/steemtx/chain"
	"github.com/bitmark-inc/steemtx/configuration"
	"github.com/bitmark-inc/steemtx/fault"
	"github.com/bitmark-inc/steemtx/fixtures"
)

const fullConfiguration = `
local M = {}

M.chain = "TEST"
M.node_url = "https://testnet.steemitdev.com"
M.keys = {
    "` + fixtures.WIF1 + `",
    "` + fixtures.WIF2 + `",
}
M.expiration = 86400
M.maximum_attempts = 64
M.rate_limit = 2.5
M.retry_elapsed = 5
M.cross_validate = true

M.logging = {
    directory = "logs",
    file = "cli.log",
    size = 4096,
    count = 3,
    levels = {
        DEFAULT = "info",
        rpc = "debug",
    },
}

return M
`

func writeFile(t *testing.T, dir string, name string, source string) string {
	fileName := filepath.Join(dir, name)
	if err := ioutil.WriteFile(fileName, []byte(source), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return fileName
}

func tempDir(t *testing.T) string {
	dir, err := ioutil.TempDir("", "configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	return dir
}

func TestGetConfiguration(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	conf, err := configuration.GetConfiguration(writeFile(t, dir, "steem.conf", fullConfiguration))
	if !assert.Nil(t, err, "configuration error") {
		return
	}

	assert.Equal(t, chain.Test, conf.Chain, "wrong chain")
	assert.Equal(t, "https://testnet.steemitdev.com", conf.NodeURL, "wrong url")
	assert.Equal(t, 24*time.Hour, conf.ExpirationWindow(), "wrong expiration")
	assert.True(t, conf.CrossValidate, "cross validate not set")

	keys, err := conf.PrivateKeys()
	assert.Nil(t, err, "keys error")
	if assert.Equal(t, 2, len(keys), "wrong key count") {
		assert.Equal(t, fixtures.WIF1, keys[0].WIF(), "wrong first key")
		assert.Equal(t, fixtures.WIF2, keys[1].WIF(), "wrong second key")
	}

	so := conf.SigningOptions()
	assert.Equal(t, uint32(64), so.MaximumAttempts, "wrong attempts")
	assert.True(t, so.CrossValidate, "wrong cross validate")

	ro := conf.RPCOptions()
	assert.Equal(t, 2.5, ro.RateLimit, "wrong rate limit")
	assert.Equal(t, 5*time.Second, ro.RetryElapsed, "wrong retry window")

	assert.Equal(t, filepath.Join(dir, "logs"), conf.Logging.Directory, "log directory not absolute")
	assert.Equal(t, "cli.log", conf.Logging.File, "wrong log file")
	assert.Equal(t, 3, conf.Logging.Count, "wrong log count")
	assert.Equal(t, "debug", conf.Logging.Levels["rpc"], "wrong rpc level")

	c, err := conf.ChainContext()
	assert.Nil(t, err, "chain error")
	assert.Equal(t, "TST", c.Prefix, "wrong prefix")
}

func TestDefaults(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	conf, err := configuration.GetConfiguration(writeFile(t, dir, "empty.conf", "return {}"))
	if !assert.Nil(t, err, "configuration error") {
		return
	}

	assert.Equal(t, chain.Steem, conf.Chain, "wrong chain")
	assert.Equal(t, 600*time.Second, conf.ExpirationWindow(), "wrong expiration")
	assert.Equal(t, uint32(1024), conf.SigningOptions().MaximumAttempts, "wrong attempts")
	assert.Equal(t, 10.0, conf.RPCOptions().RateLimit, "wrong rate limit")
	assert.Equal(t, 30*time.Second, conf.RPCOptions().RetryElapsed, "wrong retry window")
	assert.False(t, conf.CrossValidate, "cross validate set")
	assert.Equal(t, 0, len(conf.Keys), "unexpected keys")
	assert.Equal(t, filepath.Join(dir, "log"), conf.Logging.Directory, "wrong log directory")
}

func TestArgumentAndEnvironment(t *testing.T) {
	os.Setenv("STEEMTX_TEST_WIF", fixtures.WIF2)
	defer os.Unsetenv("STEEMTX_TEST_WIF")

	source := `
return {
    chain = "hive",
    node_url = arg[0],
    keys = { os.getenv("STEEMTX_TEST_WIF") },
}
`
	conf := configuration.Default()
	err := configuration.ParseConfigurationString("memory", source, conf)
	if !assert.Nil(t, err, "parse error") {
		return
	}
	assert.Nil(t, conf.Validate(), "validate error")
	assert.Equal(t, chain.Hive, conf.Chain, "wrong chain")
	assert.Equal(t, "memory", conf.NodeURL, "arg[0] not set")
	assert.Equal(t, []string{fixtures.WIF2}, conf.Keys, "wrong keys")
}

func TestConfigurationErrors(t *testing.T) {
	tests := []struct {
		source string
		err    error
	}{
		{`return { chain = "bitcoin" }`, fault.ErrUnsupportedChain},
		{`return { expiration = -1 }`, fault.ErrInvalidConfiguration},
		{`return { maximum_attempts = -5 }`, fault.ErrInvalidConfiguration},
		{`return { rate_limit = -1 }`, fault.ErrInvalidConfiguration},
		{`return { retry_elapsed = -1 }`, fault.ErrInvalidConfiguration},
		{`return { logging = { file = "a/b.log" } }`, fault.ErrInvalidConfiguration},
		{`return 42`, fault.ErrInvalidConfiguration},
	}

	dir := tempDir(t)
	defer os.RemoveAll(dir)

	for i, item := range tests {
		_, err := configuration.GetConfiguration(writeFile(t, dir, "bad.conf", item.source))
		assert.ErrorIs(t, err, item.err, "%d: %s", i, item.source)
	}
}

func TestLuaSyntaxError(t *testing.T) {
	conf := configuration.Default()
	err := configuration.ParseConfigurationString("broken", "return {", conf)
	assert.NotNil(t, err, "syntax error accepted")

	_, err = configuration.GetConfiguration("/nonexistent/steem.conf")
	assert.NotNil(t, err, "missing file accepted")
}

func TestBadKey(t *testing.T) {
	conf := configuration.Default()
	conf.Keys = []string{"not a wif"}
	_, err := conf.PrivateKeys()
	assert.NotNil(t, err, "bad wif accepted")
}

func TestChainIDOverride(t *testing.T) {
	conf := configuration.Default()
	conf.Chain = chain.Test
	conf.ChainID = chain.SteemChainID
	_, err := conf.ChainContext()
	assert.ErrorIs(t, err, fault.ErrUnsupportedChain, "mainnet id on testnet")
}
