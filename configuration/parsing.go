// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/steemtx/account"
	"github.com/bitmark-inc/steemtx/chain"
	"github.com/bitmark-inc/steemtx/fault"
	"github.com/bitmark-inc/steemtx/rpc"
	"github.com/bitmark-inc/steemtx/signing"
	"github.com/bitmark-inc/steemtx/util"
)

// basic defaults (log directory is relative to the configuration file)
const (
	defaultChain           = chain.Steem
	defaultExpiration      = 600  // seconds
	defaultMaximumAttempts = 1024 // canonical signature search
	defaultRateLimit       = 10   // requests per second
	defaultRetryElapsed    = 30   // seconds

	defaultLogDirectory = "log"
	defaultLogFile      = "steem-cli.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// Configuration - settings read from the Lua file
type Configuration struct {
	Chain           string               `gluamapper:"chain" json:"chain"`
	ChainID         string               `gluamapper:"chain_id" json:"chain_id"` // optional override
	NodeURL         string               `gluamapper:"node_url" json:"node_url"`
	Keys            []string             `gluamapper:"keys" json:"-"`
	Expiration      int                  `gluamapper:"expiration" json:"expiration"`
	MaximumAttempts int                  `gluamapper:"maximum_attempts" json:"maximum_attempts"`
	RateLimit       float64              `gluamapper:"rate_limit" json:"rate_limit"`
	RetryElapsed    int                  `gluamapper:"retry_elapsed" json:"retry_elapsed"`
	CrossValidate   bool                 `gluamapper:"cross_validate" json:"cross_validate"`
	Logging         logger.Configuration `gluamapper:"logging" json:"logging"`
}

// Default - configuration used when no file is given
func Default() *Configuration {
	return &Configuration{
		Chain:           defaultChain,
		Expiration:      defaultExpiration,
		MaximumAttempts: defaultMaximumAttempts,
		RateLimit:       defaultRateLimit,
		RetryElapsed:    defaultRetryElapsed,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}
}

// GetConfiguration - read decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := Default()
	if err := ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	if err := options.Validate(); nil != err {
		return nil, err
	}

	options.Logging.Directory, err = util.ExpandPath(dataDirectory, options.Logging.Directory)
	if nil != err {
		return nil, err
	}

	// log file must be a plain name
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, errors.Wrapf(fault.ErrInvalidConfiguration, "log file: %q is not plain name", options.Logging.File)
	}

	return options, nil
}

// Validate - check values and replace zeros by defaults
func (conf *Configuration) Validate() error {
	conf.Chain = strings.ToLower(strings.TrimSpace(conf.Chain))
	if "" == conf.Chain {
		conf.Chain = defaultChain
	}
	if !chain.Valid(conf.Chain) {
		return errors.Wrapf(fault.ErrUnsupportedChain, "chain: %q", conf.Chain)
	}

	if 0 == conf.Expiration {
		conf.Expiration = defaultExpiration
	}
	if conf.Expiration < 0 {
		return errors.Wrapf(fault.ErrInvalidConfiguration, "expiration: %d", conf.Expiration)
	}

	if 0 == conf.MaximumAttempts {
		conf.MaximumAttempts = defaultMaximumAttempts
	}
	if conf.MaximumAttempts < 0 {
		return errors.Wrapf(fault.ErrInvalidConfiguration, "maximum_attempts: %d", conf.MaximumAttempts)
	}

	if 0 == conf.RateLimit {
		conf.RateLimit = defaultRateLimit
	}
	if conf.RateLimit < 0 {
		return errors.Wrapf(fault.ErrInvalidConfiguration, "rate_limit: %g", conf.RateLimit)
	}

	if 0 == conf.RetryElapsed {
		conf.RetryElapsed = defaultRetryElapsed
	}
	if conf.RetryElapsed < 0 {
		return errors.Wrapf(fault.ErrInvalidConfiguration, "retry_elapsed: %d", conf.RetryElapsed)
	}

	return nil
}

// ChainContext - the configured chain
func (conf *Configuration) ChainContext() (*chain.Context, error) {
	if "" != conf.ChainID {
		return chain.WithChainID(conf.Chain, conf.ChainID)
	}
	return chain.Get(conf.Chain)
}

// PrivateKeys - decode every configured WIF
func (conf *Configuration) PrivateKeys() ([]*account.PrivateKey, error) {
	keys := make([]*account.PrivateKey, 0, len(conf.Keys))
	for i, wif := range conf.Keys {
		key, err := account.PrivateKeyFromWIF(strings.TrimSpace(wif))
		if nil != err {
			return nil, errors.Wrapf(err, "keys[%d]", i)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// ExpirationWindow - transaction lifetime
func (conf *Configuration) ExpirationWindow() time.Duration {
	return time.Duration(conf.Expiration) * time.Second
}

// SigningOptions - settings for the signing pipeline
func (conf *Configuration) SigningOptions() signing.Options {
	return signing.Options{
		MaximumAttempts: uint32(conf.MaximumAttempts),
		CrossValidate:   conf.CrossValidate,
	}
}

// RPCOptions - settings for a node client
func (conf *Configuration) RPCOptions() rpc.Options {
	return rpc.Options{
		URL:          conf.NodeURL,
		RateLimit:    conf.RateLimit,
		RetryElapsed: time.Duration(conf.RetryElapsed) * time.Second,
	}
}
