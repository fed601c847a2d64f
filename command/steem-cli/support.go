// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/steemtx/account"
	"github.com/bitmark-inc/steemtx/transactionrecord"
)

// input for a command: the argument, standard input or a file
func readInput(c *cli.Context, m *metadata) (string, error) {
	arg := c.Args().Get(0)

	var data []byte
	var err error
	switch {
	case "" == arg, "-" == arg:
		data, err = ioutil.ReadAll(m.r)
	case strings.HasPrefix(arg, "@"):
		data, err = ioutil.ReadFile(arg[1:])
	default:
		return strings.TrimSpace(arg), nil
	}
	if nil != err {
		return "", err
	}

	s := strings.TrimSpace(string(data))
	if "" == s {
		return "", fmt.Errorf("no input for: %s", c.Command.Name)
	}
	return s, nil
}

// a transaction in condenser JSON, bound to the selected chain
func readTransaction(c *cli.Context, m *metadata) (*transactionrecord.Transaction, error) {
	s, err := readInput(c, m)
	if nil != err {
		return nil, err
	}

	var tx transactionrecord.Transaction
	if err := json.Unmarshal([]byte(s), &tx); nil != err {
		return nil, err
	}
	if err := transactionrecord.BindTransaction(&tx, m.chain); nil != err {
		return nil, err
	}
	return &tx, nil
}

// keys from the command flags then the configuration
func signingKeys(c *cli.Context, m *metadata) ([]*account.PrivateKey, error) {
	keys, err := m.config.PrivateKeys()
	if nil != err {
		return nil, err
	}
	for _, wif := range c.StringSlice("wif") {
		key, err := account.PrivateKeyFromWIF(strings.TrimSpace(wif))
		if nil != err {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
