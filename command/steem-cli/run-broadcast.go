// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/steemtx/broadcast"
	"github.com/bitmark-inc/steemtx/builder"
	"github.com/bitmark-inc/steemtx/rpc"
	"github.com/bitmark-inc/steemtx/transactionrecord"
)

func runBroadcast(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if "" == m.config.NodeURL {
		return fmt.Errorf("no node: use --url or node_url in the configuration")
	}

	s, err := readInput(c, m)
	if nil != err {
		return err
	}

	var ops transactionrecord.Operations
	if err := json.Unmarshal([]byte(s), &ops); nil != err {
		return err
	}
	items := make([]interface{}, len(ops))
	for i, op := range ops {
		items[i] = op
	}

	keys, err := signingKeys(c, m)
	if nil != err {
		return err
	}

	rpcOptions := m.config.RPCOptions()
	rpcOptions.Verbose = m.verbose
	rpcOptions.Handle = m.e
	client, err := rpc.NewClient(m.log, m.chain, rpcOptions)
	if nil != err {
		return err
	}

	expiration := m.config.ExpirationWindow()
	if x := c.Int("expiration"); x > 0 {
		expiration = time.Duration(x) * time.Second
	}

	signingOptions := m.config.SigningOptions()
	options := broadcast.Options{
		Options: builder.Options{
			Chain:           m.chain,
			State:           client,
			Verifier:        client,
			Broadcaster:     client,
			Keys:            keys,
			Expiration:      expiration,
			MaximumAttempts: signingOptions.MaximumAttempts,
			CrossValidate:   signingOptions.CrossValidate,
		},
		Pretend: c.Bool("pretend"),
	}
	if options.CrossValidate {
		options.Source = client
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)
	go func() {
		select {
		case <-interrupt:
			cancel()
		case <-ctx.Done():
		}
	}()

	receipt, err := broadcast.Operations(ctx, m.log, options, items...)
	if nil != err {
		return err
	}
	return printJson(m.w, receipt)
}
