// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/steemtx/account"
	"github.com/bitmark-inc/steemtx/signing"
	"github.com/bitmark-inc/steemtx/transactionrecord"
)

func runDecode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	s, err := readInput(c, m)
	if nil != err {
		return err
	}

	tx, err := transactionrecord.UnpackHex(s, m.chain)
	if nil != err {
		return err
	}

	if m.verbose {
		id, err := tx.ID(m.chain)
		if nil != err {
			return err
		}
		fmt.Fprintf(m.e, "id: %s\n", id)
	}
	return printJson(m.w, tx)
}

func runEncode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tx, err := readTransaction(c, m)
	if nil != err {
		return err
	}

	packed, err := tx.Pack(m.chain)
	if nil != err {
		return err
	}
	id, err := tx.ID(m.chain)
	if nil != err {
		return err
	}

	out := struct {
		ID  string `json:"id"`
		Hex string `json:"hex"`
	}{
		ID:  id,
		Hex: hex.EncodeToString(packed),
	}
	return printJson(m.w, out)
}

func runDigest(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tx, err := readTransaction(c, m)
	if nil != err {
		return err
	}

	unsigned, err := tx.PackUnsigned(m.chain)
	if nil != err {
		return err
	}
	id, digest := signing.Digest(m.chain.ChainID, unsigned)

	out := struct {
		ID      string `json:"id"`
		Digest  string `json:"digest"`
		ChainID string `json:"chain_id"`
	}{
		ID:      id,
		Digest:  hex.EncodeToString(digest[:]),
		ChainID: m.chain.ChainIDHex(),
	}
	return printJson(m.w, out)
}

func runSign(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tx, err := readTransaction(c, m)
	if nil != err {
		return err
	}

	keys, err := signingKeys(c, m)
	if nil != err {
		return err
	}
	if 0 == len(keys) {
		return fmt.Errorf("no signing keys: use --wif or the configuration keys")
	}

	options := m.config.SigningOptions()
	signer, err := signing.New(m.log, m.chain, options)
	if nil != err {
		return err
	}

	signed, err := signer.Sign(context.Background(), tx, keys)
	if nil != err {
		return err
	}

	if len(signed.Signatures) == len(tx.Signatures) {
		fmt.Fprintf(m.e, "warning: no signature added, transaction expired or already signed\n")
	}
	return printJson(m.w, signed)
}

func runPublicKey(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	s, err := readInput(c, m)
	if nil != err {
		return err
	}

	key, err := account.PrivateKeyFromWIF(s)
	if nil != err {
		return err
	}

	out := struct {
		Chain     string `json:"chain"`
		PublicKey string `json:"public_key"`
	}{
		Chain:     m.chain.Name,
		PublicKey: key.PublicKey(m.chain.Prefix).String(),
	}
	return printJson(m.w, out)
}
