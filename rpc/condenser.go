// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"context"
	"strconv"
	"sync/atomic"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"

	"github.com/bitmark-inc/steemtx/account"
	"github.com/bitmark-inc/steemtx/builder"
	"github.com/bitmark-inc/steemtx/fault"
	"github.com/bitmark-inc/steemtx/signing"
	"github.com/bitmark-inc/steemtx/transactionrecord"
)

// collaborators provided by the client
var (
	_ builder.ChainState        = (*Client)(nil)
	_ builder.Broadcaster       = (*Client)(nil)
	_ builder.AuthorityVerifier = (*Client)(nil)
	_ signing.HexSource         = (*Client)(nil)
)

// ChainHead - head block and time from the dynamic global properties
func (client *Client) ChainHead(ctx context.Context) (*builder.ChainHead, error) {
	var reply builder.ChainHead
	if err := client.Call(ctx, "get_dynamic_global_properties", &reply); nil != err {
		return nil, err
	}
	atomic.StoreUint32(&client.lastIrreversible, reply.LastIrreversibleBlockNumber)
	return &reply, nil
}

// BlockHeader - header of a block, irreversible ones are cached
func (client *Client) BlockHeader(ctx context.Context, blockNumber uint32) (*builder.BlockHeader, error) {
	key := strconv.FormatUint(uint64(blockNumber), 10)
	if h, found := client.headers.Get(key); found {
		client.log.Debugf("block header: %d cached", blockNumber)
		header := *h.(*builder.BlockHeader)
		return &header, nil
	}

	var reply *builder.BlockHeader
	if err := client.Call(ctx, "get_block_header", &reply, blockNumber); nil != err {
		return nil, err
	}
	if nil == reply {
		return nil, errors.Wrapf(fault.ErrRPCFailure, "block: %d not found", blockNumber)
	}

	if blockNumber <= atomic.LoadUint32(&client.lastIrreversible) {
		stored := *reply
		client.headers.Set(key, &stored, cache.DefaultExpiration)
	}
	return reply, nil
}

// TransactionHex - the node serialization of an unsigned transaction
func (client *Client) TransactionHex(ctx context.Context, tx *transactionrecord.Transaction) (string, error) {
	var reply string
	if err := client.Call(ctx, "get_transaction_hex", &reply, tx); nil != err {
		return "", err
	}
	return reply, nil
}

// VerifyAuthority - true if the signatures satisfy every authority
func (client *Client) VerifyAuthority(ctx context.Context, tx *transactionrecord.Transaction) (bool, error) {
	var reply bool
	if err := client.Call(ctx, "verify_authority", &reply, tx); nil != err {
		return false, err
	}
	return reply, nil
}

// PotentialSignatures - every key that could sign the transaction
func (client *Client) PotentialSignatures(ctx context.Context, tx *transactionrecord.Transaction) ([]*account.PublicKey, error) {
	var reply []string
	if err := client.Call(ctx, "get_potential_signatures", &reply, tx); nil != err {
		return nil, err
	}
	return client.parseKeys(reply)
}

// RequiredSignatures - which of the available keys must still sign
func (client *Client) RequiredSignatures(ctx context.Context, tx *transactionrecord.Transaction, available []*account.PublicKey) ([]*account.PublicKey, error) {
	keys := make([]string, len(available))
	for i, key := range available {
		keys[i] = key.String()
	}

	var reply []string
	if err := client.Call(ctx, "get_required_signatures", &reply, tx, keys); nil != err {
		return nil, err
	}
	return client.parseKeys(reply)
}

// BroadcastTransaction - submit and wait for inclusion in a block
func (client *Client) BroadcastTransaction(ctx context.Context, tx *transactionrecord.Transaction) (*builder.Receipt, error) {
	var reply builder.Receipt
	if err := client.Call(ctx, "broadcast_transaction_synchronous", &reply, tx); nil != err {
		return nil, err
	}
	client.log.Infof("broadcast: id: %s block: %d", reply.ID, reply.BlockNumber)
	return &reply, nil
}

func (client *Client) parseKeys(keys []string) ([]*account.PublicKey, error) {
	result := make([]*account.PublicKey, 0, len(keys))
	for i, s := range keys {
		key, err := account.PublicKeyFromString(s, client.chain.Prefix)
		if nil != err {
			return nil, errors.Wrapf(err, "key[%d]", i)
		}
		result = append(result, key)
	}
	return result, nil
}
