// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package builder

import (
	"context"

	"github.com/bitmark-inc/steemtx/account"
	"github.com/bitmark-inc/steemtx/transactionrecord"
)

// ChainHead - the part of the dynamic global properties used here
type ChainHead struct {
	HeadBlockNumber             uint32                        `json:"head_block_number"`
	LastIrreversibleBlockNumber uint32                        `json:"last_irreversible_block_num"`
	Time                        transactionrecord.PointInTime `json:"time"`
}

// BlockHeader - header of a single block
type BlockHeader struct {
	Previous  string                        `json:"previous"` // hex block id
	Timestamp transactionrecord.PointInTime `json:"timestamp"`
	Witness   string                        `json:"witness"`
}

// Receipt - result of a synchronous broadcast
type Receipt struct {
	ID                string `json:"id"`
	BlockNumber       uint32 `json:"block_num"`
	TransactionNumber uint32 `json:"trx_num"`
	Expired           bool   `json:"expired"`
}

// ChainState - chain head queries needed to prepare a transaction
type ChainState interface {
	ChainHead(ctx context.Context) (*ChainHead, error)
	BlockHeader(ctx context.Context, blockNumber uint32) (*BlockHeader, error)
}

// Broadcaster - submit a signed transaction
type Broadcaster interface {
	BroadcastTransaction(ctx context.Context, tx *transactionrecord.Transaction) (*Receipt, error)
}

// AuthorityVerifier - node side signature checks
type AuthorityVerifier interface {
	VerifyAuthority(ctx context.Context, tx *transactionrecord.Transaction) (bool, error)
	PotentialSignatures(ctx context.Context, tx *transactionrecord.Transaction) ([]*account.PublicKey, error)
	RequiredSignatures(ctx context.Context, tx *transactionrecord.Transaction, available []*account.PublicKey) ([]*account.PublicKey, error)
}
