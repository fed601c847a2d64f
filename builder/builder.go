// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package builder

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/steemtx/account"
	"github.com/bitmark-inc/steemtx/chain"
	"github.com/bitmark-inc/steemtx/fault"
	"github.com/bitmark-inc/steemtx/signing"
	"github.com/bitmark-inc/steemtx/transactionrecord"
)

// expiration windows
const (
	DefaultExpiration  = 600 * time.Second
	ProposalExpiration = 24 * time.Hour
)

// Options - builder settings and collaborators
type Options struct {
	Chain       *chain.Context
	State       ChainState        // required to prepare
	Verifier    AuthorityVerifier // optional
	Broadcaster Broadcaster       // optional
	Source      signing.HexSource // optional node serialization

	Keys            []*account.PrivateKey
	Expiration      time.Duration    // zero selects DefaultExpiration
	UseHeadBlock    bool             // reference the head block instead of the last irreversible one
	MaximumAttempts uint32           // canonical signature search cap
	CrossValidate   bool             // check the signed bytes decode to the transaction
	Now             func() time.Time // nil is time.Now
}

// Builder - holds one transaction while it is assembled
type Builder struct {
	sync.Mutex

	log     *logger.L
	options Options
	signer  *signing.Signer
	tx      *transactionrecord.Transaction
}

// New - create a builder with an empty transaction
func New(log *logger.L, options Options) (*Builder, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if nil == options.Chain {
		return nil, errors.Wrap(fault.ErrMissingCollaborator, "chain context")
	}
	if 0 == options.Expiration {
		options.Expiration = DefaultExpiration
	}
	if nil == options.Now {
		options.Now = time.Now
	}

	signer, err := signing.New(log, options.Chain, signing.Options{
		MaximumAttempts: options.MaximumAttempts,
		CrossValidate:   options.CrossValidate,
		Source:          options.Source,
		Now:             options.Now,
	})
	if nil != err {
		return nil, err
	}

	return &Builder{
		log:     log,
		options: options,
		signer:  signer,
		tx:      &transactionrecord.Transaction{},
	}, nil
}

// Reset - discard the transaction and start again
func (b *Builder) Reset() {
	b.Lock()
	defer b.Unlock()

	b.tx = &transactionrecord.Transaction{}
}

// Expired - true if the transaction needs preparing
func (b *Builder) Expired() bool {
	b.Lock()
	defer b.Unlock()

	return b.expired()
}

func (b *Builder) expired() bool {
	return b.tx.Expiration.IsZero() || b.tx.Expiration.Before(b.options.Now())
}

// Put - append one operation then prepare
//
// accepted forms:
//   Put(ctx, op)                            a transactionrecord.Operation
//   Put(ctx, "vote", fields)                name and fields
//   Put(ctx, []interface{}{"vote", fields}) pair
//   Put(ctx, map[string]interface{}{"vote": fields})
//   Put(ctx, json.RawMessage(`["vote", {...}]`))
//
// fields may be a map, a struct or raw JSON
func (b *Builder) Put(ctx context.Context, items ...interface{}) error {
	op, err := normalise(items...)
	if nil != err {
		return err
	}
	if err := transactionrecord.Bind(op, b.options.Chain); nil != err {
		return err
	}

	b.Lock()
	b.tx.Operations = append(b.tx.Operations, op)
	b.tx.Expiration = transactionrecord.PointInTime{}
	b.tx.Signatures = nil
	b.Unlock()

	return b.Prepare(ctx)
}

// Operations - copy of the current operation list
func (b *Builder) Operations() transactionrecord.Operations {
	b.Lock()
	defer b.Unlock()

	ops := make(transactionrecord.Operations, len(b.tx.Operations))
	copy(ops, b.tx.Operations)
	return ops
}

// SetOperations - replace all operations then prepare
//
// each item is one operation in any form Put accepts as a single
// argument
func (b *Builder) SetOperations(ctx context.Context, items ...interface{}) error {
	ops := make(transactionrecord.Operations, 0, len(items))
	for i, item := range items {
		op, err := normalise(item)
		if nil != err {
			return errors.Wrapf(err, "operation[%d]", i)
		}
		if err := transactionrecord.Bind(op, b.options.Chain); nil != err {
			return errors.Wrapf(err, "operation[%d]", i)
		}
		ops = append(ops, op)
	}

	b.Lock()
	b.tx.Operations = ops
	b.tx.Signatures = nil
	b.Unlock()

	return b.Prepare(ctx)
}

// Prepare - fill in the reference block and expiration
//
// nothing is done while the transaction is unexpired
func (b *Builder) Prepare(ctx context.Context) error {
	b.Lock()
	defer b.Unlock()

	return b.prepare(ctx)
}

func (b *Builder) prepare(ctx context.Context) error {
	if !b.expired() {
		return nil
	}
	if nil == b.options.State {
		return errors.Wrap(fault.ErrMissingCollaborator, "chain state")
	}

	head, err := b.options.State.ChainHead(ctx)
	if nil != err {
		return err
	}

	blockNumber := head.LastIrreversibleBlockNumber
	if b.options.UseHeadBlock {
		blockNumber = head.HeadBlockNumber
	}

	header, err := b.options.State.BlockHeader(ctx, blockNumber)
	if nil != err {
		return err
	}

	prefix, err := RefBlockPrefix(header.Previous)
	if nil != err {
		return err
	}

	b.tx.RefBlockNum = uint16((blockNumber - 1) & 0xffff)
	b.tx.RefBlockPrefix = prefix
	b.tx.Expiration = transactionrecord.NewPointInTime(head.Time.Add(b.options.Expiration))
	b.tx.Signatures = nil

	b.log.Infof("prepared: block: %d ref_block_num: %d ref_block_prefix: %d expiration: %s",
		blockNumber, b.tx.RefBlockNum, b.tx.RefBlockPrefix, b.tx.Expiration)
	return nil
}

// RefBlockPrefix - little endian u32 from bytes 4 to 7 of a block id
//
// the first four bytes of an id are the block number
func RefBlockPrefix(blockID string) (uint32, error) {
	id, err := hex.DecodeString(blockID)
	if nil != err || len(id) < 8 {
		return 0, errors.Wrapf(fault.ErrTruncatedInput, "block id: %q", blockID)
	}
	return binary.LittleEndian.Uint32(id[4:8]), nil
}

// Sign - sign with the configured keys, no preparation
func (b *Builder) Sign(ctx context.Context) (*transactionrecord.Transaction, error) {
	b.Lock()
	defer b.Unlock()

	return b.sign(ctx)
}

func (b *Builder) sign(ctx context.Context) (*transactionrecord.Transaction, error) {
	signed, err := b.signer.Sign(ctx, b.tx, b.options.Keys)
	if nil != err {
		return nil, err
	}
	b.tx = signed
	return b.copy(), nil
}

// Transaction - prepare then sign
func (b *Builder) Transaction(ctx context.Context) (*transactionrecord.Transaction, error) {
	b.Lock()
	defer b.Unlock()

	if err := b.prepare(ctx); nil != err {
		return nil, err
	}
	return b.sign(ctx)
}

// UnsignedTransaction - prepare without signing
func (b *Builder) UnsignedTransaction(ctx context.Context) (*transactionrecord.Transaction, error) {
	b.Lock()
	defer b.Unlock()

	if err := b.prepare(ctx); nil != err {
		return nil, err
	}
	return b.copy(), nil
}

// Peek - the transaction as it is now
func (b *Builder) Peek() *transactionrecord.Transaction {
	b.Lock()
	defer b.Unlock()

	return b.copy()
}

// the operations themselves are shared
func (b *Builder) copy() *transactionrecord.Transaction {
	tx := *b.tx
	tx.Operations = make(transactionrecord.Operations, len(b.tx.Operations))
	copy(tx.Operations, b.tx.Operations)
	if nil != b.tx.Signatures {
		tx.Signatures = make(transactionrecord.Signatures, len(b.tx.Signatures))
		copy(tx.Signatures, b.tx.Signatures)
	}
	return &tx
}

// TransactionHex - serialization of the prepared unsigned transaction
//
// from the node when a source is configured, otherwise local
func (b *Builder) TransactionHex(ctx context.Context) (string, error) {
	tx, err := b.UnsignedTransaction(ctx)
	if nil != err {
		return "", err
	}
	tx.Signatures = nil

	if nil != b.options.Source {
		return b.options.Source.TransactionHex(ctx, tx)
	}
	packed, err := tx.Pack(b.options.Chain)
	if nil != err {
		return "", err
	}
	return hex.EncodeToString(packed), nil
}

// Valid - node check that the signatures satisfy every authority
func (b *Builder) Valid(ctx context.Context) (bool, error) {
	if nil == b.options.Verifier {
		return false, errors.Wrap(fault.ErrMissingCollaborator, "authority verifier")
	}
	tx, err := b.Transaction(ctx)
	if nil != err {
		return false, err
	}
	return b.options.Verifier.VerifyAuthority(ctx, tx)
}

// PotentialSignatures - every key that could sign the transaction
func (b *Builder) PotentialSignatures(ctx context.Context) ([]*account.PublicKey, error) {
	if nil == b.options.Verifier {
		return nil, errors.Wrap(fault.ErrMissingCollaborator, "authority verifier")
	}
	tx, err := b.Transaction(ctx)
	if nil != err {
		return nil, err
	}
	return b.options.Verifier.PotentialSignatures(ctx, tx)
}

// RequiredSignatures - minimal subset of available keys still needed
func (b *Builder) RequiredSignatures(ctx context.Context, available []*account.PublicKey) ([]*account.PublicKey, error) {
	if nil == b.options.Verifier {
		return nil, errors.Wrap(fault.ErrMissingCollaborator, "authority verifier")
	}
	tx, err := b.Transaction(ctx)
	if nil != err {
		return nil, err
	}
	return b.options.Verifier.RequiredSignatures(ctx, tx, available)
}

// Broadcast - prepare, sign and submit
func (b *Builder) Broadcast(ctx context.Context) (*Receipt, error) {
	if nil == b.options.Broadcaster {
		return nil, errors.Wrap(fault.ErrMissingCollaborator, "broadcaster")
	}
	tx, err := b.Transaction(ctx)
	if nil != err {
		return nil, err
	}
	if 0 == len(tx.Signatures) {
		b.log.Warn("broadcast: transaction has no signatures")
	}
	receipt, err := b.options.Broadcaster.BroadcastTransaction(ctx, tx)
	if nil != err {
		return nil, err
	}
	if nil == receipt {
		return nil, errors.Wrap(fault.ErrRPCFailure, "broadcast: no receipt")
	}
	b.log.Infof("broadcast: id: %s block: %d", receipt.ID, receipt.BlockNumber)
	return receipt, nil
}
