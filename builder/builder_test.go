// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package builder_test

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/steemtx/account"
	"github.com/bitmark-inc/steemtx/builder"
	"github.com/bitmark-inc/steemtx/chain"
	"github.com/bitmark-inc/steemtx/fault"
	"github.com/bitmark-inc/steemtx/fixtures"
	"github.com/bitmark-inc/steemtx/mocks"
	"github.com/bitmark-inc/steemtx/transactionrecord"
)

var now = time.Date(2018, 10, 15, 19, 45, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func testnet(t *testing.T) *chain.Context {
	c, err := chain.Get(chain.Test)
	if nil != err {
		t.Fatalf("chain error: %s", err)
	}
	return c
}

func headTime(t *testing.T) transactionrecord.PointInTime {
	var p transactionrecord.PointInTime
	if err := p.UnmarshalText([]byte(fixtures.HeadTime)); nil != err {
		t.Fatalf("time error: %s", err)
	}
	return p
}

// expect one round of preparation
func expectPrepare(t *testing.T, state *mocks.MockChainState) {
	state.EXPECT().ChainHead(gomock.Any()).Return(&builder.ChainHead{
		HeadBlockNumber:             fixtures.HeadBlockNumber + 15,
		LastIrreversibleBlockNumber: fixtures.HeadBlockNumber,
		Time:                        headTime(t),
	}, nil).Times(1)
	state.EXPECT().BlockHeader(gomock.Any(), fixtures.HeadBlockNumber).Return(&builder.BlockHeader{
		Previous: fixtures.PreviousBlockID,
	}, nil).Times(1)
}

func newBuilder(t *testing.T, options builder.Options) *builder.Builder {
	options.Chain = testnet(t)
	if nil == options.Now {
		options.Now = func() time.Time { return now }
	}
	b, err := builder.New(logger.New(fixtures.LogCategory), options)
	if nil != err {
		t.Fatalf("new builder error: %s", err)
	}
	return b
}

func wif(t *testing.T, s string) *account.PrivateKey {
	key, err := account.PrivateKeyFromWIF(s)
	if nil != err {
		t.Fatalf("wif error: %s", err)
	}
	return key
}

func authority() map[string]interface{} {
	return map[string]interface{}{
		"weight_threshold": 1,
		"account_auths":    [][]interface{}{{"porter", 1}},
		"key_auths":        []interface{}{},
	}
}

// put the two testnet operations in two different shapes
func putTestnetOperations(t *testing.T, b *builder.Builder) {
	err := b.Put(context.Background(), "account_create", map[string]interface{}{
		"fee":              "0.000 TESTS",
		"creator":          "porter",
		"new_account_name": "a2i-06e13981",
		"owner":            authority(),
		"active":           authority(),
		"posting":          authority(),
		"memo_key":         "TST77yiRp7pgK52V7BPgq8mEYtyi9XLHKxCH6TDgKA86inFRYgWju",
		"json_metadata":    "",
	})
	assert.Nil(t, err, "put account_create error")

	err = b.Put(context.Background(), map[string]interface{}{
		"transfer_to_vesting": map[string]interface{}{
			"from":   "porter",
			"to":     "a2i-06e13981",
			"amount": "8.204 TESTS",
		},
	})
	assert.Nil(t, err, "put transfer_to_vesting error")
}

func TestRefBlockPrefix(t *testing.T) {
	prefix, err := builder.RefBlockPrefix(fixtures.PreviousBlockID)
	assert.Nil(t, err, "prefix error")
	assert.Equal(t, fixtures.RefBlockPrefix, prefix, "wrong prefix")

	_, err = builder.RefBlockPrefix("0000001435")
	assert.ErrorIs(t, err, fault.ErrTruncatedInput, "short id")
}

func TestNewWithoutLogger(t *testing.T) {
	b, err := builder.New(nil, builder.Options{Chain: testnet(t)})
	assert.Nil(t, b, "builder created")
	assert.Equal(t, fault.ErrInvalidLoggerChannel, err, "wrong error")
}

func TestPrepareAndBuild(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	state := mocks.NewMockChainState(ctl)

	// the first put prepares, the second put clears the expiration
	// and prepares again
	expectPrepare(t, state)
	expectPrepare(t, state)

	b := newBuilder(t, builder.Options{State: state})
	putTestnetOperations(t, b)

	assert.False(t, b.Expired(), "not prepared")

	tx, err := b.UnsignedTransaction(context.Background())
	if !assert.Nil(t, err, "transaction error") {
		return
	}
	assert.Equal(t, fixtures.RefBlockNum, tx.RefBlockNum, "wrong ref_block_num")
	assert.Equal(t, fixtures.RefBlockPrefix, tx.RefBlockPrefix, "wrong ref_block_prefix")
	expiration, _ := tx.Expiration.MarshalText()
	assert.Equal(t, fixtures.Expiration, string(expiration), "wrong expiration")

	h, err := b.TransactionHex(context.Background())
	assert.Nil(t, err, "hex error")
	assert.Equal(t, fixtures.TestnetTransaction, h, "wrong transaction hex")
}

func TestTransactionSigns(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	state := mocks.NewMockChainState(ctl)
	expectPrepare(t, state)
	expectPrepare(t, state)

	b := newBuilder(t, builder.Options{
		State: state,
		Keys:  []*account.PrivateKey{wif(t, fixtures.WIF1)},
	})
	putTestnetOperations(t, b)

	tx, err := b.Transaction(context.Background())
	if !assert.Nil(t, err, "transaction error") {
		return
	}
	assert.Equal(t, 1, len(tx.Signatures), "wrong signature count")
	assert.True(t, tx.Signatures[0].IsCanonical(), "signature not canonical")

	// unchanged on a second request
	again, err := b.Transaction(context.Background())
	assert.Nil(t, err, "second transaction error")
	assert.Equal(t, tx.Signatures, again.Signatures, "signatures changed")

	// the returned copy does not alias the builder
	again.Signatures[0] = nil
	assert.NotNil(t, b.Peek().Signatures[0], "copy aliases builder")
}

func TestPutForms(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	state := mocks.NewMockChainState(ctl)
	state.EXPECT().ChainHead(gomock.Any()).Return(&builder.ChainHead{
		LastIrreversibleBlockNumber: fixtures.HeadBlockNumber,
		Time:                        headTime(t),
	}, nil).AnyTimes()
	state.EXPECT().BlockHeader(gomock.Any(), gomock.Any()).Return(&builder.BlockHeader{
		Previous: fixtures.PreviousBlockID,
	}, nil).AnyTimes()

	b := newBuilder(t, builder.Options{State: state})
	ctx := context.Background()

	vote := map[string]interface{}{"voter": "alice", "author": "bob", "permlink": "hello", "weight": 10000}
	typed := &transactionrecord.Vote{Voter: "alice", Author: "bob", Permlink: "hello", Weight: 10000}

	assert.Nil(t, b.Put(ctx, typed), "typed")
	assert.Nil(t, b.Put(ctx, "vote", vote), "name and map")
	assert.Nil(t, b.Put(ctx, "vote_operation", typed), "name and struct")
	assert.Nil(t, b.Put(ctx, []interface{}{"vote", vote}), "pair")
	assert.Nil(t, b.Put(ctx, [2]interface{}{"vote", vote}), "array pair")
	assert.Nil(t, b.Put(ctx, map[string]interface{}{"vote": vote}), "single key map")
	assert.Nil(t, b.Put(ctx, json.RawMessage(`["vote",{"voter":"alice","author":"bob","permlink":"hello","weight":10000}]`)), "raw json")
	assert.Nil(t, b.Put(ctx, json.RawMessage(`{"type":"vote_operation","value":{"voter":"alice","author":"bob","permlink":"hello","weight":10000}}`)), "tagged json")
	assert.Nil(t, b.Put(ctx, "vote", `{"voter":"alice","author":"bob","permlink":"hello","weight":10000}`), "name and json string")

	ops := b.Operations()
	if !assert.Equal(t, 9, len(ops), "wrong operation count") {
		return
	}
	for i, op := range ops {
		assert.Equal(t, typed, op, "%d: wrong operation", i)
	}

	bad := []interface{}{
		nil,
		42,
		[]interface{}{"vote"},
		map[string]interface{}{"vote": vote, "comment": vote},
		json.RawMessage(`["pow",{}]`),
	}
	for i, item := range bad {
		err := b.Put(ctx, item)
		assert.NotNil(t, err, "%d: accepted", i)
	}
	assert.ErrorIs(t, b.Put(ctx, "vote", vote, vote), fault.ErrInvalidOperation, "three arguments")
	assert.ErrorIs(t, b.Put(ctx, 1, vote), fault.ErrInvalidOperation, "non-string name")
	assert.ErrorIs(t, b.Put(ctx, "no_such_operation", vote), fault.ErrUnknownOperation, "unknown name")
	assert.Equal(t, 9, len(b.Operations()), "failed put changed operations")
}

func TestPutBindsToChain(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	state := mocks.NewMockChainState(ctl)
	expectPrepare(t, state)

	b := newBuilder(t, builder.Options{State: state})
	err := b.Put(context.Background(), "transfer", map[string]interface{}{
		"from":   "alice",
		"to":     "bob",
		"amount": map[string]interface{}{"amount": "1000", "precision": 3, "nai": "@@000000021"},
		"memo":   "",
	})
	if !assert.Nil(t, err, "put error") {
		return
	}
	transfer := b.Operations()[0].(*transactionrecord.Transfer)
	assert.Equal(t, "1.000 TESTS", transfer.Amount.String(), "amount not bound to chain")
}

func TestSetOperationsAndReset(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	state := mocks.NewMockChainState(ctl)
	expectPrepare(t, state)

	b := newBuilder(t, builder.Options{State: state})
	err := b.SetOperations(context.Background(),
		[]interface{}{"vote", map[string]interface{}{"voter": "alice", "author": "bob", "permlink": "a", "weight": 1}},
		&transactionrecord.DeleteComment{Author: "alice", Permlink: "b"},
	)
	assert.Nil(t, err, "set operations error")
	assert.Equal(t, 2, len(b.Operations()), "wrong operation count")

	// already prepared, no more chain queries
	assert.Nil(t, b.Prepare(context.Background()), "prepare error")

	b.Reset()
	assert.Equal(t, 0, len(b.Operations()), "operations left after reset")
	assert.True(t, b.Expired(), "reset transaction not expired")

	err = b.SetOperations(context.Background(), 42)
	assert.ErrorIs(t, err, fault.ErrInvalidOperation, "bad operation accepted")
}

func TestExpiredTransactionPreparesAgain(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	state := mocks.NewMockChainState(ctl)
	expectPrepare(t, state)
	expectPrepare(t, state)

	clock := now
	b := newBuilder(t, builder.Options{
		State: state,
		Now:   func() time.Time { return clock },
	})
	assert.Nil(t, b.Put(context.Background(), &transactionrecord.DeleteComment{Author: "alice", Permlink: "b"}), "put error")
	assert.False(t, b.Expired(), "fresh transaction expired")

	clock = now.Add(time.Hour)
	assert.True(t, b.Expired(), "old transaction not expired")
	assert.Nil(t, b.Prepare(context.Background()), "prepare error")
}

func TestEmptyTransactionFailsToSign(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	state := mocks.NewMockChainState(ctl)
	expectPrepare(t, state)

	b := newBuilder(t, builder.Options{
		State: state,
		Keys:  []*account.PrivateKey{wif(t, fixtures.WIF1)},
	})
	_, err := b.Transaction(context.Background())
	assert.ErrorIs(t, err, fault.ErrEmptyTransaction, "wrong error")
}

func TestPrepareErrors(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	state := mocks.NewMockChainState(ctl)
	state.EXPECT().ChainHead(gomock.Any()).Return(nil, fault.ErrRPCFailure).Times(1)

	b := newBuilder(t, builder.Options{State: state})
	err := b.Put(context.Background(), &transactionrecord.DeleteComment{Author: "alice", Permlink: "b"})
	assert.ErrorIs(t, err, fault.ErrRPCFailure, "wrong error")
	assert.True(t, b.Expired(), "failed prepare left an expiration")

	noState := newBuilder(t, builder.Options{})
	err = noState.Prepare(context.Background())
	assert.ErrorIs(t, err, fault.ErrMissingCollaborator, "missing state")
}

func TestVerifierAndBroadcaster(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	state := mocks.NewMockChainState(ctl)
	verifier := mocks.NewMockAuthorityVerifier(ctl)
	broadcaster := mocks.NewMockBroadcaster(ctl)

	expectPrepare(t, state)

	b := newBuilder(t, builder.Options{
		State:       state,
		Verifier:    verifier,
		Broadcaster: broadcaster,
		Keys:        []*account.PrivateKey{wif(t, fixtures.WIF1)},
	})
	assert.Nil(t, b.Put(context.Background(), &transactionrecord.DeleteComment{Author: "alice", Permlink: "b"}), "put error")

	pub1, _ := account.ParsePublicKey(fixtures.PublicKey1)
	pub2, _ := account.ParsePublicKey(fixtures.PublicKey2)

	signed := gomock.AssignableToTypeOf(&transactionrecord.Transaction{})
	verifier.EXPECT().VerifyAuthority(gomock.Any(), signed).Return(true, nil).Times(1)
	verifier.EXPECT().PotentialSignatures(gomock.Any(), signed).Return([]*account.PublicKey{pub1, pub2}, nil).Times(1)
	verifier.EXPECT().RequiredSignatures(gomock.Any(), signed, []*account.PublicKey{pub1, pub2}).Return([]*account.PublicKey{pub1}, nil).Times(1)
	broadcaster.EXPECT().BroadcastTransaction(gomock.Any(), signed).
		DoAndReturn(func(_ context.Context, tx *transactionrecord.Transaction) (*builder.Receipt, error) {
			assert.Equal(t, 1, len(tx.Signatures), "broadcast without signature")
			return &builder.Receipt{ID: "c0ffee", BlockNumber: 22}, nil
		}).Times(1)

	valid, err := b.Valid(context.Background())
	assert.Nil(t, err, "valid error")
	assert.True(t, valid, "not valid")

	potential, err := b.PotentialSignatures(context.Background())
	assert.Nil(t, err, "potential error")
	assert.Equal(t, 2, len(potential), "wrong potential count")

	required, err := b.RequiredSignatures(context.Background(), potential)
	assert.Nil(t, err, "required error")
	assert.Equal(t, []*account.PublicKey{pub1}, required, "wrong required keys")

	receipt, err := b.Broadcast(context.Background())
	assert.Nil(t, err, "broadcast error")
	assert.Equal(t, "c0ffee", receipt.ID, "wrong receipt")
}

func TestMissingCollaborators(t *testing.T) {
	b := newBuilder(t, builder.Options{})

	_, err := b.Valid(context.Background())
	assert.ErrorIs(t, err, fault.ErrMissingCollaborator, "valid")
	_, err = b.PotentialSignatures(context.Background())
	assert.ErrorIs(t, err, fault.ErrMissingCollaborator, "potential")
	_, err = b.RequiredSignatures(context.Background(), nil)
	assert.ErrorIs(t, err, fault.ErrMissingCollaborator, "required")
	_, err = b.Broadcast(context.Background())
	assert.ErrorIs(t, err, fault.ErrMissingCollaborator, "broadcast")
}

func TestTransactionHexFromSource(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	state := mocks.NewMockChainState(ctl)
	source := mocks.NewMockHexSource(ctl)
	expectPrepare(t, state)

	b := newBuilder(t, builder.Options{State: state, Source: source})
	assert.Nil(t, b.Put(context.Background(), &transactionrecord.DeleteComment{Author: "alice", Permlink: "b"}), "put error")

	source.EXPECT().TransactionHex(gomock.Any(), gomock.Any()).Return("abcd", nil).Times(1)
	h, err := b.TransactionHex(context.Background())
	assert.Nil(t, err, "hex error")
	assert.Equal(t, "abcd", h, "wrong hex")

	_, err = hex.DecodeString(h)
	assert.Nil(t, err, "not hex")
}
