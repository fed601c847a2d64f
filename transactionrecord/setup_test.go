// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"testing"
	"time"

	"github.com/bitmark-inc/steemtx/account"
	"github.com/bitmark-inc/steemtx/chain"
	"github.com/bitmark-inc/steemtx/currency"
	"github.com/bitmark-inc/steemtx/transactionrecord"
)

const (
	keyOne = "STM8ZSyzjPm48GmUuMSRufkVYkwYbZzbxeMysAVp7KFQwbTf98TcG"
	keyTwo = "STM5ctejUsoZ9FwfCaVbNvWYYgNMBo9TVsHSE8wHrqAmNJi6sDctt"
)

func steemChain(t *testing.T) *chain.Context {
	c, err := chain.Get(chain.Steem)
	if nil != err {
		t.Fatalf("chain error: %s", err)
	}
	return c
}

func testChain(t *testing.T) *chain.Context {
	c, err := chain.Get(chain.Test)
	if nil != err {
		t.Fatalf("chain error: %s", err)
	}
	return c
}

func makeKey(t *testing.T, s string) *account.PublicKey {
	key, err := account.ParsePublicKey(s)
	if nil != err {
		t.Fatalf("key: %q error: %s", s, err)
	}
	return key
}

func makeAmount(t *testing.T, s string) currency.Amount {
	a, err := currency.ParseAmount(s)
	if nil != err {
		t.Fatalf("amount: %q error: %s", s, err)
	}
	return a
}

func makeTime(s string) transactionrecord.PointInTime {
	tm, err := time.Parse(time.RFC3339, s)
	if nil != err {
		panic(err)
	}
	return transactionrecord.NewPointInTime(tm)
}

func makeAuthority(t *testing.T) transactionrecord.Authority {
	return transactionrecord.Authority{
		WeightThreshold: 1,
		AccountAuths: []transactionrecord.AccountAuth{
			{Account: "alice", Weight: 1},
		},
		KeyAuths: []transactionrecord.KeyAuth{
			{Key: makeKey(t, keyOne), Weight: 1},
			{Key: makeKey(t, keyTwo), Weight: 2},
		},
	}
}

// one fully populated operation of every kind, Steem assets
func allOperations(t *testing.T) []transactionrecord.Operation {
	owner := makeAuthority(t)
	active := makeAuthority(t)
	active.WeightThreshold = 2
	posting := makeAuthority(t)

	steem := makeAmount(t, "1.000 STEEM")
	sbd := makeAmount(t, "0.845 SBD")
	vests := makeAmount(t, "404.731593 VESTS")
	expires := makeTime("2018-10-15T19:52:09Z")

	price := transactionrecord.Price{Base: sbd, Quote: steem}

	return []transactionrecord.Operation{
		&transactionrecord.Vote{Voter: "alice", Author: "bob", Permlink: "hello", Weight: -10000},
		&transactionrecord.Comment{ParentAuthor: "bob", ParentPermlink: "hello", Author: "alice", Permlink: "re-hello", Title: "", Body: "nice post", JSONMetadata: `{"app":"steemtx"}`},
		&transactionrecord.Transfer{From: "alice", To: "bob", Amount: steem, Memo: "thanks"},
		&transactionrecord.TransferToVesting{From: "alice", To: "alice", Amount: steem},
		&transactionrecord.WithdrawVesting{Account: "alice", VestingShares: vests},
		&transactionrecord.LimitOrderCreate{Owner: "alice", OrderID: 7, AmountToSell: steem, MinToReceive: sbd, FillOrKill: false, Expiration: transactionrecord.MaximumTime},
		&transactionrecord.LimitOrderCancel{Owner: "alice", OrderID: 7},
		&transactionrecord.FeedPublish{Publisher: "witness", ExchangeRate: price},
		&transactionrecord.Convert{Owner: "alice", RequestID: 1, Amount: sbd},
		&transactionrecord.AccountCreate{Fee: steem, Creator: "alice", NewAccountName: "carol", Owner: owner, Active: active, Posting: posting, MemoKey: makeKey(t, keyOne), JSONMetadata: "{}"},
		&transactionrecord.AccountUpdate{Account: "alice", Active: &active, MemoKey: makeKey(t, keyTwo), JSONMetadata: ""},
		&transactionrecord.WitnessUpdate{Owner: "witness", URL: "https://example.com", BlockSigningKey: makeKey(t, keyOne), Props: transactionrecord.ChainProperties{AccountCreationFee: steem, MaximumBlockSize: 65536, SBDInterestRate: 1000}, Fee: makeAmount(t, "0.000 STEEM")},
		&transactionrecord.AccountWitnessVote{Account: "alice", Witness: "witness", Approve: true},
		&transactionrecord.AccountWitnessProxy{Account: "alice", Proxy: "bob"},
		&transactionrecord.Custom{RequiredAuths: transactionrecord.AccountNames{"alice"}, ID: 777, Data: transactionrecord.HexBytes{0x01, 0x02, 0x03}},
		&transactionrecord.DeleteComment{Author: "alice", Permlink: "re-hello"},
		&transactionrecord.CustomJSON{RequiredAuths: transactionrecord.AccountNames{}, RequiredPostingAuths: transactionrecord.AccountNames{"alice"}, ID: "follow", JSON: `["follow",{"follower":"alice","following":"bob","what":["blog"]}]`},
		&transactionrecord.CommentOptions{Author: "alice", Permlink: "hello", MaxAcceptedPayout: makeAmount(t, "1000000.000 SBD"), PercentSteemDollars: 10000, AllowVotes: true, AllowCurationRewards: true, Extensions: transactionrecord.CommentOptionsExtensions{Beneficiaries: []transactionrecord.Beneficiary{{Account: "bob", Weight: 5000}}}},
		&transactionrecord.SetWithdrawVestingRoute{FromAccount: "alice", ToAccount: "bob", Percent: 5000, AutoVest: true},
		&transactionrecord.LimitOrderCreate2{Owner: "alice", OrderID: 8, AmountToSell: steem, ExchangeRate: price, FillOrKill: true, Expiration: expires},
		&transactionrecord.ClaimAccount{Creator: "alice", Fee: makeAmount(t, "0.000 STEEM")},
		&transactionrecord.CreateClaimedAccount{Creator: "alice", NewAccountName: "dave", Owner: owner, Active: active, Posting: posting, MemoKey: makeKey(t, keyTwo), JSONMetadata: ""},
		&transactionrecord.RequestAccountRecovery{RecoveryAccount: "steem", AccountToRecover: "alice", NewOwnerAuthority: owner},
		&transactionrecord.RecoverAccount{AccountToRecover: "alice", NewOwnerAuthority: owner, RecentOwnerAuthority: active},
		&transactionrecord.ChangeRecoveryAccount{AccountToRecover: "alice", NewRecoveryAccount: "bob"},
		&transactionrecord.EscrowTransfer{From: "alice", To: "bob", SBDAmount: sbd, SteemAmount: steem, EscrowID: 23, Agent: "carol", Fee: makeAmount(t, "0.001 STEEM"), JSONMeta: "{}", RatificationDeadline: expires, EscrowExpiration: makeTime("2018-11-15T19:52:09Z")},
		&transactionrecord.EscrowDispute{From: "alice", To: "bob", Agent: "carol", Who: "alice", EscrowID: 23},
		&transactionrecord.EscrowRelease{From: "alice", To: "bob", Agent: "carol", Who: "carol", Receiver: "bob", EscrowID: 23, SBDAmount: sbd, SteemAmount: steem},
		&transactionrecord.EscrowApprove{From: "alice", To: "bob", Agent: "carol", Who: "bob", EscrowID: 23, Approve: true},
		&transactionrecord.TransferToSavings{From: "alice", To: "alice", Amount: sbd, Memo: "save"},
		&transactionrecord.TransferFromSavings{From: "alice", RequestID: 101, To: "alice", Amount: sbd, Memo: ""},
		&transactionrecord.CancelTransferFromSavings{From: "alice", RequestID: 101},
		&transactionrecord.CustomBinary{RequiredOwnerAuths: transactionrecord.AccountNames{}, RequiredActiveAuths: transactionrecord.AccountNames{"alice"}, RequiredPostingAuths: transactionrecord.AccountNames{}, RequiredAuths: []transactionrecord.Authority{owner}, ID: "binary", Data: transactionrecord.HexBytes{0xde, 0xad}},
		&transactionrecord.DeclineVotingRights{Account: "alice", Decline: true},
		&transactionrecord.ResetAccount{ResetAccount: "steem", AccountToReset: "alice", NewOwnerAuthority: owner},
		&transactionrecord.SetResetAccount{Account: "alice", CurrentResetAccount: "steem", ResetAccount: "bob"},
		&transactionrecord.ClaimRewardBalance{Account: "alice", RewardSteem: makeAmount(t, "0.000 STEEM"), RewardSBD: sbd, RewardVests: vests},
		&transactionrecord.AccountCreateWithDelegation{Fee: steem, Delegation: vests, Creator: "alice", NewAccountName: "erin", Owner: owner, Active: active, Posting: posting, MemoKey: makeKey(t, keyOne), JSONMetadata: ""},
		&transactionrecord.DelegateVestingShares{Delegator: "alice", Delegatee: "bob", VestingShares: vests},
		&transactionrecord.WitnessSetProperties{Owner: "witness", Props: transactionrecord.WitnessProperties{{Key: "key", Value: transactionrecord.HexBytes{0x02, 0x60}}}},
		&transactionrecord.AccountUpdate2{Account: "alice", Posting: &posting, MemoKey: transactionrecord.OptionalPublicKey{Key: makeKey(t, keyOne)}, JSONMetadata: "", PostingJSONMetadata: `{"profile":{}}`},
		&transactionrecord.CreateProposal{Creator: "alice", Receiver: "bob", StartDate: expires, EndDate: makeTime("2019-10-15T19:52:09Z"), DailyPay: sbd, Subject: "work", Permlink: "proposal"},
		&transactionrecord.UpdateProposalVotes{Voter: "alice", ProposalIDs: []int64{0, 17}, Approve: true},
		&transactionrecord.RemoveProposal{ProposalOwner: "alice", ProposalIDs: []int64{17}},
	}
}
