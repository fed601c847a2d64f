// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package broadcast

import (
	"context"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/steemtx/builder"
	"github.com/bitmark-inc/steemtx/currency"
	"github.com/bitmark-inc/steemtx/fault"
	"github.com/bitmark-inc/steemtx/transactionrecord"
)

// Options - builder options plus broadcast mode
type Options struct {
	builder.Options
	Pretend bool // verify authority instead of broadcasting
}

// Operations - broadcast any list of operations as one transaction
//
// each item is in any single argument form builder.Put accepts
func Operations(ctx context.Context, log *logger.L, options Options, items ...interface{}) (*builder.Receipt, error) {
	if 0 == len(items) {
		return nil, fault.ErrEmptyTransaction
	}

	b, err := builder.New(log, options.Options)
	if nil != err {
		return nil, err
	}
	if err := b.SetOperations(ctx, items...); nil != err {
		return nil, err
	}

	if !options.Pretend {
		return b.Broadcast(ctx)
	}

	valid, err := b.Valid(ctx)
	if nil != err {
		return nil, err
	}
	if !valid {
		return nil, errors.Wrap(fault.ErrInvalidAuthority, "signatures do not satisfy authority")
	}

	tx := b.Peek()
	id, err := tx.ID(options.Chain)
	if nil != err {
		return nil, err
	}
	log.Infof("pretend: id: %s verified", id)
	return &builder.Receipt{ID: id}, nil
}

// Vote - vote on a post or comment, weight is in hundredths of a percent
func Vote(ctx context.Context, log *logger.L, options Options, voter string, author string, permlink string, weight int16) (*builder.Receipt, error) {
	if "" == voter || "" == author || "" == permlink {
		return nil, errors.Wrap(fault.ErrInvalidOperation, "vote: voter, author and permlink are required")
	}
	return Operations(ctx, log, options, &transactionrecord.Vote{
		Voter:    voter,
		Author:   author,
		Permlink: permlink,
		Weight:   weight,
	})
}

// Transfer - move liquid funds between accounts
func Transfer(ctx context.Context, log *logger.L, options Options, from string, to string, amount currency.Amount, memo string) (*builder.Receipt, error) {
	if "" == from || "" == to {
		return nil, errors.Wrap(fault.ErrInvalidOperation, "transfer: from and to are required")
	}
	return Operations(ctx, log, options, &transactionrecord.Transfer{
		From:   from,
		To:     to,
		Amount: amount,
		Memo:   memo,
	})
}

// ClaimRewardBalance - move pending rewards into the account balances
func ClaimRewardBalance(ctx context.Context, log *logger.L, options Options, account string, steem currency.Amount, sbd currency.Amount, vests currency.Amount) (*builder.Receipt, error) {
	if "" == account {
		return nil, errors.Wrap(fault.ErrInvalidOperation, "claim_reward_balance: account is required")
	}
	return Operations(ctx, log, options, &transactionrecord.ClaimRewardBalance{
		Account:     account,
		RewardSteem: steem,
		RewardSBD:   sbd,
		RewardVests: vests,
	})
}

// DelegateVestingShares - lend vesting shares to another account
func DelegateVestingShares(ctx context.Context, log *logger.L, options Options, delegator string, delegatee string, shares currency.Amount) (*builder.Receipt, error) {
	if "" == delegator || "" == delegatee {
		return nil, errors.Wrap(fault.ErrInvalidOperation, "delegate_vesting_shares: delegator and delegatee are required")
	}
	return Operations(ctx, log, options, &transactionrecord.DelegateVestingShares{
		Delegator:     delegator,
		Delegatee:     delegatee,
		VestingShares: shares,
	})
}
