// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/steemtx/fault"
)

// TagType - type code for operations
type TagType uint64

// enumerate the operation types
// this is encoded as a varint at the start of each operation
//
// 14 (pow), 16 (report_over_production) and 30 (pow2) were disabled
// by hard forks and are not accepted
const (
	VoteTag                        = TagType(0)
	CommentTag                     = TagType(1)
	TransferTag                    = TagType(2)
	TransferToVestingTag           = TagType(3)
	WithdrawVestingTag             = TagType(4)
	LimitOrderCreateTag            = TagType(5)
	LimitOrderCancelTag            = TagType(6)
	FeedPublishTag                 = TagType(7)
	ConvertTag                     = TagType(8)
	AccountCreateTag               = TagType(9)
	AccountUpdateTag               = TagType(10)
	WitnessUpdateTag               = TagType(11)
	AccountWitnessVoteTag          = TagType(12)
	AccountWitnessProxyTag         = TagType(13)
	CustomTag                      = TagType(15)
	DeleteCommentTag               = TagType(17)
	CustomJSONTag                  = TagType(18)
	CommentOptionsTag              = TagType(19)
	SetWithdrawVestingRouteTag     = TagType(20)
	LimitOrderCreate2Tag           = TagType(21)
	ClaimAccountTag                = TagType(22)
	CreateClaimedAccountTag        = TagType(23)
	RequestAccountRecoveryTag      = TagType(24)
	RecoverAccountTag              = TagType(25)
	ChangeRecoveryAccountTag       = TagType(26)
	EscrowTransferTag              = TagType(27)
	EscrowDisputeTag               = TagType(28)
	EscrowReleaseTag               = TagType(29)
	EscrowApproveTag               = TagType(31)
	TransferToSavingsTag           = TagType(32)
	TransferFromSavingsTag         = TagType(33)
	CancelTransferFromSavingsTag   = TagType(34)
	CustomBinaryTag                = TagType(35)
	DeclineVotingRightsTag         = TagType(36)
	ResetAccountTag                = TagType(37)
	SetResetAccountTag             = TagType(38)
	ClaimRewardBalanceTag          = TagType(39)
	AccountCreateWithDelegationTag = TagType(40)
	DelegateVestingSharesTag       = TagType(41)
	WitnessSetPropertiesTag        = TagType(42)
	AccountUpdate2Tag              = TagType(43)
	CreateProposalTag              = TagType(44)
	UpdateProposalVotesTag         = TagType(45)
	RemoveProposalTag              = TagType(46)
)

// Operation - one operation of a transaction
//
// the set of implementations is closed, one per TagType
type Operation interface {
	Tag() TagType
	layout() []field
}

// a named pointer to one member of an operation
type field struct {
	name  string
	value interface{}
}

type registration struct {
	name string
	make func() Operation
}

// all operation kinds
var registry = map[TagType]registration{
	VoteTag:                        {"vote", func() Operation { return &Vote{} }},
	CommentTag:                     {"comment", func() Operation { return &Comment{} }},
	TransferTag:                    {"transfer", func() Operation { return &Transfer{} }},
	TransferToVestingTag:           {"transfer_to_vesting", func() Operation { return &TransferToVesting{} }},
	WithdrawVestingTag:             {"withdraw_vesting", func() Operation { return &WithdrawVesting{} }},
	LimitOrderCreateTag:            {"limit_order_create", func() Operation { return &LimitOrderCreate{} }},
	LimitOrderCancelTag:            {"limit_order_cancel", func() Operation { return &LimitOrderCancel{} }},
	FeedPublishTag:                 {"feed_publish", func() Operation { return &FeedPublish{} }},
	ConvertTag:                     {"convert", func() Operation { return &Convert{} }},
	AccountCreateTag:               {"account_create", func() Operation { return &AccountCreate{} }},
	AccountUpdateTag:               {"account_update", func() Operation { return &AccountUpdate{} }},
	WitnessUpdateTag:               {"witness_update", func() Operation { return &WitnessUpdate{} }},
	AccountWitnessVoteTag:          {"account_witness_vote", func() Operation { return &AccountWitnessVote{} }},
	AccountWitnessProxyTag:         {"account_witness_proxy", func() Operation { return &AccountWitnessProxy{} }},
	CustomTag:                      {"custom", func() Operation { return &Custom{} }},
	DeleteCommentTag:               {"delete_comment", func() Operation { return &DeleteComment{} }},
	CustomJSONTag:                  {"custom_json", func() Operation { return &CustomJSON{} }},
	CommentOptionsTag:              {"comment_options", func() Operation { return &CommentOptions{} }},
	SetWithdrawVestingRouteTag:     {"set_withdraw_vesting_route", func() Operation { return &SetWithdrawVestingRoute{} }},
	LimitOrderCreate2Tag:           {"limit_order_create2", func() Operation { return &LimitOrderCreate2{} }},
	ClaimAccountTag:                {"claim_account", func() Operation { return &ClaimAccount{} }},
	CreateClaimedAccountTag:        {"create_claimed_account", func() Operation { return &CreateClaimedAccount{} }},
	RequestAccountRecoveryTag:      {"request_account_recovery", func() Operation { return &RequestAccountRecovery{} }},
	RecoverAccountTag:              {"recover_account", func() Operation { return &RecoverAccount{} }},
	ChangeRecoveryAccountTag:       {"change_recovery_account", func() Operation { return &ChangeRecoveryAccount{} }},
	EscrowTransferTag:              {"escrow_transfer", func() Operation { return &EscrowTransfer{} }},
	EscrowDisputeTag:               {"escrow_dispute", func() Operation { return &EscrowDispute{} }},
	EscrowReleaseTag:               {"escrow_release", func() Operation { return &EscrowRelease{} }},
	EscrowApproveTag:               {"escrow_approve", func() Operation { return &EscrowApprove{} }},
	TransferToSavingsTag:           {"transfer_to_savings", func() Operation { return &TransferToSavings{} }},
	TransferFromSavingsTag:         {"transfer_from_savings", func() Operation { return &TransferFromSavings{} }},
	CancelTransferFromSavingsTag:   {"cancel_transfer_from_savings", func() Operation { return &CancelTransferFromSavings{} }},
	CustomBinaryTag:                {"custom_binary", func() Operation { return &CustomBinary{} }},
	DeclineVotingRightsTag:         {"decline_voting_rights", func() Operation { return &DeclineVotingRights{} }},
	ResetAccountTag:                {"reset_account", func() Operation { return &ResetAccount{} }},
	SetResetAccountTag:             {"set_reset_account", func() Operation { return &SetResetAccount{} }},
	ClaimRewardBalanceTag:          {"claim_reward_balance", func() Operation { return &ClaimRewardBalance{} }},
	AccountCreateWithDelegationTag: {"account_create_with_delegation", func() Operation { return &AccountCreateWithDelegation{} }},
	DelegateVestingSharesTag:       {"delegate_vesting_shares", func() Operation { return &DelegateVestingShares{} }},
	WitnessSetPropertiesTag:        {"witness_set_properties", func() Operation { return &WitnessSetProperties{} }},
	AccountUpdate2Tag:              {"account_update2", func() Operation { return &AccountUpdate2{} }},
	CreateProposalTag:              {"create_proposal", func() Operation { return &CreateProposal{} }},
	UpdateProposalVotesTag:         {"update_proposal_votes", func() Operation { return &UpdateProposalVotes{} }},
	RemoveProposalTag:              {"remove_proposal", func() Operation { return &RemoveProposal{} }},
}

// reverse of registry, filled by init
var tagsByName = make(map[string]TagType, len(registry))

func init() {
	for tag, r := range registry {
		if _, ok := tagsByName[r.name]; ok {
			panic("duplicate operation name: " + r.name)
		}
		if op := r.make(); tag != op.Tag() {
			panic("operation: " + r.name + " has the wrong tag")
		}
		tagsByName[r.name] = tag
	}
}

// String - operation name, e.g. "vote"
func (tag TagType) String() string {
	if r, ok := registry[tag]; ok {
		return r.name
	}
	return "unknown"
}

// IsValid - true if the tag is a known operation
func (tag TagType) IsValid() bool {
	_, ok := registry[tag]
	return ok
}

// TagFromName - look up an operation name
//
// "vote" and "vote_operation" are both accepted
func TagFromName(name string) (TagType, error) {
	n := strings.TrimSuffix(strings.ToLower(name), "_operation")
	tag, ok := tagsByName[n]
	if !ok {
		return 0, errors.Wrapf(fault.ErrUnknownOperation, "name: %q", name)
	}
	return tag, nil
}

// New - empty operation of a given kind
func New(tag TagType) (Operation, error) {
	r, ok := registry[tag]
	if !ok {
		return nil, errors.Wrapf(fault.ErrUnknownOperation, "tag: %d", tag)
	}
	return r.make(), nil
}

// Tags - all valid tags in ascending order
func Tags() []TagType {
	tags := make([]TagType, 0, len(registry))
	for tag := TagType(0); len(tags) < len(registry); tag += 1 {
		if _, ok := registry[tag]; ok {
			tags = append(tags, tag)
		}
	}
	return tags
}

// OperationName - name of an operation as a string
func OperationName(op Operation) string {
	return op.Tag().String()
}
