// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/steemtx/account"
	"github.com/bitmark-inc/steemtx/currency"
)

// Vote - cast or change a vote on a post
type Vote struct {
	Voter    string `json:"voter"`
	Author   string `json:"author"`
	Permlink string `json:"permlink"`
	Weight   int16  `json:"weight"`
}

// Tag - operation type
func (op *Vote) Tag() TagType { return VoteTag }

func (op *Vote) layout() []field {
	return []field{
		{"voter", &op.Voter},
		{"author", &op.Author},
		{"permlink", &op.Permlink},
		{"weight", &op.Weight},
	}
}

// Comment - create or edit a post or reply
type Comment struct {
	ParentAuthor   string `json:"parent_author"`
	ParentPermlink string `json:"parent_permlink"`
	Author         string `json:"author"`
	Permlink       string `json:"permlink"`
	Title          string `json:"title"`
	Body           string `json:"body"`
	JSONMetadata   string `json:"json_metadata"`
}

func (op *Comment) Tag() TagType { return CommentTag }

func (op *Comment) layout() []field {
	return []field{
		{"parent_author", &op.ParentAuthor},
		{"parent_permlink", &op.ParentPermlink},
		{"author", &op.Author},
		{"permlink", &op.Permlink},
		{"title", &op.Title},
		{"body", &op.Body},
		{"json_metadata", &op.JSONMetadata},
	}
}

type Transfer struct {
	From   string          `json:"from"`
	To     string          `json:"to"`
	Amount currency.Amount `json:"amount"`
	Memo   string          `json:"memo"`
}

func (op *Transfer) Tag() TagType { return TransferTag }

func (op *Transfer) layout() []field {
	return []field{
		{"from", &op.From},
		{"to", &op.To},
		{"amount", &op.Amount},
		{"memo", &op.Memo},
	}
}

// TransferToVesting - power up
type TransferToVesting struct {
	From   string          `json:"from"`
	To     string          `json:"to"`
	Amount currency.Amount `json:"amount"`
}

func (op *TransferToVesting) Tag() TagType { return TransferToVestingTag }

func (op *TransferToVesting) layout() []field {
	return []field{
		{"from", &op.From},
		{"to", &op.To},
		{"amount", &op.Amount},
	}
}

// WithdrawVesting - power down
type WithdrawVesting struct {
	Account       string          `json:"account"`
	VestingShares currency.Amount `json:"vesting_shares"`
}

func (op *WithdrawVesting) Tag() TagType { return WithdrawVestingTag }

func (op *WithdrawVesting) layout() []field {
	return []field{
		{"account", &op.Account},
		{"vesting_shares", &op.VestingShares},
	}
}

type LimitOrderCreate struct {
	Owner        string          `json:"owner"`
	OrderID      uint32          `json:"orderid"`
	AmountToSell currency.Amount `json:"amount_to_sell"`
	MinToReceive currency.Amount `json:"min_to_receive"`
	FillOrKill   bool            `json:"fill_or_kill"`
	Expiration   PointInTime     `json:"expiration"`
}

func (op *LimitOrderCreate) Tag() TagType { return LimitOrderCreateTag }

func (op *LimitOrderCreate) layout() []field {
	return []field{
		{"owner", &op.Owner},
		{"orderid", &op.OrderID},
		{"amount_to_sell", &op.AmountToSell},
		{"min_to_receive", &op.MinToReceive},
		{"fill_or_kill", &op.FillOrKill},
		{"expiration", &op.Expiration},
	}
}

type LimitOrderCancel struct {
	Owner   string `json:"owner"`
	OrderID uint32 `json:"orderid"`
}

func (op *LimitOrderCancel) Tag() TagType { return LimitOrderCancelTag }

func (op *LimitOrderCancel) layout() []field {
	return []field{
		{"owner", &op.Owner},
		{"orderid", &op.OrderID},
	}
}

// FeedPublish - witness price feed
type FeedPublish struct {
	Publisher    string `json:"publisher"`
	ExchangeRate Price  `json:"exchange_rate"`
}

func (op *FeedPublish) Tag() TagType { return FeedPublishTag }

func (op *FeedPublish) layout() []field {
	return []field{
		{"publisher", &op.Publisher},
		{"exchange_rate", &op.ExchangeRate},
	}
}

type Convert struct {
	Owner     string          `json:"owner"`
	RequestID uint32          `json:"requestid"`
	Amount    currency.Amount `json:"amount"`
}

func (op *Convert) Tag() TagType { return ConvertTag }

func (op *Convert) layout() []field {
	return []field{
		{"owner", &op.Owner},
		{"requestid", &op.RequestID},
		{"amount", &op.Amount},
	}
}

type AccountCreate struct {
	Fee            currency.Amount    `json:"fee"`
	Creator        string             `json:"creator"`
	NewAccountName string             `json:"new_account_name"`
	Owner          Authority          `json:"owner"`
	Active         Authority          `json:"active"`
	Posting        Authority          `json:"posting"`
	MemoKey        *account.PublicKey `json:"memo_key"`
	JSONMetadata   string             `json:"json_metadata"`
}

func (op *AccountCreate) Tag() TagType { return AccountCreateTag }

func (op *AccountCreate) layout() []field {
	return []field{
		{"fee", &op.Fee},
		{"creator", &op.Creator},
		{"new_account_name", &op.NewAccountName},
		{"owner", &op.Owner},
		{"active", &op.Active},
		{"posting", &op.Posting},
		{"memo_key", &op.MemoKey},
		{"json_metadata", &op.JSONMetadata},
	}
}

// AccountUpdate - authorities that are nil are left unchanged
type AccountUpdate struct {
	Account      string             `json:"account"`
	Owner        *Authority         `json:"owner,omitempty"`
	Active       *Authority         `json:"active,omitempty"`
	Posting      *Authority         `json:"posting,omitempty"`
	MemoKey      *account.PublicKey `json:"memo_key"`
	JSONMetadata string             `json:"json_metadata"`
}

func (op *AccountUpdate) Tag() TagType { return AccountUpdateTag }

func (op *AccountUpdate) layout() []field {
	return []field{
		{"account", &op.Account},
		{"owner", &op.Owner},
		{"active", &op.Active},
		{"posting", &op.Posting},
		{"memo_key", &op.MemoKey},
		{"json_metadata", &op.JSONMetadata},
	}
}

type WitnessUpdate struct {
	Owner           string             `json:"owner"`
	URL             string             `json:"url"`
	BlockSigningKey *account.PublicKey `json:"block_signing_key"`
	Props           ChainProperties    `json:"props"`
	Fee             currency.Amount    `json:"fee"`
}

func (op *WitnessUpdate) Tag() TagType { return WitnessUpdateTag }

func (op *WitnessUpdate) layout() []field {
	return []field{
		{"owner", &op.Owner},
		{"url", &op.URL},
		{"block_signing_key", &op.BlockSigningKey},
		{"props", &op.Props},
		{"fee", &op.Fee},
	}
}

type AccountWitnessVote struct {
	Account string `json:"account"`
	Witness string `json:"witness"`
	Approve bool   `json:"approve"`
}

func (op *AccountWitnessVote) Tag() TagType { return AccountWitnessVoteTag }

func (op *AccountWitnessVote) layout() []field {
	return []field{
		{"account", &op.Account},
		{"witness", &op.Witness},
		{"approve", &op.Approve},
	}
}

// AccountWitnessProxy - an empty proxy clears it
type AccountWitnessProxy struct {
	Account string `json:"account"`
	Proxy   string `json:"proxy"`
}

func (op *AccountWitnessProxy) Tag() TagType { return AccountWitnessProxyTag }

func (op *AccountWitnessProxy) layout() []field {
	return []field{
		{"account", &op.Account},
		{"proxy", &op.Proxy},
	}
}

type Custom struct {
	RequiredAuths AccountNames `json:"required_auths"`
	ID            uint16       `json:"id"`
	Data          HexBytes     `json:"data"`
}

func (op *Custom) Tag() TagType { return CustomTag }

func (op *Custom) layout() []field {
	return []field{
		{"required_auths", &op.RequiredAuths},
		{"id", &op.ID},
		{"data", &op.Data},
	}
}

type DeleteComment struct {
	Author   string `json:"author"`
	Permlink string `json:"permlink"`
}

func (op *DeleteComment) Tag() TagType { return DeleteCommentTag }

func (op *DeleteComment) layout() []field {
	return []field{
		{"author", &op.Author},
		{"permlink", &op.Permlink},
	}
}

// CustomJSON - application data signed by active or posting authority
type CustomJSON struct {
	RequiredAuths        AccountNames `json:"required_auths"`
	RequiredPostingAuths AccountNames `json:"required_posting_auths"`
	ID                   string       `json:"id"`
	JSON                 string       `json:"json"`
}

func (op *CustomJSON) Tag() TagType { return CustomJSONTag }

func (op *CustomJSON) layout() []field {
	return []field{
		{"required_auths", &op.RequiredAuths},
		{"required_posting_auths", &op.RequiredPostingAuths},
		{"id", &op.ID},
		{"json", &op.JSON},
	}
}

type CommentOptions struct {
	Author               string                   `json:"author"`
	Permlink             string                   `json:"permlink"`
	MaxAcceptedPayout    currency.Amount          `json:"max_accepted_payout"`
	PercentSteemDollars  uint16                   `json:"percent_steem_dollars"`
	AllowVotes           bool                     `json:"allow_votes"`
	AllowCurationRewards bool                     `json:"allow_curation_rewards"`
	Extensions           CommentOptionsExtensions `json:"extensions"`
}

func (op *CommentOptions) Tag() TagType { return CommentOptionsTag }

func (op *CommentOptions) layout() []field {
	return []field{
		{"author", &op.Author},
		{"permlink", &op.Permlink},
		{"max_accepted_payout", &op.MaxAcceptedPayout},
		{"percent_steem_dollars", &op.PercentSteemDollars},
		{"allow_votes", &op.AllowVotes},
		{"allow_curation_rewards", &op.AllowCurationRewards},
		{"extensions", &op.Extensions},
	}
}

type SetWithdrawVestingRoute struct {
	FromAccount string `json:"from_account"`
	ToAccount   string `json:"to_account"`
	Percent     uint16 `json:"percent"`
	AutoVest    bool   `json:"auto_vest"`
}

func (op *SetWithdrawVestingRoute) Tag() TagType { return SetWithdrawVestingRouteTag }

func (op *SetWithdrawVestingRoute) layout() []field {
	return []field{
		{"from_account", &op.FromAccount},
		{"to_account", &op.ToAccount},
		{"percent", &op.Percent},
		{"auto_vest", &op.AutoVest},
	}
}

// LimitOrderCreate2 - limit order with an explicit exchange rate
type LimitOrderCreate2 struct {
	Owner        string          `json:"owner"`
	OrderID      uint32          `json:"orderid"`
	AmountToSell currency.Amount `json:"amount_to_sell"`
	ExchangeRate Price           `json:"exchange_rate"`
	FillOrKill   bool            `json:"fill_or_kill"`
	Expiration   PointInTime     `json:"expiration"`
}

func (op *LimitOrderCreate2) Tag() TagType { return LimitOrderCreate2Tag }

func (op *LimitOrderCreate2) layout() []field {
	return []field{
		{"owner", &op.Owner},
		{"orderid", &op.OrderID},
		{"amount_to_sell", &op.AmountToSell},
		{"exchange_rate", &op.ExchangeRate},
		{"fill_or_kill", &op.FillOrKill},
		{"expiration", &op.Expiration},
	}
}

type ClaimAccount struct {
	Creator    string           `json:"creator"`
	Fee        currency.Amount  `json:"fee"`
	Extensions FutureExtensions `json:"extensions"`
}

func (op *ClaimAccount) Tag() TagType { return ClaimAccountTag }

func (op *ClaimAccount) layout() []field {
	return []field{
		{"creator", &op.Creator},
		{"fee", &op.Fee},
		{"extensions", &op.Extensions},
	}
}

type CreateClaimedAccount struct {
	Creator        string             `json:"creator"`
	NewAccountName string             `json:"new_account_name"`
	Owner          Authority          `json:"owner"`
	Active         Authority          `json:"active"`
	Posting        Authority          `json:"posting"`
	MemoKey        *account.PublicKey `json:"memo_key"`
	JSONMetadata   string             `json:"json_metadata"`
	Extensions     FutureExtensions   `json:"extensions"`
}

func (op *CreateClaimedAccount) Tag() TagType { return CreateClaimedAccountTag }

func (op *CreateClaimedAccount) layout() []field {
	return []field{
		{"creator", &op.Creator},
		{"new_account_name", &op.NewAccountName},
		{"owner", &op.Owner},
		{"active", &op.Active},
		{"posting", &op.Posting},
		{"memo_key", &op.MemoKey},
		{"json_metadata", &op.JSONMetadata},
		{"extensions", &op.Extensions},
	}
}

type RequestAccountRecovery struct {
	RecoveryAccount   string           `json:"recovery_account"`
	AccountToRecover  string           `json:"account_to_recover"`
	NewOwnerAuthority Authority        `json:"new_owner_authority"`
	Extensions        FutureExtensions `json:"extensions"`
}

func (op *RequestAccountRecovery) Tag() TagType { return RequestAccountRecoveryTag }

func (op *RequestAccountRecovery) layout() []field {
	return []field{
		{"recovery_account", &op.RecoveryAccount},
		{"account_to_recover", &op.AccountToRecover},
		{"new_owner_authority", &op.NewOwnerAuthority},
		{"extensions", &op.Extensions},
	}
}

type RecoverAccount struct {
	AccountToRecover     string           `json:"account_to_recover"`
	NewOwnerAuthority    Authority        `json:"new_owner_authority"`
	RecentOwnerAuthority Authority        `json:"recent_owner_authority"`
	Extensions           FutureExtensions `json:"extensions"`
}

func (op *RecoverAccount) Tag() TagType { return RecoverAccountTag }

func (op *RecoverAccount) layout() []field {
	return []field{
		{"account_to_recover", &op.AccountToRecover},
		{"new_owner_authority", &op.NewOwnerAuthority},
		{"recent_owner_authority", &op.RecentOwnerAuthority},
		{"extensions", &op.Extensions},
	}
}

type ChangeRecoveryAccount struct {
	AccountToRecover   string           `json:"account_to_recover"`
	NewRecoveryAccount string           `json:"new_recovery_account"`
	Extensions         FutureExtensions `json:"extensions"`
}

func (op *ChangeRecoveryAccount) Tag() TagType { return ChangeRecoveryAccountTag }

func (op *ChangeRecoveryAccount) layout() []field {
	return []field{
		{"account_to_recover", &op.AccountToRecover},
		{"new_recovery_account", &op.NewRecoveryAccount},
		{"extensions", &op.Extensions},
	}
}

type EscrowTransfer struct {
	From                 string          `json:"from"`
	To                   string          `json:"to"`
	SBDAmount            currency.Amount `json:"sbd_amount"`
	SteemAmount          currency.Amount `json:"steem_amount"`
	EscrowID             uint32          `json:"escrow_id"`
	Agent                string          `json:"agent"`
	Fee                  currency.Amount `json:"fee"`
	JSONMeta             string          `json:"json_meta"`
	RatificationDeadline PointInTime     `json:"ratification_deadline"`
	EscrowExpiration     PointInTime     `json:"escrow_expiration"`
}

func (op *EscrowTransfer) Tag() TagType { return EscrowTransferTag }

func (op *EscrowTransfer) layout() []field {
	return []field{
		{"from", &op.From},
		{"to", &op.To},
		{"sbd_amount", &op.SBDAmount},
		{"steem_amount", &op.SteemAmount},
		{"escrow_id", &op.EscrowID},
		{"agent", &op.Agent},
		{"fee", &op.Fee},
		{"json_meta", &op.JSONMeta},
		{"ratification_deadline", &op.RatificationDeadline},
		{"escrow_expiration", &op.EscrowExpiration},
	}
}

type EscrowDispute struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Agent    string `json:"agent"`
	Who      string `json:"who"`
	EscrowID uint32 `json:"escrow_id"`
}

func (op *EscrowDispute) Tag() TagType { return EscrowDisputeTag }

func (op *EscrowDispute) layout() []field {
	return []field{
		{"from", &op.From},
		{"to", &op.To},
		{"agent", &op.Agent},
		{"who", &op.Who},
		{"escrow_id", &op.EscrowID},
	}
}

type EscrowRelease struct {
	From        string          `json:"from"`
	To          string          `json:"to"`
	Agent       string          `json:"agent"`
	Who         string          `json:"who"`
	Receiver    string          `json:"receiver"`
	EscrowID    uint32          `json:"escrow_id"`
	SBDAmount   currency.Amount `json:"sbd_amount"`
	SteemAmount currency.Amount `json:"steem_amount"`
}

func (op *EscrowRelease) Tag() TagType { return EscrowReleaseTag }

func (op *EscrowRelease) layout() []field {
	return []field{
		{"from", &op.From},
		{"to", &op.To},
		{"agent", &op.Agent},
		{"who", &op.Who},
		{"receiver", &op.Receiver},
		{"escrow_id", &op.EscrowID},
		{"sbd_amount", &op.SBDAmount},
		{"steem_amount", &op.SteemAmount},
	}
}

type EscrowApprove struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Agent    string `json:"agent"`
	Who      string `json:"who"`
	EscrowID uint32 `json:"escrow_id"`
	Approve  bool   `json:"approve"`
}

func (op *EscrowApprove) Tag() TagType { return EscrowApproveTag }

func (op *EscrowApprove) layout() []field {
	return []field{
		{"from", &op.From},
		{"to", &op.To},
		{"agent", &op.Agent},
		{"who", &op.Who},
		{"escrow_id", &op.EscrowID},
		{"approve", &op.Approve},
	}
}

type TransferToSavings struct {
	From   string          `json:"from"`
	To     string          `json:"to"`
	Amount currency.Amount `json:"amount"`
	Memo   string          `json:"memo"`
}

func (op *TransferToSavings) Tag() TagType { return TransferToSavingsTag }

func (op *TransferToSavings) layout() []field {
	return []field{
		{"from", &op.From},
		{"to", &op.To},
		{"amount", &op.Amount},
		{"memo", &op.Memo},
	}
}

type TransferFromSavings struct {
	From      string          `json:"from"`
	RequestID uint32          `json:"request_id"`
	To        string          `json:"to"`
	Amount    currency.Amount `json:"amount"`
	Memo      string          `json:"memo"`
}

func (op *TransferFromSavings) Tag() TagType { return TransferFromSavingsTag }

func (op *TransferFromSavings) layout() []field {
	return []field{
		{"from", &op.From},
		{"request_id", &op.RequestID},
		{"to", &op.To},
		{"amount", &op.Amount},
		{"memo", &op.Memo},
	}
}

type CancelTransferFromSavings struct {
	From      string `json:"from"`
	RequestID uint32 `json:"request_id"`
}

func (op *CancelTransferFromSavings) Tag() TagType { return CancelTransferFromSavingsTag }

func (op *CancelTransferFromSavings) layout() []field {
	return []field{
		{"from", &op.From},
		{"request_id", &op.RequestID},
	}
}

type CustomBinary struct {
	RequiredOwnerAuths   AccountNames `json:"required_owner_auths"`
	RequiredActiveAuths  AccountNames `json:"required_active_auths"`
	RequiredPostingAuths AccountNames `json:"required_posting_auths"`
	RequiredAuths        []Authority  `json:"required_auths"`
	ID                   string       `json:"id"`
	Data                 HexBytes     `json:"data"`
}

func (op *CustomBinary) Tag() TagType { return CustomBinaryTag }

func (op *CustomBinary) layout() []field {
	return []field{
		{"required_owner_auths", &op.RequiredOwnerAuths},
		{"required_active_auths", &op.RequiredActiveAuths},
		{"required_posting_auths", &op.RequiredPostingAuths},
		{"required_auths", &op.RequiredAuths},
		{"id", &op.ID},
		{"data", &op.Data},
	}
}

type DeclineVotingRights struct {
	Account string `json:"account"`
	Decline bool   `json:"decline"`
}

func (op *DeclineVotingRights) Tag() TagType { return DeclineVotingRightsTag }

func (op *DeclineVotingRights) layout() []field {
	return []field{
		{"account", &op.Account},
		{"decline", &op.Decline},
	}
}

type ResetAccount struct {
	ResetAccount      string    `json:"reset_account"`
	AccountToReset    string    `json:"account_to_reset"`
	NewOwnerAuthority Authority `json:"new_owner_authority"`
}

func (op *ResetAccount) Tag() TagType { return ResetAccountTag }

func (op *ResetAccount) layout() []field {
	return []field{
		{"reset_account", &op.ResetAccount},
		{"account_to_reset", &op.AccountToReset},
		{"new_owner_authority", &op.NewOwnerAuthority},
	}
}

type SetResetAccount struct {
	Account             string `json:"account"`
	CurrentResetAccount string `json:"current_reset_account"`
	ResetAccount        string `json:"reset_account"`
}

func (op *SetResetAccount) Tag() TagType { return SetResetAccountTag }

func (op *SetResetAccount) layout() []field {
	return []field{
		{"account", &op.Account},
		{"current_reset_account", &op.CurrentResetAccount},
		{"reset_account", &op.ResetAccount},
	}
}

// ClaimRewardBalance - move pending rewards into the balances
type ClaimRewardBalance struct {
	Account     string          `json:"account"`
	RewardSteem currency.Amount `json:"reward_steem"`
	RewardSBD   currency.Amount `json:"reward_sbd"`
	RewardVests currency.Amount `json:"reward_vests"`
}

func (op *ClaimRewardBalance) Tag() TagType { return ClaimRewardBalanceTag }

func (op *ClaimRewardBalance) layout() []field {
	return []field{
		{"account", &op.Account},
		{"reward_steem", &op.RewardSteem},
		{"reward_sbd", &op.RewardSBD},
		{"reward_vests", &op.RewardVests},
	}
}

type AccountCreateWithDelegation struct {
	Fee            currency.Amount    `json:"fee"`
	Delegation     currency.Amount    `json:"delegation"`
	Creator        string             `json:"creator"`
	NewAccountName string             `json:"new_account_name"`
	Owner          Authority          `json:"owner"`
	Active         Authority          `json:"active"`
	Posting        Authority          `json:"posting"`
	MemoKey        *account.PublicKey `json:"memo_key"`
	JSONMetadata   string             `json:"json_metadata"`
	Extensions     FutureExtensions   `json:"extensions"`
}

func (op *AccountCreateWithDelegation) Tag() TagType { return AccountCreateWithDelegationTag }

func (op *AccountCreateWithDelegation) layout() []field {
	return []field{
		{"fee", &op.Fee},
		{"delegation", &op.Delegation},
		{"creator", &op.Creator},
		{"new_account_name", &op.NewAccountName},
		{"owner", &op.Owner},
		{"active", &op.Active},
		{"posting", &op.Posting},
		{"memo_key", &op.MemoKey},
		{"json_metadata", &op.JSONMetadata},
		{"extensions", &op.Extensions},
	}
}

type DelegateVestingShares struct {
	Delegator     string          `json:"delegator"`
	Delegatee     string          `json:"delegatee"`
	VestingShares currency.Amount `json:"vesting_shares"`
}

func (op *DelegateVestingShares) Tag() TagType { return DelegateVestingSharesTag }

func (op *DelegateVestingShares) layout() []field {
	return []field{
		{"delegator", &op.Delegator},
		{"delegatee", &op.Delegatee},
		{"vesting_shares", &op.VestingShares},
	}
}

type WitnessSetProperties struct {
	Owner      string            `json:"owner"`
	Props      WitnessProperties `json:"props"`
	Extensions FutureExtensions  `json:"extensions"`
}

func (op *WitnessSetProperties) Tag() TagType { return WitnessSetPropertiesTag }

func (op *WitnessSetProperties) layout() []field {
	return []field{
		{"owner", &op.Owner},
		{"props", &op.Props},
		{"extensions", &op.Extensions},
	}
}

type AccountUpdate2 struct {
	Account             string            `json:"account"`
	Owner               *Authority        `json:"owner,omitempty"`
	Active              *Authority        `json:"active,omitempty"`
	Posting             *Authority        `json:"posting,omitempty"`
	MemoKey             OptionalPublicKey `json:"memo_key"`
	JSONMetadata        string            `json:"json_metadata"`
	PostingJSONMetadata string            `json:"posting_json_metadata"`
	Extensions          FutureExtensions  `json:"extensions"`
}

func (op *AccountUpdate2) Tag() TagType { return AccountUpdate2Tag }

func (op *AccountUpdate2) layout() []field {
	return []field{
		{"account", &op.Account},
		{"owner", &op.Owner},
		{"active", &op.Active},
		{"posting", &op.Posting},
		{"memo_key", &op.MemoKey},
		{"json_metadata", &op.JSONMetadata},
		{"posting_json_metadata", &op.PostingJSONMetadata},
		{"extensions", &op.Extensions},
	}
}

// CreateProposal - worker proposal paid from the treasury
type CreateProposal struct {
	Creator    string           `json:"creator"`
	Receiver   string           `json:"receiver"`
	StartDate  PointInTime      `json:"start_date"`
	EndDate    PointInTime      `json:"end_date"`
	DailyPay   currency.Amount  `json:"daily_pay"`
	Subject    string           `json:"subject"`
	Permlink   string           `json:"permlink"`
	Extensions FutureExtensions `json:"extensions"`
}

func (op *CreateProposal) Tag() TagType { return CreateProposalTag }

func (op *CreateProposal) layout() []field {
	return []field{
		{"creator", &op.Creator},
		{"receiver", &op.Receiver},
		{"start_date", &op.StartDate},
		{"end_date", &op.EndDate},
		{"daily_pay", &op.DailyPay},
		{"subject", &op.Subject},
		{"permlink", &op.Permlink},
		{"extensions", &op.Extensions},
	}
}

type UpdateProposalVotes struct {
	Voter       string           `json:"voter"`
	ProposalIDs []int64          `json:"proposal_ids"`
	Approve     bool             `json:"approve"`
	Extensions  FutureExtensions `json:"extensions"`
}

func (op *UpdateProposalVotes) Tag() TagType { return UpdateProposalVotesTag }

func (op *UpdateProposalVotes) layout() []field {
	return []field{
		{"voter", &op.Voter},
		{"proposal_ids", &op.ProposalIDs},
		{"approve", &op.Approve},
		{"extensions", &op.Extensions},
	}
}

type RemoveProposal struct {
	ProposalOwner string           `json:"proposal_owner"`
	ProposalIDs   []int64          `json:"proposal_ids"`
	Extensions    FutureExtensions `json:"extensions"`
}

func (op *RemoveProposal) Tag() TagType { return RemoveProposalTag }

func (op *RemoveProposal) layout() []field {
	return []field{
		{"proposal_owner", &op.ProposalOwner},
		{"proposal_ids", &op.ProposalIDs},
		{"extensions", &op.Extensions},
	}
}
