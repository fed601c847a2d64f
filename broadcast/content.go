// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package broadcast

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/steemtx/builder"
	"github.com/bitmark-inc/steemtx/currency"
	"github.com/bitmark-inc/steemtx/fault"
	"github.com/bitmark-inc/steemtx/transactionrecord"
	"github.com/bitmark-inc/steemtx/version"
)

// AppName - default "app" entry of comment metadata
const AppName = version.AgentID

// payout limit when none is given: 1000000.000 SBD
var defaultMaxAcceptedPayout = currency.NewAmount(1000000000, currency.SBD)

var permlinkInvalid = regexp.MustCompile(`[^a-z0-9\-]+`)

// CommentParams - a post or reply with its payout options
type CommentParams struct {
	ParentAuthor   string // empty for a top level post
	ParentPermlink string // empty selects the first tag
	Author         string
	Permlink       string // empty is derived from the title
	Title          string
	Body           string
	Metadata       map[string]interface{}

	MaxAcceptedPayout      *currency.Amount // nil is 1000000.000 SBD
	PercentSteemDollars    *uint16          // nil is 10000
	DeclineVotes           bool
	DeclineCurationRewards bool
	Beneficiaries          []transactionrecord.Beneficiary
	AuthorVoteWeight       int16 // non-zero adds a self vote
}

// CommentOperations - the comment, its options and an optional self vote
func CommentOperations(params CommentParams) (transactionrecord.Operations, error) {
	metadata := make(map[string]interface{}, len(params.Metadata)+1)
	for k, v := range params.Metadata {
		metadata[k] = v
	}
	if _, ok := metadata["app"]; !ok {
		metadata["app"] = AppName
	}

	parentPermlink := params.ParentPermlink
	if "" == parentPermlink {
		if tags, ok := metadata["tags"].([]string); ok && len(tags) > 0 {
			parentPermlink = tags[0]
		} else if tags, ok := metadata["tags"].([]interface{}); ok && len(tags) > 0 {
			parentPermlink, _ = tags[0].(string)
		}
	}

	permlink := params.Permlink
	if "" == permlink && "" != params.Title {
		permlink = strings.Trim(permlinkInvalid.ReplaceAllString(strings.ToLower(params.Title), "-"), "-")
	}

	switch {
	case "" == params.Author:
		return nil, errors.Wrap(fault.ErrInvalidOperation, "comment: missing: author")
	case "" == params.Body:
		return nil, errors.Wrap(fault.ErrInvalidOperation, "comment: missing: body")
	case "" == permlink:
		return nil, errors.Wrap(fault.ErrInvalidOperation, "comment: missing: permlink")
	case "" == parentPermlink:
		return nil, errors.Wrap(fault.ErrInvalidOperation, "comment: missing: parent_permlink")
	}

	jsonMetadata, err := json.Marshal(metadata)
	if nil != err {
		return nil, errors.Wrapf(fault.ErrInvalidOperation, "comment: metadata: %s", err)
	}

	payout := defaultMaxAcceptedPayout
	if nil != params.MaxAcceptedPayout {
		payout = *params.MaxAcceptedPayout
	}
	percent := uint16(10000)
	if nil != params.PercentSteemDollars {
		percent = *params.PercentSteemDollars
	}

	ops := transactionrecord.Operations{
		&transactionrecord.Comment{
			ParentAuthor:   params.ParentAuthor,
			ParentPermlink: parentPermlink,
			Author:         params.Author,
			Permlink:       permlink,
			Title:          params.Title,
			Body:           params.Body,
			JSONMetadata:   string(jsonMetadata),
		},
		&transactionrecord.CommentOptions{
			Author:               params.Author,
			Permlink:             permlink,
			MaxAcceptedPayout:    payout,
			PercentSteemDollars:  percent,
			AllowVotes:           !params.DeclineVotes,
			AllowCurationRewards: !params.DeclineCurationRewards,
			Extensions: transactionrecord.CommentOptionsExtensions{
				Beneficiaries: params.Beneficiaries,
			},
		},
	}

	if 0 != params.AuthorVoteWeight {
		ops = append(ops, &transactionrecord.Vote{
			Voter:    params.Author,
			Author:   params.Author,
			Permlink: permlink,
			Weight:   params.AuthorVoteWeight,
		})
	}
	return ops, nil
}

// Comment - create or edit a post or reply
func Comment(ctx context.Context, log *logger.L, options Options, params CommentParams) (*builder.Receipt, error) {
	ops, err := CommentOperations(params)
	if nil != err {
		return nil, err
	}
	items := make([]interface{}, len(ops))
	for i, op := range ops {
		items[i] = op
	}
	return Operations(ctx, log, options, items...)
}

// CustomJSON - application data signed by active or posting authorities
//
// data is marshalled unless it is already a string or raw JSON
func CustomJSON(ctx context.Context, log *logger.L, options Options, id string, requiredAuths []string, requiredPostingAuths []string, data interface{}) (*builder.Receipt, error) {
	if "" == id {
		return nil, errors.Wrap(fault.ErrInvalidOperation, "custom_json: missing: id")
	}
	if 0 == len(requiredAuths) && 0 == len(requiredPostingAuths) {
		return nil, errors.Wrap(fault.ErrInvalidOperation, "custom_json: no authorities")
	}

	var text string
	switch v := data.(type) {
	case nil:
		text = "{}"
	case string:
		text = v
	case json.RawMessage:
		text = string(v)
	default:
		b, err := json.Marshal(data)
		if nil != err {
			return nil, errors.Wrapf(fault.ErrInvalidOperation, "custom_json: %s", err)
		}
		text = string(b)
	}

	return Operations(ctx, log, options, &transactionrecord.CustomJSON{
		RequiredAuths:        requiredAuths,
		RequiredPostingAuths: requiredPostingAuths,
		ID:                   id,
		JSON:                 text,
	})
}
