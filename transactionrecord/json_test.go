// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/steemtx/fault"
	"github.com/bitmark-inc/steemtx/transactionrecord"
)

func TestMarshalTransactionJSON(t *testing.T) {
	tx := transactionrecord.Transaction{
		RefBlockNum:    0x1234,
		RefBlockPrefix: 0x01020304,
		Expiration:     makeTime("2018-01-01T00:00:00Z"),
		Operations: transactionrecord.Operations{
			&transactionrecord.Vote{
				Voter:    "alice",
				Author:   "bob",
				Permlink: "hello",
				Weight:   10000,
			},
		},
	}

	b, err := json.Marshal(tx)
	assert.Nil(t, err, "marshal error")

	expected := `{"ref_block_num":4660,"ref_block_prefix":16909060,"expiration":"2018-01-01T00:00:00",` +
		`"operations":[["vote",{"voter":"alice","author":"bob","permlink":"hello","weight":10000}]],` +
		`"extensions":[],"signatures":[]}`
	assert.Equal(t, expected, string(b), "wrong json")
}

func TestUnmarshalTransactionJSON(t *testing.T) {
	c := testChain(t)

	condenser := `{
  "ref_block_num": 20,
  "ref_block_prefix": 2890012981,
  "expiration": "2018-10-15T19:52:09",
  "operations": [
    ["account_create", {
      "fee": "0.000 TESTS",
      "creator": "porter",
      "new_account_name": "a2i-06e13981",
      "owner": {"weight_threshold": 1, "account_auths": [["porter", 1]], "key_auths": []},
      "active": {"weight_threshold": 1, "account_auths": [["porter", 1]], "key_auths": []},
      "posting": {"weight_threshold": 1, "account_auths": [["porter", 1]], "key_auths": []},
      "memo_key": "TST77yiRp7pgK52V7BPgq8mEYtyi9XLHKxCH6TDgKA86inFRYgWju",
      "json_metadata": ""
    }],
    ["transfer_to_vesting", {"from": "porter", "to": "a2i-06e13981", "amount": "8.204 TESTS"}]
  ],
  "extensions": [],
  "signatures": []
}`

	appbase := `{
  "ref_block_num": 20,
  "ref_block_prefix": 2890012981,
  "expiration": "2018-10-15T19:52:09Z",
  "operations": [
    {"type": "account_create_operation", "value": {
      "fee": {"amount": "0", "precision": 3, "nai": "@@000000021"},
      "creator": "porter",
      "new_account_name": "a2i-06e13981",
      "owner": {"weight_threshold": 1, "account_auths": [["porter", 1]], "key_auths": []},
      "active": {"weight_threshold": 1, "account_auths": [["porter", 1]], "key_auths": []},
      "posting": {"weight_threshold": 1, "account_auths": [["porter", 1]], "key_auths": []},
      "memo_key": "TST77yiRp7pgK52V7BPgq8mEYtyi9XLHKxCH6TDgKA86inFRYgWju",
      "json_metadata": ""
    }},
    {"type": "transfer_to_vesting_operation", "value": {
      "from": "porter",
      "to": "a2i-06e13981",
      "amount": {"amount": "8204", "precision": 3, "nai": "@@000000021"}
    }}
  ],
  "extensions": []
}`

	for _, s := range []string{condenser, appbase} {
		var tx transactionrecord.Transaction
		err := json.Unmarshal([]byte(s), &tx)
		if !assert.Nil(t, err, "unmarshal error") {
			continue
		}
		err = transactionrecord.BindTransaction(&tx, c)
		assert.Nil(t, err, "bind error")

		packed, err := tx.Pack(c)
		assert.Nil(t, err, "pack error")
		assert.Equal(t, testnetTransaction, hex.EncodeToString(packed), "wrong packed transaction")
	}
}

func TestJSONRoundTripAllOperations(t *testing.T) {
	ops := transactionrecord.Operations(allOperations(t))

	b, err := json.Marshal(ops)
	if !assert.Nil(t, err, "marshal error") {
		return
	}

	var decoded transactionrecord.Operations
	err = json.Unmarshal(b, &decoded)
	if !assert.Nil(t, err, "unmarshal error") {
		return
	}
	assert.Equal(t, "", cmp.Diff(ops, decoded, cmpopts.EquateEmpty()), "json round trip differs")
}

func TestCommentOptionsExtensionsJSON(t *testing.T) {
	e := transactionrecord.CommentOptionsExtensions{
		Beneficiaries: []transactionrecord.Beneficiary{{Account: "bob", Weight: 5000}},
	}
	b, err := json.Marshal(e)
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, `[[0,{"beneficiaries":[{"account":"bob","weight":5000}]}]]`, string(b), "wrong json")

	var named transactionrecord.CommentOptionsExtensions
	err = json.Unmarshal([]byte(`[["comment_payout_beneficiaries",{"beneficiaries":[{"account":"bob","weight":5000}]}]]`), &named)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, e, named, "wrong extensions")

	var unknown transactionrecord.CommentOptionsExtensions
	err = json.Unmarshal([]byte(`[[1,{}]]`), &unknown)
	assert.ErrorIs(t, err, fault.ErrUnknownExtension, "wrong error")

	var twice transactionrecord.CommentOptionsExtensions
	err = json.Unmarshal([]byte(`[[0,{"beneficiaries":[{"account":"bob","weight":5000}]}],[0,{"beneficiaries":[{"account":"carol","weight":2500}]}]]`), &twice)
	assert.ErrorIs(t, err, fault.ErrUnknownExtension, "duplicate extension accepted")

	var empty transactionrecord.CommentOptionsExtensions
	err = json.Unmarshal([]byte(`[[0,{"beneficiaries":[]}]]`), &empty)
	assert.ErrorIs(t, err, fault.ErrUnknownExtension, "empty beneficiaries accepted")

	b, err = json.Marshal(transactionrecord.CommentOptionsExtensions{})
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, `[]`, string(b), "wrong empty json")
}

func TestOperationFromJSONErrors(t *testing.T) {
	tests := []struct {
		json  string
		check error
	}{
		{`["pow", {}]`, fault.ErrUnknownOperation},
		{`["no_such_operation", {}]`, fault.ErrUnknownOperation},
		{`{"type": "vote"}`, nil},
		{`["vote"]`, fault.ErrInvalidOperation},
		{`42`, fault.ErrInvalidOperation},
		{`["claim_account", {"creator": "alice", "fee": "0.000 STEEM", "extensions": [[0, {}]]}]`, fault.ErrExtensionsNotEmpty},
		{`["transfer", {"amount": "1.000 NOPE"}]`, fault.ErrUnknownAsset},
	}

	for i, item := range tests {
		op, err := transactionrecord.OperationFromJSON([]byte(item.json))
		if nil == item.check {
			assert.Nil(t, err, "%d: unexpected error", i)
			assert.NotNil(t, op, "%d: missing operation", i)
			continue
		}
		assert.Nil(t, op, "%d: unexpected operation", i)
		assert.ErrorIs(t, err, item.check, "%d: wrong error", i)
	}
}

func TestMemoKeyNull(t *testing.T) {
	op := &transactionrecord.AccountUpdate2{Account: "alice"}
	b, err := json.Marshal(op)
	assert.Nil(t, err, "marshal error")
	assert.Contains(t, string(b), `"memo_key":null`, "nil key not null")
	assert.NotContains(t, string(b), `"owner"`, "absent authority shown")
}
