// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/steemtx/account"
	"github.com/bitmark-inc/steemtx/fault"
)

// Operations - ordered operation list shown as [name, {fields}] pairs
type Operations []Operation

// MarshalJSON - [["vote", {...}], ...]
func (ops Operations) MarshalJSON() ([]byte, error) {
	list := make([][2]interface{}, 0, len(ops))
	for _, op := range ops {
		if nil == op {
			return nil, errors.Wrap(fault.ErrInvalidOperation, "nil operation")
		}
		list = append(list, [2]interface{}{OperationName(op), op})
	}
	return json.Marshal(list)
}

// UnmarshalJSON - accepts [name, {fields}] pairs or
// {"type": name, "value": {fields}} objects
func (ops *Operations) UnmarshalJSON(b []byte) error {
	var list []json.RawMessage
	if err := json.Unmarshal(b, &list); nil != err {
		return errors.Wrapf(fault.ErrInvalidOperation, "operations: %s", err)
	}
	result := make(Operations, 0, len(list))
	for i, item := range list {
		op, err := OperationFromJSON(item)
		if nil != err {
			return errors.Wrapf(err, "operation[%d]", i)
		}
		result = append(result, op)
	}
	*ops = result
	return nil
}

// OperationFromJSON - decode one tagged operation
func OperationFromJSON(b []byte) (Operation, error) {
	b = bytes.TrimSpace(b)
	if 0 == len(b) {
		return nil, errors.Wrap(fault.ErrInvalidOperation, "empty")
	}

	var name string
	var fields json.RawMessage

	if '[' == b[0] {
		var pair []json.RawMessage
		if err := json.Unmarshal(b, &pair); nil != err || 2 != len(pair) {
			return nil, errors.Wrapf(fault.ErrInvalidOperation, "not a pair: %s", b)
		}
		if err := json.Unmarshal(pair[0], &name); nil != err {
			return nil, errors.Wrapf(fault.ErrInvalidOperation, "name: %s", pair[0])
		}
		fields = pair[1]
	} else {
		var tagged struct {
			Type  string          `json:"type"`
			Value json.RawMessage `json:"value"`
		}
		if err := json.Unmarshal(b, &tagged); nil != err || "" == tagged.Type {
			return nil, errors.Wrapf(fault.ErrInvalidOperation, "not a tagged object: %s", b)
		}
		name = tagged.Type
		fields = tagged.Value
	}
	return OperationFromFields(name, fields)
}

// OperationFromFields - decode the fields object of a named operation
func OperationFromFields(name string, fields []byte) (Operation, error) {
	tag, err := TagFromName(name)
	if nil != err {
		return nil, err
	}
	op, err := New(tag)
	if nil != err {
		return nil, err
	}
	if 0 != len(fields) {
		if err := json.Unmarshal(fields, op); nil != err {
			if isFault(err) {
				return nil, err
			}
			return nil, errors.Wrapf(fault.ErrInvalidOperation, "%s: %s", name, err)
		}
	}
	return op, nil
}

// MarshalJSON - ["name", weight]
func (aa AccountAuth) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{aa.Account, aa.Weight})
}

// UnmarshalJSON - ["name", weight]
func (aa *AccountAuth) UnmarshalJSON(b []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(b, &pair); nil != err || 2 != len(pair) {
		return errors.Wrapf(fault.ErrInvalidAuthority, "account auth: %s", b)
	}
	if err := json.Unmarshal(pair[0], &aa.Account); nil != err {
		return errors.Wrapf(fault.ErrInvalidAuthority, "account: %s", pair[0])
	}
	if err := json.Unmarshal(pair[1], &aa.Weight); nil != err {
		return errors.Wrapf(fault.ErrInvalidAuthority, "weight: %s", pair[1])
	}
	return nil
}

// MarshalJSON - ["STM...", weight]
func (ka KeyAuth) MarshalJSON() ([]byte, error) {
	if nil == ka.Key {
		return nil, errors.Wrap(fault.ErrInvalidAuthority, "missing key")
	}
	return json.Marshal([2]interface{}{ka.Key.String(), ka.Weight})
}

// UnmarshalJSON - ["STM...", weight]
func (ka *KeyAuth) UnmarshalJSON(b []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(b, &pair); nil != err || 2 != len(pair) {
		return errors.Wrapf(fault.ErrInvalidAuthority, "key auth: %s", b)
	}
	var s string
	if err := json.Unmarshal(pair[0], &s); nil != err {
		return errors.Wrapf(fault.ErrInvalidAuthority, "key: %s", pair[0])
	}
	key, err := account.ParsePublicKey(s)
	if nil != err {
		return err
	}
	ka.Key = key
	if err := json.Unmarshal(pair[1], &ka.Weight); nil != err {
		return errors.Wrapf(fault.ErrInvalidAuthority, "weight: %s", pair[1])
	}
	return nil
}

// MarshalJSON - key string or null
func (o OptionalPublicKey) MarshalJSON() ([]byte, error) {
	if nil == o.Key {
		return []byte("null"), nil
	}
	return json.Marshal(o.Key.String())
}

// UnmarshalJSON - key string or null
func (o *OptionalPublicKey) UnmarshalJSON(b []byte) error {
	if "null" == string(bytes.TrimSpace(b)) {
		o.Key = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); nil != err {
		return errors.Wrapf(fault.ErrNotPublicKey, "key: %s", b)
	}
	key, err := account.ParsePublicKey(s)
	if nil != err {
		return err
	}
	o.Key = key
	return nil
}

// MarshalJSON - [] or [[0, {"beneficiaries": [...]}]]
func (e CommentOptionsExtensions) MarshalJSON() ([]byte, error) {
	if 0 == len(e.Beneficiaries) {
		return []byte("[]"), nil
	}
	value := struct {
		Beneficiaries []Beneficiary `json:"beneficiaries"`
	}{
		Beneficiaries: e.Beneficiaries,
	}
	return json.Marshal([][2]interface{}{{beneficiariesExtension, value}})
}

// UnmarshalJSON - the extension tag may be a number or
// "comment_payout_beneficiaries"
func (e *CommentOptionsExtensions) UnmarshalJSON(b []byte) error {
	var list [][]json.RawMessage
	if err := json.Unmarshal(b, &list); nil != err {
		return errors.Wrapf(fault.ErrUnknownExtension, "extensions: %s", b)
	}
	e.Beneficiaries = nil
	if len(list) > 1 {
		return errors.Wrapf(fault.ErrUnknownExtension, "duplicate extension: %s", b)
	}
	for _, item := range list {
		if 2 != len(item) {
			return errors.Wrapf(fault.ErrUnknownExtension, "extension: %s", b)
		}
		var tag int
		var name string
		if err := json.Unmarshal(item[0], &tag); nil != err {
			if err := json.Unmarshal(item[0], &name); nil != err || "comment_payout_beneficiaries" != name {
				return errors.Wrapf(fault.ErrUnknownExtension, "extension: %s", item[0])
			}
			tag = beneficiariesExtension
		}
		if beneficiariesExtension != tag {
			return errors.Wrapf(fault.ErrUnknownExtension, "extension: %d", tag)
		}
		var value struct {
			Beneficiaries []Beneficiary `json:"beneficiaries"`
		}
		if err := json.Unmarshal(item[1], &value); nil != err {
			return errors.Wrapf(fault.ErrUnknownExtension, "beneficiaries: %s", item[1])
		}
		if 0 == len(value.Beneficiaries) {
			return errors.Wrapf(fault.ErrUnknownExtension, "empty beneficiaries: %s", item[1])
		}
		e.Beneficiaries = value.Beneficiaries
	}
	return nil
}

// MarshalJSON - ["key", "hex"]
func (p WitnessProperty) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{p.Key, p.Value})
}

// UnmarshalJSON - ["key", "hex"]
func (p *WitnessProperty) UnmarshalJSON(b []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(b, &pair); nil != err || 2 != len(pair) {
		return errors.Wrapf(fault.ErrInvalidOperation, "witness property: %s", b)
	}
	if err := json.Unmarshal(pair[0], &p.Key); nil != err {
		return errors.Wrapf(fault.ErrInvalidOperation, "witness property key: %s", pair[0])
	}
	return json.Unmarshal(pair[1], &p.Value)
}

// MarshalJSON - always []
func (FutureExtensions) MarshalJSON() ([]byte, error) {
	return []byte("[]"), nil
}

// UnmarshalJSON - only an empty list or null is accepted
func (*FutureExtensions) UnmarshalJSON(b []byte) error {
	var list []json.RawMessage
	if err := json.Unmarshal(b, &list); nil != err {
		return errors.Wrapf(fault.ErrExtensionsNotEmpty, "extensions: %s", b)
	}
	if 0 != len(list) {
		return errors.Wrapf(fault.ErrExtensionsNotEmpty, "extensions: %s", b)
	}
	return nil
}

// errors from the value decoders already carry their class
func isFault(err error) bool {
	return fault.IsErrInvalid(err) || fault.IsErrLength(err) || fault.IsErrNotFound(err) || fault.IsErrProcess(err)
}

// MarshalJSON - nil lists are shown as []
func (a Authority) MarshalJSON() ([]byte, error) {
	type plain Authority
	p := plain(a)
	if nil == p.AccountAuths {
		p.AccountAuths = []AccountAuth{}
	}
	if nil == p.KeyAuths {
		p.KeyAuths = []KeyAuth{}
	}
	return json.Marshal(p)
}

// MarshalJSON - nil is shown as []
func (names AccountNames) MarshalJSON() ([]byte, error) {
	if nil == names {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(names))
}

// MarshalJSON - nil is shown as []
func (props WitnessProperties) MarshalJSON() ([]byte, error) {
	if nil == props {
		return []byte("[]"), nil
	}
	return json.Marshal([]WitnessProperty(props))
}
