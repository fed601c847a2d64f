// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package builder

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/steemtx/fault"
	"github.com/bitmark-inc/steemtx/transactionrecord"
)

// turn any accepted call shape into an operation
func normalise(items ...interface{}) (transactionrecord.Operation, error) {
	switch len(items) {
	case 1:
		return normaliseOne(items[0])
	case 2:
		name, ok := items[0].(string)
		if !ok {
			return nil, errors.Wrapf(fault.ErrInvalidOperation, "name: %T is not a string", items[0])
		}
		return fromNameAndFields(name, items[1])
	default:
		return nil, errors.Wrapf(fault.ErrInvalidOperation, "%d arguments", len(items))
	}
}

func normaliseOne(item interface{}) (transactionrecord.Operation, error) {
	switch v := item.(type) {

	case transactionrecord.Operation:
		return v, nil

	case json.RawMessage:
		return transactionrecord.OperationFromJSON(v)

	case []byte:
		return transactionrecord.OperationFromJSON(v)

	case [2]interface{}:
		return normalise(v[0], v[1])

	case []interface{}:
		if 2 != len(v) {
			return nil, errors.Wrapf(fault.ErrInvalidOperation, "pair of %d items", len(v))
		}
		return normalise(v[0], v[1])

	case map[string]interface{}:
		if 1 != len(v) {
			return nil, errors.Wrapf(fault.ErrInvalidOperation, "map of %d items", len(v))
		}
		for name, fields := range v {
			return fromNameAndFields(name, fields)
		}
	}
	return nil, errors.Wrapf(fault.ErrInvalidOperation, "cannot use: %T", item)
}

// fields go through their JSON form
func fromNameAndFields(name string, fields interface{}) (transactionrecord.Operation, error) {
	var raw []byte
	switch v := fields.(type) {
	case json.RawMessage:
		raw = v
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		b, err := json.Marshal(fields)
		if nil != err {
			return nil, errors.Wrapf(fault.ErrInvalidOperation, "%s: %s", name, err)
		}
		raw = b
	}
	return transactionrecord.OperationFromFields(name, raw)
}
