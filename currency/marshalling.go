// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currency

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/steemtx/fault"
)

// object form sent by nodes that use asset identifiers
type naiAmount struct {
	Amount    string `json:"amount"`
	Precision uint8  `json:"precision"`
	NAI       string `json:"nai"`
}

// MarshalText - "1.000 STEEM"
func (amount Amount) MarshalText() ([]byte, error) {
	return []byte(amount.String()), nil
}

// UnmarshalText - "1.000 STEEM"
func (amount *Amount) UnmarshalText(s []byte) error {
	a, err := ParseAmount(string(s))
	if nil != err {
		return err
	}
	*amount = a
	return nil
}

// UnmarshalJSON - accept either the string form or the NAI object
//
// an NAI object has no chain so it resolves to the Steem assets,
// Assets.Rebind moves it to another chain
func (amount *Amount) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); nil == err {
		return amount.UnmarshalText([]byte(s))
	}

	var n naiAmount
	if err := json.Unmarshal(b, &n); nil != err {
		return errors.Wrapf(fault.ErrInvalidAmount, "json: %s", b)
	}
	a, err := SteemAssets.FromNAI(n.Amount, n.Precision, n.NAI)
	if nil != err {
		return err
	}
	*amount = a
	return nil
}
