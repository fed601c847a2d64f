// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/hex"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/steemtx/account"
	"github.com/bitmark-inc/steemtx/currency"
	"github.com/bitmark-inc/steemtx/fault"
	"github.com/bitmark-inc/steemtx/marshal"
)

// time format used in JSON, always UTC
const timeFormat = "2006-01-02T15:04:05"

// PointInTime - second resolution UTC time
type PointInTime struct {
	time.Time
}

// NewPointInTime - truncate to whole seconds in UTC
func NewPointInTime(t time.Time) PointInTime {
	return PointInTime{Time: time.Unix(t.Unix(), 0).UTC()}
}

// MaximumTime - the 0xffffffff point in time
var MaximumTime = PointInTime{Time: marshal.MaximumTime}

// MarshalText - "2006-01-02T15:04:05"
func (p PointInTime) MarshalText() ([]byte, error) {
	return []byte(p.UTC().Format(timeFormat)), nil
}

// UnmarshalText - accepts an optional trailing "Z"
func (p *PointInTime) UnmarshalText(s []byte) error {
	t, err := time.Parse(timeFormat, strings.TrimSuffix(string(s), "Z"))
	if nil != err {
		return errors.Wrapf(fault.ErrInvalidTime, "time: %q", s)
	}
	*p = NewPointInTime(t)
	return nil
}

// MarshalJSON - quoted text form, shadows time.Time
func (p PointInTime) MarshalJSON() ([]byte, error) {
	b, _ := p.MarshalText()
	return []byte(`"` + string(b) + `"`), nil
}

// UnmarshalJSON - quoted text form, shadows time.Time
func (p *PointInTime) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || '"' != s[0] || '"' != s[len(s)-1] {
		return errors.Wrapf(fault.ErrInvalidTime, "time: %s", s)
	}
	return p.UnmarshalText([]byte(s[1 : len(s)-1]))
}

// HexBytes - raw bytes shown as hex
type HexBytes []byte

// MarshalText - hex
func (h HexBytes) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToString(h)), nil
}

// UnmarshalText - hex
func (h *HexBytes) UnmarshalText(s []byte) error {
	b, err := hex.DecodeString(string(s))
	if nil != err {
		return err
	}
	*h = b
	return nil
}

// AccountNames - a set of account names
type AccountNames []string

// Price - exchange rate between two assets
type Price struct {
	Base  currency.Amount `json:"base"`
	Quote currency.Amount `json:"quote"`
}

// AccountAuth - an account and its weight in an authority
type AccountAuth struct {
	Account string
	Weight  uint16
}

// KeyAuth - a key and its weight in an authority
type KeyAuth struct {
	Key    *account.PublicKey
	Weight uint16
}

// Authority - weighted threshold over accounts and keys
//
// list order is kept as given, nodes hold these as maps sorted by
// account name and key
type Authority struct {
	WeightThreshold uint32        `json:"weight_threshold"`
	AccountAuths    []AccountAuth `json:"account_auths"`
	KeyAuths        []KeyAuth     `json:"key_auths"`
}

// Validate - keys present and no duplicate entries
func (a *Authority) Validate() error {
	accounts := make(map[string]struct{}, len(a.AccountAuths))
	for _, aa := range a.AccountAuths {
		if "" == aa.Account {
			return errors.Wrap(fault.ErrInvalidAuthority, "empty account name")
		}
		if _, ok := accounts[aa.Account]; ok {
			return errors.Wrapf(fault.ErrInvalidAuthority, "duplicate account: %q", aa.Account)
		}
		accounts[aa.Account] = struct{}{}
	}
	keys := make(map[[account.PublicKeyLength]byte]struct{}, len(a.KeyAuths))
	for _, ka := range a.KeyAuths {
		if nil == ka.Key {
			return errors.Wrap(fault.ErrInvalidAuthority, "missing key")
		}
		if _, ok := keys[ka.Key.Key]; ok {
			return errors.Wrapf(fault.ErrInvalidAuthority, "duplicate key: %s", ka.Key)
		}
		keys[ka.Key.Key] = struct{}{}
	}
	return nil
}

// OptionalPublicKey - a key that may be left out
type OptionalPublicKey struct {
	Key *account.PublicKey
}

// Beneficiary - share of comment rewards
type Beneficiary struct {
	Account string `json:"account"`
	Weight  uint16 `json:"weight"`
}

// CommentOptionsExtensions - comment options extension list
//
// the only extension is the beneficiary list, nil means none
type CommentOptionsExtensions struct {
	Beneficiaries []Beneficiary
}

// tag of the beneficiaries extension
const beneficiariesExtension = 0

// ChainProperties - witness voted chain parameters
type ChainProperties struct {
	AccountCreationFee currency.Amount `json:"account_creation_fee"`
	MaximumBlockSize   uint32          `json:"maximum_block_size"`
	SBDInterestRate    uint16          `json:"sbd_interest_rate"`
}

// WitnessProperty - one key and its packed value
type WitnessProperty struct {
	Key   string
	Value HexBytes
}

// WitnessProperties - ordered witness property map
type WitnessProperties []WitnessProperty

// FutureExtensions - reserved extension list, always empty
type FutureExtensions struct{}
