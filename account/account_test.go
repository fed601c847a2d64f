// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/steemtx/account"
	"github.com/bitmark-inc/steemtx/fault"
	"github.com/bitmark-inc/steemtx/marshal"
)

type publicKeyTest struct {
	text   string
	prefix string
	key    string
}

var validKeys = []publicKeyTest{
	{
		text:   "STM8ZSyzjPm48GmUuMSRufkVYkwYbZzbxeMysAVp7KFQwbTf98TcG",
		prefix: "STM",
		key:    "03e38cbda85d423ba820cba3b0c3be5b44160326f6411fdc386c389fe322697dc8",
	},
	{
		text:   "TST77yiRp7pgK52V7BPgq8mEYtyi9XLHKxCH6TDgKA86inFRYgWju",
		prefix: "TST",
		key:    "03260545a135c05a8adec1ad4676d046cd1312f16f41b2fb1c01cb2276cf2536e8",
	},
	{
		text:   "STM5ctejUsoZ9FwfCaVbNvWYYgNMBo9TVsHSE8wHrqAmNJi6sDctt",
		prefix: "STM",
		key:    "02604738fa008878e9e3a4853307ad41524234dd9e3d48ff559d4b04094c42800f",
	},
}

func TestParsePublicKey(t *testing.T) {
	for i, item := range validKeys {
		pk, err := account.ParsePublicKey(item.text)
		if nil != err {
			t.Errorf("%d: ParsePublicKey(%q) error: %s", i, item.text, err)
			continue
		}
		if item.prefix != pk.Prefix {
			t.Errorf("%d: prefix: %q  expected: %q", i, pk.Prefix, item.prefix)
		}
		if k := hex.EncodeToString(pk.Key[:]); item.key != k {
			t.Errorf("%d: key: %s  expected: %s", i, k, item.key)
		}
		if s := pk.String(); item.text != s {
			t.Errorf("%d: String() -> %q  expected: %q", i, s, item.text)
		}
		if pk.IsDisabled() {
			t.Errorf("%d: key is disabled", i)
		}
		_, err = pk.Point()
		assert.Nil(t, err, "%d: not a curve point", i)
	}
}

func TestParsePublicKeyFailures(t *testing.T) {
	tests := []struct {
		text string
		err  error
	}{
		{"8ZSyzjPm48GmUuMSRufkVYkwYbZzbxeMysAVp7KFQwbTf98TcG", fault.ErrInvalidKeyPrefix},
		{"STM8ZSyzjPm48GmUuMSRufkVYkwYbZzbxeMysAVp7KFQwbTf98TcH", fault.ErrChecksumMismatch},
		{"STM8ZSyzjPm48GmUuMSRufkVYkwYbZzbxeMys", fault.ErrInvalidKeyLength},
		{"STM", fault.ErrInvalidKeyLength},
	}

	for i, item := range tests {
		_, err := account.ParsePublicKey(item.text)
		assert.ErrorIs(t, err, item.err, "%d: ParsePublicKey(%q)", i, item.text)
	}

	_, err := account.PublicKeyFromString(validKeys[0].text, "TST")
	assert.ErrorIs(t, err, fault.ErrInvalidKeyPrefix, "wrong prefix accepted")

	pk, err := account.PublicKeyFromString(validKeys[1].text, "TST")
	assert.Nil(t, err, "matching prefix")
	assert.Equal(t, "TST", pk.Prefix, "wrong prefix")
}

func TestDisabledKey(t *testing.T) {
	const disabled = "STM1111111111111111111111111111111114T1Anm"

	pk, err := account.ParsePublicKey(disabled)
	assert.Nil(t, err, "parse disabled key")
	assert.True(t, pk.IsDisabled(), "not disabled")
	assert.Equal(t, disabled, account.DisabledPublicKey("STM").String(), "wrong text")

	_, err = pk.Point()
	assert.ErrorIs(t, err, fault.ErrNotPublicKey, "disabled key is a point")

	// on the wire the disabled key is absent
	w := marshal.NewWriter()
	account.PackPublicKey(w, pk)
	account.PackPublicKey(w, nil)
	assert.Equal(t, make([]byte, 2*account.PublicKeyLength), w.Bytes(), "wrong disabled encoding")

	r := marshal.NewReader(w.Bytes())
	for i := 0; i < 2; i += 1 {
		decoded, err := account.UnpackPublicKey(r, "STM")
		assert.Nil(t, err, "%d: unpack", i)
		assert.Nil(t, decoded, "%d: disabled key decoded to an address", i)
	}
}

func TestPackUnpackPublicKey(t *testing.T) {
	pk, err := account.ParsePublicKey(validKeys[1].text)
	assert.Nil(t, err, "parse")

	w := marshal.NewWriter()
	account.PackPublicKey(w, pk)
	assert.Equal(t, validKeys[1].key, hex.EncodeToString(w.Bytes()), "wrong packed key")

	decoded, err := account.UnpackPublicKey(marshal.NewReader(w.Bytes()), "TST")
	assert.Nil(t, err, "unpack")
	assert.Equal(t, pk, decoded, "wrong key")

	_, err = account.UnpackPublicKey(marshal.NewReader(w.Bytes()[:20]), "TST")
	assert.True(t, fault.IsErrLength(err), "truncated key accepted")
}

func TestPublicKeyJSON(t *testing.T) {
	var keys []account.PublicKey
	err := json.Unmarshal([]byte(`["`+validKeys[0].text+`","`+validKeys[1].text+`"]`), &keys)
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, 2, len(keys), "wrong count")

	b, err := json.Marshal(keys)
	assert.Nil(t, err, "marshal")
	assert.Equal(t, `["`+validKeys[0].text+`","`+validKeys[1].text+`"]`, string(b), "wrong json")
}
