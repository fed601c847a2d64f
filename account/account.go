// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/pkg/errors"
	"golang.org/x/crypto/ripemd160"

	"github.com/bitmark-inc/steemtx/fault"
	"github.com/bitmark-inc/steemtx/marshal"
	"github.com/bitmark-inc/steemtx/util"
)

// miscellaneous constants
const (
	PublicKeyLength = 33
	checksumLength  = 4
)

// PublicKey - compressed secp256k1 point and the prefix used to show it
type PublicKey struct {
	Prefix string
	Key    [PublicKeyLength]byte
}

// NewPublicKey - wrap a curve point
func NewPublicKey(prefix string, key *secp256k1.PublicKey) *PublicKey {
	pk := &PublicKey{
		Prefix: prefix,
	}
	copy(pk.Key[:], key.SerializeCompressed())
	return pk
}

// DisabledPublicKey - the all zero key that no private key matches
func DisabledPublicKey(prefix string) *PublicKey {
	return &PublicKey{
		Prefix: prefix,
	}
}

// IsDisabled - true for the all zero key
func (key *PublicKey) IsDisabled() bool {
	var zero [PublicKeyLength]byte
	return key.Key == zero
}

// ParsePublicKey - decode "<PREFIX><base58>" with any prefix
//
// the prefix is the leading run of letters, a key body always starts
// with a digit
func ParsePublicKey(s string) (*PublicKey, error) {
	i := 0
	for i < len(s) && (s[i] >= 'A' && s[i] <= 'Z' || s[i] >= 'a' && s[i] <= 'z') {
		i += 1
	}
	if 0 == i {
		return nil, errors.Wrapf(fault.ErrInvalidKeyPrefix, "key: %q", s)
	}

	decoded := util.FromBase58(s[i:])
	if PublicKeyLength+checksumLength != len(decoded) {
		return nil, errors.Wrapf(fault.ErrInvalidKeyLength, "key: %q", s)
	}

	checksumStart := len(decoded) - checksumLength
	checksum := keyChecksum(decoded[:checksumStart])
	if !bytes.Equal(checksum, decoded[checksumStart:]) {
		return nil, errors.Wrapf(fault.ErrChecksumMismatch, "key: %q", s)
	}

	pk := &PublicKey{
		Prefix: s[:i],
	}
	copy(pk.Key[:], decoded[:checksumStart])
	return pk, nil
}

// PublicKeyFromString - decode and require a specific prefix
func PublicKeyFromString(s string, prefix string) (*PublicKey, error) {
	pk, err := ParsePublicKey(s)
	if nil != err {
		return nil, err
	}
	if prefix != pk.Prefix {
		return nil, errors.Wrapf(fault.ErrInvalidKeyPrefix, "key: %q expected prefix: %s", s, prefix)
	}
	return pk, nil
}

// String - "<PREFIX><base58>"
func (key PublicKey) String() string {
	b := make([]byte, 0, PublicKeyLength+checksumLength)
	b = append(b, key.Key[:]...)
	b = append(b, keyChecksum(key.Key[:])...)
	return key.Prefix + util.ToBase58(b)
}

// GoString - for debugging
func (key PublicKey) GoString() string {
	return fmt.Sprintf("<PublicKey:%s>", key.String())
}

// MarshalText - base58 form
func (key PublicKey) MarshalText() ([]byte, error) {
	return []byte(key.String()), nil
}

// UnmarshalText - base58 form
func (key *PublicKey) UnmarshalText(s []byte) error {
	pk, err := ParsePublicKey(string(s))
	if nil != err {
		return err
	}
	*key = *pk
	return nil
}

// Point - the curve point, fails for the disabled key
func (key *PublicKey) Point() (*secp256k1.PublicKey, error) {
	p, err := secp256k1.ParsePubKey(key.Key[:])
	if nil != err {
		return nil, errors.Wrapf(fault.ErrNotPublicKey, "key: %s", key)
	}
	return p, nil
}

// PackPublicKey - append 33 bytes, nil writes the disabled key
func PackPublicKey(w *marshal.Writer, key *PublicKey) {
	if nil == key {
		w.WriteBytes(make([]byte, PublicKeyLength))
		return
	}
	w.WriteBytes(key.Key[:])
}

// UnpackPublicKey - read 33 bytes, the disabled key gives nil
func UnpackPublicKey(r *marshal.Reader, prefix string) (*PublicKey, error) {
	b, err := r.ReadBytes(PublicKeyLength)
	if nil != err {
		return nil, err
	}
	pk := &PublicKey{
		Prefix: prefix,
	}
	copy(pk.Key[:], b)
	if pk.IsDisabled() {
		return nil, nil
	}
	return pk, nil
}

func keyChecksum(key []byte) []byte {
	h := ripemd160.New()
	h.Write(key)
	return h.Sum(nil)[:checksumLength]
}
