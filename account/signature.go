// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/pkg/errors"

	"github.com/bitmark-inc/steemtx/fault"
)

// SignatureLength - header byte, 32 byte R, 32 byte S
const SignatureLength = 65

// Signature - compact recoverable signature
type Signature []byte

// IsCanonical - true if the chain will accept the signature
//
// R and S must both be positive 32 byte values with no leading zero
// byte that could be dropped, and the last byte of R must be nonzero
// with its top bit clear
func (signature Signature) IsCanonical() bool {
	if SignatureLength != len(signature) {
		return false
	}
	s := signature
	if 0 != s[0]&0x80 || 0 == s[0] {
		return false
	}
	if 0 != s[1]&0x80 || 0 != s[33]&0x80 {
		return false
	}
	if 0 != s[32]&0x80 || 0 == s[32] {
		return false
	}
	if 0 == s[1] && 0 == s[2]&0x80 {
		return false
	}
	if 0 == s[33] && 0 == s[34]&0x80 {
		return false
	}
	return true
}

// Recover - public key that produced this signature over hash
func (signature Signature) Recover(hash []byte, prefix string) (*PublicKey, error) {
	key, _, err := ecdsa.RecoverCompact(signature, hash)
	if nil != err {
		return nil, errors.Wrap(fault.ErrInvalidSignature, err.Error())
	}
	return NewPublicKey(prefix, key), nil
}

// convert a binary signature to hex string for use by the fmt package (for %s)
func (signature Signature) String() string {
	return hex.EncodeToString(signature)
}

// convert a binary signature to hex string for use by the fmt package (for %#v)
func (signature Signature) GoString() string {
	return "<signature:" + hex.EncodeToString(signature) + ">"
}

// convert a text representation to a signature for use by the format package scan routines
func (signature *Signature) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	return signature.UnmarshalText(token)
}

// MarshalText - convert signature to hex text
func (signature Signature) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(signature))
	b := make([]byte, size)
	hex.Encode(b, signature)
	return b, nil
}

// UnmarshalText - convert hex text into a signature
func (signature *Signature) UnmarshalText(s []byte) error {
	sig := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(sig, s)
	if nil != err {
		return err
	}
	if SignatureLength != byteCount {
		return errors.Wrapf(fault.ErrInvalidSignature, "length: %d", byteCount)
	}
	*signature = sig[:byteCount]
	return nil
}
