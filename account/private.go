// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/sha256"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/pkg/errors"

	"github.com/bitmark-inc/steemtx/fault"
	"github.com/bitmark-inc/steemtx/util"
)

// wallet import format parameters
const (
	wifVersion        = 0x80
	wifCompressedFlag = 0x01
	privateKeyLength  = 32

	// 27 + 4 marks a compact signature for a compressed key
	compactHeader = 27 + 4
)

// PrivateKey - a secp256k1 signing key
type PrivateKey struct {
	key *secp256k1.PrivateKey
}

// PrivateKeyFromBytes - 32 byte big-endian secret
func PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if privateKeyLength != len(b) {
		return nil, fault.ErrInvalidKeyLength
	}

	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(b); overflow || scalar.IsZero() {
		return nil, fault.ErrInvalidKeyLength
	}

	return &PrivateKey{
		key: secp256k1.NewPrivateKey(&scalar),
	}, nil
}

// PrivateKeyFromWIF - decode a wallet import format string
//
// a trailing compression flag byte is accepted and ignored since the
// chain always uses compressed public keys
func PrivateKeyFromWIF(wif string) (*PrivateKey, error) {
	decoded := util.FromBase58(wif)
	n := len(decoded)
	if n != 1+privateKeyLength+checksumLength && n != 2+privateKeyLength+checksumLength {
		return nil, errors.Wrapf(fault.ErrInvalidWIF, "length: %d", n)
	}

	checksumStart := n - checksumLength
	checksum := doubleSHA256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return nil, errors.Wrap(fault.ErrInvalidWIF, "checksum mismatch")
	}
	if wifVersion != decoded[0] {
		return nil, errors.Wrapf(fault.ErrInvalidWIF, "version: 0x%02x", decoded[0])
	}
	if checksumStart == 2+privateKeyLength && wifCompressedFlag != decoded[1+privateKeyLength] {
		return nil, errors.Wrap(fault.ErrInvalidWIF, "bad compression flag")
	}

	return PrivateKeyFromBytes(decoded[1 : 1+privateKeyLength])
}

// WIF - wallet import format string
func (k *PrivateKey) WIF() string {
	b := make([]byte, 0, 1+privateKeyLength+checksumLength)
	b = append(b, wifVersion)
	b = append(b, k.key.Serialize()...)
	checksum := doubleSHA256(b)
	b = append(b, checksum[:checksumLength]...)
	return util.ToBase58(b)
}

// String - never shows the secret
func (k *PrivateKey) String() string {
	return "<private key>"
}

// GoString - never shows the secret
func (k *PrivateKey) GoString() string {
	return "<private key>"
}

// PublicKey - matching public key shown with prefix
func (k *PrivateKey) PublicKey(prefix string) *PublicKey {
	return NewPublicKey(prefix, k.key.PubKey())
}

// SignCompact - one recoverable signature of a 32 byte hash
//
// attempt selects the RFC6979 nonce so successive attempts produce
// different signatures, S is always in the lower half of the order
func (k *PrivateKey) SignCompact(hash []byte, attempt uint32) (Signature, error) {
	if sha256.Size != len(hash) {
		return nil, errors.Wrapf(fault.ErrInvalidSignature, "hash length: %d", len(hash))
	}

	secret := k.key.Serialize()
	defer zero(secret)

	var e secp256k1.ModNScalar
	e.SetByteSlice(hash)

	// r or s of zero is vanishingly rare, move to the next nonce
	for extra := uint32(0); extra < 16; extra += 1 {
		nonce := secp256k1.NonceRFC6979(secret, hash, nil, nil, attempt+extra)

		var point secp256k1.JacobianPoint
		secp256k1.ScalarBaseMultNonConst(nonce, &point)
		point.ToAffine()

		var r secp256k1.ModNScalar
		overflow := r.SetBytes(point.X.Bytes())
		if r.IsZero() {
			nonce.Zero()
			continue
		}

		recovery := byte(0)
		if point.Y.IsOdd() {
			recovery |= 1
		}
		if 0 != overflow {
			recovery |= 2
		}

		inverse := new(secp256k1.ModNScalar).InverseValNonConst(nonce)
		nonce.Zero()
		s := new(secp256k1.ModNScalar).Mul2(&k.key.Key, &r).Add(&e).Mul(inverse)
		if s.IsZero() {
			continue
		}
		if s.IsOverHalfOrder() {
			s.Negate()
			recovery ^= 1
		}

		signature := make(Signature, SignatureLength)
		signature[0] = compactHeader + recovery
		r.PutBytesUnchecked(signature[1:33])
		s.PutBytesUnchecked(signature[33:65])
		return signature, nil
	}
	return nil, fault.ErrInvalidSignature
}

func doubleSHA256(b []byte) [sha256.Size]byte {
	h := sha256.Sum256(b)
	return sha256.Sum256(h[:])
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
