// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/steemtx/account"
	"github.com/bitmark-inc/steemtx/chain"
	"github.com/bitmark-inc/steemtx/fault"
	"github.com/bitmark-inc/steemtx/marshal"
)

// IDLength - bytes of the SHA-256 digest kept as the transaction id
const IDLength = 20

// Packed - packed records are just a byte slice
type Packed []byte

// Signatures - signature list that is never shown as null
type Signatures []account.Signature

// MarshalJSON - list of hex strings
func (s Signatures) MarshalJSON() ([]byte, error) {
	if nil == s {
		return []byte("[]"), nil
	}
	return json.Marshal([]account.Signature(s))
}

// Transaction - the unpacked transaction structure
type Transaction struct {
	RefBlockNum    uint16           `json:"ref_block_num"`    // low 16 bits of the reference block number
	RefBlockPrefix uint32           `json:"ref_block_prefix"` // from the reference block id
	Expiration     PointInTime      `json:"expiration"`       // UTC
	Operations     Operations       `json:"operations"`       // at least one to be accepted
	Extensions     FutureExtensions `json:"extensions"`       // always empty
	Signatures     Signatures       `json:"signatures"`       // hex
}

// PackUnsigned - the bytes that are hashed
//
// this is everything up to, but not including, the signature count
func (tx *Transaction) PackUnsigned(c *chain.Context) (Packed, error) {
	if nil == c {
		return nil, errors.Wrap(fault.ErrMissingCollaborator, "chain context")
	}

	w := marshal.NewWriter()
	w.WriteUint16(tx.RefBlockNum)
	w.WriteUint32(tx.RefBlockPrefix)
	if err := w.WritePointInTime(tx.Expiration.Time); nil != err {
		return nil, errors.Wrap(err, "expiration")
	}

	w.WriteVarint(uint64(len(tx.Operations)))
	for i, op := range tx.Operations {
		if err := PackOperation(w, op, c); nil != err {
			return nil, errors.Wrapf(err, "operation[%d]", i)
		}
	}

	if err := packField(w, &tx.Extensions, c); nil != err {
		return nil, err
	}
	return w.Bytes(), nil
}

// Pack - the complete wire form including signatures
func (tx *Transaction) Pack(c *chain.Context) (Packed, error) {
	unsigned, err := tx.PackUnsigned(c)
	if nil != err {
		return nil, err
	}

	w := marshal.NewWriter()
	w.WriteBytes(unsigned)
	w.WriteVarint(uint64(len(tx.Signatures)))
	for i, signature := range tx.Signatures {
		if account.SignatureLength != len(signature) {
			return nil, errors.Wrapf(fault.ErrInvalidSignature, "signature[%d] length: %d", i, len(signature))
		}
		w.WriteBytes(signature)
	}
	return w.Bytes(), nil
}

// ID - hex of the first 20 bytes of SHA-256 over the unsigned bytes
func (tx *Transaction) ID(c *chain.Context) (string, error) {
	unsigned, err := tx.PackUnsigned(c)
	if nil != err {
		return "", err
	}
	return unsigned.ID(), nil
}

// ID - transaction id of unsigned bytes
func (record Packed) ID() string {
	digest := sha256.Sum256(record)
	return hex.EncodeToString(digest[:IDLength])
}

// MarshalText - packed bytes as hex
func (record Packed) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToString(record)), nil
}

// Unpack - turn a byte slice into a transaction
//
// returns the transaction and the number of bytes consumed, any
// error leaves nothing partially decoded
func (record Packed) Unpack(c *chain.Context) (t *Transaction, n int, e error) {
	if nil == c {
		return nil, 0, errors.Wrap(fault.ErrMissingCollaborator, "chain context")
	}

	defer func() {
		if r := recover(); nil != r {
			t = nil
			n = 0
			e = errors.Wrapf(fault.ErrInvalidOperation, "unpack: %v", r)
		}
	}()

	r := marshal.NewReader(record)
	tx := &Transaction{}

	var err error
	tx.RefBlockNum, err = r.ReadUint16()
	if nil != err {
		return nil, 0, errors.Wrap(err, "ref_block_num")
	}
	tx.RefBlockPrefix, err = r.ReadUint32()
	if nil != err {
		return nil, 0, errors.Wrap(err, "ref_block_prefix")
	}
	if err := unpackField(r, &tx.Expiration, c); nil != err {
		return nil, 0, errors.Wrap(err, "expiration")
	}

	count, err := r.ReadCount()
	if nil != err {
		return nil, 0, errors.Wrap(err, "operation count")
	}
	tx.Operations = make(Operations, 0, count)
	for i := 0; i < count; i += 1 {
		op, err := UnpackOperation(r, c)
		if nil != err {
			return nil, 0, errors.Wrapf(err, "operation[%d]", i)
		}
		tx.Operations = append(tx.Operations, op)
	}

	if err := unpackField(r, &tx.Extensions, c); nil != err {
		return nil, 0, errors.Wrap(err, "extensions")
	}

	count, err = r.ReadCount()
	if nil != err {
		return nil, 0, errors.Wrap(err, "signature count")
	}
	if count > 0 {
		tx.Signatures = make(Signatures, count)
	}
	for i := range tx.Signatures {
		b, err := r.ReadBytes(account.SignatureLength)
		if nil != err {
			return nil, 0, errors.Wrapf(err, "signature[%d]", i)
		}
		tx.Signatures[i] = b
	}

	return tx, r.Position(), nil
}

// UnpackHex - decode a complete hex transaction, no trailing bytes allowed
func UnpackHex(s string, c *chain.Context) (*Transaction, error) {
	b, err := hex.DecodeString(s)
	if nil != err {
		return nil, errors.Wrapf(fault.ErrTruncatedInput, "hex: %s", err)
	}
	tx, n, err := Packed(b).Unpack(c)
	if nil != err {
		return nil, err
	}
	if n != len(b) {
		return nil, errors.Wrapf(fault.ErrTrailingData, "offset: %d trailing: %d", n, len(b)-n)
	}
	return tx, nil
}
