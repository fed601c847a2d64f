// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/pkg/errors"

	"github.com/bitmark-inc/steemtx/account"
	"github.com/bitmark-inc/steemtx/chain"
	"github.com/bitmark-inc/steemtx/currency"
	"github.com/bitmark-inc/steemtx/fault"
	"github.com/bitmark-inc/steemtx/marshal"
)

// PackOperation - append varint tag followed by the fields in order
func PackOperation(w *marshal.Writer, op Operation, c *chain.Context) error {
	if nil == op {
		return errors.Wrap(fault.ErrInvalidOperation, "nil operation")
	}
	tag := op.Tag()
	if !tag.IsValid() {
		return errors.Wrapf(fault.ErrUnknownOperation, "tag: %d", tag)
	}

	w.WriteVarint(uint64(tag))
	for _, f := range op.layout() {
		if err := packField(w, f.value, c); nil != err {
			return errors.Wrapf(err, "%s.%s", tag, f.name)
		}
	}
	return nil
}

// write a single field, the pointer type selects the encoding
func packField(w *marshal.Writer, value interface{}, c *chain.Context) error {
	switch v := value.(type) {

	case *string:
		w.WriteVarString(*v)

	case *HexBytes:
		w.WriteVarBytes(*v)

	case *bool:
		w.WriteBool(*v)

	case *int16:
		w.WriteInt16(*v)

	case *uint16:
		w.WriteUint16(*v)

	case *uint32:
		w.WriteUint32(*v)

	case *uint64:
		w.WriteUint64(*v)

	case *int64:
		w.WriteInt64(*v)

	case *PointInTime:
		return w.WritePointInTime(v.Time)

	case **account.PublicKey:
		account.PackPublicKey(w, *v)

	case *OptionalPublicKey:
		if nil == v.Key {
			w.WriteBool(false)
		} else {
			w.WriteBool(true)
			account.PackPublicKey(w, v.Key)
		}

	case *currency.Amount:
		return v.Pack(w, c.Assets)

	case *Price:
		if err := v.Base.Pack(w, c.Assets); nil != err {
			return errors.Wrap(err, "base")
		}
		if err := v.Quote.Pack(w, c.Assets); nil != err {
			return errors.Wrap(err, "quote")
		}

	case *Authority:
		return packAuthority(w, v)

	case **Authority:
		if nil == *v {
			w.WriteBool(false)
		} else {
			w.WriteBool(true)
			return packAuthority(w, *v)
		}

	case *[]Authority:
		w.WriteVarint(uint64(len(*v)))
		for i := range *v {
			if err := packAuthority(w, &(*v)[i]); nil != err {
				return errors.Wrapf(err, "authority[%d]", i)
			}
		}

	case *AccountNames:
		w.WriteVarint(uint64(len(*v)))
		for _, name := range *v {
			w.WriteVarString(name)
		}

	case *[]int64:
		w.WriteVarint(uint64(len(*v)))
		for _, id := range *v {
			w.WriteInt64(id)
		}

	case *ChainProperties:
		if err := v.AccountCreationFee.Pack(w, c.Assets); nil != err {
			return errors.Wrap(err, "account_creation_fee")
		}
		w.WriteUint32(v.MaximumBlockSize)
		w.WriteUint16(v.SBDInterestRate)

	case *WitnessProperties:
		w.WriteVarint(uint64(len(*v)))
		for _, p := range *v {
			w.WriteVarString(p.Key)
			w.WriteVarBytes(p.Value)
		}

	case *CommentOptionsExtensions:
		if 0 == len(v.Beneficiaries) {
			w.WriteVarint(0)
			break
		}
		w.WriteVarint(1)
		w.WriteVarint(beneficiariesExtension)
		w.WriteVarint(uint64(len(v.Beneficiaries)))
		for _, b := range v.Beneficiaries {
			w.WriteVarString(b.Account)
			w.WriteUint16(b.Weight)
		}

	case *FutureExtensions:
		w.WriteVarint(0)

	default:
		fault.Panicf("pack: unsupported field type: %T", value)
	}
	return nil
}

//	u32 threshold | varint n | n * (string, u16) | varint m | m * (key, u16)
func packAuthority(w *marshal.Writer, a *Authority) error {
	if err := a.Validate(); nil != err {
		return err
	}
	w.WriteUint32(a.WeightThreshold)
	w.WriteVarint(uint64(len(a.AccountAuths)))
	for _, aa := range a.AccountAuths {
		w.WriteVarString(aa.Account)
		w.WriteUint16(aa.Weight)
	}
	w.WriteVarint(uint64(len(a.KeyAuths)))
	for _, ka := range a.KeyAuths {
		account.PackPublicKey(w, ka.Key)
		w.WriteUint16(ka.Weight)
	}
	return nil
}
