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

// UnpackOperation - read a varint tag and the fields of that kind
func UnpackOperation(r *marshal.Reader, c *chain.Context) (Operation, error) {
	start := r.Position()
	t, err := r.ReadVarint()
	if nil != err {
		return nil, err
	}
	tag := TagType(t)
	op, err := New(tag)
	if nil != err {
		return nil, errors.Wrapf(err, "offset: %d", start)
	}

	for _, f := range op.layout() {
		if err := unpackField(r, f.value, c); nil != err {
			return nil, errors.Wrapf(err, "%s.%s", tag, f.name)
		}
	}
	return op, nil
}

// read a single field into the location the pointer refers to
func unpackField(r *marshal.Reader, value interface{}, c *chain.Context) error {
	var err error

	switch v := value.(type) {

	case *string:
		*v, err = r.ReadVarString()

	case *HexBytes:
		*v, err = r.ReadVarBytes()

	case *bool:
		*v, err = r.ReadBool()

	case *int16:
		*v, err = r.ReadInt16()

	case *uint16:
		*v, err = r.ReadUint16()

	case *uint32:
		*v, err = r.ReadUint32()

	case *uint64:
		*v, err = r.ReadUint64()

	case *int64:
		*v, err = r.ReadInt64()

	case *PointInTime:
		t, e := r.ReadPointInTime()
		if nil != e {
			return e
		}
		*v = PointInTime{Time: t}

	case **account.PublicKey:
		*v, err = account.UnpackPublicKey(r, c.Prefix)

	case *OptionalPublicKey:
		present, e := r.ReadBool()
		if nil != e {
			return e
		}
		v.Key = nil
		if present {
			v.Key, err = account.UnpackPublicKey(r, c.Prefix)
			if nil == err && nil == v.Key {
				v.Key = account.DisabledPublicKey(c.Prefix)
			}
		}

	case *currency.Amount:
		*v, err = currency.UnpackAmount(r, c.Assets)

	case *Price:
		v.Base, err = currency.UnpackAmount(r, c.Assets)
		if nil != err {
			return errors.Wrap(err, "base")
		}
		v.Quote, err = currency.UnpackAmount(r, c.Assets)
		if nil != err {
			return errors.Wrap(err, "quote")
		}

	case *Authority:
		return unpackAuthority(r, v, c)

	case **Authority:
		present, e := r.ReadBool()
		if nil != e {
			return e
		}
		*v = nil
		if present {
			a := &Authority{}
			if err := unpackAuthority(r, a, c); nil != err {
				return err
			}
			*v = a
		}

	case *[]Authority:
		n, e := r.ReadCount()
		if nil != e {
			return e
		}
		list := make([]Authority, n)
		for i := range list {
			if err := unpackAuthority(r, &list[i], c); nil != err {
				return errors.Wrapf(err, "authority[%d]", i)
			}
		}
		*v = list

	case *AccountNames:
		n, e := r.ReadCount()
		if nil != e {
			return e
		}
		names := make(AccountNames, n)
		for i := range names {
			names[i], err = r.ReadVarString()
			if nil != err {
				return err
			}
		}
		*v = names

	case *[]int64:
		n, e := r.ReadCount()
		if nil != e {
			return e
		}
		ids := make([]int64, n)
		for i := range ids {
			ids[i], err = r.ReadInt64()
			if nil != err {
				return err
			}
		}
		*v = ids

	case *ChainProperties:
		v.AccountCreationFee, err = currency.UnpackAmount(r, c.Assets)
		if nil != err {
			return errors.Wrap(err, "account_creation_fee")
		}
		v.MaximumBlockSize, err = r.ReadUint32()
		if nil != err {
			return err
		}
		v.SBDInterestRate, err = r.ReadUint16()

	case *WitnessProperties:
		n, e := r.ReadCount()
		if nil != e {
			return e
		}
		props := make(WitnessProperties, n)
		for i := range props {
			props[i].Key, err = r.ReadVarString()
			if nil != err {
				return err
			}
			props[i].Value, err = r.ReadVarBytes()
			if nil != err {
				return err
			}
		}
		*v = props

	case *CommentOptionsExtensions:
		return unpackCommentOptionsExtensions(r, v)

	case *FutureExtensions:
		start := r.Position()
		n, e := r.ReadVarint()
		if nil != e {
			return e
		}
		if 0 != n {
			return errors.Wrapf(fault.ErrExtensionsNotEmpty, "offset: %d count: %d", start, n)
		}

	default:
		fault.Panicf("unpack: unsupported field type: %T", value)
	}
	return err
}

func unpackAuthority(r *marshal.Reader, a *Authority, c *chain.Context) error {
	var err error

	a.WeightThreshold, err = r.ReadUint32()
	if nil != err {
		return err
	}

	n, err := r.ReadCount()
	if nil != err {
		return err
	}
	a.AccountAuths = make([]AccountAuth, n)
	for i := range a.AccountAuths {
		a.AccountAuths[i].Account, err = r.ReadVarString()
		if nil != err {
			return err
		}
		a.AccountAuths[i].Weight, err = r.ReadUint16()
		if nil != err {
			return err
		}
	}

	n, err = r.ReadCount()
	if nil != err {
		return err
	}
	a.KeyAuths = make([]KeyAuth, n)
	for i := range a.KeyAuths {
		key, err := account.UnpackPublicKey(r, c.Prefix)
		if nil != err {
			return err
		}
		if nil == key {
			key = account.DisabledPublicKey(c.Prefix)
		}
		a.KeyAuths[i].Key = key
		a.KeyAuths[i].Weight, err = r.ReadUint16()
		if nil != err {
			return err
		}
	}
	return nil
}

// only the beneficiaries extension is known and it appears at most
// once with at least one entry, so decoded bytes always pack again to
// the same bytes
func unpackCommentOptionsExtensions(r *marshal.Reader, e *CommentOptionsExtensions) error {
	e.Beneficiaries = nil

	n, err := r.ReadCount()
	if nil != err {
		return err
	}
	for i := 0; i < n; i += 1 {
		start := r.Position()
		tag, err := r.ReadVarint()
		if nil != err {
			return err
		}
		if beneficiariesExtension != tag {
			return errors.Wrapf(fault.ErrUnknownExtension, "offset: %d tag: %d", start, tag)
		}
		if 0 != i {
			return errors.Wrapf(fault.ErrUnknownExtension, "offset: %d duplicate tag: %d", start, tag)
		}
		count, err := r.ReadCount()
		if nil != err {
			return err
		}
		if 0 == count {
			return errors.Wrapf(fault.ErrUnknownExtension, "offset: %d empty beneficiaries", start)
		}
		beneficiaries := make([]Beneficiary, count)
		for j := range beneficiaries {
			beneficiaries[j].Account, err = r.ReadVarString()
			if nil != err {
				return err
			}
			beneficiaries[j].Weight, err = r.ReadUint16()
			if nil != err {
				return err
			}
		}
		e.Beneficiaries = beneficiaries
	}
	return nil
}
