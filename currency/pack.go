// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currency

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/steemtx/fault"
	"github.com/bitmark-inc/steemtx/marshal"
)

// Pack - append the wire form
//
//   i64 scaled value | i8 precision | 7 byte tag, zero padded
//
// the asset must belong to the chain's set
func (amount Amount) Pack(w *marshal.Writer, assets Assets) error {
	if !assets.Contains(amount.Asset) {
		return errors.Wrapf(fault.ErrUnknownAsset, "asset: %s not on this chain", amount.Asset.Symbol)
	}
	if len(amount.Asset.Tag) > TagLength {
		return errors.Wrapf(fault.ErrUnknownAsset, "tag: %q too long", amount.Asset.Tag)
	}

	var tag [TagLength]byte
	copy(tag[:], amount.Asset.Tag)

	w.WriteInt64(amount.Value)
	w.WriteInt8(int8(amount.Asset.Precision))
	w.WriteBytes(tag[:])
	return nil
}

// UnpackAmount - read the wire form and resolve its tag in the chain's set
func UnpackAmount(r *marshal.Reader, assets Assets) (Amount, error) {
	value, err := r.ReadInt64()
	if nil != err {
		return Amount{}, err
	}
	offset := r.Position()
	precision, err := r.ReadInt8()
	if nil != err {
		return Amount{}, err
	}
	tag, err := r.ReadBytes(TagLength)
	if nil != err {
		return Amount{}, err
	}

	asset, err := assets.ByTag(string(bytes.TrimRight(tag, "\x00")))
	if nil != err {
		return Amount{}, errors.Wrapf(err, "offset: %d", offset)
	}
	if precision < 0 || uint8(precision) != asset.Precision {
		return Amount{}, errors.Wrapf(fault.ErrInvalidPrecision, "offset: %d asset: %s precision: %d", offset, asset.Symbol, precision)
	}
	return NewAmount(value, asset), nil
}
