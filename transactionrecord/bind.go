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
)

// Bind - express the chain dependent values of an operation for a chain
//
// amounts move to the chain's asset of the same kind, keys take the
// chain's prefix and a disabled key becomes nil
func Bind(op Operation, c *chain.Context) error {
	if nil == op {
		return errors.Wrap(fault.ErrInvalidOperation, "nil operation")
	}
	if nil == c {
		return errors.Wrap(fault.ErrMissingCollaborator, "chain context")
	}
	for _, f := range op.layout() {
		if err := bindField(f.value, c); nil != err {
			return errors.Wrapf(err, "%s.%s", op.Tag(), f.name)
		}
	}
	return nil
}

// BindTransaction - Bind every operation of a transaction
func BindTransaction(tx *Transaction, c *chain.Context) error {
	for i, op := range tx.Operations {
		if err := Bind(op, c); nil != err {
			return errors.Wrapf(err, "operation[%d]", i)
		}
	}
	return nil
}

func bindField(value interface{}, c *chain.Context) error {
	var err error

	switch v := value.(type) {

	case *currency.Amount:
		*v, err = c.Assets.Rebind(*v)

	case *Price:
		if v.Base, err = c.Assets.Rebind(v.Base); nil != err {
			return errors.Wrap(err, "base")
		}
		if v.Quote, err = c.Assets.Rebind(v.Quote); nil != err {
			return errors.Wrap(err, "quote")
		}

	case *ChainProperties:
		v.AccountCreationFee, err = c.Assets.Rebind(v.AccountCreationFee)

	case **account.PublicKey:
		*v = bindKey(*v, c.Prefix)

	case *OptionalPublicKey:
		if nil != v.Key {
			k := *v.Key
			k.Prefix = c.Prefix
			v.Key = &k
		}

	case *Authority:
		bindAuthority(v, c.Prefix)

	case **Authority:
		if nil != *v {
			bindAuthority(*v, c.Prefix)
		}

	case *[]Authority:
		for i := range *v {
			bindAuthority(&(*v)[i], c.Prefix)
		}
	}
	return err
}

// authority keys stay in place even when disabled so that the list
// keeps its length
func bindAuthority(a *Authority, prefix string) {
	for i, ka := range a.KeyAuths {
		if nil != ka.Key {
			k := *ka.Key
			k.Prefix = prefix
			a.KeyAuths[i].Key = &k
		}
	}
}

func bindKey(key *account.PublicKey, prefix string) *account.PublicKey {
	if nil == key || key.IsDisabled() {
		return nil
	}
	k := *key
	k.Prefix = prefix
	return &k
}
