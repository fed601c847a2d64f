// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package signing

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/steemtx/account"
	"github.com/bitmark-inc/steemtx/chain"
	"github.com/bitmark-inc/steemtx/fault"
	"github.com/bitmark-inc/steemtx/transactionrecord"
)

// DefaultMaximumAttempts - nonces tried per key before giving up
const DefaultMaximumAttempts = 1024

// HexSource - the node's own serialization of a transaction
//
// the hex includes the trailing signature count
type HexSource interface {
	TransactionHex(ctx context.Context, tx *transactionrecord.Transaction) (string, error)
}

// Options - signing settings
type Options struct {
	MaximumAttempts uint32           // zero selects DefaultMaximumAttempts
	CrossValidate   bool             // self check of the local encoding when there is no source
	Source          HexSource        // optional, its bytes are checked against the transaction then signed
	Now             func() time.Time // clock for the expiry check, nil is time.Now
}

// Signer - signs transactions for one chain
type Signer struct {
	log     *logger.L
	chain   *chain.Context
	options Options
}

// Digest - transaction id and signing digest of unsigned bytes
func Digest(chainID []byte, unsigned []byte) (string, [sha256.Size]byte) {
	id := transactionrecord.Packed(unsigned).ID()

	h := sha256.New()
	h.Write(chainID)
	h.Write(unsigned)

	var digest [sha256.Size]byte
	copy(digest[:], h.Sum(nil))
	return id, digest
}

// New - create a signer
func New(log *logger.L, c *chain.Context, options Options) (*Signer, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if nil == c {
		return nil, errors.Wrap(fault.ErrMissingCollaborator, "chain context")
	}
	if 0 == options.MaximumAttempts {
		options.MaximumAttempts = DefaultMaximumAttempts
	}
	if nil == options.Now {
		options.Now = time.Now
	}
	return &Signer{
		log:     log,
		chain:   c,
		options: options,
	}, nil
}

// Unsigned - the bytes to hash
//
// with a source the node's bytes are used, but only after they decode
// to the same transaction; without a source cross validation decodes
// the local encoding as a self check
func (s *Signer) Unsigned(ctx context.Context, tx *transactionrecord.Transaction) (transactionrecord.Packed, error) {
	unsigned, err := tx.PackUnsigned(s.chain)
	if nil != err {
		return nil, err
	}

	if nil != s.options.Source {
		remote, err := s.remoteUnsigned(ctx, tx)
		if nil != err {
			return nil, err
		}
		if err := s.crossValidate(tx, remote); nil != err {
			return nil, err
		}
		if !bytes.Equal(unsigned, remote) {
			s.log.Warnf("node serialization differs from local: id: %s", unsigned.ID())
		}
		return remote, nil
	}

	if s.options.CrossValidate {
		if err := s.crossValidate(tx, unsigned); nil != err {
			return nil, err
		}
	}
	return unsigned, nil
}

// fetch the node's hex and drop the empty signature list
func (s *Signer) remoteUnsigned(ctx context.Context, tx *transactionrecord.Transaction) (transactionrecord.Packed, error) {
	empty := *tx
	empty.Signatures = nil

	h, err := s.options.Source.TransactionHex(ctx, &empty)
	if nil != err {
		return nil, err
	}
	b, err := hex.DecodeString(strings.TrimSpace(h))
	if nil != err {
		return nil, errors.Wrapf(fault.ErrSerializationMismatch, "node hex: %s", err)
	}
	if 0 == len(b) || 0 != b[len(b)-1] {
		return nil, errors.Wrap(fault.ErrSerializationMismatch, "node hex does not end with an empty signature list")
	}
	return b[:len(b)-1], nil
}

// structural comparison, numeric formatting in the source is ignored
func (s *Signer) crossValidate(tx *transactionrecord.Transaction, unsigned transactionrecord.Packed) error {
	signed := make([]byte, len(unsigned)+1)
	copy(signed, unsigned)

	decoded, err := transactionrecord.UnpackHex(hex.EncodeToString(signed), s.chain)
	if nil != err {
		return errors.Wrapf(fault.ErrSerializationMismatch, "decode: %s", err)
	}

	expected := *tx
	expected.Signatures = nil
	if diff := cmp.Diff(&expected, decoded, cmpopts.EquateEmpty()); "" != diff {
		s.log.Errorf("cross validation failed: %s", diff)
		return errors.Wrapf(fault.ErrSerializationMismatch, "diff: %s", diff)
	}
	return nil
}

// Sign - a copy of the transaction with a signature for each key
//
// keys whose signature is already present are skipped, no keys or an
// expired transaction return the transaction unchanged; signatures
// are appended in key order
func (s *Signer) Sign(ctx context.Context, tx *transactionrecord.Transaction, keys []*account.PrivateKey) (*transactionrecord.Transaction, error) {
	if nil == tx {
		return nil, errors.Wrap(fault.ErrEmptyTransaction, "nil transaction")
	}
	if 0 == len(tx.Operations) {
		return nil, fault.ErrEmptyTransaction
	}
	if 0 == len(keys) {
		s.log.Debug("sign: no keys")
		return tx, nil
	}
	if tx.Expiration.IsZero() || !tx.Expiration.After(s.options.Now()) {
		s.log.Warnf("sign: expired at: %s", tx.Expiration)
		return tx, nil
	}

	unsigned, err := s.Unsigned(ctx, tx)
	if nil != err {
		return nil, err
	}
	id, digest := Digest(s.chain.ChainID, unsigned)

	pending, err := s.unapplied(tx, keys, digest[:])
	if nil != err {
		return nil, err
	}

	signatures := make([]account.Signature, len(pending))
	g, gctx := errgroup.WithContext(ctx)
	for i, key := range pending {
		i, key := i, key
		g.Go(func() error {
			signature, err := s.search(gctx, key, digest[:])
			if nil != err {
				return err
			}
			signatures[i] = signature
			return nil
		})
	}
	if err := g.Wait(); nil != err {
		return nil, err
	}

	result := *tx
	result.Signatures = make(transactionrecord.Signatures, 0, len(tx.Signatures)+len(signatures))
	result.Signatures = append(result.Signatures, tx.Signatures...)
	result.Signatures = append(result.Signatures, signatures...)

	s.log.Infof("signed: id: %s new signatures: %d total: %d", id, len(signatures), len(result.Signatures))
	return &result, nil
}

// keys that have no signature yet, duplicates removed, order kept
func (s *Signer) unapplied(tx *transactionrecord.Transaction, keys []*account.PrivateKey, digest []byte) ([]*account.PrivateKey, error) {
	present := make(map[[account.PublicKeyLength]byte]struct{}, len(tx.Signatures)+len(keys))
	for i, signature := range tx.Signatures {
		pk, err := signature.Recover(digest, s.chain.Prefix)
		if nil != err {
			return nil, errors.Wrapf(err, "existing signature[%d]", i)
		}
		present[pk.Key] = struct{}{}
	}

	pending := make([]*account.PrivateKey, 0, len(keys))
	for i, key := range keys {
		if nil == key {
			return nil, errors.Wrapf(fault.ErrInvalidWIF, "key[%d] is nil", i)
		}
		pk := key.PublicKey(s.chain.Prefix)
		if _, ok := present[pk.Key]; ok {
			s.log.Debugf("sign: key: %s already applied", pk)
			continue
		}
		present[pk.Key] = struct{}{}
		pending = append(pending, key)
	}
	return pending, nil
}

// try successive nonces until the signature recovers to the key and
// is canonical
func (s *Signer) search(ctx context.Context, key *account.PrivateKey, digest []byte) (account.Signature, error) {
	expected := key.PublicKey(s.chain.Prefix)

	for attempt := uint32(0); attempt < s.options.MaximumAttempts; attempt += 1 {
		if err := ctx.Err(); nil != err {
			return nil, err
		}

		signature, err := key.SignCompact(digest, attempt)
		if nil != err {
			continue
		}
		if !signature.IsCanonical() {
			continue
		}
		recovered, err := signature.Recover(digest, s.chain.Prefix)
		if nil != err || recovered.Key != expected.Key {
			continue
		}

		s.log.Debugf("sign: key: %s attempts: %d", expected, attempt+1)
		return signature, nil
	}
	return nil, errors.Wrapf(fault.ErrCanonicalSignatureNotFound, "key: %s attempts: %d", expected, s.options.MaximumAttempts)
}
