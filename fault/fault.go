// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"github.com/pkg/errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised         = ExistsError("already initialised")
	ErrCanonicalSignatureNotFound = ProcessError("canonical signature not found")
	ErrChecksumMismatch           = ProcessError("checksum mismatch")
	ErrEmptyTransaction           = InvalidError("empty transaction")
	ErrExtensionsNotEmpty         = InvalidError("extensions are not empty")
	ErrInvalidAmount              = InvalidError("invalid amount")
	ErrInvalidAuthority           = InvalidError("invalid authority")
	ErrInvalidConfiguration       = InvalidError("invalid configuration")
	ErrInvalidKeyLength           = InvalidError("invalid key length")
	ErrInvalidKeyPrefix           = InvalidError("invalid key prefix")
	ErrInvalidLoggerChannel       = InvalidError("invalid logger channel")
	ErrInvalidOperation           = InvalidError("invalid operation")
	ErrInvalidPrecision           = InvalidError("invalid precision")
	ErrInvalidSignature           = InvalidError("invalid signature")
	ErrInvalidTime                = InvalidError("time out of range")
	ErrInvalidWIF                 = InvalidError("invalid wallet import format key")
	ErrMissingCollaborator        = InvalidError("missing collaborator")
	ErrNotPublicKey               = InvalidError("not a public key")
	ErrRPCFailure                 = ProcessError("rpc failure")
	ErrRateLimiting               = ProcessError("rate limiting")
	ErrSerializationMismatch      = ProcessError("serialization mismatch")
	ErrTrailingData               = LengthError("trailing data")
	ErrTruncatedInput             = LengthError("truncated input")
	ErrUnknownAsset               = NotFoundError("unknown asset")
	ErrUnknownExtension           = NotFoundError("unknown extension")
	ErrUnknownOperation           = NotFoundError("unknown operation")
	ErrUnsupportedChain           = InvalidError("unsupported chain")
	ErrVarintOverflow             = LengthError("varint overflow")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := errors.Cause(e).(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := errors.Cause(e).(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := errors.Cause(e).(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := errors.Cause(e).(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := errors.Cause(e).(ProcessError); return ok }
