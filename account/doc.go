// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - secp256k1 keys and compact signatures
//
// Public keys are 33 byte compressed points shown as a chain prefix
// followed by base58(key ++ ripemd160(key)[:4]).  The all zero key is
// the disabled key and is treated as absent when decoded.
//
// Private keys use the wallet import format: base58 of 0x80, the 32
// byte secret and the first four bytes of a double SHA-256.
package account
