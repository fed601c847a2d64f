// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package signing - digest and canonical signatures for transactions
//
// The digest is SHA-256 over the chain id followed by the unsigned
// transaction bytes.  Each key searches successive RFC6979 nonces
// until the signature is canonical; the search is capped.
package signing
