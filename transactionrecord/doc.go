// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transactionrecord - operations and transactions
//
// Every operation kind is a struct with a fixed list of fields; the
// order of that list is the wire order.  A packed transaction is:
//
//	u16      ref_block_num
//	u32      ref_block_prefix
//	u32      expiration
//	varint   operation count
//	...      operations: varint tag followed by the fields
//	varint   extension count, always zero
//	varint   signature count
//	...      signatures: 65 bytes each
//
// A varint below 128 is a single byte so tags and counts also read
// correctly as single bytes.
package transactionrecord
