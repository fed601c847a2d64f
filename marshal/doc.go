// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package marshal - primitive wire codec
//
// A Reader walks a borrowed byte slice forward, every read checks
// the remaining length and fails with fault.ErrTruncatedInput (with
// the byte offset) rather than panicking.  A Writer appends to an
// owned buffer; every Write is the exact inverse of the matching
// Read.
//
// Wire conventions:
//   integers       little-endian, fixed width
//   varint         base-128, seven bits per byte, high bit = more
//   strings/bytes  varint length followed by the raw bytes
//   point in time  u32 seconds since the Unix epoch,
//                  0xffffffff is the maximum time
package marshal
