// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package broadcast - build, sign and submit common operations in one call
//
// each helper creates a builder from the options, sets the
// operations and broadcasts them; with Pretend set the signed
// transaction is only checked by the node
package broadcast
