// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package currency - chain assets and fixed point amounts
//
// An Amount is held as a scaled integer, "1.000 STEEM" is the value
// 1000 of an asset with precision 3.  Conversion to and from display
// strings uses exact decimal arithmetic.
//
// Each chain has three assets (core, debt and staked) identified
// across chains by their NAI.  The seven byte tag written on the
// wire may differ from the display symbol.
package currency
