// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available such as reading files to set key data
// and os.getenv to extract environment supplied items, so WIFs need
// not be written into the file itself:
//
//   local M = {}
//   M.chain = "test"
//   M.node_url = "https://testnet.steemitdev.com"
//   M.keys = { os.getenv("STEEM_POSTING_WIF") }
//   M.logging = { directory = "log", levels = { DEFAULT = "warn" } }
//   return M
package configuration
