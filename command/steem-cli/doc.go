// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// steem-cli - encode, decode, sign and broadcast steem transactions
//
// input for a command is its first argument; "-" or no argument reads
// standard input and "@name" reads the file name
//
// decode, encode, digest, sign and pubkey work offline, only
// broadcast needs a node:
//
//   steem-cli -n test decode 1400351942ac...
//   steem-cli -n test sign --wif 5J... @transaction.json
//   steem-cli -c steem.conf broadcast '[["vote", {...}]]'
package main
