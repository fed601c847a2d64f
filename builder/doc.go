// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package builder - assemble, prepare and sign a transaction
//
//	b, err := builder.New(log, builder.Options{
//		Chain: c,
//		State: client,
//		Keys:  keys,
//	})
//	err = b.Put(ctx, "vote", map[string]interface{}{
//		"voter":    "alice",
//		"author":   "bob",
//		"permlink": "my-burgers",
//		"weight":   10000,
//	})
//	tx, err := b.Transaction(ctx)
package builder
