// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - JSON RPC 2.0 client for a steem node
//
// only the condenser_api calls needed to prepare, verify and
// broadcast a transaction are provided; the client satisfies the
// collaborator interfaces of the builder and the signing packages
//
// requests are rate limited and transport failures are retried with
// exponential backoff; errors returned by the node are final
package rpc
