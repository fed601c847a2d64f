// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.
//
// Errors may be wrapped with github.com/pkg/errors to add the
// operation, field or byte offset where they occurred; the IsErrX
// predicates look through any such wrapping.
package fault
