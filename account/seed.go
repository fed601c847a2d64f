// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"crypto/sha256"
	"strings"
)

// roles that have their own key
const (
	RoleOwner   = "owner"
	RoleActive  = "active"
	RolePosting = "posting"
	RoleMemo    = "memo"
)

// PrivateKeyFromSeed - key whose secret is SHA-256 of the seed text
func PrivateKeyFromSeed(seed string) (*PrivateKey, error) {
	secret := sha256.Sum256([]byte(seed))
	defer zero(secret[:])
	return PrivateKeyFromBytes(secret[:])
}

// PrivateKeyFromLogin - the key a wallet derives from an account's
// master password for one role
//
// runs of white space in the combined seed collapse to one space
func PrivateKeyFromLogin(name string, role string, password string) (*PrivateKey, error) {
	seed := strings.Join(strings.Fields(name+role+password), " ")
	return PrivateKeyFromSeed(seed)
}
