// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath - make a path absolute
//
// a leading "~/" is the home directory, any other relative path is
// joined to directory
func ExpandPath(directory string, filePath string) (string, error) {
	if "~" == filePath || strings.HasPrefix(filePath, "~/") {
		home, err := os.UserHomeDir()
		if nil != err {
			return "", err
		}
		filePath = filepath.Join(home, strings.TrimPrefix(filePath[1:], "/"))
	}
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath), nil
}
