// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"

	"github.com/pawledger/pawledgerd/fault"
)

// EnsureAbsolute - a relative path is placed under directory
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// FileExists - true only for an existing non-directory entry
func FileExists(name string) bool {
	info, err := os.Stat(name)
	return nil == err && !info.IsDir()
}

// CheckDirectory - the path must already exist as a directory
func CheckDirectory(path string) error {
	info, err := os.Stat(path)
	if nil != err {
		return err
	}
	if !info.IsDir() {
		return fault.NotADirectory
	}
	return nil
}
