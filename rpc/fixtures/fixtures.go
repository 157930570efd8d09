// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for the RPC service tests
package fixtures

import (
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/pawledger/pawledgerd/address"
)

const (
	dir = "testing"

	// LogCategory - logger tag for tests
	LogCategory = "testing"
)

// test accounts
var (
	Owner   = account(0x01)
	Alice   = account(0x02)
	Bob     = account(0x03)
	Mallory = account(0x04)
)

func account(n byte) address.Address {
	var a address.Address
	a[0] = 0xee
	a[address.Length-1] = n
	return a
}

// SetupTestLogger - start logging into a scratch directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(dir)
}
