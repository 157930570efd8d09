// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pawledger/pawledgerd/chain"
	"github.com/pawledger/pawledgerd/fault"
	"github.com/pawledger/pawledgerd/mode"
	"github.com/pawledger/pawledgerd/rpc/fixtures"
)

func TestModeLifecycle(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	assert.Equal(t, fault.NotInitialised, mode.Finalise(), "finalise before initialise")
	assert.Equal(t, fault.InvalidChain, mode.Initialise("nowhere"), "bad chain accepted")

	err := mode.Initialise(chain.Local)
	assert.Nil(t, err, "initialise")
	assert.Equal(t, fault.AlreadyInitialised, mode.Initialise(chain.Local), "second initialise")

	assert.True(t, mode.Is(mode.Restoring), "starts restoring")
	assert.True(t, mode.IsTesting(), "local is a test network")
	assert.Equal(t, chain.Local, mode.Network(), "wrong network")

	mode.Set(mode.Normal)
	assert.True(t, mode.Is(mode.Normal), "not normal")
	assert.Equal(t, "Normal", mode.String(), "wrong mode string")

	// out of range is ignored
	mode.Set(mode.Mode(99))
	assert.True(t, mode.Is(mode.Normal), "invalid set changed mode")

	assert.Nil(t, mode.Finalise(), "finalise")
	assert.True(t, mode.Is(mode.Stopped), "not stopped after finalise")
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "Stopped", mode.Stopped.String())
	assert.Equal(t, "Restoring", mode.Restoring.String())
	assert.Equal(t, "Normal", mode.Normal.String())
	assert.Equal(t, "*Unknown*", mode.Mode(42).String())
}
