// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain_test

import (
	"testing"

	"github.com/pawledger/pawledgerd/chain"
)

func TestValid(t *testing.T) {
	for _, name := range []string{chain.Live, chain.Testing, chain.Local} {
		if !chain.Valid(name) {
			t.Errorf("network: %q is not valid", name)
		}
	}
	for _, name := range []string{"", "bitmark", "LIVE", "mainnet"} {
		if chain.Valid(name) {
			t.Errorf("network: %q is valid", name)
		}
	}
	if chain.IsTesting(chain.Live) {
		t.Error("live is a testing network")
	}
	if !chain.IsTesting(chain.Local) {
		t.Error("local is not a testing network")
	}
}
