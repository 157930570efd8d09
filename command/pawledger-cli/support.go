// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/pawledger/pawledgerd/address"
	"github.com/pawledger/pawledgerd/amount"
	"github.com/pawledger/pawledgerd/command/pawledger-cli/rpccalls"
)

func getMetadata(c *cli.Context) *metadata {
	return c.App.Metadata["config"].(*metadata)
}

func connect(m *metadata) (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.connect, m.verbose, m.e)
}

// the global caller option, required for all mutations
func checkCaller(m *metadata) (address.Address, error) {
	if "" == strings.TrimSpace(m.caller) {
		return address.Null, fmt.Errorf("caller address is required")
	}
	return checkAddress("caller", m.caller)
}

func checkAddress(name string, s string) (address.Address, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return address.Null, fmt.Errorf("%s address is required", name)
	}
	a, err := address.FromString(s)
	if nil != err {
		return address.Null, fmt.Errorf("%s address: %q  error: %s", name, s, err)
	}
	return a, nil
}

// convert a decimal token amount to smallest units
func checkAmount(s string, decimals uint8) (amount.Amount, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return amount.Zero, fmt.Errorf("amount is required")
	}
	a, err := amount.Parse(s, decimals)
	if nil != err {
		return amount.Zero, fmt.Errorf("amount: %q  error: %s", s, err)
	}
	if a.IsZero() {
		return amount.Zero, fmt.Errorf("amount: %q must be greater than zero", s)
	}
	return a, nil
}

// the token decimals, needed to convert amounts
func getDecimals(client *rpccalls.Client) (uint8, string, error) {
	info, err := client.Info()
	if nil != err {
		return 0, "", err
	}
	return info.Decimals, info.Symbol, nil
}
