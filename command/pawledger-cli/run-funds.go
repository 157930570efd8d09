// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/pawledger/pawledgerd/amount"
	"github.com/pawledger/pawledgerd/command/pawledger-cli/rpccalls"
	"github.com/pawledger/pawledgerd/rpc/funds"
)

type fundsResult struct {
	TotalSupply      string `json:"totalSupply"`
	TransactionCount uint64 `json:"transactionCount"`
}

func printFunds(m *metadata, reply *funds.Reply, decimals uint8) {
	printJson(m.w, fundsResult{
		TotalSupply:      amount.Format(reply.TotalSupply, decimals),
		TransactionCount: reply.TransactionCount,
	})
}

func runTransfer(c *cli.Context) error {

	m := getMetadata(c)

	caller, err := checkCaller(m)
	if nil != err {
		return err
	}
	to, err := checkAddress("to", c.String("to"))
	if nil != err {
		return err
	}

	return withDecimals(m, func(client *rpccalls.Client, decimals uint8) error {
		value, err := checkAmount(c.String("amount"), decimals)
		if nil != err {
			return err
		}

		if m.verbose {
			fmt.Fprintf(m.e, "transfer: %s from: %s to: %s\n", amount.Format(value, decimals), caller, to)
		}

		reply, err := client.Transfer(caller, to, value)
		if nil != err {
			return err
		}
		printFunds(m, reply, decimals)
		return nil
	})
}

func runMint(c *cli.Context) error {

	m := getMetadata(c)

	caller, err := checkCaller(m)
	if nil != err {
		return err
	}
	to := caller
	if "" != c.String("to") {
		to, err = checkAddress("to", c.String("to"))
		if nil != err {
			return err
		}
	}

	return withDecimals(m, func(client *rpccalls.Client, decimals uint8) error {
		value, err := checkAmount(c.String("amount"), decimals)
		if nil != err {
			return err
		}

		reply, err := client.Mint(caller, to, value)
		if nil != err {
			return err
		}
		printFunds(m, reply, decimals)
		return nil
	})
}

func runBurn(c *cli.Context) error {

	m := getMetadata(c)

	caller, err := checkCaller(m)
	if nil != err {
		return err
	}

	return withDecimals(m, func(client *rpccalls.Client, decimals uint8) error {
		value, err := checkAmount(c.String("amount"), decimals)
		if nil != err {
			return err
		}

		reply, err := client.Burn(caller, value)
		if nil != err {
			return err
		}
		printFunds(m, reply, decimals)
		return nil
	})
}

// connect and fetch the token decimals before running f
func withDecimals(m *metadata, f func(client *rpccalls.Client, decimals uint8) error) error {
	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	decimals, _, err := getDecimals(client)
	if nil != err {
		return err
	}
	return f(client, decimals)
}
