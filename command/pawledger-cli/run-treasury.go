// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/pawledger/pawledgerd/address"
	"github.com/pawledger/pawledgerd/amount"
	"github.com/pawledger/pawledgerd/command/pawledger-cli/rpccalls"
	"github.com/pawledger/pawledgerd/rpc/treasury"
)

type treasuryResult struct {
	Location address.Address `json:"location"`
	Balance  string          `json:"balance"`
}

func printTreasury(m *metadata, reply *treasury.BalanceReply, decimals uint8) {
	printJson(m.w, treasuryResult{
		Location: reply.Location,
		Balance:  amount.Format(reply.Balance, decimals),
	})
}

func runDeposit(c *cli.Context) error {

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

		reply, err := client.Deposit(caller, value)
		if nil != err {
			return err
		}
		printTreasury(m, reply, decimals)
		return nil
	})
}

func runWithdraw(c *cli.Context) error {

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

		reply, err := client.Withdraw(caller, to, value)
		if nil != err {
			return err
		}
		printTreasury(m, reply, decimals)
		return nil
	})
}

func runTreasury(c *cli.Context) error {

	m := getMetadata(c)

	return withDecimals(m, func(client *rpccalls.Client, decimals uint8) error {
		reply, err := client.TreasuryBalance()
		if nil != err {
			return err
		}
		printTreasury(m, reply, decimals)
		return nil
	})
}
