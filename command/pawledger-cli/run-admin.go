// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/pawledger/pawledgerd/address"
	"github.com/pawledger/pawledgerd/command/pawledger-cli/rpccalls"
	"github.com/pawledger/pawledgerd/rpc/admin"
)

func runAddAdmin(c *cli.Context) error {
	return adminCommand(c, func(client *rpccalls.Client, caller address.Address) (*admin.Reply, error) {
		account, err := checkAddress("account", c.String("account"))
		if nil != err {
			return nil, err
		}
		return client.AddAdmin(caller, account)
	})
}

func runRemoveAdmin(c *cli.Context) error {
	return adminCommand(c, func(client *rpccalls.Client, caller address.Address) (*admin.Reply, error) {
		account, err := checkAddress("account", c.String("account"))
		if nil != err {
			return nil, err
		}
		return client.RemoveAdmin(caller, account)
	})
}

func runPause(c *cli.Context) error {
	return adminCommand(c, func(client *rpccalls.Client, caller address.Address) (*admin.Reply, error) {
		return client.SetPaused(caller, true)
	})
}

func runUnpause(c *cli.Context) error {
	return adminCommand(c, func(client *rpccalls.Client, caller address.Address) (*admin.Reply, error) {
		return client.SetPaused(caller, false)
	})
}

func adminCommand(c *cli.Context, f func(client *rpccalls.Client, caller address.Address) (*admin.Reply, error)) error {

	m := getMetadata(c)

	caller, err := checkCaller(m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := f(client, caller)
	if nil != err {
		return err
	}

	printJson(m.w, reply)

	return nil
}
