// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/pawledger/pawledgerd/address"
	"github.com/pawledger/pawledgerd/rpc/admin"
)

// AddAdmin - grant admin rights
func (client *Client) AddAdmin(caller address.Address, account address.Address) (*admin.Reply, error) {
	return client.adminCall("Admin.Add", caller, account)
}

// RemoveAdmin - revoke admin rights
func (client *Client) RemoveAdmin(caller address.Address, account address.Address) (*admin.Reply, error) {
	return client.adminCall("Admin.Remove", caller, account)
}

func (client *Client) adminCall(method string, caller address.Address, account address.Address) (*admin.Reply, error) {
	args := admin.Arguments{
		Caller:  caller,
		Account: account,
	}
	reply := &admin.Reply{}
	err := client.call(method, &args, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// SetPaused - set or clear the pause flag
func (client *Client) SetPaused(caller address.Address, paused bool) (*admin.Reply, error) {
	args := admin.SetPausedArguments{
		Caller: caller,
		Paused: paused,
	}
	reply := &admin.Reply{}
	err := client.call("Admin.SetPaused", &args, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}
