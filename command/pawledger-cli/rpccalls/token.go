// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/pawledger/pawledgerd/address"
	"github.com/pawledger/pawledgerd/ledger"
	"github.com/pawledger/pawledgerd/rpc/token"
)

// Info - token parameters and scalar state
func (client *Client) Info() (*ledger.Info, error) {
	reply := &ledger.Info{}
	err := client.call("Token.Info", &token.InfoArguments{}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Balance - balance of one account
func (client *Client) Balance(account address.Address) (*token.BalanceReply, error) {
	args := token.BalanceArguments{
		Account: account,
	}
	reply := &token.BalanceReply{}
	err := client.call("Token.Balance", &args, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Transactions - one page of the transaction log
func (client *Client) Transactions(start int, count int) (*token.TransactionsReply, error) {
	args := token.TransactionsArguments{
		Start: start,
		Count: count,
	}
	reply := &token.TransactionsReply{}
	err := client.call("Token.Transactions", &args, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Admins - owner and admin set
func (client *Client) Admins() (*token.AdminsReply, error) {
	reply := &token.AdminsReply{}
	err := client.call("Token.Admins", &token.AdminsArguments{}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}
