// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/pawledger/pawledgerd/address"
	"github.com/pawledger/pawledgerd/amount"
	"github.com/pawledger/pawledgerd/rpc/funds"
	"github.com/pawledger/pawledgerd/rpc/treasury"
)

// Transfer - move value from caller to another account
func (client *Client) Transfer(caller address.Address, to address.Address, value amount.Amount) (*funds.Reply, error) {
	args := funds.TransferArguments{
		Caller: caller,
		To:     to,
		Amount: value,
	}
	reply := &funds.Reply{}
	err := client.call("Funds.Transfer", &args, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Mint - create value, caller must be an admin
func (client *Client) Mint(caller address.Address, to address.Address, value amount.Amount) (*funds.Reply, error) {
	args := funds.MintArguments{
		Caller: caller,
		To:     to,
		Amount: value,
	}
	reply := &funds.Reply{}
	err := client.call("Funds.Mint", &args, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Burn - destroy value from the caller's balance
func (client *Client) Burn(caller address.Address, value amount.Amount) (*funds.Reply, error) {
	args := funds.BurnArguments{
		Caller: caller,
		Amount: value,
	}
	reply := &funds.Reply{}
	err := client.call("Funds.Burn", &args, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Deposit - move value from caller into the treasury
func (client *Client) Deposit(caller address.Address, value amount.Amount) (*treasury.BalanceReply, error) {
	args := treasury.DepositArguments{
		Caller: caller,
		Amount: value,
	}
	reply := &treasury.BalanceReply{}
	err := client.call("Treasury.Deposit", &args, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Withdraw - move value out of the treasury, caller must be the owner
func (client *Client) Withdraw(caller address.Address, to address.Address, value amount.Amount) (*treasury.BalanceReply, error) {
	args := treasury.WithdrawArguments{
		Caller: caller,
		To:     to,
		Amount: value,
	}
	reply := &treasury.BalanceReply{}
	err := client.call("Treasury.Withdraw", &args, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// TreasuryBalance - current treasury holding
func (client *Client) TreasuryBalance() (*treasury.BalanceReply, error) {
	reply := &treasury.BalanceReply{}
	err := client.call("Treasury.Balance", &treasury.BalanceArguments{}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}
