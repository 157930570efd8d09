// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package funds

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/pawledger/pawledgerd/address"
	"github.com/pawledger/pawledgerd/amount"
	"github.com/pawledger/pawledgerd/fault"
	"github.com/pawledger/pawledgerd/ledger"
	"github.com/pawledger/pawledgerd/metrics"
	"github.com/pawledger/pawledgerd/mode"
	"github.com/pawledger/pawledgerd/rpc/ratelimit"
)

// Funds
// -----

const (
	rateLimitFunds = 100
	rateBurstFunds = 50
)

// Funds - type for RPC
type Funds struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	IsNormalMode func(mode.Mode) bool
	Ledger       ledger.Handle
	Observer     metrics.Observer
}

// New - create the value moving service
func New(log *logger.L,
	isNormalMode func(mode.Mode) bool,
	l ledger.Handle,
	observer metrics.Observer,
) *Funds {
	return &Funds{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitFunds, rateBurstFunds),
		IsNormalMode: isNormalMode,
		Ledger:       l,
		Observer:     observer,
	}
}

// Reply - ledger totals after a successful operation
type Reply struct {
	TotalSupply      amount.Amount `json:"totalSupply"`
	TransactionCount uint64        `json:"transactionCount"`
}

// run one mutation: limit, log, mode check, apply, observe
func (funds *Funds) mutate(name string, arg interface{}, reply *Reply, apply func() error) error {
	if err := ratelimit.Limit(funds.Limiter); nil != err {
		return err
	}

	funds.Log.Infof("%s: %+v", name, arg)

	if !funds.IsNormalMode(mode.Normal) {
		return fault.NotAvailable
	}

	err := apply()
	funds.Observer.Observe(name, err)
	if nil != err {
		funds.Log.Debugf("%s: rejected: %s", name, err)
		return err
	}

	info := funds.Ledger.Info()
	funds.Observer.Update(info)

	reply.TotalSupply = info.TotalSupply
	reply.TransactionCount = info.TransactionCount
	return nil
}

// Transfer value between accounts
// -------------------------------

// TransferArguments - caller pays to
type TransferArguments struct {
	Caller address.Address `json:"caller"`
	To     address.Address `json:"to"`
	Amount amount.Amount   `json:"amount"`
}

// Transfer - move value from the caller to another account
func (funds *Funds) Transfer(arg *TransferArguments, reply *Reply) error {
	return funds.mutate("Funds.Transfer", arg, reply, func() error {
		return funds.Ledger.Transfer(arg.Caller, arg.To, arg.Amount)
	})
}

// Mint new value
// --------------

// MintArguments - admin caller creates value for to
type MintArguments struct {
	Caller address.Address `json:"caller"`
	To     address.Address `json:"to"`
	Amount amount.Amount   `json:"amount"`
}

// Mint - increase supply, admin only
func (funds *Funds) Mint(arg *MintArguments, reply *Reply) error {
	return funds.mutate("Funds.Mint", arg, reply, func() error {
		return funds.Ledger.Mint(arg.Caller, arg.To, arg.Amount)
	})
}

// Burn value
// ----------

// BurnArguments - caller destroys part of its own balance
type BurnArguments struct {
	Caller address.Address `json:"caller"`
	Amount amount.Amount   `json:"amount"`
}

// Burn - decrease supply from the caller's balance
func (funds *Funds) Burn(arg *BurnArguments, reply *Reply) error {
	return funds.mutate("Funds.Burn", arg, reply, func() error {
		return funds.Ledger.Burn(arg.Caller, arg.Amount)
	})
}
