// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treasury

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

// Treasury
// --------

const (
	rateLimitTreasury = 50
	rateBurstTreasury = 20
)

// Treasury - type for RPC
type Treasury struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	IsNormalMode func(mode.Mode) bool
	Ledger       ledger.Handle
	Observer     metrics.Observer
}

// New - create the treasury service
func New(log *logger.L,
	isNormalMode func(mode.Mode) bool,
	l ledger.Handle,
	observer metrics.Observer,
) *Treasury {
	return &Treasury{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitTreasury, rateBurstTreasury),
		IsNormalMode: isNormalMode,
		Ledger:       l,
		Observer:     observer,
	}
}

// BalanceReply - treasury holding
type BalanceReply struct {
	Location address.Address `json:"location"`
	Balance  amount.Amount   `json:"balance"`
}

func (treasury *Treasury) fill(reply *BalanceReply, info ledger.Info) {
	reply.Location = info.Location
	reply.Balance = info.TreasuryBalance
}

// Deposit into treasury
// ---------------------

// DepositArguments - caller moves value into the treasury
type DepositArguments struct {
	Caller address.Address `json:"caller"`
	Amount amount.Amount   `json:"amount"`
}

// Deposit - debit the caller and credit the treasury
func (treasury *Treasury) Deposit(arg *DepositArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(treasury.Limiter); nil != err {
		return err
	}

	log := treasury.Log
	log.Infof("Treasury.Deposit: %+v", arg)

	if !treasury.IsNormalMode(mode.Normal) {
		return fault.NotAvailable
	}

	err := treasury.Ledger.DepositToTreasury(arg.Caller, arg.Amount)
	treasury.Observer.Observe("Treasury.Deposit", err)
	if nil != err {
		log.Debugf("Treasury.Deposit: rejected: %s", err)
		return err
	}

	info := treasury.Ledger.Info()
	treasury.Observer.Update(info)
	treasury.fill(reply, info)
	return nil
}

// Withdraw from treasury
// ----------------------

// WithdrawArguments - owner moves value out of the treasury to an account
type WithdrawArguments struct {
	Caller address.Address `json:"caller"`
	To     address.Address `json:"to"`
	Amount amount.Amount   `json:"amount"`
}

// Withdraw - debit the treasury and credit to, owner only
func (treasury *Treasury) Withdraw(arg *WithdrawArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(treasury.Limiter); nil != err {
		return err
	}

	log := treasury.Log
	log.Infof("Treasury.Withdraw: %+v", arg)

	if !treasury.IsNormalMode(mode.Normal) {
		return fault.NotAvailable
	}

	err := treasury.Ledger.WithdrawFromTreasury(arg.Caller, arg.To, arg.Amount)
	treasury.Observer.Observe("Treasury.Withdraw", err)
	if nil != err {
		log.Debugf("Treasury.Withdraw: rejected: %s", err)
		return err
	}

	info := treasury.Ledger.Info()
	treasury.Observer.Update(info)
	treasury.fill(reply, info)
	return nil
}

// Treasury balance
// ----------------

// BalanceArguments - no arguments
type BalanceArguments struct{}

// Balance - current treasury holding
func (treasury *Treasury) Balance(arg *BalanceArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(treasury.Limiter); nil != err {
		return err
	}

	treasury.Log.Debug("Treasury.Balance")

	treasury.fill(reply, treasury.Ledger.Info())
	treasury.Observer.Observe("Treasury.Balance", nil)
	return nil
}
