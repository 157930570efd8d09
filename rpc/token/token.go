// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/pawledger/pawledgerd/address"
	"github.com/pawledger/pawledgerd/amount"
	"github.com/pawledger/pawledgerd/ledger"
	"github.com/pawledger/pawledgerd/metrics"
	"github.com/pawledger/pawledgerd/rpc/ratelimit"
)

// Token
// -----

const (
	rateLimitToken = 200
	rateBurstToken = 100

	// MaximumTransactions - largest page of records per call
	MaximumTransactions = 100
)

// Token - type for RPC
type Token struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Ledger   ledger.Handle
	Observer metrics.Observer
}

// New - create the read only token service
func New(log *logger.L, l ledger.Handle, observer metrics.Observer) *Token {
	return &Token{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitToken, rateBurstToken),
		Ledger:   l,
		Observer: observer,
	}
}

// Token info
// ----------

// InfoArguments - no arguments
type InfoArguments struct{}

// Info - scalar projection of the ledger
func (token *Token) Info(arg *InfoArguments, reply *ledger.Info) error {
	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	token.Log.Debug("Token.Info")

	*reply = token.Ledger.Info()
	token.Observer.Observe("Token.Info", nil)
	return nil
}

// Balance of an account
// ---------------------

// BalanceArguments - the account to look up
type BalanceArguments struct {
	Account address.Address `json:"account"`
}

// BalanceReply - result of balance query
type BalanceReply struct {
	Account address.Address `json:"account"`
	Balance amount.Amount   `json:"balance"`
}

// Balance - balance of one account, zero if never credited
func (token *Token) Balance(arg *BalanceArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	token.Log.Infof("Token.Balance: %+v", arg)

	reply.Account = arg.Account
	reply.Balance = token.Ledger.BalanceOf(arg.Account)
	token.Observer.Observe("Token.Balance", nil)
	return nil
}

// Transaction log
// ---------------

// TransactionsArguments - range to read
type TransactionsArguments struct {
	Start int `json:"start"`
	Count int `json:"count"`
}

// TransactionsReply - records oldest first
type TransactionsReply struct {
	Start   int             `json:"start"`
	Records []ledger.Record `json:"records"`
}

// Transactions - read a page of the transaction log
//
// a count above MaximumTransactions is InvalidCount; zero or negative
// counts are passed to the ledger which rejects a negative range
func (token *Token) Transactions(arg *TransactionsArguments, reply *TransactionsReply) error {
	if arg.Count > 0 {
		if err := ratelimit.LimitN(token.Limiter, arg.Count, MaximumTransactions); nil != err {
			return err
		}
	} else if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	token.Log.Infof("Token.Transactions: %+v", arg)

	records, err := token.Ledger.Transactions(arg.Start, arg.Count)
	token.Observer.Observe("Token.Transactions", err)
	if nil != err {
		return err
	}

	reply.Start = arg.Start
	reply.Records = records
	return nil
}

// Admin set
// ---------

// AdminsArguments - no arguments
type AdminsArguments struct{}

// AdminsReply - the owner and the sorted admin set
type AdminsReply struct {
	Owner  address.Address   `json:"owner"`
	Admins []address.Address `json:"admins"`
}

// Admins - list the admin set
func (token *Token) Admins(arg *AdminsArguments, reply *AdminsReply) error {
	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	token.Log.Debug("Token.Admins")

	reply.Owner = token.Ledger.Info().Owner
	reply.Admins = token.Ledger.Admins()
	token.Observer.Observe("Token.Admins", nil)
	return nil
}
