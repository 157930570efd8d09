// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/pawledger/pawledgerd/address"
	"github.com/pawledger/pawledgerd/amount"
	"github.com/pawledger/pawledgerd/fault"
)

// Info - the scalar read projection
type Info struct {
	Name             string          `json:"name"`
	Symbol           string          `json:"symbol"`
	Decimals         uint8           `json:"decimals"`
	Owner            address.Address `json:"owner"`
	Location         address.Address `json:"location"`
	TotalSupply      amount.Amount   `json:"totalSupply"`
	TreasuryBalance  amount.Amount   `json:"treasuryBalance"`
	Paused           bool            `json:"paused"`
	PausePolicy      string          `json:"pausePolicy"`
	TransactionCount uint64          `json:"transactionCount"`
	Created          uint64          `json:"created"`
}

// Info - consistent snapshot of all scalar values
func (l *Ledger) Info() Info {
	l.RLock()
	defer l.RUnlock()

	return Info{
		Name:             l.parameters.Name,
		Symbol:           l.parameters.Symbol,
		Decimals:         l.parameters.Decimals,
		Owner:            l.parameters.Owner,
		Location:         l.location,
		TotalSupply:      l.supply,
		TreasuryBalance:  l.treasury,
		Paused:           l.paused,
		PausePolicy:      l.policy.String(),
		TransactionCount: uint64(l.history.length()),
		Created:          l.parameters.Created,
	}
}

// Name - token name
func (l *Ledger) Name() string {
	l.RLock()
	defer l.RUnlock()
	return l.parameters.Name
}

// Symbol - token symbol
func (l *Ledger) Symbol() string {
	l.RLock()
	defer l.RUnlock()
	return l.parameters.Symbol
}

// Decimals - scaling of the smallest unit
func (l *Ledger) Decimals() uint8 {
	l.RLock()
	defer l.RUnlock()
	return l.parameters.Decimals
}

// Owner - the immutable owner
func (l *Ledger) Owner() address.Address {
	l.RLock()
	defer l.RUnlock()
	return l.parameters.Owner
}

// Location - the address standing for the treasury
func (l *Ledger) Location() address.Address {
	l.RLock()
	defer l.RUnlock()
	return l.location
}

// BalanceOf - balance of an account, zero if never credited
func (l *Ledger) BalanceOf(account address.Address) amount.Amount {
	l.RLock()
	defer l.RUnlock()
	return l.balances[account]
}

// TotalSupply - sum of all balances and the treasury
func (l *Ledger) TotalSupply() amount.Amount {
	l.RLock()
	defer l.RUnlock()
	return l.supply
}

// TreasuryBalance - value held by the treasury
func (l *Ledger) TreasuryBalance() amount.Amount {
	l.RLock()
	defer l.RUnlock()
	return l.treasury
}

// IsPaused - current pause flag
func (l *Ledger) IsPaused() bool {
	l.RLock()
	defer l.RUnlock()
	return l.paused
}

// IsAdmin - admin set membership, the owner is always a member
func (l *Ledger) IsAdmin(account address.Address) bool {
	l.RLock()
	defer l.RUnlock()
	return l.admins.has(account)
}

// Admins - sorted list of the admin set
func (l *Ledger) Admins() []address.Address {
	l.RLock()
	defer l.RUnlock()
	return l.admins.list()
}

// TransactionCount - number of records in the log
func (l *Ledger) TransactionCount() uint64 {
	l.RLock()
	defer l.RUnlock()
	return uint64(l.history.length())
}

// Transactions - records [start, start+count) oldest first
//
// the range is clipped to the log length; a negative start or count,
// or a start beyond the end, is InvalidRange
func (l *Ledger) Transactions(start int, count int) ([]Record, error) {
	l.RLock()
	defer l.RUnlock()
	return l.history.slice(start, count)
}

// Verify - recompute sum(balances) + treasury and compare with supply
func (l *Ledger) Verify() error {
	l.RLock()
	defer l.RUnlock()
	return l.verify()
}

func (l *Ledger) verify() error {
	total := l.treasury
	for _, v := range l.balances {
		var ok bool
		total, ok = total.Add(v)
		if !ok {
			return fault.SupplyMismatch
		}
	}
	if 0 != total.Cmp(l.supply) {
		return fault.SupplyMismatch
	}
	return nil
}
