// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/pawledger/pawledgerd/address"
	"github.com/pawledger/pawledgerd/amount"
)

// Journal - receives each state transition before it becomes visible
//
// Commit must be all or nothing: on error nothing may have been
// persisted
type Journal interface {
	Commit(*Change) error
}

// Change - the complete effect of one successful operation
//
// Supply, Treasury, Paused and Count are the values after the
// operation; Balances holds only the touched accounts with their new
// balance (zero means remove the entry); Admins maps an address to
// true for added and false for removed
type Change struct {
	Parameters *Parameters // only set at construction
	Balances   map[address.Address]amount.Amount
	Admins     map[address.Address]bool
	Supply     amount.Amount
	Treasury   amount.Amount
	Paused     bool
	Count      uint64  // number of records after the operation
	Record     *Record // appended at index Count-1
}

// Snapshot - full persisted state used to restore a ledger
type Snapshot struct {
	Parameters Parameters
	Balances   map[address.Address]amount.Amount
	Admins     []address.Address
	Supply     amount.Amount
	Treasury   amount.Amount
	Paused     bool
	Records    []Record
}
