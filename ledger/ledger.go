// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"
	"time"

	"github.com/pawledger/pawledgerd/address"
	"github.com/pawledger/pawledgerd/amount"
	"github.com/pawledger/pawledgerd/fault"
)

// Handle - the operation set as seen by the RPC services
type Handle interface {
	Transfer(caller address.Address, to address.Address, value amount.Amount) error
	Mint(caller address.Address, to address.Address, value amount.Amount) error
	Burn(caller address.Address, value amount.Amount) error
	DepositToTreasury(caller address.Address, value amount.Amount) error
	WithdrawFromTreasury(caller address.Address, to address.Address, value amount.Amount) error
	AddAdmin(caller address.Address, admin address.Address) error
	RemoveAdmin(caller address.Address, admin address.Address) error
	SetPaused(caller address.Address, paused bool) error

	Info() Info
	BalanceOf(account address.Address) amount.Amount
	IsAdmin(account address.Address) bool
	Admins() []address.Address
	Transactions(start int, count int) ([]Record, error)
}

// Ledger - the token state machine
type Ledger struct {
	sync.RWMutex

	parameters Parameters
	location   address.Address
	balances   map[address.Address]amount.Amount
	admins     adminSet
	supply     amount.Amount
	treasury   amount.Amount
	paused     bool
	history    history

	journal Journal
	policy  PausePolicy
	now     func() time.Time
}

// Option - construction time setting
type Option func(*Ledger)

// WithClock - time source for record timestamps
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// WithPausePolicy - select the operations blocked by pause
func WithPausePolicy(policy PausePolicy) Option {
	return func(l *Ledger) {
		l.policy = policy
	}
}

func newLedger(journal Journal, options []Option) *Ledger {
	l := &Ledger{
		balances: make(map[address.Address]amount.Amount),
		journal:  journal,
		policy:   PauseValueTransfers,
		now:      time.Now,
	}
	for _, option := range options {
		option(l)
	}
	return l
}

// New - create a ledger with the whole initial supply held by the owner
//
// the journal may be nil for a memory only ledger
func New(parameters Parameters, journal Journal, options ...Option) (*Ledger, error) {
	if err := parameters.validate(); nil != err {
		return nil, err
	}

	l := newLedger(journal, options)
	parameters.Created = uint64(l.now().Unix())

	c := &Change{
		Parameters: &parameters,
		Balances:   map[address.Address]amount.Amount{parameters.Owner: parameters.InitialSupply},
		Admins:     map[address.Address]bool{parameters.Owner: true},
		Supply:     parameters.InitialSupply,
		Treasury:   amount.Zero,
		Paused:     false,
	}

	l.Lock()
	defer l.Unlock()

	if err := l.commit(c); nil != err {
		return nil, err
	}
	return l, nil
}

// Restore - rebuild a ledger from persisted state
func Restore(snapshot *Snapshot, journal Journal, options ...Option) (*Ledger, error) {
	if nil == snapshot {
		return nil, fault.InvalidConfig
	}
	if err := snapshot.Parameters.validate(); nil != err {
		return nil, err
	}

	l := newLedger(journal, options)
	l.parameters = snapshot.Parameters
	l.location = snapshot.Parameters.Location()
	l.admins = newAdminSet(snapshot.Admins...)
	l.supply = snapshot.Supply
	l.treasury = snapshot.Treasury
	l.paused = snapshot.Paused
	l.history.records = append([]Record(nil), snapshot.Records...)

	for a, v := range snapshot.Balances {
		if !v.IsZero() {
			l.balances[a] = v
		}
	}

	if !l.admins.has(l.parameters.Owner) {
		return nil, fault.InvalidConfig
	}
	if err := l.verify(); nil != err {
		return nil, fault.InvalidConfig
	}
	return l, nil
}

// Transfer - move value between two accounts
func (l *Ledger) Transfer(caller address.Address, to address.Address, value amount.Amount) error {
	l.Lock()
	defer l.Unlock()

	if l.paused {
		return fault.Paused
	}
	if value.IsZero() {
		return fault.InvalidAmount
	}
	if l.balances[caller].LessThan(value) {
		return fault.InsufficientBalance
	}
	if to.IsNull() {
		return fault.InvalidAddress
	}

	c := l.newChange()
	if err := c.debit(l, caller, value); nil != err {
		return err
	}
	if err := c.credit(l, to, value); nil != err {
		return err
	}
	c.append(l, caller, to, value, Transfer)

	return l.commit(c)
}

// Mint - admin creates new value
func (l *Ledger) Mint(caller address.Address, to address.Address, value amount.Amount) error {
	l.Lock()
	defer l.Unlock()

	if !l.admins.has(caller) {
		return fault.Unauthorized
	}
	if l.paused {
		return fault.Paused
	}
	if value.IsZero() {
		return fault.InvalidAmount
	}
	if to.IsNull() {
		return fault.InvalidAddress
	}

	c := l.newChange()
	supply, ok := l.supply.Add(value)
	if !ok {
		return fault.InvalidAmount
	}
	c.Supply = supply
	if err := c.credit(l, to, value); nil != err {
		return err
	}
	c.append(l, address.Null, to, value, Mint)

	return l.commit(c)
}

// Burn - destroy value from the caller's own balance
func (l *Ledger) Burn(caller address.Address, value amount.Amount) error {
	l.Lock()
	defer l.Unlock()

	if l.paused {
		return fault.Paused
	}
	if value.IsZero() {
		return fault.InvalidAmount
	}
	if l.balances[caller].LessThan(value) {
		return fault.InsufficientBalance
	}

	c := l.newChange()
	if err := c.debit(l, caller, value); nil != err {
		return err
	}
	supply, ok := l.supply.Sub(value)
	if !ok {
		return fault.InvalidAmount
	}
	c.Supply = supply
	c.append(l, caller, address.Null, value, Burn)

	return l.commit(c)
}

// DepositToTreasury - move value from the caller into the treasury
func (l *Ledger) DepositToTreasury(caller address.Address, value amount.Amount) error {
	l.Lock()
	defer l.Unlock()

	if l.paused && PauseAll == l.policy {
		return fault.Paused
	}
	if value.IsZero() {
		return fault.InvalidAmount
	}
	if l.balances[caller].LessThan(value) {
		return fault.InsufficientBalance
	}

	c := l.newChange()
	if err := c.debit(l, caller, value); nil != err {
		return err
	}
	treasury, ok := l.treasury.Add(value)
	if !ok {
		return fault.InvalidAmount
	}
	c.Treasury = treasury
	c.append(l, caller, l.location, value, Deposit)

	return l.commit(c)
}

// WithdrawFromTreasury - owner moves value from the treasury to an account
func (l *Ledger) WithdrawFromTreasury(caller address.Address, to address.Address, value amount.Amount) error {
	l.Lock()
	defer l.Unlock()

	if caller != l.parameters.Owner {
		return fault.Unauthorized
	}
	if l.paused && PauseAll == l.policy {
		return fault.Paused
	}
	if value.IsZero() {
		return fault.InvalidAmount
	}
	if l.treasury.LessThan(value) {
		return fault.InsufficientTreasury
	}
	if to.IsNull() {
		return fault.InvalidAddress
	}

	c := l.newChange()
	c.Treasury, _ = l.treasury.Sub(value)
	if err := c.credit(l, to, value); nil != err {
		return err
	}
	c.append(l, l.location, to, value, Withdraw)

	return l.commit(c)
}

// AddAdmin - owner grants admin rights
func (l *Ledger) AddAdmin(caller address.Address, admin address.Address) error {
	l.Lock()
	defer l.Unlock()

	if caller != l.parameters.Owner {
		return fault.Unauthorized
	}
	if admin.IsNull() {
		return fault.InvalidAddress
	}
	if l.admins.has(admin) {
		return nil
	}

	c := l.newChange()
	c.Admins = map[address.Address]bool{admin: true}
	return l.commit(c)
}

// RemoveAdmin - owner revokes admin rights, never from the owner
func (l *Ledger) RemoveAdmin(caller address.Address, admin address.Address) error {
	l.Lock()
	defer l.Unlock()

	if caller != l.parameters.Owner {
		return fault.Unauthorized
	}
	if admin == l.parameters.Owner {
		return fault.CannotRemoveOwner
	}
	if !l.admins.has(admin) {
		return nil
	}

	c := l.newChange()
	c.Admins = map[address.Address]bool{admin: false}
	return l.commit(c)
}

// SetPaused - owner sets the pause flag
func (l *Ledger) SetPaused(caller address.Address, paused bool) error {
	l.Lock()
	defer l.Unlock()

	if caller != l.parameters.Owner {
		return fault.Unauthorized
	}
	if paused == l.paused {
		return nil
	}

	c := l.newChange()
	c.Paused = paused
	return l.commit(c)
}

// a change that initially leaves everything as it is
// caller must hold the lock
func (l *Ledger) newChange() *Change {
	return &Change{
		Balances: make(map[address.Address]amount.Amount, 2),
		Supply:   l.supply,
		Treasury: l.treasury,
		Paused:   l.paused,
		Count:    uint64(l.history.length()),
	}
}

// current balance including any earlier edit in this change
func (c *Change) balance(l *Ledger, a address.Address) amount.Amount {
	if v, ok := c.Balances[a]; ok {
		return v
	}
	return l.balances[a]
}

func (c *Change) debit(l *Ledger, a address.Address, value amount.Amount) error {
	v, ok := c.balance(l, a).Sub(value)
	if !ok {
		return fault.InsufficientBalance
	}
	c.Balances[a] = v
	return nil
}

func (c *Change) credit(l *Ledger, a address.Address, value amount.Amount) error {
	v, ok := c.balance(l, a).Add(value)
	if !ok {
		return fault.InvalidAmount
	}
	c.Balances[a] = v
	return nil
}

func (c *Change) append(l *Ledger, from address.Address, to address.Address, value amount.Amount, txType TxType) {
	c.Record = &Record{
		From:      from,
		To:        to,
		Amount:    value,
		Timestamp: uint64(l.now().Unix()),
		TxType:    txType,
	}
	c.Count += 1
}

// persist then apply, caller must hold the lock
func (l *Ledger) commit(c *Change) error {
	if nil != l.journal {
		if err := l.journal.Commit(c); nil != err {
			return err
		}
	}

	if nil != c.Parameters {
		l.parameters = *c.Parameters
		l.location = c.Parameters.Location()
		l.admins = newAdminSet()
	}
	for a, v := range c.Balances {
		if v.IsZero() {
			delete(l.balances, a)
		} else {
			l.balances[a] = v
		}
	}
	for a, added := range c.Admins {
		if added {
			l.admins.add(a)
		} else {
			l.admins.remove(a)
		}
	}
	l.supply = c.Supply
	l.treasury = c.Treasury
	l.paused = c.Paused
	if nil != c.Record {
		l.history.append(*c.Record)
	}
	return nil
}
