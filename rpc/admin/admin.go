// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package admin

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/pawledger/pawledgerd/address"
	"github.com/pawledger/pawledgerd/fault"
	"github.com/pawledger/pawledgerd/ledger"
	"github.com/pawledger/pawledgerd/metrics"
	"github.com/pawledger/pawledgerd/mode"
	"github.com/pawledger/pawledgerd/rpc/ratelimit"
)

// Admin
// -----

const (
	rateLimitAdmin = 10
	rateBurstAdmin = 5
)

// Admin - type for RPC
type Admin struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	IsNormalMode func(mode.Mode) bool
	Ledger       ledger.Handle
	Observer     metrics.Observer
}

// New - create the owner administration service
func New(log *logger.L,
	isNormalMode func(mode.Mode) bool,
	l ledger.Handle,
	observer metrics.Observer,
) *Admin {
	return &Admin{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitAdmin, rateBurstAdmin),
		IsNormalMode: isNormalMode,
		Ledger:       l,
		Observer:     observer,
	}
}

// Reply - admin state after the change
type Reply struct {
	Admins []address.Address `json:"admins"`
	Paused bool              `json:"paused"`
}

func (admin *Admin) apply(name string, arg interface{}, reply *Reply, f func() error) error {
	if err := ratelimit.Limit(admin.Limiter); nil != err {
		return err
	}

	log := admin.Log
	log.Infof("%s: %+v", name, arg)

	if !admin.IsNormalMode(mode.Normal) {
		return fault.NotAvailable
	}

	err := f()
	admin.Observer.Observe(name, err)
	if nil != err {
		log.Warnf("%s: rejected: %s", name, err)
		return err
	}

	info := admin.Ledger.Info()
	admin.Observer.Update(info)

	reply.Admins = admin.Ledger.Admins()
	reply.Paused = info.Paused
	return nil
}

// Grant and revoke
// ----------------

// Arguments - owner caller changes membership of account
type Arguments struct {
	Caller  address.Address `json:"caller"`
	Account address.Address `json:"account"`
}

// Add - grant admin rights, owner only
func (admin *Admin) Add(arg *Arguments, reply *Reply) error {
	return admin.apply("Admin.Add", arg, reply, func() error {
		return admin.Ledger.AddAdmin(arg.Caller, arg.Account)
	})
}

// Remove - revoke admin rights, owner only and never from the owner
func (admin *Admin) Remove(arg *Arguments, reply *Reply) error {
	return admin.apply("Admin.Remove", arg, reply, func() error {
		return admin.Ledger.RemoveAdmin(arg.Caller, arg.Account)
	})
}

// Pause switch
// ------------

// SetPausedArguments - owner caller sets the flag
type SetPausedArguments struct {
	Caller address.Address `json:"caller"`
	Paused bool            `json:"paused"`
}

// SetPaused - set or clear the pause flag, owner only
func (admin *Admin) SetPaused(arg *SetPausedArguments, reply *Reply) error {
	return admin.apply("Admin.SetPaused", arg, reply, func() error {
		return admin.Ledger.SetPaused(arg.Caller, arg.Paused)
	})
}
