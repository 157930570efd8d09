// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package audit - periodic check of the ledger supply invariant
package audit

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/pawledger/pawledgerd/background"
	"github.com/pawledger/pawledgerd/ledger"
)

// DefaultInterval - time between checks when not configured
const DefaultInterval = time.Minute

// Verifier - the part of the ledger that the auditor needs
type Verifier interface {
	Verify() error
	Info() ledger.Info
}

// Recorder - receives each audit result
type Recorder interface {
	SetInvariant(ok bool)
	Update(info ledger.Info)
}

// Auditor - background process
type Auditor struct {
	log      *logger.L
	ledger   Verifier
	recorder Recorder
	interval time.Duration
	failures uint64
}

// New - create an auditor, recorder may be nil
func New(l Verifier, recorder Recorder, interval time.Duration) *Auditor {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Auditor{
		log:      logger.New("audit"),
		ledger:   l,
		recorder: recorder,
		interval: interval,
	}
}

// Run - check at every interval until shutdown
func (a *Auditor) Run(args interface{}, shutdown <-chan struct{}) {
	log := a.log

	log.Infof("starting… interval: %s", a.interval)

	a.Check()
	background.Every(a.interval, shutdown, func() {
		a.Check()
	})

	log.Info("stopped")
}

// Check - one verification pass, returns true if the invariant holds
func (a *Auditor) Check() bool {
	err := a.ledger.Verify()
	info := a.ledger.Info()
	ok := nil == err

	if ok {
		a.log.Debugf("supply: %s  treasury: %s  records: %d", info.TotalSupply, info.TreasuryBalance, info.TransactionCount)
	} else {
		a.failures += 1
		a.log.Criticalf("invariant failed: %s  supply: %s  treasury: %s  failures: %d", err, info.TotalSupply, info.TreasuryBalance, a.failures)
	}

	if nil != a.recorder {
		a.recorder.SetInvariant(ok)
		a.recorder.Update(info)
	}
	return ok
}
