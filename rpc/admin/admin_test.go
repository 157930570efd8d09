// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package admin_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/pawledger/pawledgerd/address"
	"github.com/pawledger/pawledgerd/fault"
	"github.com/pawledger/pawledgerd/ledger"
	"github.com/pawledger/pawledgerd/mode"
	"github.com/pawledger/pawledgerd/rpc/admin"
	"github.com/pawledger/pawledgerd/rpc/fixtures"
	"github.com/pawledger/pawledgerd/rpc/mocks"
)

func normal(_ mode.Mode) bool {
	return true
}

func TestAdminAdd(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockHandle(ctl)
	o := mocks.NewMockObserver(ctl)

	admins := []address.Address{fixtures.Owner, fixtures.Alice}

	l.EXPECT().AddAdmin(fixtures.Owner, fixtures.Alice).Return(nil).Times(1)
	l.EXPECT().Info().Return(ledger.Info{}).Times(1)
	l.EXPECT().Admins().Return(admins).Times(1)
	o.EXPECT().Observe("Admin.Add", nil).Times(1)
	o.EXPECT().Update(ledger.Info{}).Times(1)

	a := admin.New(logger.New(fixtures.LogCategory), normal, l, o)

	var reply admin.Reply
	err := a.Add(&admin.Arguments{Caller: fixtures.Owner, Account: fixtures.Alice}, &reply)
	assert.Nil(t, err, "wrong Add")
	assert.Equal(t, admins, reply.Admins, "wrong admins")
	assert.False(t, reply.Paused, "wrong paused")
}

func TestAdminRemove(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockHandle(ctl)
	o := mocks.NewMockObserver(ctl)

	l.EXPECT().RemoveAdmin(fixtures.Owner, fixtures.Owner).Return(fault.CannotRemoveOwner).Times(1)
	l.EXPECT().RemoveAdmin(fixtures.Alice, fixtures.Bob).Return(fault.Unauthorized).Times(1)
	o.EXPECT().Observe("Admin.Remove", fault.CannotRemoveOwner).Times(1)
	o.EXPECT().Observe("Admin.Remove", fault.Unauthorized).Times(1)

	a := admin.New(logger.New(fixtures.LogCategory), normal, l, o)

	var reply admin.Reply
	err := a.Remove(&admin.Arguments{Caller: fixtures.Owner, Account: fixtures.Owner}, &reply)
	assert.Equal(t, fault.CannotRemoveOwner, err, "owner removed")

	err = a.Remove(&admin.Arguments{Caller: fixtures.Alice, Account: fixtures.Bob}, &reply)
	assert.Equal(t, fault.Unauthorized, err, "non-owner removed admin")
}

func TestAdminSetPaused(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockHandle(ctl)
	o := mocks.NewMockObserver(ctl)

	info := ledger.Info{Paused: true}

	l.EXPECT().SetPaused(fixtures.Owner, true).Return(nil).Times(1)
	l.EXPECT().Info().Return(info).Times(1)
	l.EXPECT().Admins().Return([]address.Address{fixtures.Owner}).Times(1)
	o.EXPECT().Observe("Admin.SetPaused", nil).Times(1)
	o.EXPECT().Update(info).Times(1)

	a := admin.New(logger.New(fixtures.LogCategory), normal, l, o)

	var reply admin.Reply
	err := a.SetPaused(&admin.SetPausedArguments{Caller: fixtures.Owner, Paused: true}, &reply)
	assert.Nil(t, err, "wrong SetPaused")
	assert.True(t, reply.Paused, "not paused")
}

func TestAdminWhenNotNormalMode(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockHandle(ctl)
	o := mocks.NewMockObserver(ctl)

	a := admin.New(logger.New(fixtures.LogCategory), func(_ mode.Mode) bool { return false }, l, o)

	var reply admin.Reply
	err := a.SetPaused(&admin.SetPausedArguments{Caller: fixtures.Owner, Paused: true}, &reply)
	assert.Equal(t, fault.NotAvailable, err, "wrong error")
}
