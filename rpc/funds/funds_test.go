// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package funds_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/pawledger/pawledgerd/amount"
	"github.com/pawledger/pawledgerd/fault"
	"github.com/pawledger/pawledgerd/ledger"
	"github.com/pawledger/pawledgerd/mode"
	"github.com/pawledger/pawledgerd/rpc/fixtures"
	"github.com/pawledger/pawledgerd/rpc/funds"
	"github.com/pawledger/pawledgerd/rpc/mocks"
)

func normal(_ mode.Mode) bool {
	return true
}

func TestFundsTransfer(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockHandle(ctl)
	o := mocks.NewMockObserver(ctl)

	info := ledger.Info{
		TotalSupply:      amount.New(1000),
		TransactionCount: 3,
	}

	l.EXPECT().Transfer(fixtures.Alice, fixtures.Bob, amount.New(10)).Return(nil).Times(1)
	l.EXPECT().Info().Return(info).Times(1)
	o.EXPECT().Observe("Funds.Transfer", nil).Times(1)
	o.EXPECT().Update(info).Times(1)

	f := funds.New(logger.New(fixtures.LogCategory), normal, l, o)

	arg := funds.TransferArguments{
		Caller: fixtures.Alice,
		To:     fixtures.Bob,
		Amount: amount.New(10),
	}
	var reply funds.Reply
	err := f.Transfer(&arg, &reply)
	assert.Nil(t, err, "wrong Transfer")
	assert.Equal(t, amount.New(1000), reply.TotalSupply, "wrong supply")
	assert.Equal(t, uint64(3), reply.TransactionCount, "wrong count")
}

func TestFundsTransferRejected(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockHandle(ctl)
	o := mocks.NewMockObserver(ctl)

	l.EXPECT().Transfer(gomock.Any(), gomock.Any(), gomock.Any()).Return(fault.InsufficientBalance).Times(1)
	l.EXPECT().Info().Times(0)
	o.EXPECT().Observe("Funds.Transfer", fault.InsufficientBalance).Times(1)
	o.EXPECT().Update(gomock.Any()).Times(0)

	f := funds.New(logger.New(fixtures.LogCategory), normal, l, o)

	var reply funds.Reply
	err := f.Transfer(&funds.TransferArguments{Caller: fixtures.Alice, To: fixtures.Bob, Amount: amount.New(10)}, &reply)
	assert.Equal(t, fault.InsufficientBalance, err, "wrong error")
}

func TestFundsMintBurn(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockHandle(ctl)
	o := mocks.NewMockObserver(ctl)

	l.EXPECT().Mint(fixtures.Owner, fixtures.Alice, amount.New(5)).Return(nil).Times(1)
	l.EXPECT().Burn(fixtures.Alice, amount.New(2)).Return(nil).Times(1)
	l.EXPECT().Mint(fixtures.Mallory, fixtures.Mallory, amount.New(5)).Return(fault.Unauthorized).Times(1)
	l.EXPECT().Info().Return(ledger.Info{}).Times(2)
	o.EXPECT().Observe("Funds.Mint", nil).Times(1)
	o.EXPECT().Observe("Funds.Burn", nil).Times(1)
	o.EXPECT().Observe("Funds.Mint", fault.Unauthorized).Times(1)
	o.EXPECT().Update(gomock.Any()).Times(2)

	f := funds.New(logger.New(fixtures.LogCategory), normal, l, o)

	var reply funds.Reply
	err := f.Mint(&funds.MintArguments{Caller: fixtures.Owner, To: fixtures.Alice, Amount: amount.New(5)}, &reply)
	assert.Nil(t, err, "wrong Mint")

	err = f.Burn(&funds.BurnArguments{Caller: fixtures.Alice, Amount: amount.New(2)}, &reply)
	assert.Nil(t, err, "wrong Burn")

	err = f.Mint(&funds.MintArguments{Caller: fixtures.Mallory, To: fixtures.Mallory, Amount: amount.New(5)}, &reply)
	assert.Equal(t, fault.Unauthorized, err, "wrong error")
}

func TestFundsWhenNotNormalMode(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockHandle(ctl)
	o := mocks.NewMockObserver(ctl)

	l.EXPECT().Transfer(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	o.EXPECT().Observe(gomock.Any(), gomock.Any()).Times(0)

	f := funds.New(
		logger.New(fixtures.LogCategory),
		func(_ mode.Mode) bool { return false },
		l,
		o,
	)

	var reply funds.Reply
	err := f.Transfer(&funds.TransferArguments{Caller: fixtures.Alice, To: fixtures.Bob, Amount: amount.New(1)}, &reply)
	assert.Equal(t, fault.NotAvailable, err, "wrong error")
}
