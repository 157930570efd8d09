// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pawledger/pawledgerd/address"
	"github.com/pawledger/pawledgerd/amount"
	"github.com/pawledger/pawledgerd/ledger"
)

func TestCheckAmount(t *testing.T) {
	a, err := checkAmount(" 1.25 ", 2)
	assert.Nil(t, err, "valid amount")
	assert.Equal(t, amount.New(125), a, "wrong units")

	_, err = checkAmount("", 2)
	assert.NotNil(t, err, "blank accepted")

	_, err = checkAmount("0", 2)
	assert.NotNil(t, err, "zero accepted")

	_, err = checkAmount("1.234", 2)
	assert.NotNil(t, err, "excess precision accepted")

	_, err = checkAmount("-1", 2)
	assert.NotNil(t, err, "negative accepted")
}

func TestCheckAddress(t *testing.T) {
	a, err := checkAddress("to", "0x00000000000000000000000000000000000000aa")
	assert.Nil(t, err, "valid address")
	assert.Equal(t, byte(0xaa), a[address.Length-1], "wrong address")

	_, err = checkAddress("to", "")
	assert.NotNil(t, err, "blank accepted")

	_, err = checkAddress("to", "0x1234")
	assert.NotNil(t, err, "short address accepted")

	_, err = checkCaller(&metadata{})
	assert.NotNil(t, err, "missing caller accepted")
}

func TestFormatRecords(t *testing.T) {
	records := []ledger.Record{
		{TxType: ledger.Mint, Amount: amount.New(150), Timestamp: 0},
		{TxType: ledger.Burn, Amount: amount.New(5), Timestamp: 60},
	}
	results := formatRecords(7, records, 2)

	assert.Equal(t, 2, len(results), "wrong length")
	assert.Equal(t, 7, results[0].Index, "wrong index")
	assert.Equal(t, 8, results[1].Index, "wrong index")
	assert.Equal(t, "1.5", results[0].Amount, "wrong amount")
	assert.Equal(t, "0.05", results[1].Amount, "wrong amount")
	assert.Equal(t, "1970-01-01T00:01:00Z", results[1].Timestamp, "wrong timestamp")
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out

	err := app.Run([]string{"pawledger-cli", "version"})
	assert.Nil(t, err, "version command")
	assert.Equal(t, version+"\n", out.String(), "wrong output")
}
