// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/pawledger/pawledgerd/amount"
	"github.com/pawledger/pawledgerd/deployment"
	"github.com/pawledger/pawledgerd/fault"
	"github.com/pawledger/pawledgerd/ledger"
	"github.com/pawledger/pawledgerd/storage"
)

const testConfiguration = `
local M = {}
M.data_directory = "."
M.chain = "testing"
M.token = {
    name = "PawToken",
    symbol = "PAW",
    decimals = 2,
    initial_supply = "1000",
    owner = "0x00000000000000000000000000000000000000aa",
    pause_treasury = true,
}
M.client_rpc = {
    listen = { "127.0.0.1:2130" },
}
M.logging = {
    console = false,
    levels = { DEFAULT = "critical" },
}
return M
`

func writeConfiguration(t *testing.T, text string) (string, string) {
	dir, err := ioutil.TempDir("", "pawledgerd")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "pawledgerd.conf")
	if err := ioutil.WriteFile(fileName, []byte(text), 0600); nil != err {
		t.Fatalf("write config error: %s", err)
	}
	return dir, fileName
}

func TestGetConfiguration(t *testing.T) {
	dir, fileName := writeConfiguration(t, testConfiguration)
	defer os.RemoveAll(dir)

	options, err := getConfiguration(fileName)
	if nil != err {
		t.Fatalf("configuration error: %s", err)
	}

	dir, _ = filepath.EvalSymlinks(dir)
	dataDirectory, _ := filepath.EvalSymlinks(options.DataDirectory)

	assert.Equal(t, dir, dataDirectory, "data directory")
	assert.Equal(t, "testing", options.Chain, "chain")
	assert.Equal(t, filepath.Join(options.DataDirectory, "data", "testing.leveldb"), options.Database.Name, "database")
	assert.Equal(t, filepath.Join(options.DataDirectory, "rpc.crt"), options.ClientRPC.Certificate, "certificate")
	assert.Equal(t, filepath.Join(options.DataDirectory, "deployment.json"), options.DeploymentFile, "deployment")
	assert.Equal(t, uint64(defaultRPCClients), options.ClientRPC.MaximumConnections, "default connections")
	assert.Equal(t, defaultAuditInterval, options.AuditInterval, "default audit interval")
	assert.Equal(t, "", options.PidFile, "pid file")

	p, err := options.parameters()
	assert.Nil(t, err, "parameters")
	assert.Equal(t, amount.New(100000), p.InitialSupply, "supply scaled by decimals")
	assert.Equal(t, uint8(2), p.Decimals, "decimals")
	assert.Equal(t, 1, len(options.ledgerOptions()), "pause policy option")

	_, err = os.Stat(filepath.Join(options.DataDirectory, "log"))
	assert.Nil(t, err, "log directory not created")
}

func TestGetConfigurationErrors(t *testing.T) {
	dir, fileName := writeConfiguration(t, `return { data_directory = ".", chain = "bitcoin" }`)
	defer os.RemoveAll(dir)

	_, err := getConfiguration(fileName)
	assert.NotNil(t, err, "bad chain accepted")

	dir2, fileName := writeConfiguration(t, `return { data_directory = ".", token = { decimals = 78 } }`)
	defer os.RemoveAll(dir2)

	_, err = getConfiguration(fileName)
	assert.Equal(t, fault.InvalidDecimals, err, "wrong error")

	dir3, fileName := writeConfiguration(t, `return { chain = "local" }`)
	defer os.RemoveAll(dir3)

	_, err = getConfiguration(fileName)
	assert.NotNil(t, err, "blank data directory accepted")

	_, err = getConfiguration(filepath.Join(dir, "missing.conf"))
	assert.Equal(t, fault.ConfigurationFileNotFound, err, "wrong error")
}

func TestOpenLedger(t *testing.T) {
	dir, fileName := writeConfiguration(t, testConfiguration)
	defer os.RemoveAll(dir)

	options, err := getConfiguration(fileName)
	if nil != err {
		t.Fatalf("configuration error: %s", err)
	}

	_ = logger.Initialise(options.Logging)
	defer logger.Finalise()
	log := logger.New("test")

	store, err := storage.Open(options.Database.Name, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}

	l, err := openLedger(log, options, store)
	if nil != err {
		t.Fatalf("create error: %s", err)
	}
	info := l.Info()
	assert.Equal(t, "PAW", info.Symbol, "symbol")
	assert.Equal(t, ledger.PauseAll.String(), info.PausePolicy, "pause policy")

	artifact, err := deployment.Read(options.DeploymentFile)
	assert.Nil(t, err, "deployment not written")
	assert.Equal(t, info.Location, artifact.LedgerLocation, "location")
	assert.Equal(t, "testing", artifact.Network, "network")
	assert.Equal(t, []string{"127.0.0.1:2130"}, artifact.RPC, "rpc")

	err = l.Transfer(info.Owner, info.Location, amount.New(5))
	assert.Nil(t, err, "transfer")
	store.Close()

	// second start restores and leaves the artifact alone
	store, err = storage.Open(options.Database.Name, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage reopen error: %s", err)
	}
	l, err = openLedger(log, options, store)
	assert.Nil(t, err, "restore")
	assert.Equal(t, uint64(1), l.TransactionCount(), "transactions")
	assert.Equal(t, amount.New(5), l.BalanceOf(info.Location), "balance")
	store.Close()

	// fresh database with a stale artifact
	options.Database.Name += ".new"
	store, err = storage.Open(options.Database.Name, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	defer store.Close()

	_, err = openLedger(log, options, store)
	assert.Equal(t, fault.DeploymentExists, err, "artifact overwritten")

	snapshot, err := store.Load()
	assert.Nil(t, err, "load")
	assert.Nil(t, snapshot, "ledger created despite stale artifact")
}
