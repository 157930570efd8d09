// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package deployment_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pawledger/pawledgerd/address"
	"github.com/pawledger/pawledgerd/amount"
	"github.com/pawledger/pawledgerd/deployment"
	"github.com/pawledger/pawledgerd/fault"
	"github.com/pawledger/pawledgerd/ledger"
)

func testInfo() ledger.Info {
	owner := address.Address{0xcc, 19: 0x01}
	p := ledger.Parameters{
		Name:   "PawToken",
		Symbol: "PAW",
		Owner:  owner,
	}
	return ledger.Info{
		Name:        p.Name,
		Symbol:      p.Symbol,
		Decimals:    18,
		Owner:       owner,
		Location:    p.Location(),
		TotalSupply: amount.New(1000),
		Created:     1584198566,
	}
}

func TestWriteRead(t *testing.T) {
	dir, err := ioutil.TempDir("", "deployment")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "deployment.json")
	info := testInfo()
	listen := []string{"127.0.0.1:2130"}

	a := deployment.New(info, "testing", listen)
	assert.Nil(t, a.Write(fileName), "write")

	data, err := ioutil.ReadFile(fileName)
	assert.Nil(t, err, "read file")
	for _, key := range []string{"ledgerLocation", "network", "deployTimestamp", "deployer", "name", "symbol", "decimals", "rpc", "interface"} {
		assert.True(t, strings.Contains(string(data), `"`+key+`"`), "missing key: %s", key)
	}

	r, err := deployment.Read(fileName)
	assert.Nil(t, err, "read")
	assert.Equal(t, a, r, "round trip")
	assert.Equal(t, info.Location, r.LedgerLocation, "location")
	assert.Equal(t, info.Owner, r.Deployer, "deployer")
	assert.Equal(t, uint64(1584198566), r.DeployTimestamp, "timestamp")
	assert.Equal(t, len(deployment.Interface), len(r.Interface), "interface")
}

func TestWriteOnce(t *testing.T) {
	dir, err := ioutil.TempDir("", "deployment")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "deployment.json")
	assert.Nil(t, deployment.New(testInfo(), "testing", nil).Write(fileName), "first write")

	before, _ := ioutil.ReadFile(fileName)
	err = deployment.New(testInfo(), "live", nil).Write(fileName)
	assert.Equal(t, fault.DeploymentExists, err, "overwrite")

	after, _ := ioutil.ReadFile(fileName)
	assert.Equal(t, before, after, "file changed")
}

func TestInterfaceNames(t *testing.T) {
	seen := make(map[string]bool)
	mutating := 0
	for _, m := range deployment.Interface {
		assert.False(t, seen[m.Name], "duplicate: %s", m.Name)
		seen[m.Name] = true
		if m.Mutates {
			mutating += 1
			assert.Equal(t, "caller", m.Arguments[0], "%s: first argument", m.Name)
		}
	}
	assert.Equal(t, 8, mutating, "mutating methods")
}
