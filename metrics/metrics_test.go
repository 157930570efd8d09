// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics

import (
	"errors"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/pawledger/pawledgerd/amount"
	"github.com/pawledger/pawledgerd/background"
	"github.com/pawledger/pawledgerd/fault"
	"github.com/pawledger/pawledgerd/ledger"
)

const testingDirName = "testing"

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

func TestObserve(t *testing.T) {
	m := New()

	m.Observe("Funds.Transfer", nil)
	m.Observe("Funds.Transfer", nil)
	m.Observe("Funds.Transfer", fault.InsufficientBalance)
	m.Observe("Funds.Mint", fault.Unauthorized)
	m.Observe("Funds.Mint", errors.New("disk full"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.operations.WithLabelValues("Funds.Transfer", "ok")), "transfer ok")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("Funds.Transfer", "InsufficientBalance")), "transfer insufficient")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("Funds.Mint", "Unauthorized")), "mint unauthorised")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("Funds.Mint", "error")), "mint other error")
}

func TestUpdate(t *testing.T) {
	m := New()

	supply, _ := amount.Parse("1000000", 18)
	treasury, _ := amount.Parse("2.5", 18)
	m.Update(ledger.Info{
		Decimals:         18,
		TotalSupply:      supply,
		TreasuryBalance:  treasury,
		TransactionCount: 7,
	})
	m.SetInvariant(true)

	assert.Equal(t, 1000000.0, testutil.ToFloat64(m.totalSupply), "supply")
	assert.Equal(t, 2.5, testutil.ToFloat64(m.treasury), "treasury")
	assert.Equal(t, 7.0, testutil.ToFloat64(m.transactions), "transactions")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.invariantOK), "invariant")

	m.SetInvariant(false)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.invariantOK), "invariant broken")
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	m.Observe("Token.Info", nil)
	m.Update(ledger.Info{})
	m.SetInvariant(true)
}

func TestHandler(t *testing.T) {
	m := New()
	m.Observe("Admin.Add", nil)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code, "status")
	body := w.Body.String()
	assert.True(t, strings.Contains(body, `pawledger_operations_total{operation="Admin.Add",result="ok"} 1`), "missing counter: %s", body)
	assert.True(t, strings.Contains(body, "pawledger_total_supply"), "missing gauge")
}

func TestServer(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	m := New()
	m.Observe("Token.Info", nil)

	s, err := NewServer(Configuration{Listen: "127.0.0.1:0"}, m)
	if nil != err {
		t.Fatalf("new server error: %s", err)
	}

	p := background.Start(background.Processes{s}, nil)
	defer p.Stop()

	response, err := http.Get("http://" + s.Addr().String() + "/metrics")
	if nil != err {
		t.Fatalf("get error: %s", err)
	}
	defer response.Body.Close()

	body, _ := ioutil.ReadAll(response.Body)
	assert.Equal(t, http.StatusOK, response.StatusCode, "status")
	assert.True(t, strings.Contains(string(body), "pawledger_operations_total"), "missing counter")
}

func TestServerBadAddress(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	_, err := NewServer(Configuration{Listen: "not an address"}, New())
	assert.NotNil(t, err, "bad address accepted")
}
