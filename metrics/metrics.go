// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package metrics - Prometheus counters and gauges for the ledger
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pawledger/pawledgerd/amount"
	"github.com/pawledger/pawledgerd/fault"
	"github.com/pawledger/pawledgerd/ledger"
)

const namespace = "pawledger"

// results that are not a ledger error kind
const (
	resultOK    = "ok"
	resultError = "error"
)

// Observer - receives the outcome of each RPC operation
type Observer interface {
	Observe(operation string, err error)
	Update(info ledger.Info)
}

// Metrics - the collectors of one ledger
type Metrics struct {
	registry     *prometheus.Registry
	operations   *prometheus.CounterVec
	totalSupply  prometheus.Gauge
	treasury     prometheus.Gauge
	transactions prometheus.Gauge
	invariantOK  prometheus.Gauge
}

// New - create and register all collectors on a private registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "ledger operations by name and result",
		}, []string{"operation", "result"}),
		totalSupply: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "total_supply",
			Help:      "total supply in whole tokens",
		}),
		treasury: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "treasury_balance",
			Help:      "treasury balance in whole tokens",
		}),
		transactions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "transactions",
			Help:      "number of records in the transaction log",
		}),
		invariantOK: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "invariant_ok",
			Help:      "1 if balances and treasury sum to the total supply",
		}),
	}

	m.registry.MustRegister(
		m.operations,
		m.totalSupply,
		m.treasury,
		m.transactions,
		m.invariantOK,
	)
	return m
}

// Observe - count one completed operation
//
// the result label is "ok", the ledger error kind, or "error"
func (m *Metrics) Observe(operation string, err error) {
	if nil == m {
		return
	}
	result := resultOK
	if nil != err {
		result = fault.Kind(err)
		if "" == result {
			result = resultError
		}
	}
	m.operations.WithLabelValues(operation, result).Inc()
}

// Update - set the gauges from a ledger snapshot
func (m *Metrics) Update(info ledger.Info) {
	if nil == m {
		return
	}
	m.totalSupply.Set(amount.Float(info.TotalSupply, info.Decimals))
	m.treasury.Set(amount.Float(info.TreasuryBalance, info.Decimals))
	m.transactions.Set(float64(info.TransactionCount))
}

// SetInvariant - record the latest audit result
func (m *Metrics) SetInvariant(ok bool) {
	if nil == m {
		return
	}
	if ok {
		m.invariantOK.Set(1)
	} else {
		m.invariantOK.Set(0)
	}
}

// Handler - HTTP exposition of the registry
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
