// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package server - the RPC service set exposed to clients
package server

import (
	"net/rpc"

	"github.com/bitmark-inc/logger"

	"github.com/pawledger/pawledgerd/ledger"
	"github.com/pawledger/pawledgerd/metrics"
	"github.com/pawledger/pawledgerd/mode"
	"github.com/pawledger/pawledgerd/rpc/admin"
	"github.com/pawledger/pawledgerd/rpc/funds"
	"github.com/pawledger/pawledgerd/rpc/token"
	"github.com/pawledger/pawledgerd/rpc/treasury"
)

// Create - register all services on a new server
func Create(log *logger.L, l ledger.Handle, observer metrics.Observer) *rpc.Server {

	server := rpc.NewServer()

	_ = server.Register(token.New(log, l, observer))
	_ = server.Register(funds.New(log, mode.Is, l, observer))
	_ = server.Register(treasury.New(log, mode.Is, l, observer))
	_ = server.Register(admin.New(log, mode.Is, l, observer))

	return server
}
