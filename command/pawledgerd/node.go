// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"

	"github.com/pawledger/pawledgerd/deployment"
	"github.com/pawledger/pawledgerd/fault"
	"github.com/pawledger/pawledgerd/ledger"
	"github.com/pawledger/pawledgerd/storage"
	"github.com/pawledger/pawledgerd/util"
)

// openLedger - restore the ledger from the journal or, on an empty
// database, create it from the token configuration and write the
// deployment artifact
func openLedger(log *logger.L, options *Configuration, store *storage.Store) (*ledger.Ledger, error) {
	snapshot, err := store.Load()
	if nil != err {
		log.Criticalf("journal load error: %s", err)
		return nil, err
	}

	if nil != snapshot {
		l, err := ledger.Restore(snapshot, store, options.ledgerOptions()...)
		if nil != err {
			log.Criticalf("ledger restore error: %s", err)
			return nil, err
		}

		info := l.Info()
		log.Infof("restored: %s (%s)  supply: %s  transactions: %d", info.Name, info.Symbol, info.TotalSupply, info.TransactionCount)

		if info.Name != options.Token.Name || info.Symbol != options.Token.Symbol {
			log.Warnf("configured token: %s (%s) differs from stored: %s (%s), stored values are used",
				options.Token.Name, options.Token.Symbol, info.Name, info.Symbol)
		}
		return l, nil
	}

	parameters, err := options.parameters()
	if nil != err {
		log.Criticalf("token configuration error: %s", err)
		return nil, err
	}

	// refuse before anything is written so a stale artifact is never
	// left describing a different ledger
	if "" != options.DeploymentFile && util.FileExists(options.DeploymentFile) {
		log.Criticalf("deployment file: %q already exists", options.DeploymentFile)
		return nil, fault.DeploymentExists
	}

	l, err := ledger.New(parameters, store, options.ledgerOptions()...)
	if nil != err {
		log.Criticalf("ledger create error: %s", err)
		return nil, err
	}

	info := l.Info()
	log.Infof("created: %s (%s)  supply: %s  owner: %s  location: %s",
		info.Name, info.Symbol, info.TotalSupply, info.Owner, info.Location)

	if "" != options.DeploymentFile {
		artifact := deployment.New(info, options.Chain, options.ClientRPC.Listen)
		if err := artifact.Write(options.DeploymentFile); nil != err {
			log.Criticalf("deployment file: %q  write error: %s", options.DeploymentFile, err)
			return nil, err
		}
		log.Infof("deployment written to: %q", options.DeploymentFile)
	}

	return l, nil
}
