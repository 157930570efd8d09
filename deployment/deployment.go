// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package deployment - the artifact describing a provisioned ledger
//
// written once when the ledger is first created and read by the
// presentation layer to find the ledger and its RPC interface
package deployment

import (
	"encoding/json"
	"io/ioutil"
	"os"

	"github.com/pawledger/pawledgerd/address"
	"github.com/pawledger/pawledgerd/fault"
	"github.com/pawledger/pawledgerd/ledger"
)

// Method - one RPC method of the ledger interface
type Method struct {
	Name      string   `json:"name"`
	Arguments []string `json:"arguments"`
	Mutates   bool     `json:"mutates"`
}

// Interface - every method served by the RPC listener
var Interface = []Method{
	{Name: "Token.Info", Arguments: []string{}},
	{Name: "Token.Balance", Arguments: []string{"account"}},
	{Name: "Token.Transactions", Arguments: []string{"start", "count"}},
	{Name: "Token.Admins", Arguments: []string{}},
	{Name: "Funds.Transfer", Arguments: []string{"caller", "to", "amount"}, Mutates: true},
	{Name: "Funds.Mint", Arguments: []string{"caller", "to", "amount"}, Mutates: true},
	{Name: "Funds.Burn", Arguments: []string{"caller", "amount"}, Mutates: true},
	{Name: "Treasury.Deposit", Arguments: []string{"caller", "amount"}, Mutates: true},
	{Name: "Treasury.Withdraw", Arguments: []string{"caller", "to", "amount"}, Mutates: true},
	{Name: "Treasury.Balance", Arguments: []string{}},
	{Name: "Admin.Add", Arguments: []string{"caller", "account"}, Mutates: true},
	{Name: "Admin.Remove", Arguments: []string{"caller", "account"}, Mutates: true},
	{Name: "Admin.SetPaused", Arguments: []string{"caller", "paused"}, Mutates: true},
}

// Artifact - the persisted deployment description
type Artifact struct {
	LedgerLocation  address.Address `json:"ledgerLocation"`
	Network         string          `json:"network"`
	DeployTimestamp uint64          `json:"deployTimestamp"`
	Deployer        address.Address `json:"deployer"`
	Name            string          `json:"name"`
	Symbol          string          `json:"symbol"`
	Decimals        uint8           `json:"decimals"`
	RPC             []string        `json:"rpc"`
	Interface       []Method        `json:"interface"`
}

// New - describe a freshly created ledger
func New(info ledger.Info, network string, listen []string) *Artifact {
	rpc := make([]string, len(listen))
	copy(rpc, listen)

	return &Artifact{
		LedgerLocation:  info.Location,
		Network:         network,
		DeployTimestamp: info.Created,
		Deployer:        info.Owner,
		Name:            info.Name,
		Symbol:          info.Symbol,
		Decimals:        info.Decimals,
		RPC:             rpc,
		Interface:       Interface,
	}
}

// Write - create the artifact file, never replacing an existing one
func (a *Artifact) Write(fileName string) error {
	data, err := json.MarshalIndent(a, "", "  ")
	if nil != err {
		return err
	}

	f, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if os.IsExist(err) {
		return fault.DeploymentExists
	}
	if nil != err {
		return err
	}

	_, err = f.Write(append(data, '\n'))
	if nil != err {
		f.Close()
		os.Remove(fileName)
		return err
	}
	return f.Close()
}

// Read - load a previously written artifact
func Read(fileName string) (*Artifact, error) {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}

	a := &Artifact{}
	err = json.Unmarshal(data, a)
	if nil != err {
		return nil, err
	}
	return a, nil
}
