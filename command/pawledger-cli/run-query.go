// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli"

	"github.com/pawledger/pawledgerd/address"
	"github.com/pawledger/pawledgerd/amount"
	"github.com/pawledger/pawledgerd/ledger"
)

type infoResult struct {
	Name             string          `json:"name"`
	Symbol           string          `json:"symbol"`
	Decimals         uint8           `json:"decimals"`
	Owner            address.Address `json:"owner"`
	Location         address.Address `json:"location"`
	TotalSupply      string          `json:"totalSupply"`
	TreasuryBalance  string          `json:"treasuryBalance"`
	Paused           bool            `json:"paused"`
	PausePolicy      string          `json:"pausePolicy"`
	TransactionCount uint64          `json:"transactionCount"`
	Created          string          `json:"created"`
}

func runInfo(c *cli.Context) error {

	m := getMetadata(c)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	info, err := client.Info()
	if nil != err {
		return err
	}

	printJson(m.w, infoResult{
		Name:             info.Name,
		Symbol:           info.Symbol,
		Decimals:         info.Decimals,
		Owner:            info.Owner,
		Location:         info.Location,
		TotalSupply:      amount.Format(info.TotalSupply, info.Decimals),
		TreasuryBalance:  amount.Format(info.TreasuryBalance, info.Decimals),
		Paused:           info.Paused,
		PausePolicy:      info.PausePolicy,
		TransactionCount: info.TransactionCount,
		Created:          time.Unix(int64(info.Created), 0).UTC().Format(time.RFC3339),
	})

	return nil
}

type balanceResult struct {
	Account address.Address `json:"account"`
	Balance string          `json:"balance"`
	Symbol  string          `json:"symbol"`
}

func runBalance(c *cli.Context) error {

	m := getMetadata(c)

	account := c.String("account")
	if "" == account {
		account = m.caller
	}
	a, err := checkAddress("account", account)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	decimals, symbol, err := getDecimals(client)
	if nil != err {
		return err
	}

	reply, err := client.Balance(a)
	if nil != err {
		return err
	}

	printJson(m.w, balanceResult{
		Account: reply.Account,
		Balance: amount.Format(reply.Balance, decimals),
		Symbol:  symbol,
	})

	return nil
}

type recordResult struct {
	Index     int             `json:"index"`
	TxType    ledger.TxType   `json:"txType"`
	From      address.Address `json:"from"`
	To        address.Address `json:"to"`
	Amount    string          `json:"amount"`
	Timestamp string          `json:"timestamp"`
}

func runTransactions(c *cli.Context) error {

	m := getMetadata(c)

	start := c.Int("start")
	if start < 0 {
		return fmt.Errorf("invalid start: %d", start)
	}
	count := c.Int("count")
	if count <= 0 {
		return fmt.Errorf("invalid count: %d", count)
	}

	if m.verbose {
		fmt.Fprintf(m.e, "start: %d\n", start)
		fmt.Fprintf(m.e, "count: %d\n", count)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	decimals, _, err := getDecimals(client)
	if nil != err {
		return err
	}

	reply, err := client.Transactions(start, count)
	if nil != err {
		return err
	}

	printJson(m.w, formatRecords(reply.Start, reply.Records, decimals))

	return nil
}

func formatRecords(start int, records []ledger.Record, decimals uint8) []recordResult {
	results := make([]recordResult, len(records))
	for i, r := range records {
		results[i] = recordResult{
			Index:     start + i,
			TxType:    r.TxType,
			From:      r.From,
			To:        r.To,
			Amount:    amount.Format(r.Amount, decimals),
			Timestamp: time.Unix(int64(r.Timestamp), 0).UTC().Format(time.RFC3339),
		}
	}
	return results
}

func runAdmins(c *cli.Context) error {

	m := getMetadata(c)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Admins()
	if nil != err {
		return err
	}

	printJson(m.w, reply)

	return nil
}
