// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/pawledger/pawledgerd/address"
	"github.com/pawledger/pawledgerd/amount"
	"github.com/pawledger/pawledgerd/fault"
)

// TxType - kind of value moving operation
type TxType uint8

// all transaction types
const (
	Transfer TxType = iota
	Mint
	Burn
	Deposit
	Withdraw
	txTypeLimit
)

// names as used in the JSON form
var txTypeNames = [...]string{
	Transfer: "transfer",
	Mint:     "mint",
	Burn:     "burn",
	Deposit:  "deposit",
	Withdraw: "withdraw",
}

func (t TxType) String() string {
	if t >= txTypeLimit {
		return "*unknown*"
	}
	return txTypeNames[t]
}

// MarshalText - type name
func (t TxType) MarshalText() ([]byte, error) {
	if t >= txTypeLimit {
		return nil, fault.UnknownTransactionType
	}
	return []byte(txTypeNames[t]), nil
}

// UnmarshalText - type name
func (t *TxType) UnmarshalText(s []byte) error {
	for i, name := range txTypeNames {
		if name == string(s) {
			*t = TxType(i)
			return nil
		}
	}
	return fault.UnknownTransactionType
}

// Record - one completed value moving operation
//
// mint has a null From, burn a null To; the ledger location is the
// To of a deposit and the From of a withdrawal
type Record struct {
	From      address.Address `json:"from"`
	To        address.Address `json:"to"`
	Amount    amount.Amount   `json:"amount"`
	Timestamp uint64          `json:"timestamp"`
	TxType    TxType          `json:"txType"`
}

// PackedLength - bytes in a packed record
const PackedLength = 2*address.Length + amount.Length + 8 + 1

// Pack - fixed layout: from ‖ to ‖ amount ‖ timestamp ‖ type
func (r Record) Pack() []byte {
	buffer := make([]byte, 0, PackedLength)
	buffer = append(buffer, r.From[:]...)
	buffer = append(buffer, r.To[:]...)
	buffer = append(buffer, r.Amount.Bytes()...)

	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], r.Timestamp)
	buffer = append(buffer, ts[:]...)

	return append(buffer, byte(r.TxType))
}

// UnpackRecord - reverse of Pack
func UnpackRecord(buffer []byte) (Record, error) {
	var r Record
	if PackedLength != len(buffer) {
		return r, fault.TruncatedRecord
	}

	n := 0
	copy(r.From[:], buffer[n:n+address.Length])
	n += address.Length
	copy(r.To[:], buffer[n:n+address.Length])
	n += address.Length

	value, err := amount.FromBytes(buffer[n : n+amount.Length])
	if nil != err {
		return r, err
	}
	r.Amount = value
	n += amount.Length

	r.Timestamp = binary.BigEndian.Uint64(buffer[n : n+8])
	n += 8

	r.TxType = TxType(buffer[n])
	if r.TxType >= txTypeLimit {
		return r, fault.UnknownTransactionType
	}
	return r, nil
}
