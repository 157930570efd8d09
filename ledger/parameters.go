// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/pawledger/pawledgerd/address"
	"github.com/pawledger/pawledgerd/amount"
	"github.com/pawledger/pawledgerd/fault"
)

// DefaultDecimals - same scaling as ether
const DefaultDecimals = 18

// limits on token naming
const (
	maximumNameLength   = 64
	maximumSymbolLength = 16
)

// Parameters - fixed at construction
type Parameters struct {
	Name          string          `json:"name"`
	Symbol        string          `json:"symbol"`
	Decimals      uint8           `json:"decimals"`
	InitialSupply amount.Amount   `json:"initialSupply"`
	Owner         address.Address `json:"owner"`
	Created       uint64          `json:"created"` // unix seconds
}

// NewParameters - build parameters from configuration text
//
// the initial supply is in whole tokens and is scaled by decimals;
// any malformed, negative or out of range item is InvalidConfig
func NewParameters(name string, symbol string, decimals uint8, initialSupply string, owner string) (Parameters, error) {
	p := Parameters{
		Name:     name,
		Symbol:   symbol,
		Decimals: decimals,
	}

	if "" == initialSupply {
		return p, fault.InvalidConfig
	}
	supply, err := amount.Parse(initialSupply, decimals)
	if nil != err {
		return p, fault.InvalidConfig
	}
	p.InitialSupply = supply

	p.Owner, err = address.FromString(owner)
	if nil != err {
		return p, fault.InvalidConfig
	}

	if err := p.validate(); nil != err {
		return p, err
	}
	return p, nil
}

func (p Parameters) validate() error {
	if p.Owner.IsNull() {
		return fault.InvalidConfig
	}
	if 0 == len(p.Name) || len(p.Name) > maximumNameLength {
		return fault.InvalidConfig
	}
	if 0 == len(p.Symbol) || len(p.Symbol) > maximumSymbolLength {
		return fault.InvalidConfig
	}
	if p.Decimals > amount.MaximumDecimals {
		return fault.InvalidConfig
	}
	return nil
}

// Location - the address that stands for the treasury in records
func (p Parameters) Location() address.Address {
	return address.Derive(p.Owner, []byte(p.Name), []byte(p.Symbol))
}

// PausePolicy - which operations the pause flag blocks
type PausePolicy int

// pause policies
const (
	// transfer, mint and burn only
	PauseValueTransfers PausePolicy = iota
	// also treasury deposit and withdrawal
	PauseAll
)

func (p PausePolicy) String() string {
	switch p {
	case PauseValueTransfers:
		return "value-transfers"
	case PauseAll:
		return "all"
	default:
		return "*unknown*"
	}
}
