// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package amount

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pawledger/pawledgerd/fault"
)

// MaximumDecimals - 10^77 is the largest power of ten below 2^256
const MaximumDecimals = 77

// Parse - convert human readable decimal text to smallest units
//
// "1.5" with 18 decimals is 1500000000000000000; negative values,
// excess fractional digits and values above 2^256-1 are rejected
func Parse(s string, decimals uint8) (Amount, error) {
	if decimals > MaximumDecimals {
		return Zero, fault.InvalidDecimals
	}

	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if nil != err {
		return Zero, fault.InvalidAmount
	}
	if d.IsNegative() {
		return Zero, fault.InvalidAmount
	}

	scaled := d.Shift(int32(decimals))
	if !scaled.IsInteger() {
		return Zero, fault.InvalidAmount
	}
	return FromBig(scaled.BigInt())
}

// Format - convert smallest units to human readable decimal text
//
// trailing fractional zeros are removed
func Format(a Amount, decimals uint8) string {
	return decimal.NewFromBigInt(a.Big(), -int32(decimals)).String()
}

// Float - approximate value in whole tokens, for display and metrics
func Float(a Amount, decimals uint8) float64 {
	f, _ := decimal.NewFromBigInt(a.Big(), -int32(decimals)).Float64()
	return f
}
