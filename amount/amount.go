// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package amount

import (
	"math/big"

	"github.com/holiman/uint256"

	"github.com/pawledger/pawledgerd/fault"
)

// Length - bytes in the packed form of an amount
const Length = 32

// Amount - unsigned 256 bit quantity in the smallest unit
//
// text form is the base 10 integer, no scaling is applied
type Amount struct {
	n uint256.Int
}

// Zero - the zero amount
var Zero Amount

// New - amount from a uint64
func New(v uint64) Amount {
	var a Amount
	a.n.SetUint64(v)
	return a
}

// FromBig - amount from a big integer, fails if negative or too large
func FromBig(b *big.Int) (Amount, error) {
	var a Amount
	if nil == b || b.Sign() < 0 {
		return a, fault.InvalidAmount
	}
	if overflow := a.n.SetFromBig(b); overflow {
		return Zero, fault.InvalidAmount
	}
	return a, nil
}

// FromString - amount from base 10 integer text
func FromString(s string) (Amount, error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Zero, fault.InvalidAmount
	}
	return FromBig(b)
}

// FromBytes - amount from the 32 byte big endian packed form
func FromBytes(buffer []byte) (Amount, error) {
	var a Amount
	if Length != len(buffer) {
		return a, fault.TruncatedRecord
	}
	a.n.SetBytes(buffer)
	return a, nil
}

// Bytes - 32 byte big endian packed form
func (a Amount) Bytes() []byte {
	b := a.n.Bytes32()
	return b[:]
}

// Big - copy as a big integer
func (a Amount) Big() *big.Int {
	return a.n.ToBig()
}

// IsZero - true if zero
func (a Amount) IsZero() bool {
	return a.n.IsZero()
}

// Cmp - compare: -1 if a < b, 0 if equal, +1 if a > b
func (a Amount) Cmp(b Amount) int {
	return a.n.Cmp(&b.n)
}

// LessThan - true if a < b
func (a Amount) LessThan(b Amount) bool {
	return a.n.Lt(&b.n)
}

// Add - sum; second result is false on overflow
func (a Amount) Add(b Amount) (Amount, bool) {
	var r Amount
	_, overflow := r.n.AddOverflow(&a.n, &b.n)
	if overflow {
		return Zero, false
	}
	return r, true
}

// Sub - difference; second result is false if b > a
func (a Amount) Sub(b Amount) (Amount, bool) {
	var r Amount
	_, underflow := r.n.SubOverflow(&a.n, &b.n)
	if underflow {
		return Zero, false
	}
	return r, true
}

// String - base 10 integer for use by the fmt package (for %s)
func (a Amount) String() string {
	return a.n.ToBig().String()
}

// MarshalText - base 10 integer text
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - base 10 integer text
func (a *Amount) UnmarshalText(s []byte) error {
	result, err := FromString(string(s))
	if nil != err {
		return err
	}
	*a = result
	return nil
}
