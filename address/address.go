// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/pawledger/pawledgerd/fault"
)

// Length - number of bytes in an address
const Length = 20

const prefix = "0x"

// Address - an opaque account identity
//
// the zero value is the null address
// represented as checksummed hex text for print and JSON encoding
type Address [Length]byte

// Null - the null address
var Null Address

// IsNull - true if the address is all zero bytes
func (a Address) IsNull() bool {
	return a == Null
}

// Bytes - the address as a byte slice
func (a Address) Bytes() []byte {
	return a[:]
}

// String - checksummed hex text for use by the fmt package (for %s)
//
// letters in the hex digits are upper case when the corresponding
// nibble of the Keccak-256 hash of the lower case text is >= 8
func (a Address) String() string {
	lower := hex.EncodeToString(a[:])

	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(lower))
	hash := h.Sum(nil)

	buffer := []byte(lower)
	for i, c := range buffer {
		if c < 'a' {
			continue
		}
		nibble := hash[i/2]
		if 0 == i%2 {
			nibble >>= 4
		}
		if nibble&0x0f >= 8 {
			buffer[i] = c - 'a' + 'A'
		}
	}
	return prefix + string(buffer)
}

// GoString - for use by the fmt package (for %#v)
func (a Address) GoString() string {
	return "<address:" + a.String() + ">"
}

// MarshalText - convert address to checksummed hex text
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert hex text into an address
func (a *Address) UnmarshalText(s []byte) error {
	result, err := FromString(string(s))
	if nil != err {
		return err
	}
	*a = result
	return nil
}

// FromString - parse hex text with or without the 0x prefix
//
// mixed case text must carry a valid checksum
func FromString(s string) (Address, error) {
	var a Address

	text := strings.TrimPrefix(strings.TrimPrefix(s, prefix), "0X")
	if hex.EncodedLen(Length) != len(text) {
		return a, fault.InvalidAddress
	}

	n, err := hex.Decode(a[:], []byte(text))
	if nil != err || Length != n {
		return Null, fault.InvalidAddress
	}

	if text != strings.ToLower(text) && text != strings.ToUpper(text) {
		if a.String()[len(prefix):] != text {
			return Null, fault.ChecksumMismatch
		}
	}
	return a, nil
}

// FromBytes - convert and validate a binary byte slice to an address
func FromBytes(buffer []byte) (Address, error) {
	var a Address
	if Length != len(buffer) {
		return a, fault.InvalidAddress
	}
	copy(a[:], buffer)
	return a, nil
}

// Derive - compute a stable address from an owner and some seed data
//
// the last 20 bytes of Keccak-256(owner ‖ seed...)
func Derive(owner Address, seed ...[]byte) Address {
	h := sha3.NewLegacyKeccak256()
	h.Write(owner[:])
	for _, s := range seed {
		h.Write(s)
	}
	hash := h.Sum(nil)

	var a Address
	copy(a[:], hash[len(hash)-Length:])
	return a
}
