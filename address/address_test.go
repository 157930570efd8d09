// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pawledger/pawledgerd/address"
	"github.com/pawledger/pawledgerd/fault"
)

// checksum vectors from EIP-55
var checksummed = []string{
	"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
	"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
	"0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB",
	"0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb",
}

func TestChecksum(t *testing.T) {
	for i, s := range checksummed {
		a, err := address.FromString(s)
		if nil != err {
			t.Fatalf("%d: %q error: %s", i, s, err)
		}
		assert.Equal(t, s, a.String(), "%d: wrong checksum text", i)

		lower, err := address.FromString(strings.ToLower(s))
		assert.Nil(t, err, "%d: lower case rejected", i)
		assert.Equal(t, a, lower, "%d: lower case differs", i)

		upper, err := address.FromString("0x" + strings.ToUpper(s[2:]))
		assert.Nil(t, err, "%d: upper case rejected", i)
		assert.Equal(t, a, upper, "%d: upper case differs", i)
	}
}

func TestBadChecksum(t *testing.T) {
	_, err := address.FromString("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAeD")
	assert.Equal(t, fault.ChecksumMismatch, err, "checksum not detected")
}

func TestInvalid(t *testing.T) {
	invalid := []string{
		"",
		"0x",
		"0x1234",
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed00",
		"0xzzzzb6053f3e94c9b9a09f33669435e7ef1beaed",
	}
	for i, s := range invalid {
		_, err := address.FromString(s)
		assert.Equal(t, fault.InvalidAddress, err, "%d: %q accepted", i, s)
	}
}

func TestNull(t *testing.T) {
	var a address.Address
	assert.True(t, a.IsNull(), "zero value not null")
	assert.Equal(t, "0x0000000000000000000000000000000000000000", a.String(), "null text")

	b, err := address.FromString(checksummed[0])
	assert.Nil(t, err, "parse")
	assert.False(t, b.IsNull(), "non-zero is null")
}

func TestJSON(t *testing.T) {
	type item struct {
		Owner address.Address `json:"owner"`
	}
	a, _ := address.FromString(checksummed[1])

	buffer, err := json.Marshal(item{Owner: a})
	assert.Nil(t, err, "marshal")
	assert.Equal(t, `{"owner":"`+checksummed[1]+`"}`, string(buffer), "wrong JSON")

	var decoded item
	err = json.Unmarshal(buffer, &decoded)
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, a, decoded.Owner, "round trip")
}

func TestDerive(t *testing.T) {
	owner, _ := address.FromString(checksummed[2])

	a := address.Derive(owner, []byte("PawToken"), []byte("PAW"))
	b := address.Derive(owner, []byte("PawToken"), []byte("PAW"))
	c := address.Derive(owner, []byte("PawToken"), []byte("PAX"))

	assert.Equal(t, a, b, "not stable")
	assert.NotEqual(t, a, c, "seed ignored")
	assert.False(t, a.IsNull(), "derived null")
}

func TestFromBytes(t *testing.T) {
	_, err := address.FromBytes([]byte{1, 2, 3})
	assert.Equal(t, fault.InvalidAddress, err, "short slice accepted")

	buffer := make([]byte, address.Length)
	buffer[19] = 7
	a, err := address.FromBytes(buffer)
	assert.Nil(t, err, "valid slice rejected")
	assert.Equal(t, byte(7), a[19], "wrong byte")
}
