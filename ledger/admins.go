// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"bytes"
	"sort"

	"github.com/pawledger/pawledgerd/address"
)

type adminSet map[address.Address]struct{}

func newAdminSet(members ...address.Address) adminSet {
	s := make(adminSet, len(members))
	for _, a := range members {
		s[a] = struct{}{}
	}
	return s
}

func (s adminSet) has(a address.Address) bool {
	_, ok := s[a]
	return ok
}

func (s adminSet) add(a address.Address) {
	s[a] = struct{}{}
}

func (s adminSet) remove(a address.Address) {
	delete(s, a)
}

// sorted copy of the members
func (s adminSet) list() []address.Address {
	result := make([]address.Address, 0, len(s))
	for a := range s {
		result = append(result, a)
	}
	sort.Slice(result, func(i, j int) bool {
		return bytes.Compare(result[i][:], result[j][:]) < 0
	})
	return result
}
