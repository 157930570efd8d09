// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/pawledger/pawledgerd/fault"
)

// append-only record sequence
type history struct {
	records []Record
}

func (h *history) length() int {
	return len(h.records)
}

func (h *history) append(r Record) {
	h.records = append(h.records, r)
}

// copy of [start, start+count) clipped to the available length
func (h *history) slice(start int, count int) ([]Record, error) {
	n := len(h.records)
	if start < 0 || start > n || count < 0 {
		return nil, fault.InvalidRange
	}

	end := n
	if count < n-start {
		end = start + count
	}

	result := make([]Record, end-start)
	copy(result, h.records[start:end])
	return result, nil
}
