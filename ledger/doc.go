// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the fungible token state machine
//
// A Ledger owns the balance table, the admin set, the treasury, the
// pause flag and the append-only transaction log.  Every mutating
// operation validates first, hands the complete change to a Journal
// and only then updates memory, so a rejected or unpersisted
// operation has no visible effect.
//
// Mutations are serialised by an exclusive lock; queries share a read
// lock and always see the state after the last completed mutation.
package ledger
