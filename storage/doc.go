// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk ledger journal
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. address      = 20 byte account address
// 4. amount       = big endian unsigned 256 bit integer (32 bytes)
// 5. index        = record position as big endian uint64 (8 bytes)
//
// Parameters:
//
//   P ++ "parameters"         - fixed token parameters
//                               data: JSON encoded ledger.Parameters
//
// Balances:
//
//   B ++ address              - non-zero account balance
//                               data: amount
//
// Admins:
//
//   A ++ address              - admin set member
//                               data: 0x01
//
// Scalars:
//
//   S ++ "supply"             - total supply
//                               data: amount
//   S ++ "treasury"           - treasury balance
//                               data: amount
//   S ++ "paused"             - pause flag
//                               data: 0x00 or 0x01
//   S ++ "count"              - number of transaction records
//                               data: big endian uint64
//
// Transactions:
//
//   T ++ index                - append-only transaction log
//                               data: packed ledger.Record (81 bytes)
package storage
