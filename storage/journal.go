// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"encoding/json"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/logger"

	"github.com/pawledger/pawledgerd/address"
	"github.com/pawledger/pawledgerd/amount"
	"github.com/pawledger/pawledgerd/fault"
	"github.com/pawledger/pawledgerd/ledger"
)

// keys in the parameter and scalar pools
var (
	parametersKey = []byte("parameters")
	supplyKey     = []byte("supply")
	treasuryKey   = []byte("treasury")
	pausedKey     = []byte("paused")
	countKey      = []byte("count")
)

var adminPresent = []byte{0x01}

var syncWrite = &ldb_opt.WriteOptions{Sync: true}

// Commit - write one ledger change as a single synchronous batch
func (s *Store) Commit(c *ledger.Change) error {
	s.Lock()
	defer s.Unlock()

	if nil == s.database {
		return fault.DatabaseIsNotSet
	}

	batch := new(leveldb.Batch)

	if nil != c.Parameters {
		packed, err := json.Marshal(c.Parameters)
		if nil != err {
			return err
		}
		s.pool.Parameters.put(batch, parametersKey, packed)
	}

	for a, value := range c.Balances {
		if value.IsZero() {
			s.pool.Balances.remove(batch, a.Bytes())
		} else {
			s.pool.Balances.put(batch, a.Bytes(), value.Bytes())
		}
	}

	for a, added := range c.Admins {
		if added {
			s.pool.Admins.put(batch, a.Bytes(), adminPresent)
		} else {
			s.pool.Admins.remove(batch, a.Bytes())
		}
	}

	paused := []byte{0x00}
	if c.Paused {
		paused[0] = 0x01
	}
	s.pool.Scalars.put(batch, supplyKey, c.Supply.Bytes())
	s.pool.Scalars.put(batch, treasuryKey, c.Treasury.Bytes())
	s.pool.Scalars.put(batch, pausedKey, paused)
	s.pool.Scalars.put(batch, countKey, indexBytes(c.Count))

	if nil != c.Record {
		if 0 == c.Count {
			logger.Panicf("storage.Commit: record with zero count: %+v", c.Record)
		}
		s.pool.Transactions.put(batch, indexBytes(c.Count-1), c.Record.Pack())
	}

	err := s.database.Write(batch, syncWrite)
	if nil != err {
		s.log.Errorf("commit error: %s", err)
		return err
	}
	return nil
}

// Load - read the complete ledger state
//
// returns nil without error if the database holds no ledger
func (s *Store) Load() (*ledger.Snapshot, error) {
	s.RLock()
	defer s.RUnlock()

	if nil == s.database {
		return nil, fault.DatabaseIsNotSet
	}

	packed := s.pool.Parameters.Get(parametersKey)
	if nil == packed {
		return nil, nil
	}

	snapshot := &ledger.Snapshot{
		Balances: make(map[address.Address]amount.Amount),
	}
	err := json.Unmarshal(packed, &snapshot.Parameters)
	if nil != err {
		return nil, err
	}

	err = s.pool.Balances.NewFetchCursor().Map(func(key []byte, value []byte) error {
		a, err := address.FromBytes(key)
		if nil != err {
			return err
		}
		v, err := amount.FromBytes(value)
		if nil != err {
			return err
		}
		snapshot.Balances[a] = v
		return nil
	})
	if nil != err {
		return nil, err
	}

	err = s.pool.Admins.NewFetchCursor().Map(func(key []byte, value []byte) error {
		a, err := address.FromBytes(key)
		if nil != err {
			return err
		}
		snapshot.Admins = append(snapshot.Admins, a)
		return nil
	})
	if nil != err {
		return nil, err
	}

	snapshot.Supply, err = s.getAmount(supplyKey)
	if nil != err {
		return nil, err
	}
	snapshot.Treasury, err = s.getAmount(treasuryKey)
	if nil != err {
		return nil, err
	}
	paused := s.pool.Scalars.Get(pausedKey)
	snapshot.Paused = 1 == len(paused) && 0x01 == paused[0]

	count, _ := s.pool.Scalars.GetN(countKey)
	snapshot.Records = make([]ledger.Record, 0, count)

	next := uint64(0)
	err = s.pool.Transactions.NewFetchCursor().Map(func(key []byte, value []byte) error {
		if 8 != len(key) || binary.BigEndian.Uint64(key) != next {
			return fault.TruncatedRecord
		}
		r, err := ledger.UnpackRecord(value)
		if nil != err {
			return err
		}
		snapshot.Records = append(snapshot.Records, r)
		next += 1
		return nil
	})
	if nil != err {
		return nil, err
	}
	if next != count {
		s.log.Criticalf("record count: %d  expected: %d", next, count)
		return nil, fault.InvalidCount
	}

	s.log.Infof("loaded: %s  records: %d  balances: %d", snapshot.Parameters.Symbol, count, len(snapshot.Balances))
	return snapshot, nil
}

func (s *Store) getAmount(key []byte) (amount.Amount, error) {
	value := s.pool.Scalars.Get(key)
	if nil == value {
		return amount.Zero, nil
	}
	return amount.FromBytes(value)
}

func indexBytes(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}
