// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/pawledger/pawledgerd/background"
)

const (
	statsDelay = 60 * time.Second
	mega       = 1048576
)

// memory statistics logger
type memstats struct {
	log *logger.L
}

func (m *memstats) Run(args interface{}, shutdown <-chan struct{}) {
	m.log = logger.New("memory")
	m.report()
	background.Every(statsDelay, shutdown, m.report)
}

func (m *memstats) report() {
	var s runtime.MemStats
	runtime.ReadMemStats(&s)

	text, err := json.Marshal(s)
	if nil != err {
		m.log.Errorf("marshal error: %s", err)
	} else {
		m.log.Debugf("stats: %s", text)
	}
	a := s.Alloc / mega
	t := s.TotalAlloc / mega
	o := s.Sys / mega
	m.log.Infof("allocated: %d M  cumulative: %d M  OS virtual: %d M", a, t, o)
}
