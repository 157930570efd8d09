// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"fmt"
	"time"

	"github.com/pawledger/pawledgerd/background"
)

type ticking struct {
	count int
}

func Example() {

	proc := &ticking{}

	// list of background processes to start
	processes := background.Processes{
		proc,
	}

	p := background.Start(processes, 10*time.Millisecond)
	time.Sleep(time.Second)
	p.Stop()
}

func (state *ticking) Run(args interface{}, shutdown <-chan struct{}) {

	fmt.Printf("initialise\n")

	background.Every(args.(time.Duration), shutdown, func() {
		state.count += 1
	})

	fmt.Printf("finalise: %d ticks\n", state.count)
}
