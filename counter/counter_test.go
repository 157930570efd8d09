// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pawledger/pawledgerd/counter"
)

// test incrementing/decrementing a counter
func TestCounter(t *testing.T) {

	var c1 counter.Counter

	if !c1.IsZero() {
		t.Errorf("counter is not zero at start: %d", c1.Uint64())
	}

	c1.Increment()
	c1.Increment()
	c1.Increment()
	c1.Increment()
	c1.Increment()

	if 5 != c1.Uint64() {
		t.Errorf("counter is not 5 after iincrementing: %d", c1.Uint64())
	}

	c1.Decrement()

	if 4 != c1.Uint64() {
		t.Errorf("counter is not 5 after iincrementing: %d", c1.Uint64())
	}

	c1.Decrement()
	c1.Decrement()
	c1.Decrement()
	c1.Decrement()

	if !c1.IsZero() {
		t.Errorf("counter did not return to zero: %d", c1.Uint64())
	}

	c1.Decrement()

	// check against underflow, i.e. twos complement -1
	if ^uint64(0) != c1.Uint64() {
		t.Errorf("counter did not underflow: %d", c1.Uint64())
	}
}

func TestIncrementBelow(t *testing.T) {
	var c counter.Counter

	for i := 0; i < 3; i += 1 {
		assert.True(t, c.IncrementBelow(3), "increment %d refused", i)
	}
	assert.False(t, c.IncrementBelow(3), "limit exceeded")
	assert.Equal(t, uint64(3), c.Uint64(), "counter changed at limit")

	c.Decrement()
	assert.True(t, c.IncrementBelow(3), "increment after decrement refused")
}

func TestIncrementBelowConcurrent(t *testing.T) {
	var c counter.Counter
	var accepted counter.Counter
	var wg sync.WaitGroup

	for i := 0; i < 100; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if c.IncrementBelow(10) {
				accepted.Increment()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(10), c.Uint64(), "counter")
	assert.Equal(t, uint64(10), accepted.Uint64(), "accepted")
}
