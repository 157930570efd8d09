// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ratelimit - token bucket throttling for the RPC services
package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/pawledger/pawledgerd/fault"
)

// MaximumWait - a request that would be held longer than this is
// refused instead and its tokens are returned to the bucket
const MaximumWait = 2 * time.Second

// Limit - throttle a single request
func Limit(limiter *rate.Limiter) error {
	return reserve(limiter, 1)
}

// LimitN - throttle a request for count items
//
// a count outside 1..maximumCount costs one token and is InvalidCount
func LimitN(limiter *rate.Limiter, count int, maximumCount int) error {
	if count <= 0 || count > maximumCount {
		if err := reserve(limiter, 1); nil != err {
			return err
		}
		return fault.InvalidCount
	}
	return reserve(limiter, count)
}

func reserve(limiter *rate.Limiter, n int) error {
	r := limiter.ReserveN(time.Now(), n)
	if !r.OK() {
		return fault.RateLimiting
	}

	delay := r.Delay()
	if delay > MaximumWait {
		r.Cancel()
		return fault.RateLimiting
	}
	time.Sleep(delay)

	return nil
}
