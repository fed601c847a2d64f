// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/steemtx/fault"
)

// Limit - delay a single request until the limiter allows it
func Limit(ctx context.Context, limiter *rate.Limiter) error {
	return LimitN(ctx, limiter, 1)
}

// LimitN - delay a request that counts as several
//
// the reservation is returned if the context ends first
func LimitN(ctx context.Context, limiter *rate.Limiter, count int) error {
	if count <= 0 {
		count = 1
	}

	r := limiter.ReserveN(time.Now(), count)
	if !r.OK() {
		return fault.ErrRateLimiting
	}

	delay := r.Delay()
	if 0 == delay {
		return nil
	}

	t := time.NewTimer(delay)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		r.Cancel()
		return ctx.Err()
	}
}
