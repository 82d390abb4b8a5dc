// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - event counters shared between goroutines
package counter

import (
	"sync/atomic"
)

// Counter - a 64 bit unsigned event count
type Counter uint64

// Increment - count one event, returns the new total
func (c *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(c), 1)
}

// Value - current total
func (c *Counter) Value() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}

// Reset - start again from zero, returns the total before reset
func (c *Counter) Reset() uint64 {
	return atomic.SwapUint64((*uint64)(c), 0)
}
