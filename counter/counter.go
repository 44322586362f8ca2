// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - lock free event counts shared between goroutines
package counter

import (
	"sync/atomic"
)

// Counter - a 64 bit count, the zero value is ready to use
type Counter uint64

// Increment - add one and return the new count
func (c *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(c), 1)
}

// Uint64 - current count
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}

// Swap - return the current count and restart from zero
func (c *Counter) Swap() uint64 {
	return atomic.SwapUint64((*uint64)(c), 0)
}
