/*
 * Copyright 2025 SREDiag Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package spin implements the single-bit spinlock that guards fallback
// atomic cells.
//
// A Lock is Unlocked or Locked. Acquisition is a compare-and-swap from
// Unlocked to Locked; under contention the waiter polls with a relaxed load,
// then yields to the scheduler with a bounded exponential backoff. There is
// no queueing and no fairness: any waiter may win the next attempt, and a
// waiter can starve.
package spin

import (
	"runtime"
	"sync/atomic"
)

const (
	unlocked uint32 = iota
	locked
)

// Lock is a spinlock. The zero value is unlocked. A Lock must not be copied
// after first use.
type Lock struct {
	state atomic.Uint32
}

// TryLock makes a single attempt to acquire l.
func (l *Lock) TryLock() bool {
	return l.state.CompareAndSwap(unlocked, locked)
}

// Lock acquires l, busy-waiting until it is available. It never times out.
func (l *Lock) Lock() {
	if l.state.CompareAndSwap(unlocked, locked) {
		return
	}
	l.lockSlow()
}

func (l *Lock) lockSlow() {
	cfg := currentConfig()
	var polls, yields uint64
	backoff := 1
	saturated := false
	for {
		for l.state.Load() == locked {
			if polls < uint64(cfg.SpinLimit) {
				cpuRelax()
				polls++
				continue
			}
			for i := 0; i < backoff; i++ {
				runtime.Gosched()
			}
			yields += uint64(backoff)
			if backoff < cfg.MaxYield {
				backoff <<= 1
			} else if !saturated {
				saturated = true
				if logger.Enabled(debugLevel) {
					logger.Debugf("spinlock %p: backoff saturated after %d polls, %d yields", l, polls, yields)
				}
			}
		}
		if l.state.CompareAndSwap(unlocked, locked) {
			break
		}
	}
	recordContention(polls, yields)
}

// Unlock releases l. Unlocking a Lock that is not held panics.
func (l *Lock) Unlock() {
	if l.state.Swap(unlocked) != locked {
		panic("spin: unlock of unlocked lock")
	}
}

// Locked reports whether l is held at the moment of the call.
func (l *Lock) Locked() bool {
	return l.state.Load() == locked
}
