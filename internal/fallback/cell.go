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

// Package fallback provides atomic integers for widths the platform cannot
// operate on natively, built from a spinlock and a plain value.
//
// Every operation on a Cell holds the cell's lock for its whole duration, so
// all operations on one cell happen in a single total order. Because of that,
// any requested api.Ordering is treated as SeqCst. This is stronger than a
// native atomic may be, never weaker.
//
// Under the atomicint_signal build tag, each acquisition also masks signals
// on the current thread until the lock is released (see package sigmask).
package fallback

import (
	"golang.org/x/exp/constraints"

	"github.com/srediag/atomicint/api"
	"github.com/srediag/atomicint/internal/spin"
)

// Cell is an atomic T guarded by its own spinlock. The zero value holds 0 and
// is ready to use. A Cell must not be copied after first use.
type Cell[T constraints.Integer] struct {
	lock spin.Lock
	v    T
}

var _ api.Integer[int8] = (*Cell[int8])(nil)

// New returns a cell holding v.
func New[T constraints.Integer](v T) *Cell[T] {
	return &Cell[T]{v: v}
}

// Load returns the current value.
func (c *Cell[T]) Load(order api.Ordering) T {
	g := acquire(&c.lock)
	defer g.unlock()
	return c.v
}

// Store replaces the current value with val.
func (c *Cell[T]) Store(val T, order api.Ordering) {
	g := acquire(&c.lock)
	defer g.unlock()
	c.v = val
}

// Swap stores val and returns the previous value.
func (c *Cell[T]) Swap(val T, order api.Ordering) T {
	g := acquire(&c.lock)
	defer g.unlock()
	prev := c.v
	c.v = val
	return prev
}

// CompareExchange stores new if the current value equals current. It returns
// the value observed before the attempt and whether new was stored.
func (c *Cell[T]) CompareExchange(current, new T, success, failure api.Ordering) (T, bool) {
	g := acquire(&c.lock)
	defer g.unlock()
	prev := c.v
	if prev != current {
		return prev, false
	}
	c.v = new
	return prev, true
}

// CompareExchangeWeak is CompareExchange. A lock-based cell has no spurious
// failures to report, so the weak form is strengthened to the strong one.
func (c *Cell[T]) CompareExchangeWeak(current, new T, success, failure api.Ordering) (T, bool) {
	return c.CompareExchange(current, new, success, failure)
}

// FetchAdd adds val, wrapping on overflow, and returns the previous value.
func (c *Cell[T]) FetchAdd(val T, order api.Ordering) T {
	g := acquire(&c.lock)
	defer g.unlock()
	prev := c.v
	c.v = prev + val
	return prev
}

// FetchSub subtracts val, wrapping on overflow, and returns the previous value.
func (c *Cell[T]) FetchSub(val T, order api.Ordering) T {
	g := acquire(&c.lock)
	defer g.unlock()
	prev := c.v
	c.v = prev - val
	return prev
}

// FetchAnd stores the bitwise and of the value and val.
func (c *Cell[T]) FetchAnd(val T, order api.Ordering) T {
	g := acquire(&c.lock)
	defer g.unlock()
	prev := c.v
	c.v = prev & val
	return prev
}

// FetchNand stores the complement of the bitwise and of the value and val.
func (c *Cell[T]) FetchNand(val T, order api.Ordering) T {
	g := acquire(&c.lock)
	defer g.unlock()
	prev := c.v
	c.v = ^(prev & val)
	return prev
}

// FetchOr stores the bitwise or of the value and val.
func (c *Cell[T]) FetchOr(val T, order api.Ordering) T {
	g := acquire(&c.lock)
	defer g.unlock()
	prev := c.v
	c.v = prev | val
	return prev
}

// FetchXor stores the bitwise xor of the value and val.
func (c *Cell[T]) FetchXor(val T, order api.Ordering) T {
	g := acquire(&c.lock)
	defer g.unlock()
	prev := c.v
	c.v = prev ^ val
	return prev
}

// FetchMax stores the larger of the value and val.
func (c *Cell[T]) FetchMax(val T, order api.Ordering) T {
	g := acquire(&c.lock)
	defer g.unlock()
	prev := c.v
	c.v = max(prev, val)
	return prev
}

// FetchMin stores the smaller of the value and val.
func (c *Cell[T]) FetchMin(val T, order api.Ordering) T {
	g := acquire(&c.lock)
	defer g.unlock()
	prev := c.v
	c.v = min(prev, val)
	return prev
}

// FetchUpdate calls f with the current value while holding the lock. If f
// returns true its result is stored. FetchUpdate returns the previous value
// and whether it was replaced. A declined update still takes and releases the
// lock, so it is ordered with every other operation on c.
//
// f runs exactly once. It must not operate on c, or on any location sharing
// c's lock, or it deadlocks.
func (c *Cell[T]) FetchUpdate(set, fetch api.Ordering, f func(T) (T, bool)) (T, bool) {
	g := acquire(&c.lock)
	defer g.unlock()
	prev := c.v
	next, ok := f(prev)
	if !ok {
		return prev, false
	}
	c.v = next
	return prev, true
}

// LockFree reports false: a Cell always goes through its spinlock.
func (c *Cell[T]) LockFree() bool {
	return false
}
