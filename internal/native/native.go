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

// Package native adapts sync/atomic to the api.Integer surface for the
// widths the platform supports directly.
//
// sync/atomic operations are sequentially consistent, so every requested
// ordering is satisfied. Operations sync/atomic lacks (nand, xor, max, min,
// update) are compare-and-swap loops.
package native

import (
	"sync/atomic"
	"unsafe"

	"github.com/srediag/atomicint/api"
)

// Word is the set of kinds with a native atomic of their exact width.
type Word interface {
	~int32 | ~uint32 | ~int64 | ~uint64 | ~int | ~uint | ~uintptr
}

// Cell is a native atomic T. The zero value holds 0.
type Cell[T Word] struct {
	_ [0]atomic.Int64 // 8-byte alignment on 32-bit targets
	v T
}

var _ api.Integer[int32] = (*Cell[int32])(nil)

// New returns a cell holding v.
func New[T Word](v T) *Cell[T] {
	return &Cell[T]{v: v}
}

func (c *Cell[T]) is64() bool {
	return unsafe.Sizeof(c.v) == 8
}

func (c *Cell[T]) p32() *uint32 { return (*uint32)(unsafe.Pointer(&c.v)) }
func (c *Cell[T]) p64() *uint64 { return (*uint64)(unsafe.Pointer(&c.v)) }

func (c *Cell[T]) Load(order api.Ordering) T {
	if c.is64() {
		return T(atomic.LoadUint64(c.p64()))
	}
	return T(atomic.LoadUint32(c.p32()))
}

func (c *Cell[T]) Store(val T, order api.Ordering) {
	if c.is64() {
		atomic.StoreUint64(c.p64(), uint64(val))
		return
	}
	atomic.StoreUint32(c.p32(), uint32(val))
}

func (c *Cell[T]) Swap(val T, order api.Ordering) T {
	if c.is64() {
		return T(atomic.SwapUint64(c.p64(), uint64(val)))
	}
	return T(atomic.SwapUint32(c.p32(), uint32(val)))
}

func (c *Cell[T]) cas(old, new T) bool {
	if c.is64() {
		return atomic.CompareAndSwapUint64(c.p64(), uint64(old), uint64(new))
	}
	return atomic.CompareAndSwapUint32(c.p32(), uint32(old), uint32(new))
}

// CompareExchange stores new if the current value equals current, and
// returns the value observed before the attempt.
func (c *Cell[T]) CompareExchange(current, new T, success, failure api.Ordering) (T, bool) {
	for {
		if c.cas(current, new) {
			return current, true
		}
		// report the value that made the CAS fail; retry if it changed back
		if prev := c.Load(failure); prev != current {
			return prev, false
		}
	}
}

// CompareExchangeWeak is CompareExchange; sync/atomic has no weak form.
func (c *Cell[T]) CompareExchangeWeak(current, new T, success, failure api.Ordering) (T, bool) {
	return c.CompareExchange(current, new, success, failure)
}

func (c *Cell[T]) FetchAdd(val T, order api.Ordering) T {
	if c.is64() {
		return T(atomic.AddUint64(c.p64(), uint64(val))) - val
	}
	return T(atomic.AddUint32(c.p32(), uint32(val))) - val
}

func (c *Cell[T]) FetchSub(val T, order api.Ordering) T {
	return c.FetchAdd(-val, order)
}

func (c *Cell[T]) FetchAnd(val T, order api.Ordering) T {
	if c.is64() {
		return T(atomic.AndUint64(c.p64(), uint64(val)))
	}
	return T(atomic.AndUint32(c.p32(), uint32(val)))
}

func (c *Cell[T]) FetchOr(val T, order api.Ordering) T {
	if c.is64() {
		return T(atomic.OrUint64(c.p64(), uint64(val)))
	}
	return T(atomic.OrUint32(c.p32(), uint32(val)))
}

func (c *Cell[T]) FetchNand(val T, order api.Ordering) T {
	return c.rmw(func(v T) T { return ^(v & val) })
}

func (c *Cell[T]) FetchXor(val T, order api.Ordering) T {
	return c.rmw(func(v T) T { return v ^ val })
}

func (c *Cell[T]) FetchMax(val T, order api.Ordering) T {
	return c.rmw(func(v T) T { return max(v, val) })
}

func (c *Cell[T]) FetchMin(val T, order api.Ordering) T {
	return c.rmw(func(v T) T { return min(v, val) })
}

func (c *Cell[T]) rmw(f func(T) T) T {
	for {
		prev := c.Load(api.SeqCst)
		if c.cas(prev, f(prev)) {
			return prev
		}
	}
}

// FetchUpdate retries f until its result is stored or f declines. Unlike the
// fallback cell, f may run more than once.
func (c *Cell[T]) FetchUpdate(set, fetch api.Ordering, f func(T) (T, bool)) (T, bool) {
	prev := c.Load(fetch)
	for {
		next, ok := f(prev)
		if !ok {
			return prev, false
		}
		if c.cas(prev, next) {
			return prev, true
		}
		prev = c.Load(fetch)
	}
}

// LockFree reports true.
func (c *Cell[T]) LockFree() bool {
	return true
}
