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

package fallback

import (
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/srediag/atomicint/internal/spin"
)

// TableSize is the number of locks shared by the address-keyed functions.
// A larger table reduces false contention between unrelated addresses at
// the cost of memory.
const TableSize = 64

const cacheLineSize = 64

type paddedLock struct {
	spin.Lock
	_ [cacheLineSize - unsafe.Sizeof(spin.Lock{})]byte
}

// locktab lives for the whole process. Addresses in the same 8-byte word
// always map to the same lock.
var locktab [TableSize]paddedLock

func lockFor(addr unsafe.Pointer) *spin.Lock {
	return &locktab[(uintptr(addr)>>3)%TableSize].Lock
}

// LoadAt atomically loads *addr. The *At functions are atomic only with
// respect to each other; mixing them with plain accesses to the same
// location is a data race.
func LoadAt[T constraints.Integer](addr *T) T {
	g := acquire(lockFor(unsafe.Pointer(addr)))
	defer g.unlock()
	return *addr
}

// StoreAt atomically stores val into *addr.
func StoreAt[T constraints.Integer](addr *T, val T) {
	g := acquire(lockFor(unsafe.Pointer(addr)))
	defer g.unlock()
	*addr = val
}

// SwapAt atomically stores val into *addr and returns the previous value.
func SwapAt[T constraints.Integer](addr *T, val T) T {
	g := acquire(lockFor(unsafe.Pointer(addr)))
	defer g.unlock()
	prev := *addr
	*addr = val
	return prev
}

// CompareAndSwapAt atomically replaces *addr with new if it equals old.
func CompareAndSwapAt[T constraints.Integer](addr *T, old, new T) bool {
	g := acquire(lockFor(unsafe.Pointer(addr)))
	defer g.unlock()
	if *addr != old {
		return false
	}
	*addr = new
	return true
}

// AddAt atomically adds delta to *addr and returns the new value.
func AddAt[T constraints.Integer](addr *T, delta T) T {
	g := acquire(lockFor(unsafe.Pointer(addr)))
	defer g.unlock()
	*addr += delta
	return *addr
}
