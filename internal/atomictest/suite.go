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

// Package atomictest holds the conformance suite every atomic integer kind
// must pass, whether it is native or a fallback.
package atomictest

import (
	"runtime"
	"sync"
	"unsafe"

	"github.com/stretchr/testify/suite"
	"golang.org/x/exp/constraints"

	"github.com/srediag/atomicint/api"
)

// IntegerSuite checks an api.Integer[T] implementation. New must return a
// fresh cell holding its argument.
type IntegerSuite[T constraints.Integer] struct {
	suite.Suite
	New func(T) api.Integer[T]
	// Workers and Iterations size the contention tests. Zero picks defaults.
	Workers    int
	Iterations int
}

// Bits returns the width of T.
func Bits[T constraints.Integer]() int {
	var z T
	return int(unsafe.Sizeof(z)) * 8
}

// Signed reports whether T is a signed kind.
func Signed[T constraints.Integer]() bool {
	var z T
	return z-1 < z
}

// Max returns the largest representable T.
func Max[T constraints.Integer]() T {
	if !Signed[T]() {
		return ^T(0)
	}
	one := T(1)
	return one<<(Bits[T]()-1) - 1
}

// Min returns the smallest representable T.
func Min[T constraints.Integer]() T {
	if !Signed[T]() {
		return 0
	}
	return ^Max[T]()
}

func (s *IntegerSuite[T]) workers() int {
	if s.Workers > 0 {
		return s.Workers
	}
	return 2 * runtime.GOMAXPROCS(0)
}

func (s *IntegerSuite[T]) iterations() int {
	if s.Iterations > 0 {
		return s.Iterations
	}
	return 2000
}

func (s *IntegerSuite[T]) values() []T {
	vals := []T{0, 1, Max[T](), Min[T](), Max[T]() - 1, Min[T]() + 1}
	if Signed[T]() {
		var minusOne T
		minusOne--
		vals = append(vals, minusOne)
	}
	return vals
}

func (s *IntegerSuite[T]) TestRoundTrip() {
	c := s.New(0)
	for _, x := range s.values() {
		c.Store(x, api.SeqCst)
		s.Equal(x, c.Load(api.SeqCst))
		c.Store(x, api.Relaxed)
		s.Equal(x, c.Load(api.Relaxed))
	}
	for _, x := range s.values() {
		s.Equal(x, s.New(x).Load(api.Acquire))
	}
}

// TestEveryOrdering runs a store, swap and add under each ordering. Every
// ordering is provided as SeqCst, so the results do not depend on it.
func (s *IntegerSuite[T]) TestEveryOrdering() {
	c := s.New(0)
	for i, o := range []api.Ordering{api.Relaxed, api.Release, api.Acquire, api.AcqRel, api.SeqCst} {
		s.Equal(api.SeqCst, o.Upgrade(), o.String())
		c.Store(T(i), o)
		s.Equal(T(i), c.Swap(T(i+1), o))
		s.Equal(T(i+1), c.FetchAdd(1, o))
		s.Equal(T(i+2), c.Load(o))
	}
}

func (s *IntegerSuite[T]) TestWraparound() {
	c := s.New(Max[T]())
	s.Equal(Max[T](), c.FetchAdd(1, api.SeqCst))
	s.Equal(Min[T](), c.Load(api.SeqCst))

	s.Equal(Min[T](), c.FetchSub(1, api.SeqCst))
	s.Equal(Max[T](), c.Load(api.SeqCst))

	s.Equal(Max[T](), c.FetchAdd(Max[T](), api.Relaxed))
	s.Equal(Max[T]()+Max[T](), c.Load(api.SeqCst))
}

func (s *IntegerSuite[T]) TestCompareExchange() {
	var v, w T = 5, 7
	c := s.New(v)

	prev, ok := c.CompareExchange(v, w, api.SeqCst, api.SeqCst)
	s.True(ok)
	s.Equal(v, prev)
	s.Equal(w, c.Load(api.SeqCst))

	prev, ok = c.CompareExchange(v, w, api.SeqCst, api.SeqCst)
	s.False(ok)
	s.Equal(w, prev)
	s.Equal(w, c.Load(api.SeqCst))

	prev, ok = c.CompareExchangeWeak(w, v, api.AcqRel, api.Relaxed)
	s.True(ok)
	s.Equal(w, prev)
	prev, ok = c.CompareExchangeWeak(w, v, api.AcqRel, api.Relaxed)
	s.False(ok)
	s.Equal(v, prev)
	s.Equal(v, c.Load(api.SeqCst))
}

func (s *IntegerSuite[T]) TestSwap() {
	c := s.New(3)
	s.Equal(T(3), c.Swap(9, api.SeqCst))
	s.Equal(T(9), c.Swap(Max[T](), api.Release))
	s.Equal(Max[T](), c.Load(api.SeqCst))
}

func (s *IntegerSuite[T]) TestBitwise() {
	var a, b T = 0x5a, 0x3c
	c := s.New(a)
	s.Equal(a, c.FetchAnd(b, api.SeqCst))
	s.Equal(a&b, c.Load(api.SeqCst))

	c.Store(a, api.SeqCst)
	s.Equal(a, c.FetchOr(b, api.SeqCst))
	s.Equal(a|b, c.Load(api.SeqCst))

	c.Store(a, api.SeqCst)
	s.Equal(a, c.FetchXor(b, api.SeqCst))
	s.Equal(a^b, c.Load(api.SeqCst))

	c.Store(a, api.SeqCst)
	s.Equal(a, c.FetchNand(b, api.SeqCst))
	s.Equal(^(a & b), c.Load(api.SeqCst))

	c.Store(0, api.SeqCst)
	s.Equal(T(0), c.FetchNand(0, api.SeqCst))
	s.Equal(^T(0), c.Load(api.SeqCst))
}

func (s *IntegerSuite[T]) TestMaxMin() {
	c := s.New(10)
	s.Equal(T(10), c.FetchMax(20, api.SeqCst))
	s.Equal(T(20), c.Load(api.SeqCst))
	s.Equal(T(20), c.FetchMax(15, api.SeqCst))
	s.Equal(T(20), c.Load(api.SeqCst))

	s.Equal(T(20), c.FetchMin(15, api.SeqCst))
	s.Equal(T(15), c.Load(api.SeqCst))
	s.Equal(T(15), c.FetchMin(Max[T](), api.SeqCst))
	s.Equal(T(15), c.Load(api.SeqCst))

	s.Equal(T(15), c.FetchMin(Min[T](), api.SeqCst))
	s.Equal(Min[T](), c.Load(api.SeqCst))
	s.Equal(Min[T](), c.FetchMax(Max[T](), api.SeqCst))
	s.Equal(Max[T](), c.Load(api.SeqCst))
}

func (s *IntegerSuite[T]) TestFetchUpdate() {
	c := s.New(4)
	prev, ok := c.FetchUpdate(api.SeqCst, api.SeqCst, func(v T) (T, bool) {
		return v * 2, true
	})
	s.True(ok)
	s.Equal(T(4), prev)
	s.Equal(T(8), c.Load(api.SeqCst))

	prev, ok = c.FetchUpdate(api.SeqCst, api.SeqCst, func(v T) (T, bool) {
		return 0, false
	})
	s.False(ok)
	s.Equal(T(8), prev)
	s.Equal(T(8), c.Load(api.SeqCst))
}

// TestContendedFetchAdd runs Workers goroutines each adding 1 Iterations
// times. The final value must be exactly Workers*Iterations, wrapped to T.
func (s *IntegerSuite[T]) TestContendedFetchAdd() {
	c := s.New(0)
	n, m := s.workers(), s.iterations()
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := 0; k < m; k++ {
				c.FetchAdd(1, api.Relaxed)
			}
		}()
	}
	wg.Wait()
	total := n * m
	s.Equal(T(total), c.Load(api.SeqCst))
}

// TestContendedCompareExchangeLoop increments through a weak CAS retry loop
// with Relaxed ordering on both paths.
func (s *IntegerSuite[T]) TestContendedCompareExchangeLoop() {
	c := s.New(0)
	n, m := s.workers(), s.iterations()/4+1
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := 0; k < m; k++ {
				cur := c.Load(api.Relaxed)
				for {
					prev, ok := c.CompareExchangeWeak(cur, cur+1, api.Relaxed, api.Relaxed)
					if ok {
						break
					}
					cur = prev
				}
			}
		}()
	}
	wg.Wait()
	s.Equal(T(n*m), c.Load(api.SeqCst))
}

// TestRelaxedSwapChain swaps distinct tokens in with Relaxed ordering from
// several goroutines. If the swaps form one total order, following each
// token to the token that displaced it visits every token exactly once and
// ends at the final value.
func (s *IntegerSuite[T]) TestRelaxedSwapChain() {
	const workers, perWorker = 4, 25 // tokens 1..100 fit every kind
	c := s.New(0)
	displaced := make([][2]T, 0, workers*perWorker)
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			local := make([][2]T, 0, perWorker)
			for k := 0; k < perWorker; k++ {
				token := T(1 + w*perWorker + k)
				local = append(local, [2]T{c.Swap(token, api.Relaxed), token})
			}
			mu.Lock()
			displaced = append(displaced, local...)
			mu.Unlock()
		}(w)
	}
	wg.Wait()

	next := make(map[T]T, len(displaced))
	for _, p := range displaced {
		_, dup := next[p[0]]
		s.Require().False(dup, "value %v displaced twice", p[0])
		next[p[0]] = p[1]
	}
	cur, steps := T(0), 0
	for {
		n, ok := next[cur]
		if !ok {
			break
		}
		cur = n
		steps++
	}
	s.Equal(workers*perWorker, steps)
	s.Equal(cur, c.Load(api.SeqCst))
}
