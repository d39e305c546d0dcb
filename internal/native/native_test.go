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

package native

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/srediag/atomicint/api"
	"github.com/srediag/atomicint/internal/atomictest"
)

func newCell[T Word](v T) api.Integer[T] {
	return New(v)
}

func TestNativeInt32(t *testing.T) {
	suite.Run(t, &atomictest.IntegerSuite[int32]{New: newCell[int32]})
}

func TestNativeUint32(t *testing.T) {
	suite.Run(t, &atomictest.IntegerSuite[uint32]{New: newCell[uint32]})
}

func TestNativeInt64(t *testing.T) {
	suite.Run(t, &atomictest.IntegerSuite[int64]{New: newCell[int64]})
}

func TestNativeUint64(t *testing.T) {
	suite.Run(t, &atomictest.IntegerSuite[uint64]{New: newCell[uint64]})
}

func TestNativeInt(t *testing.T) {
	suite.Run(t, &atomictest.IntegerSuite[int]{New: newCell[int]})
}

func TestNativeUint(t *testing.T) {
	suite.Run(t, &atomictest.IntegerSuite[uint]{New: newCell[uint]})
}

func TestNativeUintptr(t *testing.T) {
	suite.Run(t, &atomictest.IntegerSuite[uintptr]{New: newCell[uintptr]})
}

func TestLockFree(t *testing.T) {
	assert.True(t, New[int32](0).LockFree())
	assert.True(t, New[uint64](0).LockFree())
}

func TestAlignment(t *testing.T) {
	var s struct {
		b byte
		c Cell[int64]
	}
	s.b = 1
	assert.Zero(t, uintptr(unsafe.Pointer(&s.c.v))%8)
}

func TestSignExtension(t *testing.T) {
	c := New[int32](-1)
	assert.Equal(t, int32(-1), c.FetchAnd(-2, api.SeqCst))
	assert.Equal(t, int32(-2), c.Load(api.SeqCst))
	assert.Equal(t, int32(-2), c.FetchOr(1, api.SeqCst))
	assert.Equal(t, int32(-1), c.Load(api.SeqCst))
}

func BenchmarkNativeFetchAddParallel(b *testing.B) {
	c := New[int32](0)
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			c.FetchAdd(1, api.Relaxed)
		}
	})
}

func BenchmarkNativeFetchMaxParallel(b *testing.B) {
	c := New[uint64](0)
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		var i uint64
		for pb.Next() {
			i++
			c.FetchMax(i, api.Relaxed)
		}
	})
}
