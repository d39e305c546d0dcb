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

package spin

import (
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type LockTestSuite struct {
	suite.Suite
}

func (s *LockTestSuite) TestZeroValueUnlocked() {
	var l Lock
	s.False(l.Locked())
	s.True(l.TryLock())
	s.True(l.Locked())
	s.False(l.TryLock())
	l.Unlock()
	s.False(l.Locked())
}

func (s *LockTestSuite) TestUnlockOfUnlockedPanics() {
	var l Lock
	s.PanicsWithValue("spin: unlock of unlocked lock", func() { l.Unlock() })
}

func (s *LockTestSuite) TestMutualExclusion() {
	var (
		l       Lock
		wg      sync.WaitGroup
		counter int
		inside  int32
	)
	workers := 4 * runtime.GOMAXPROCS(0)
	const iterations = 2000
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := 0; k < iterations; k++ {
				l.Lock()
				inside++
				if inside != 1 {
					panic("two holders inside the critical section")
				}
				counter++
				inside--
				l.Unlock()
			}
		}()
	}
	wg.Wait()
	s.Equal(workers*iterations, counter)
	s.False(l.Locked())
}

func (s *LockTestSuite) TestContentionIsCounted() {
	ResetStats()
	var l Lock
	l.Lock()
	started := make(chan struct{})
	done := make(chan struct{})
	go func() {
		close(started)
		l.Lock()
		l.Unlock()
		close(done)
	}()
	<-started
	time.Sleep(20 * time.Millisecond)
	l.Unlock()
	<-done

	st := ReadStats()
	s.Equal(uint64(1), st.Contended)
	ResetStats()
	s.Equal(Stats{}, ReadStats())
}

func (s *LockTestSuite) TestSlowPathWithZeroSpinLimit() {
	saved := CurrentConfig()
	defer func() { s.Require().NoError(SetConfig(&saved)) }()
	s.Require().NoError(SetConfig(&Config{SpinLimit: 0, MaxYield: 1}))

	var (
		l  Lock
		wg sync.WaitGroup
		n  int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := 0; k < 500; k++ {
				l.Lock()
				n++
				l.Unlock()
			}
		}()
	}
	wg.Wait()
	s.Equal(8*500, n)
}

func TestLockTestSuite(t *testing.T) {
	suite.Run(t, new(LockTestSuite))
}

func TestVerifyConfig(t *testing.T) {
	assert.NoError(t, VerifyConfig(DefaultConfig()))
	assert.ErrorIs(t, VerifyConfig(nil), ErrInvalidConfig)
	assert.ErrorIs(t, VerifyConfig(&Config{SpinLimit: -1, MaxYield: 1}), ErrInvalidConfig)
	assert.ErrorIs(t, VerifyConfig(&Config{SpinLimit: maxSpinLimit + 1, MaxYield: 1}), ErrInvalidConfig)
	assert.ErrorIs(t, VerifyConfig(&Config{SpinLimit: 0, MaxYield: 0}), ErrInvalidConfig)
	assert.ErrorIs(t, VerifyConfig(&Config{SpinLimit: 0, MaxYield: maxMaxYield + 1}), ErrInvalidConfig)
	assert.NoError(t, VerifyConfig(&Config{SpinLimit: 0, MaxYield: 1}))
}

func TestSetConfigCopies(t *testing.T) {
	saved := CurrentConfig()
	defer func() { _ = SetConfig(&saved) }()

	c := &Config{SpinLimit: 7, MaxYield: 2}
	assert.NoError(t, SetConfig(c))
	c.SpinLimit = 9
	assert.Equal(t, Config{SpinLimit: 7, MaxYield: 2}, CurrentConfig())

	assert.Error(t, SetConfig(&Config{SpinLimit: -5, MaxYield: 2}))
	assert.Equal(t, Config{SpinLimit: 7, MaxYield: 2}, CurrentConfig())
}

func BenchmarkLockUncontended(b *testing.B) {
	var l Lock
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Lock()
		l.Unlock()
	}
}

func BenchmarkLockContended(b *testing.B) {
	var l Lock
	b.SetParallelism(8)
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			l.Lock()
			l.Unlock()
		}
	})
}
