//go:build linux

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
	"os"
	"os/signal"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/srediag/atomicint/api"
	"github.com/srediag/atomicint/internal/sigmask"
)

// TestSignalDuringCriticalSection raises SIGUSR1 on the current thread while
// the cell's lock is held. The handler operates on the same cell; it must
// complete once the critical section ends instead of deadlocking.
func TestSignalDuringCriticalSection(t *testing.T) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, unix.SIGUSR1)
	defer signal.Stop(sigs)

	c := New[int16](0)
	handled := make(chan int16, 1)
	go func() {
		<-sigs
		handled <- c.FetchAdd(100, api.SeqCst)
	}()

	c.FetchUpdate(api.SeqCst, api.SeqCst, func(v int16) (int16, bool) {
		if SignalSafe && sigmask.Enabled {
			assert.True(t, sigmask.Blocked(int(unix.SIGUSR1)), "signals must be masked while the lock is held")
		}
		require.NoError(t, unix.Tgkill(unix.Getpid(), unix.Gettid(), unix.SIGUSR1))
		return v + 1, true
	})

	select {
	case prev := <-handled:
		assert.Equal(t, int16(1), prev)
	case <-time.After(10 * time.Second):
		t.Fatal("handler did not complete: deadlock")
	}
	assert.Equal(t, int16(101), c.Load(api.SeqCst))
	if SignalSafe {
		assert.False(t, sigmask.Blocked(int(unix.SIGUSR1)))
	}
}
