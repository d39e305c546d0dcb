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

package sigmask

import (
	"os"
	"os/signal"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestBlockAndRestore(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	require.False(t, Blocked(int(unix.SIGUSR1)))
	g := Block()
	require.True(t, Blocked(int(unix.SIGUSR1)))
	require.True(t, Blocked(int(unix.SIGINT)))
	g.Restore()
	require.False(t, Blocked(int(unix.SIGUSR1)))
}

func TestNestedGuards(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	outer := Block()
	inner := Block()
	inner.Restore()
	require.True(t, Blocked(int(unix.SIGUSR1)), "inner restore must leave the outer mask in place")
	outer.Restore()
	require.False(t, Blocked(int(unix.SIGUSR1)))
}

func TestPendingSignalDeliveredOnRestore(t *testing.T) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, unix.SIGUSR1)
	defer signal.Stop(ch)

	g := Block()
	require.NoError(t, unix.Tgkill(unix.Getpid(), unix.Gettid(), unix.SIGUSR1))
	select {
	case <-ch:
		t.Fatal("signal delivered while masked")
	case <-time.After(50 * time.Millisecond):
	}
	g.Restore()

	select {
	case sig := <-ch:
		require.Equal(t, unix.SIGUSR1, sig)
	case <-time.After(5 * time.Second):
		t.Fatal("signal not delivered after restore")
	}
}

func TestRestoreOnPanic(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	require.Panics(t, func() {
		g := Block()
		defer g.Restore()
		panic("boom")
	})
	require.False(t, Blocked(int(unix.SIGUSR1)))
}

func TestSynchronousSignalsStayUnblocked(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	g := Block()
	defer g.Restore()
	for _, sig := range synchronous {
		require.False(t, Blocked(int(sig)), "%v must stay deliverable", sig)
	}
	require.True(t, Blocked(int(unix.SIGTERM)))
}

func TestRestoreOnFault(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	var p *int
	require.Panics(t, func() {
		g := Block()
		defer g.Restore()
		_ = *p
	})
	require.False(t, Blocked(int(unix.SIGUSR1)))
}
