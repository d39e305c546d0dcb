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
	"fmt"
	"runtime"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Enabled reports whether Block actually masks signals on this target.
const Enabled = true

// Guard holds the signal mask that was in effect before Block.
type Guard struct {
	old unix.Sigset_t
}

// synchronous signals stay deliverable so the runtime can turn a fault in a
// critical section into a panic, which unwinds through Restore.
var synchronous = []unix.Signal{unix.SIGSEGV, unix.SIGBUS, unix.SIGFPE, unix.SIGILL, unix.SIGTRAP}

// full is every signal except the synchronous ones.
var full = func() unix.Sigset_t {
	var set unix.Sigset_t
	for i := range set.Val {
		set.Val[i] = ^set.Val[i]
	}
	for _, sig := range synchronous {
		n := uint(sig) - 1
		set.Val[n/wordBits] &^= 1 << (n % wordBits)
	}
	return set
}()

const wordBits = uint(unsafe.Sizeof(unix.Sigset_t{}.Val[0])) * 8

// Block masks all asynchronous signals on the current thread and returns a Guard that
// restores the previous mask.
func Block() Guard {
	var g Guard
	runtime.LockOSThread()
	if err := unix.PthreadSigmask(unix.SIG_SETMASK, &full, &g.old); err != nil {
		runtime.UnlockOSThread()
		fatal("block", err)
	}
	return g
}

// Restore reinstates the mask saved by Block. It must run on the goroutine
// that called Block.
func (g *Guard) Restore() {
	if err := unix.PthreadSigmask(unix.SIG_SETMASK, &g.old, nil); err != nil {
		fatal("restore", err)
	}
	runtime.UnlockOSThread()
}

// Blocked reports whether signal number sig is blocked on the current thread.
func Blocked(sig int) bool {
	var cur unix.Sigset_t
	if err := unix.PthreadSigmask(unix.SIG_BLOCK, nil, &cur); err != nil {
		fatal("query", err)
	}
	n := uint(sig) - 1
	return uint64(cur.Val[n/wordBits])&(1<<(n%wordBits)) != 0
}

func fatal(op string, err error) {
	logger.Errorf("[%s] pthread_sigmask() failed: %v", op, err)
	panic(fmt.Sprintf("sigmask: %s: pthread_sigmask: %v", op, err))
}
