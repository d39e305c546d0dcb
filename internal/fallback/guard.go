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
	"github.com/srediag/atomicint/internal/sigmask"
	"github.com/srediag/atomicint/internal/spin"
)

// guard is a held lock. Release it with a deferred unlock so the lock and the
// signal mask are both reversed on every exit path.
type guard struct {
	lock *spin.Lock
	mask sigmask.Guard
}

func acquire(l *spin.Lock) guard {
	g := guard{lock: l}
	if SignalSafe {
		g.mask = sigmask.Block()
	}
	l.Lock()
	return g
}

func (g *guard) unlock() {
	g.lock.Unlock()
	if SignalSafe {
		g.mask.Restore()
	}
}
