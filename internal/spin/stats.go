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

import "sync/atomic"

// Stats counts contended acquisitions across all locks in the process.
// Uncontended acquisitions are not counted.
type Stats struct {
	// Contended is the number of acquisitions whose first attempt failed.
	Contended uint64
	// Polls is the number of relaxed polls made while waiting.
	Polls uint64
	// Yields is the number of times a waiter yielded to the scheduler.
	Yields uint64
}

var (
	contended atomic.Uint64
	polls     atomic.Uint64
	yields    atomic.Uint64
)

func recordContention(p, y uint64) {
	contended.Add(1)
	if p != 0 {
		polls.Add(p)
	}
	if y != 0 {
		yields.Add(y)
	}
}

// ReadStats returns a snapshot of the counters. Fields are read
// independently, so a snapshot taken under contention may be slightly skewed.
func ReadStats() Stats {
	return Stats{
		Contended: contended.Load(),
		Polls:     polls.Load(),
		Yields:    yields.Load(),
	}
}

// ResetStats zeroes the counters.
func ResetStats() {
	contended.Store(0)
	polls.Store(0)
	yields.Store(0)
}
