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

// Package sigmask blocks signal delivery on the current thread for the
// duration of a critical section.
//
// A spinlock held by normal-flow code can deadlock against a signal handler
// that tries to take the same lock on the same thread. Block masks every
// signal and pins the calling goroutine to its OS thread; Restore puts the
// previous mask back and unpins it. Callers defer Restore so the mask is
// reversed on every exit path, panics included.
//
// Masking is implemented for Linux. On other targets Block and Restore do
// nothing.
package sigmask

import "github.com/srediag/atomicint/internal/logging"

var logger = logging.New("sigmask", nil)
