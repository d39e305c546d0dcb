//go:build !linux

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

// Enabled reports whether Block actually masks signals on this target.
const Enabled = false

// Guard is empty on targets without signal masking.
type Guard struct{}

// Block does nothing on this target.
func Block() Guard { return Guard{} }

// Restore does nothing on this target.
func (g *Guard) Restore() {}

// Blocked always reports false on this target.
func Blocked(sig int) bool { return false }
