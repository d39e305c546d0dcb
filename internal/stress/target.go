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

package stress

import (
	"sort"

	"golang.org/x/exp/constraints"

	"github.com/srediag/atomicint/api"
	"github.com/srediag/atomicint/pkg/atomicint"
)

// target hammers one freshly allocated cell of a kind.
type target func(h *harness, k atomicint.Kind) Result

// targets holds every kind compiled into this build, keyed by the name
// atomicint.Kinds reports.
var targets = map[string]target{}

func register[T constraints.Integer](name string, newCell func() api.Integer[T]) {
	targets[name] = func(h *harness, k atomicint.Kind) Result {
		return hammer(h, k, newCell())
	}
}

// knownKinds lists the registered kinds in atomicint.Kinds order.
func knownKinds() []string {
	names := make([]string, 0, len(targets))
	for _, k := range atomicint.Kinds() {
		if _, ok := targets[k.Name]; ok {
			names = append(names, k.Name)
		}
	}
	// Anything registered but not reported sorts last, which a test catches.
	var extra []string
	for name := range targets {
		if _, err := atomicint.Lookup(name); err != nil {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	return append(names, extra...)
}
