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
	"errors"
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
	"go.opentelemetry.io/otel/trace"

	"github.com/srediag/atomicint/internal/logging"
)

const (
	defaultIterations = 10000
	maxWorkers        = 1 << 12
)

var (
	// ErrInvalidConfig is wrapped by every VerifyConfig failure.
	ErrInvalidConfig = errors.New("stress: invalid config")
	// ErrLinearizability is wrapped by every failed check.
	ErrLinearizability = errors.New("stress: linearizability violated")
)

var logger = logging.New("stress", nil)

// Config sizes a stress run.
type Config struct {
	// Kinds names the kinds to exercise, as reported by atomicint.Kinds.
	// Empty means all of them.
	Kinds []string
	// Workers is the number of goroutines hammering each cell.
	Workers int
	// Iterations is the number of FetchAdd calls per worker.
	Iterations int
	// Concurrent runs every kind at the same time instead of one after the
	// other, which puts the shared spin statistics under more pressure.
	Concurrent bool
	// Tracer receives one span per kind. Nil disables tracing.
	Tracer trace.Tracer
}

// DefaultConfig returns a config with one worker per logical CPU.
func DefaultConfig() *Config {
	return &Config{
		Workers:    logicalCPUs(),
		Iterations: defaultIterations,
	}
}

// VerifyConfig checks c and fills in the kind list.
func VerifyConfig(c *Config) error {
	if c.Workers <= 0 || c.Workers > maxWorkers {
		return fmt.Errorf("%w: workers %d not in [1, %d]", ErrInvalidConfig, c.Workers, maxWorkers)
	}
	if c.Iterations <= 0 {
		return fmt.Errorf("%w: iterations %d must be positive", ErrInvalidConfig, c.Iterations)
	}
	if len(c.Kinds) == 0 {
		c.Kinds = knownKinds()
		return nil
	}
	seen := make(map[string]bool, len(c.Kinds))
	for _, k := range c.Kinds {
		if _, ok := targets[k]; !ok {
			return fmt.Errorf("%w: unknown kind %q", ErrInvalidConfig, k)
		}
		if seen[k] {
			return fmt.Errorf("%w: kind %q listed twice", ErrInvalidConfig, k)
		}
		seen[k] = true
	}
	return nil
}

func logicalCPUs() int {
	n, err := cpu.Counts(true)
	if err != nil || n <= 0 {
		logger.Warnf("cpu count unavailable, using 4 workers: %v", err)
		return 4
	}
	return n
}
