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
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync/atomic"

	"github.com/srediag/atomicint/internal/logging"
)

const (
	defaultSpinLimit = 64
	defaultMaxYield  = 16

	maxSpinLimit = 1 << 20
	maxMaxYield  = 1 << 10

	debugLevel = logging.LevelDebug
)

// ErrInvalidConfig is returned by VerifyConfig for out of range settings.
var ErrInvalidConfig = errors.New("spin: invalid config")

var (
	logger = logging.New("spin", nil)
	config atomic.Pointer[Config]
)

// Config tunes the contended path of every Lock. The uncontended path never
// reads it.
type Config struct {
	// SpinLimit is the number of relaxed polls a waiter makes before it
	// starts yielding to the scheduler.
	SpinLimit int
	// MaxYield caps the exponential backoff: a waiter yields 1, 2, 4 ... up to
	// MaxYield times between polls.
	MaxYield int
}

// DefaultConfig returns the settings used when nothing else is configured.
func DefaultConfig() *Config {
	return &Config{
		SpinLimit: defaultSpinLimit,
		MaxYield:  defaultMaxYield,
	}
}

// VerifyConfig reports whether c can be installed.
func VerifyConfig(c *Config) error {
	if c == nil {
		return fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}
	if c.SpinLimit < 0 || c.SpinLimit > maxSpinLimit {
		return fmt.Errorf("%w: SpinLimit %d not in [0, %d]", ErrInvalidConfig, c.SpinLimit, maxSpinLimit)
	}
	if c.MaxYield < 1 || c.MaxYield > maxMaxYield {
		return fmt.Errorf("%w: MaxYield %d not in [1, %d]", ErrInvalidConfig, c.MaxYield, maxMaxYield)
	}
	return nil
}

// SetConfig installs a copy of c for all subsequently contended acquisitions.
func SetConfig(c *Config) error {
	if err := VerifyConfig(c); err != nil {
		return err
	}
	cp := *c
	config.Store(&cp)
	return nil
}

// CurrentConfig returns a copy of the installed settings.
func CurrentConfig() Config {
	return *currentConfig()
}

func currentConfig() *Config {
	return config.Load()
}

func init() {
	c := DefaultConfig()
	if v := os.Getenv("ATOMICINT_SPIN_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.SpinLimit = n
		} else {
			logger.Warnf("ignoring ATOMICINT_SPIN_LIMIT=%q: %v", v, err)
		}
	}
	if v := os.Getenv("ATOMICINT_MAX_YIELD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxYield = n
		} else {
			logger.Warnf("ignoring ATOMICINT_MAX_YIELD=%q: %v", v, err)
		}
	}
	if err := SetConfig(c); err != nil {
		logger.Warnf("%v, using defaults", err)
		_ = SetConfig(DefaultConfig())
	}
}
