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

// Package stress runs the FetchAdd conservation check against every atomic
// integer kind: N workers each add 1 M times, after which the cell must hold
// N×M modulo its width and, when N×M fits in the width, every old value
// returned must be distinct.
package stress

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Workiva/go-datastructures/bitarray"
	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/panjf2000/ants/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"golang.org/x/exp/constraints"

	"github.com/srediag/atomicint/api"
	"github.com/srediag/atomicint/internal/spin"
	"github.com/srediag/atomicint/pkg/atomicint"
)

const (
	// cancelCheckEvery is how many iterations a worker runs between context checks.
	cancelCheckEvery = 1024
	// maxUniqueCheck bounds N×M for the duplicate check, which keeps every
	// old value (8 bytes each) plus one bit per expected value.
	maxUniqueCheck = 1 << 24
)

// Result is the outcome of one kind.
type Result struct {
	Kind       atomicint.Kind
	Workers    int
	Iterations int
	// Expected and Final are the expected and observed final values,
	// reinterpreted as unsigned.
	Expected uint64
	Final    uint64
	// UniqueChecked is set when N×M fit in the width and stayed under
	// maxUniqueCheck, so the old values were checked for duplicates.
	UniqueChecked bool
	Duplicates    int
	Elapsed       time.Duration
	// Spin is the contention recorded while this kind ran. It includes
	// other kinds when the run is concurrent.
	Spin spin.Stats
	Err  error
}

// OK reports whether the kind passed.
func (r Result) OK() bool { return r.Err == nil }

type harness struct {
	ctx        context.Context
	pool       *ants.Pool
	tracer     trace.Tracer
	workers    int
	iterations int
}

// Run exercises cfg.Kinds and returns one Result per kind in the order
// given. The returned error joins every failure; failed checks wrap
// ErrLinearizability. Run stops early when ctx is done.
func Run(ctx context.Context, cfg *Config) ([]Result, error) {
	if err := VerifyConfig(cfg); err != nil {
		return nil, err
	}
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("")
	}

	size := cfg.Workers
	if cfg.Concurrent {
		size *= len(cfg.Kinds)
	}
	pool, err := ants.NewPool(size, ants.WithPreAlloc(false))
	if err != nil {
		return nil, fmt.Errorf("stress: create worker pool: %w", err)
	}
	defer pool.Release()

	h := &harness{
		ctx:        ctx,
		pool:       pool,
		tracer:     tracer,
		workers:    cfg.Workers,
		iterations: cfg.Iterations,
	}

	results := cmap.New[Result]()
	runOne := func(name string) {
		k, err := atomicint.Lookup(name)
		if err != nil {
			results.Set(name, Result{Err: err})
			return
		}
		results.Set(name, h.trace(k))
	}

	if cfg.Concurrent {
		var wg sync.WaitGroup
		for _, name := range cfg.Kinds {
			wg.Add(1)
			go func(name string) {
				defer wg.Done()
				runOne(name)
			}(name)
		}
		wg.Wait()
	} else {
		for _, name := range cfg.Kinds {
			if ctx.Err() != nil {
				break
			}
			runOne(name)
		}
	}

	out := make([]Result, 0, len(cfg.Kinds))
	var errs []error
	for _, name := range cfg.Kinds {
		r, ok := results.Get(name)
		if !ok {
			continue
		}
		out = append(out, r)
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	if err := ctx.Err(); err != nil {
		errs = append(errs, err)
	}
	return out, errors.Join(errs...)
}

func (h *harness) trace(k atomicint.Kind) Result {
	_, span := h.tracer.Start(h.ctx, "stress."+k.Name, trace.WithAttributes(
		attribute.Int("atomicint.bits", k.Bits),
		attribute.Bool("atomicint.native", k.Native),
		attribute.Int("stress.workers", h.workers),
		attribute.Int("stress.iterations", h.iterations),
	))
	defer span.End()

	r := targets[k.Name](h, k)
	if r.Err != nil {
		span.RecordError(r.Err)
		span.SetStatus(codes.Error, r.Err.Error())
	}
	logger.Debugf("%s: final %d expected %d in %s", k.Name, r.Final, r.Expected, r.Elapsed)
	return r
}

// unsigned reinterprets v as an unsigned value of the same width.
func unsigned[T constraints.Integer](v T, bits int) uint64 {
	u := uint64(v)
	if bits < 64 {
		u &= 1<<bits - 1
	}
	return u
}

func hammer[T constraints.Integer](h *harness, k atomicint.Kind, cell api.Integer[T]) Result {
	r := Result{Kind: k, Workers: h.workers, Iterations: h.iterations}
	total := uint64(h.workers) * uint64(h.iterations)
	r.Expected = unsigned(T(total), k.Bits)
	r.UniqueChecked = uniqueCheckable(k.Bits, total)

	var olds [][]uint64
	if r.UniqueChecked {
		olds = make([][]uint64, h.workers)
	}

	before := spin.ReadStats()
	start := time.Now()
	var (
		wg       sync.WaitGroup
		canceled sync.Once
		ctxErr   error
	)
	for w := 0; w < h.workers; w++ {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			var seen []uint64
			if olds != nil {
				seen = make([]uint64, 0, h.iterations)
			}
			for i := 0; i < h.iterations; i++ {
				if i%cancelCheckEvery == 0 && h.ctx.Err() != nil {
					canceled.Do(func() { ctxErr = h.ctx.Err() })
					return
				}
				old := cell.FetchAdd(1, api.Relaxed)
				if seen != nil {
					seen = append(seen, unsigned(old, k.Bits))
				}
			}
			if olds != nil {
				olds[w] = seen
			}
		}
		if err := h.pool.Submit(task); err != nil {
			wg.Done()
			wg.Wait()
			r.Err = fmt.Errorf("stress: %s: submit worker: %w", k.Name, err)
			return r
		}
	}
	wg.Wait()
	r.Elapsed = time.Since(start)
	r.Spin = diff(spin.ReadStats(), before)
	r.Final = unsigned(cell.Load(api.SeqCst), k.Bits)

	if ctxErr != nil {
		r.Err = fmt.Errorf("stress: %s: %w", k.Name, ctxErr)
		return r
	}
	if r.Final != r.Expected {
		r.Err = fmt.Errorf("%w: %s: final value %d, want %d", ErrLinearizability, k.Name, r.Final, r.Expected)
		return r
	}
	if r.UniqueChecked {
		dups, err := duplicates(olds, total)
		r.Duplicates = dups
		if err != nil {
			r.Err = fmt.Errorf("%w: %s: %v", ErrLinearizability, k.Name, err)
		} else if dups > 0 {
			r.Err = fmt.Errorf("%w: %s: %d old values returned more than once", ErrLinearizability, k.Name, dups)
		}
	}
	return r
}

// uniqueCheckable reports whether total old values of a bits-wide kind can
// be checked for duplicates: they must not wrap, and must fit the bound.
func uniqueCheckable(bits int, total uint64) bool {
	if total > maxUniqueCheck {
		return false
	}
	return bits >= 64 || total <= 1<<bits
}

// duplicates counts old values seen more than once. Starting from zero, the
// old values must be exactly 0..total-1.
func duplicates(olds [][]uint64, total uint64) (int, error) {
	seen := bitarray.NewBitArray(total)
	dups := 0
	for _, worker := range olds {
		for _, v := range worker {
			if v >= total {
				return dups, fmt.Errorf("old value %d outside [0, %d)", v, total)
			}
			set, err := seen.GetBit(v)
			if err != nil {
				return dups, err
			}
			if set {
				dups++
				continue
			}
			if err := seen.SetBit(v); err != nil {
				return dups, err
			}
		}
	}
	return dups, nil
}

func diff(after, before spin.Stats) spin.Stats {
	return spin.Stats{
		Contended: after.Contended - before.Contended,
		Polls:     after.Polls - before.Polls,
		Yields:    after.Yields - before.Yields,
	}
}
