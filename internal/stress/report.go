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
	"fmt"
	"strconv"
	"time"

	"github.com/sugawarayuuta/sonnet"
	"github.com/valyala/bytebufferpool"
	"gonum.org/v1/gonum/stat"
)

// Summary is the per-operation cost of one implementation across kinds.
type Summary struct {
	Impl     string  `json:"impl"`
	Kinds    int     `json:"kinds"`
	MeanNs   float64 `json:"mean_ns_per_op"`
	StdDevNs float64 `json:"stddev_ns_per_op"`
}

// nsPerOp is wall time per FetchAdd, not CPU time.
func (r Result) nsPerOp() float64 {
	ops := float64(r.Workers) * float64(r.Iterations)
	if ops == 0 {
		return 0
	}
	return float64(r.Elapsed.Nanoseconds()) / ops
}

func impl(r Result) string {
	if r.Kind.NeedsFallback() {
		return "fallback"
	}
	return "native"
}

// Summarize groups passing results by implementation, native first.
func Summarize(results []Result) []Summary {
	samples := map[string][]float64{}
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		samples[impl(r)] = append(samples[impl(r)], r.nsPerOp())
	}
	var out []Summary
	for _, name := range []string{"native", "fallback"} {
		xs := samples[name]
		if len(xs) == 0 {
			continue
		}
		s := Summary{Impl: name, Kinds: len(xs), MeanNs: stat.Mean(xs, nil)}
		if len(xs) > 1 {
			s.StdDevNs = stat.StdDev(xs, nil)
		}
		out = append(out, s)
	}
	return out
}

// Render formats results as a fixed-width text table, one summary line per
// implementation and a final count.
func Render(results []Result) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	fmt.Fprintf(buf, "%-11s %4s %-8s %8s %10s %20s %6s %10s %12s  %s\n",
		"KIND", "BITS", "IMPL", "WORKERS", "ITERS", "FINAL", "UNIQUE", "CONTENDED", "ELAPSED", "STATUS")
	failed := 0
	for _, r := range results {
		unique := "-"
		if r.UniqueChecked {
			unique = strconv.FormatBool(r.Duplicates == 0)
		}
		status := "ok"
		if r.Err != nil {
			status = "FAIL: " + r.Err.Error()
			failed++
		}
		fmt.Fprintf(buf, "%-11s %4d %-8s %8d %10d %20d %6s %10d %12s  %s\n",
			r.Kind.Name, r.Kind.Bits, impl(r), r.Workers, r.Iterations, r.Final,
			unique, r.Spin.Contended, r.Elapsed.Round(time.Microsecond), status)
	}
	for _, s := range Summarize(results) {
		fmt.Fprintf(buf, "%s: %d kinds, %.1f ns/op (stddev %.1f)\n", s.Impl, s.Kinds, s.MeanNs, s.StdDevNs)
	}
	fmt.Fprintf(buf, "%d kinds, %d failed\n", len(results), failed)
	return buf.String()
}

type jsonResult struct {
	Kind          string  `json:"kind"`
	Bits          int     `json:"bits"`
	Signed        bool    `json:"signed"`
	Impl          string  `json:"impl"`
	Workers       int     `json:"workers"`
	Iterations    int     `json:"iterations"`
	Expected      uint64  `json:"expected"`
	Final         uint64  `json:"final"`
	UniqueChecked bool    `json:"unique_checked"`
	Duplicates    int     `json:"duplicates"`
	NsPerOp       float64 `json:"ns_per_op"`
	Contended     uint64  `json:"contended"`
	Polls         uint64  `json:"polls"`
	Yields        uint64  `json:"yields"`
	Error         string  `json:"error,omitempty"`
}

type jsonReport struct {
	Results []jsonResult `json:"results"`
	Summary []Summary    `json:"summary"`
	Failed  int          `json:"failed"`
}

// RenderJSON returns the report as a JSON document.
func RenderJSON(results []Result) ([]byte, error) {
	rep := jsonReport{Results: make([]jsonResult, 0, len(results)), Summary: Summarize(results)}
	for _, r := range results {
		jr := jsonResult{
			Kind:          r.Kind.Name,
			Bits:          r.Kind.Bits,
			Signed:        r.Kind.Signed,
			Impl:          impl(r),
			Workers:       r.Workers,
			Iterations:    r.Iterations,
			Expected:      r.Expected,
			Final:         r.Final,
			UniqueChecked: r.UniqueChecked,
			Duplicates:    r.Duplicates,
			NsPerOp:       r.nsPerOp(),
			Contended:     r.Spin.Contended,
			Polls:         r.Spin.Polls,
			Yields:        r.Spin.Yields,
		}
		if r.Err != nil {
			jr.Error = r.Err.Error()
			rep.Failed++
		}
		rep.Results = append(rep.Results, jr)
	}
	b, err := sonnet.Marshal(&rep)
	if err != nil {
		return nil, fmt.Errorf("stress: encode report: %w", err)
	}
	return b, nil
}
