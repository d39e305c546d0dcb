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
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sugawarayuuta/sonnet"

	"github.com/srediag/atomicint/pkg/atomicint"
)

func lookup(t *testing.T, name string) atomicint.Kind {
	t.Helper()
	k, err := atomicint.Lookup(name)
	require.NoError(t, err)
	return k
}

func TestRender(t *testing.T) {
	results, err := Run(context.Background(), smallConfig("Int8", "Uint32"))
	require.NoError(t, err)
	results = append(results, Result{Kind: lookup(t, "Int16"), Err: ErrLinearizability})

	out := Render(results)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Contains(t, lines[0], "KIND")
	assert.Contains(t, lines[1], "fallback")
	assert.Contains(t, lines[2], "native")
	assert.Contains(t, lines[3], "FAIL")
	assert.True(t, strings.HasPrefix(lines[4], "native: 1 kinds"), lines[4])
	assert.True(t, strings.HasPrefix(lines[5], "fallback: 1 kinds"), lines[5])
	assert.Equal(t, "3 kinds, 1 failed", lines[6])
}

func TestSummarize(t *testing.T) {
	i8, i16, u32 := lookup(t, "Int8"), lookup(t, "Int16"), lookup(t, "Uint32")
	results := []Result{
		{Kind: i8, Workers: 1, Iterations: 10, Elapsed: 100 * time.Nanosecond},
		{Kind: i16, Workers: 1, Iterations: 10, Elapsed: 300 * time.Nanosecond},
		{Kind: u32, Workers: 2, Iterations: 10, Elapsed: 100 * time.Nanosecond},
		{Kind: u32, Err: ErrLinearizability},
	}
	got := Summarize(results)
	require.Len(t, got, 2)

	assert.Equal(t, "native", got[0].Impl)
	assert.Equal(t, 1, got[0].Kinds)
	assert.InDelta(t, 5, got[0].MeanNs, 1e-9)
	assert.Zero(t, got[0].StdDevNs)

	assert.Equal(t, "fallback", got[1].Impl)
	assert.Equal(t, 2, got[1].Kinds)
	assert.InDelta(t, 20, got[1].MeanNs, 1e-9)
	assert.InDelta(t, 14.142135, got[1].StdDevNs, 1e-5)
}

func TestRenderJSON(t *testing.T) {
	results := []Result{
		{Kind: lookup(t, "Uint16"), Workers: 2, Iterations: 3, Expected: 6, Final: 6, UniqueChecked: true},
		{Kind: lookup(t, "Int32"), Workers: 1, Iterations: 1, Err: ErrLinearizability},
	}
	b, err := RenderJSON(results)
	require.NoError(t, err)

	var rep jsonReport
	require.NoError(t, sonnet.Unmarshal(b, &rep))
	require.Len(t, rep.Results, 2)
	assert.Equal(t, 1, rep.Failed)
	assert.Equal(t, "Uint16", rep.Results[0].Kind)
	assert.Equal(t, "fallback", rep.Results[0].Impl)
	assert.Equal(t, uint64(6), rep.Results[0].Final)
	assert.Empty(t, rep.Results[0].Error)
	assert.Equal(t, ErrLinearizability.Error(), rep.Results[1].Error)
}
