//go:build arm || mips || mipsle

package atomicint

import "github.com/srediag/atomicint/internal/fallback"

// The Go toolchain implements 64-bit atomics on these targets with a lock of
// its own, so they are not genuinely native.
type (
	Int64  = fallback.Cell[int64]
	Uint64 = fallback.Cell[uint64]
)

func NewInt64(v int64) *Int64    { return fallback.New(v) }
func NewUint64(v uint64) *Uint64 { return fallback.New(v) }
