//go:build !(arm || mips || mipsle)

package atomicint

import "github.com/srediag/atomicint/internal/native"

type (
	Int64  = native.Cell[int64]
	Uint64 = native.Cell[uint64]
)

func NewInt64(v int64) *Int64    { return native.New(v) }
func NewUint64(v uint64) *Uint64 { return native.New(v) }
