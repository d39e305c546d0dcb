//go:build !atomicint_noc && !atomicint_minimal && !windows && !wasm && (amd64 || arm64 || ppc64 || ppc64le || mips64 || mips64le || s390x || riscv64 || loong64)

package atomicint

// Go types of C long and unsigned long on this target.
type (
	CLongValue  = int64
	CUlongValue = uint64
)

// C long is 64 bits on LP64 targets.
type (
	CLong  = Int64
	CUlong = Uint64
)

func newCLong(v CLongValue) *CLong    { return NewInt64(v) }
func newCUlong(v CUlongValue) *CUlong { return NewUint64(v) }
