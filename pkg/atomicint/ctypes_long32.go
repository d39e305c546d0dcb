//go:build !atomicint_noc && !atomicint_minimal && !(!windows && !wasm && (amd64 || arm64 || ppc64 || ppc64le || mips64 || mips64le || s390x || riscv64 || loong64))

package atomicint

// Go types of C long and unsigned long on this target.
type (
	CLongValue  = int32
	CUlongValue = uint32
)

// C long is 32 bits on ILP32 and LLP64 targets.
type (
	CLong  = Int32
	CUlong = Uint32
)

func newCLong(v CLongValue) *CLong    { return NewInt32(v) }
func newCUlong(v CUlongValue) *CUlong { return NewUint32(v) }
