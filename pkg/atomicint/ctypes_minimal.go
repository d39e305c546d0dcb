//go:build !atomicint_noc && atomicint_minimal

package atomicint

// The minimal table assumes a signed char and a pointer-sized long instead of
// deriving them from the target.
type (
	CCharValue  = int8
	CLongValue  = int
	CUlongValue = uint
)

type (
	CChar  = Int8
	CLong  = Int
	CUlong = Uint
)

func newCChar(v CCharValue) *CChar    { return NewInt8(v) }
func newCLong(v CLongValue) *CLong    { return NewInt(v) }
func newCUlong(v CUlongValue) *CUlong { return NewUint(v) }
