//go:build !atomicint_noc

package atomicint

// C-compatible kinds whose width is the same on every supported target.
// CChar, CLong and CUlong are defined per target.
type (
	CSchar     = Int8
	CUchar     = Uint8
	CShort     = Int16
	CUshort    = Uint16
	CInt       = Int32
	CUint      = Uint32
	CLonglong  = Int64
	CUlonglong = Uint64
)

// Constructors return a cell holding v.
func NewCSchar(v int8) *CSchar           { return NewInt8(v) }
func NewCUchar(v uint8) *CUchar          { return NewUint8(v) }
func NewCShort(v int16) *CShort          { return NewInt16(v) }
func NewCUshort(v uint16) *CUshort       { return NewUint16(v) }
func NewCInt(v int32) *CInt              { return NewInt32(v) }
func NewCUint(v uint32) *CUint           { return NewUint32(v) }
func NewCLonglong(v int64) *CLonglong    { return NewInt64(v) }
func NewCUlonglong(v uint64) *CUlonglong { return NewUint64(v) }
func NewCChar(v CCharValue) *CChar       { return newCChar(v) }
func NewCLong(v CLongValue) *CLong       { return newCLong(v) }
func NewCUlong(v CUlongValue) *CUlong    { return newCUlong(v) }

func cKinds() []Kind {
	return []Kind{
		describe[CCharValue]("CChar", new(CChar)),
		describe[int8]("CSchar", new(CSchar)),
		describe[uint8]("CUchar", new(CUchar)),
		describe[int16]("CShort", new(CShort)),
		describe[uint16]("CUshort", new(CUshort)),
		describe[int32]("CInt", new(CInt)),
		describe[uint32]("CUint", new(CUint)),
		describe[CLongValue]("CLong", new(CLong)),
		describe[CUlongValue]("CUlong", new(CUlong)),
		describe[int64]("CLonglong", new(CLonglong)),
		describe[uint64]("CUlonglong", new(CUlonglong)),
	}
}
