package atomicint

import (
	"github.com/srediag/atomicint/internal/fallback"
	"github.com/srediag/atomicint/internal/native"
)

// Kinds without a native atomic of their width on any Go target.
type (
	Int8   = fallback.Cell[int8]
	Uint8  = fallback.Cell[uint8]
	Int16  = fallback.Cell[int16]
	Uint16 = fallback.Cell[uint16]
)

// Kinds with a native atomic on every Go target.
type (
	Int32   = native.Cell[int32]
	Uint32  = native.Cell[uint32]
	Int     = native.Cell[int]
	Uint    = native.Cell[uint]
	Uintptr = native.Cell[uintptr]
)

func NewInt8(v int8) *Int8       { return fallback.New(v) }
func NewUint8(v uint8) *Uint8    { return fallback.New(v) }
func NewInt16(v int16) *Int16    { return fallback.New(v) }
func NewUint16(v uint16) *Uint16 { return fallback.New(v) }

func NewInt32(v int32) *Int32       { return native.New(v) }
func NewUint32(v uint32) *Uint32    { return native.New(v) }
func NewInt(v int) *Int             { return native.New(v) }
func NewUint(v uint) *Uint          { return native.New(v) }
func NewUintptr(v uintptr) *Uintptr { return native.New(v) }

func primitiveKinds() []Kind {
	return []Kind{
		describe[int8]("Int8", new(Int8)),
		describe[uint8]("Uint8", new(Uint8)),
		describe[int16]("Int16", new(Int16)),
		describe[uint16]("Uint16", new(Uint16)),
		describe[int32]("Int32", new(Int32)),
		describe[uint32]("Uint32", new(Uint32)),
		describe[int64]("Int64", new(Int64)),
		describe[uint64]("Uint64", new(Uint64)),
		describe[int]("Int", new(Int)),
		describe[uint]("Uint", new(Uint)),
		describe[uintptr]("Uintptr", new(Uintptr)),
	}
}
