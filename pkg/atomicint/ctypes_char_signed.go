//go:build !atomicint_noc && !atomicint_minimal && !((linux || freebsd || netbsd) && (arm || arm64 || ppc64 || ppc64le || s390x || riscv64))

package atomicint

// CCharValue is the Go type of a C char on this target.
type CCharValue = int8

// CChar is an atomic C char, which is signed on this target.
type CChar = Int8

func newCChar(v CCharValue) *CChar { return NewInt8(v) }
