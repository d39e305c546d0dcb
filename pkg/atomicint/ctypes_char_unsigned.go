//go:build !atomicint_noc && !atomicint_minimal && (linux || freebsd || netbsd) && (arm || arm64 || ppc64 || ppc64le || s390x || riscv64)

package atomicint

// CCharValue is the Go type of a C char on this target.
type CCharValue = uint8

// CChar is an atomic C char, which is unsigned on this target.
type CChar = Uint8

func newCChar(v CCharValue) *CChar { return NewUint8(v) }
