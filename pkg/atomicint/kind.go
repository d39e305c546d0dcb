package atomicint

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/srediag/atomicint/api"
)

// ErrUnknownKind is returned by Lookup for names not in Kinds.
var ErrUnknownKind = errors.New("atomicint: unknown kind")

// Kind describes the implementation selected for one integer kind in this
// build.
type Kind struct {
	Name   string
	Bits   int
	Signed bool
	// Native is true when the kind is backed by sync/atomic.
	Native bool
}

// NeedsFallback reports whether the kind is emulated with a spinlock.
func (k Kind) NeedsFallback() bool {
	return !k.Native
}

func (k Kind) String() string {
	impl := "native"
	if !k.Native {
		impl = "fallback"
	}
	sign := "u"
	if k.Signed {
		sign = "i"
	}
	return fmt.Sprintf("%s(%s%d, %s)", k.Name, sign, k.Bits, impl)
}

// describe derives a Kind from the type itself so the report cannot drift
// from the aliases.
func describe[T constraints.Integer](name string, a api.Integer[T]) Kind {
	var z T
	return Kind{
		Name:   name,
		Bits:   int(unsafe.Sizeof(z)) * 8,
		Signed: z-1 < z,
		Native: a.LockFree(),
	}
}

// Kinds lists every kind compiled into this build, primitives first.
func Kinds() []Kind {
	return append(primitiveKinds(), cKinds()...)
}

// Lookup returns the Kind with the given name, such as "Int16" or "CLong".
func Lookup(name string) (Kind, error) {
	for _, k := range Kinds() {
		if k.Name == name {
			return k, nil
		}
	}
	return Kind{}, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}
