// Package api defines public API contracts for atomicint.
package api

import "strconv"

// Ordering is the memory ordering requested for an atomic operation.
//
// Native cells map every ordering onto sync/atomic, which is sequentially
// consistent. Fallback cells serialize every operation through a spinlock, so a
// weaker request is upgraded to SeqCst. Neither implementation ever provides
// less than what was asked for.
type Ordering uint8

const (
	Relaxed Ordering = iota
	Release
	Acquire
	AcqRel
	SeqCst
)

var orderingNames = [...]string{
	Relaxed: "Relaxed",
	Release: "Release",
	Acquire: "Acquire",
	AcqRel:  "AcqRel",
	SeqCst:  "SeqCst",
}

func (o Ordering) String() string {
	if int(o) < len(orderingNames) {
		return orderingNames[o]
	}
	return "Ordering(" + strconv.Itoa(int(o)) + ")"
}

// Upgrade returns the ordering an implementation actually provides for o.
// It is always SeqCst.
func (o Ordering) Upgrade() Ordering {
	return SeqCst
}
