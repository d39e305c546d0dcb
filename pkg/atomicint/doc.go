// Package atomicint provides atomic integers for every Go integer kind and
// for the C-compatible integer kinds, with one operation surface for all of
// them.
//
// For each kind the build selects either a native implementation backed by
// sync/atomic or a fallback built from a spinlock and a plain value. Int8,
// Uint8, Int16 and Uint16 always use the fallback, since Go has no atomic
// instructions of those widths. Int64 and Uint64 use the fallback on arm, mips
// and mipsle, where the Go toolchain itself emulates 64-bit atomics with
// locks. Use Kinds to see the decision for the current build.
//
// Every operation accepts an api.Ordering. Both implementations provide
// sequential consistency regardless of the request; the fallback upgrades
// weaker orderings because its lock already totally orders every operation
// on a cell.
//
// Build tags:
//
//	atomicint_signal   mask signals while a fallback lock is held (Linux)
//	atomicint_noc      omit the C-compatible kinds
//	atomicint_minimal  use a minimal built-in C kind table: signed char,
//	                   pointer-sized long
//
// Example usage:
//
//	var hits atomicint.Uint16
//	hits.FetchAdd(1, atomicint.Relaxed)
//	n := hits.Load(atomicint.SeqCst)
package atomicint
