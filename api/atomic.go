package api

// Integer is the operation surface shared by native and fallback atomic
// integers. Callers must not depend on which implementation backs a kind.
type Integer[T any] interface {
	// Load returns the current value.
	Load(order Ordering) T
	// Store replaces the current value.
	Store(val T, order Ordering)
	// Swap stores val and returns the previous value.
	Swap(val T, order Ordering) T
	// CompareExchange stores new if the current value equals current. It returns
	// the value observed before the attempt and whether it was replaced.
	CompareExchange(current, new T, success, failure Ordering) (T, bool)
	// CompareExchangeWeak has the same contract as CompareExchange. No
	// implementation in this module fails spuriously.
	CompareExchangeWeak(current, new T, success, failure Ordering) (T, bool)

	FetchAdd(val T, order Ordering) T
	FetchSub(val T, order Ordering) T
	FetchAnd(val T, order Ordering) T
	FetchNand(val T, order Ordering) T
	FetchOr(val T, order Ordering) T
	FetchXor(val T, order Ordering) T
	FetchMax(val T, order Ordering) T
	FetchMin(val T, order Ordering) T

	// FetchUpdate applies f to the current value. If f returns false, the value
	// is left unchanged. It returns the previous value and whether f produced
	// a replacement.
	FetchUpdate(set, fetch Ordering, f func(T) (T, bool)) (T, bool)

	// LockFree reports whether the kind is backed by a native instruction.
	LockFree() bool
}
