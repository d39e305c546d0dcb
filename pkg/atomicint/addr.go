package atomicint

import "github.com/srediag/atomicint/internal/fallback"

// The functions below mirror the sync/atomic functions for the widths
// sync/atomic lacks. They operate on plain variables, serialized through a
// shared table of LockTableSize spinlocks keyed by address. They are atomic
// only with respect to each other: every access to such a variable must go
// through them.

// LoadInt8 atomically loads *addr.
func LoadInt8(addr *int8) int8 { return fallback.LoadAt(addr) }

// StoreInt8 atomically stores val into *addr.
func StoreInt8(addr *int8, val int8) { fallback.StoreAt(addr, val) }

// SwapInt8 atomically stores new into *addr and returns the previous value.
func SwapInt8(addr *int8, new int8) (old int8) { return fallback.SwapAt(addr, new) }

// CompareAndSwapInt8 executes the compare-and-swap operation for an int8 value.
func CompareAndSwapInt8(addr *int8, old, new int8) (swapped bool) {
	return fallback.CompareAndSwapAt(addr, old, new)
}

// AddInt8 atomically adds delta to *addr and returns the new value.
func AddInt8(addr *int8, delta int8) (new int8) { return fallback.AddAt(addr, delta) }

// LoadUint8 atomically loads *addr.
func LoadUint8(addr *uint8) uint8 { return fallback.LoadAt(addr) }

// StoreUint8 atomically stores val into *addr.
func StoreUint8(addr *uint8, val uint8) { fallback.StoreAt(addr, val) }

// SwapUint8 atomically stores new into *addr and returns the previous value.
func SwapUint8(addr *uint8, new uint8) (old uint8) { return fallback.SwapAt(addr, new) }

// CompareAndSwapUint8 executes the compare-and-swap operation for a uint8 value.
func CompareAndSwapUint8(addr *uint8, old, new uint8) (swapped bool) {
	return fallback.CompareAndSwapAt(addr, old, new)
}

// AddUint8 atomically adds delta to *addr and returns the new value.
func AddUint8(addr *uint8, delta uint8) (new uint8) { return fallback.AddAt(addr, delta) }

// LoadInt16 atomically loads *addr.
func LoadInt16(addr *int16) int16 { return fallback.LoadAt(addr) }

// StoreInt16 atomically stores val into *addr.
func StoreInt16(addr *int16, val int16) { fallback.StoreAt(addr, val) }

// SwapInt16 atomically stores new into *addr and returns the previous value.
func SwapInt16(addr *int16, new int16) (old int16) { return fallback.SwapAt(addr, new) }

// CompareAndSwapInt16 executes the compare-and-swap operation for an int16 value.
func CompareAndSwapInt16(addr *int16, old, new int16) (swapped bool) {
	return fallback.CompareAndSwapAt(addr, old, new)
}

// AddInt16 atomically adds delta to *addr and returns the new value.
func AddInt16(addr *int16, delta int16) (new int16) { return fallback.AddAt(addr, delta) }

// LoadUint16 atomically loads *addr.
func LoadUint16(addr *uint16) uint16 { return fallback.LoadAt(addr) }

// StoreUint16 atomically stores val into *addr.
func StoreUint16(addr *uint16, val uint16) { fallback.StoreAt(addr, val) }

// SwapUint16 atomically stores new into *addr and returns the previous value.
func SwapUint16(addr *uint16, new uint16) (old uint16) { return fallback.SwapAt(addr, new) }

// CompareAndSwapUint16 executes the compare-and-swap operation for a uint16 value.
func CompareAndSwapUint16(addr *uint16, old, new uint16) (swapped bool) {
	return fallback.CompareAndSwapAt(addr, old, new)
}

// AddUint16 atomically adds delta to *addr and returns the new value.
func AddUint16(addr *uint16, delta uint16) (new uint16) { return fallback.AddAt(addr, delta) }
