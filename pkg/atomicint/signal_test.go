//go:build !atomicint_signal

package atomicint

const signalTag = false
