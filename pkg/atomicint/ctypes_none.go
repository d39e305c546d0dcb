//go:build atomicint_noc

package atomicint

func cKinds() []Kind { return nil }
