package atomicint

import (
	"github.com/srediag/atomicint/api"
	"github.com/srediag/atomicint/internal/fallback"
)

// Ordering re-exports api.Ordering.
type Ordering = api.Ordering

const (
	Relaxed = api.Relaxed
	Release = api.Release
	Acquire = api.Acquire
	AcqRel  = api.AcqRel
	SeqCst  = api.SeqCst
)

// SignalSafe reports whether this build masks signals while a fallback lock
// is held. See the atomicint_signal build tag.
const SignalSafe = fallback.SignalSafe

// LockTableSize is the number of spinlocks shared by the address functions
// such as AddInt8.
const LockTableSize = fallback.TableSize
