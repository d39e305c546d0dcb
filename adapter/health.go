package adapter

import (
	"errors"
	"fmt"

	"github.com/heptiolabs/healthcheck"

	"github.com/srediag/atomicint/api"
	"github.com/srediag/atomicint/internal/spin"
	"github.com/srediag/atomicint/pkg/atomicint"
)

// SelfTestCheck returns a check that runs a quick single-threaded sanity
// pass over a fallback cell: wraparound, CAS in both outcomes and a
// declined FetchUpdate.
func SelfTestCheck() healthcheck.Check {
	return func() error {
		c := atomicint.NewUint8(255)
		if prev := c.FetchAdd(1, api.SeqCst); prev != 255 || c.Load(api.SeqCst) != 0 {
			return errors.New("atomicint: uint8 wraparound broken")
		}
		if _, ok := c.CompareExchange(0, 7, api.SeqCst, api.SeqCst); !ok {
			return errors.New("atomicint: compare-exchange failed on matching value")
		}
		if prev, ok := c.CompareExchange(0, 9, api.SeqCst, api.SeqCst); ok || prev != 7 {
			return errors.New("atomicint: compare-exchange succeeded on stale value")
		}
		if _, ok := c.FetchUpdate(api.SeqCst, api.SeqCst, func(v uint8) (uint8, bool) { return v, false }); ok {
			return errors.New("atomicint: declined update reported success")
		}
		return nil
	}
}

// ContentionCheck returns a check that fails once waiters yield to the
// scheduler more than maxYieldsPerContended times per contended acquisition
// on average. A process with no contention passes.
func ContentionCheck(maxYieldsPerContended float64) healthcheck.Check {
	return contentionCheck(maxYieldsPerContended, spin.ReadStats)
}

func contentionCheck(limit float64, read func() spin.Stats) healthcheck.Check {
	return func() error {
		s := read()
		if s.Contended == 0 {
			return nil
		}
		if avg := float64(s.Yields) / float64(s.Contended); avg > limit {
			return fmt.Errorf("atomicint: %.1f yields per contended lock, limit %.1f", avg, limit)
		}
		return nil
	}
}
