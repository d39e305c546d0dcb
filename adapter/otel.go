package adapter

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/metric"

	"github.com/srediag/atomicint/internal/spin"
)

// RegisterMetrics registers the spin statistics on meter as observable
// counters named like the Prometheus ones.
func RegisterMetrics(meter metric.Meter) error {
	return registerMetrics(meter, spin.ReadStats)
}

func registerMetrics(meter metric.Meter, read func() spin.Stats) error {
	contended, err := meter.Int64ObservableCounter("atomicint.spin.contended",
		metric.WithDescription("Fallback lock acquisitions that had to wait."))
	if err != nil {
		return fmt.Errorf("adapter: register contended counter: %w", err)
	}
	polls, err := meter.Int64ObservableCounter("atomicint.spin.polls",
		metric.WithDescription("Relaxed polls made while waiting for a fallback lock."))
	if err != nil {
		return fmt.Errorf("adapter: register polls counter: %w", err)
	}
	yields, err := meter.Int64ObservableCounter("atomicint.spin.yields",
		metric.WithDescription("Scheduler yields made while waiting for a fallback lock."))
	if err != nil {
		return fmt.Errorf("adapter: register yields counter: %w", err)
	}

	_, err = meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		s := read()
		o.ObserveInt64(contended, int64(s.Contended))
		o.ObserveInt64(polls, int64(s.Polls))
		o.ObserveInt64(yields, int64(s.Yields))
		return nil
	}, contended, polls, yields)
	if err != nil {
		return fmt.Errorf("adapter: register callback: %w", err)
	}
	return nil
}
