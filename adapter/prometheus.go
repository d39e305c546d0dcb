package adapter

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/srediag/atomicint/internal/spin"
)

const namespace = "atomicint"

var (
	contendedDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "spin", "contended_total"),
		"Fallback lock acquisitions that had to wait.",
		nil, nil,
	)
	pollsDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "spin", "polls_total"),
		"Relaxed polls made while waiting for a fallback lock.",
		nil, nil,
	)
	yieldsDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "spin", "yields_total"),
		"Scheduler yields made while waiting for a fallback lock.",
		nil, nil,
	)
)

// Collector reports the process-wide spin statistics. The counters are read
// at scrape time, so the lock paths carry no Prometheus cost.
type Collector struct {
	read func() spin.Stats
}

// NewCollector returns a Collector over spin.ReadStats.
func NewCollector() *Collector {
	return &Collector{read: spin.ReadStats}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- contendedDesc
	ch <- pollsDesc
	ch <- yieldsDesc
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.read()
	ch <- prometheus.MustNewConstMetric(contendedDesc, prometheus.CounterValue, float64(s.Contended))
	ch <- prometheus.MustNewConstMetric(pollsDesc, prometheus.CounterValue, float64(s.Polls))
	ch <- prometheus.MustNewConstMetric(yieldsDesc, prometheus.CounterValue, float64(s.Yields))
}
