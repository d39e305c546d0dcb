package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/heptiolabs/healthcheck"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/embedded"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/srediag/atomicint/internal/spin"
)

func fixed(s spin.Stats) func() spin.Stats {
	return func() spin.Stats { return s }
}

func TestCollector(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(&Collector{read: fixed(spin.Stats{Contended: 3, Polls: 40, Yields: 5})}))

	families, err := reg.Gather()
	require.NoError(t, err)
	got := map[string]float64{}
	for _, mf := range families {
		require.Equal(t, dto.MetricType_COUNTER, mf.GetType())
		require.Len(t, mf.GetMetric(), 1)
		got[mf.GetName()] = mf.GetMetric()[0].GetCounter().GetValue()
	}
	assert.Equal(t, map[string]float64{
		"atomicint_spin_contended_total": 3,
		"atomicint_spin_polls_total":     40,
		"atomicint_spin_yields_total":    5,
	}, got)
}

func TestNewCollectorRegisters(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(NewCollector()))
	assert.Error(t, reg.Register(NewCollector()), "duplicate collector must be rejected")
}

type recordingMeter struct {
	noop.Meter
	cb metric.Callback
}

func (m *recordingMeter) RegisterCallback(f metric.Callback, obs ...metric.Observable) (metric.Registration, error) {
	m.cb = f
	return m.Meter.RegisterCallback(f, obs...)
}

type recordingObserver struct {
	embedded.Observer
	values []int64
}

func (o *recordingObserver) ObserveFloat64(metric.Float64Observable, float64, ...metric.ObserveOption) {}

func (o *recordingObserver) ObserveInt64(_ metric.Int64Observable, v int64, _ ...metric.ObserveOption) {
	o.values = append(o.values, v)
}

func TestRegisterMetrics(t *testing.T) {
	require.NoError(t, RegisterMetrics(noop.NewMeterProvider().Meter("test")))

	m := &recordingMeter{}
	require.NoError(t, registerMetrics(m, fixed(spin.Stats{Contended: 1, Polls: 2, Yields: 3})))
	require.NotNil(t, m.cb)

	o := &recordingObserver{}
	require.NoError(t, m.cb(context.Background(), o))
	assert.Equal(t, []int64{1, 2, 3}, o.values)
}

func TestSelfTestCheck(t *testing.T) {
	assert.NoError(t, SelfTestCheck()())
}

func TestContentionCheck(t *testing.T) {
	assert.NoError(t, contentionCheck(2, fixed(spin.Stats{}))())
	assert.NoError(t, contentionCheck(2, fixed(spin.Stats{Contended: 10, Yields: 20}))())
	assert.Error(t, contentionCheck(2, fixed(spin.Stats{Contended: 10, Yields: 21}))())
}

func TestHealthHandler(t *testing.T) {
	h := healthcheck.NewHandler()
	h.AddLivenessCheck("self-test", SelfTestCheck())
	h.AddReadinessCheck("contention", contentionCheck(1, fixed(spin.Stats{Contended: 1, Yields: 5})))

	rw := httptest.NewRecorder()
	h.ServeHTTP(rw, httptest.NewRequest(http.MethodGet, "/live", nil))
	assert.Equal(t, http.StatusOK, rw.Code)

	rw = httptest.NewRecorder()
	h.ServeHTTP(rw, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rw.Code)
}
