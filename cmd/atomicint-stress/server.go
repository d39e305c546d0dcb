package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/heptiolabs/healthcheck"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/srediag/atomicint/adapter"
)

// maxYieldsPerContended is the readiness limit on average backoff depth.
const maxYieldsPerContended = 64

type server struct {
	srv *http.Server
	ln  net.Listener
}

func newHandler() http.Handler {
	reg := prometheus.NewRegistry()
	reg.MustRegister(adapter.NewCollector())

	health := healthcheck.NewHandler()
	health.AddLivenessCheck("self-test", adapter.SelfTestCheck())
	health.AddReadinessCheck("contention", adapter.ContentionCheck(maxYieldsPerContended))

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	mux.Handle("/live", health)
	mux.Handle("/ready", health)
	return mux
}

func startServer(addr string) (*server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}
	s := &server{
		srv: &http.Server{Handler: newHandler(), ReadHeaderTimeout: 5 * time.Second},
		ln:  ln,
	}
	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("serve %s: %v", addr, err)
		}
	}()
	logger.Infof("serving metrics and health on %s", ln.Addr())
	return s, nil
}

func (s *server) stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.srv.Shutdown(ctx); err != nil {
		logger.Warnf("shutdown: %v", err)
	}
}
