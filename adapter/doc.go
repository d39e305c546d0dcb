// Package adapter exposes atomicint's spinlock contention statistics to
// Prometheus, OpenTelemetry and HTTP health checks.
package adapter
