// Package observability provides logging, metrics, and tracing.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StorageErrors counts storage backend errors by operation type.
	StorageErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_storage_errors_total",
		Help: "Total number of storage backend errors by operation type",
	}, []string{"operation"})

	// SnapshotWrites counts snapshot persistence attempts by key and outcome.
	// Writes are fire-and-forget, so this is the place failures surface.
	SnapshotWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_snapshot_writes_total",
		Help: "Total snapshot writes by storage key and outcome",
	}, []string{"key", "outcome"})

	// SnapshotLoads counts collection loads by key and source (stored or seed).
	SnapshotLoads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_snapshot_loads_total",
		Help: "Total snapshot loads by storage key and source",
	}, []string{"key", "source"})

	// TrendingFetches counts trending content fetches by kind.
	TrendingFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_trending_fetches_total",
		Help: "Total trending content fetches by kind",
	}, []string{"kind"})
)
