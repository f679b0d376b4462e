package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ResolveTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "liveboard_resolve_total",
		Help: "Number of schedule resolutions performed for requests",
	})

	SourceReloadTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "liveboard_source_reload_total",
		Help: "Schedule source reload attempts by status",
	}, []string{"status"})

	SourceReloadSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "liveboard_source_reload_seconds",
		Help:    "Duration of schedule source fetches",
		Buckets: prometheus.DefBuckets,
	})

	SnapshotItems = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "liveboard_snapshot_items",
		Help: "Number of items in the in-memory schedule snapshot",
	})

	AdminWriteTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "liveboard_admin_write_total",
		Help: "Admin state writes by resource",
	}, []string{"resource"})
)

// MustRegister registers all collectors on the given registerer.
func MustRegister(registerer prometheus.Registerer) {
	registerer.MustRegister(
		ResolveTotal,
		SourceReloadTotal,
		SourceReloadSeconds,
		SnapshotItems,
		AdminWriteTotal,
	)
}

// ObserveReload records a reload attempt outcome.
func ObserveReload(err error, seconds float64, itemCount int) {
	status := "success"
	if err != nil {
		status = "error"
	}
	SourceReloadTotal.WithLabelValues(status).Inc()
	SourceReloadSeconds.Observe(seconds)
	if err == nil {
		SnapshotItems.Set(float64(itemCount))
	}
}
