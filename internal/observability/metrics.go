package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "freightlink_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"path", "method", "status"},
	)

	// CacheHits tracks cache hits/misses
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "freightlink_cache_hits_total",
			Help: "Number of cache hits",
		},
		[]string{"operation"},
	)

	// DatabaseOperations tracks database operations
	DatabaseOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "freightlink_database_operations_total",
			Help: "Number of database operations",
		},
		[]string{"operation", "status"},
	)

	// ProfileUpdates tracks driver profile updates
	ProfileUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "freightlink_profile_updates_total",
			Help: "Number of driver profile updates",
		},
		[]string{"status"},
	)

	// NormalizerFallbacks tracks how often the tolerant parser fell back
	// from JSON decoding to comma splitting
	NormalizerFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "freightlink_normalizer_fallbacks_total",
			Help: "Number of field normalizations that used a fallback parse path",
		},
		[]string{"outcome"},
	)

	// ActiveConnections tracks active connections
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "freightlink_active_connections",
			Help: "Number of active connections",
		},
	)
)
