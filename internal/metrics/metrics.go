package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	FixesProcessed    *prometheus.CounterVec
	ElevationErrors   prometheus.Counter
	ElevationSeconds  *prometheus.HistogramVec
	ConversionSeconds prometheus.Histogram
	ActiveWorkers     prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		FixesProcessed: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "groundtruth_fixes_processed_total",
			Help: "Total number of processed fixes.",
		}, []string{"status"}),
		ElevationErrors: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "groundtruth_elevation_errors_total",
			Help: "Total number of errors received from the elevation provider.",
		}),
		ElevationSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "groundtruth_elevation_request_duration_seconds",
			Help:    "Duration of requests to the elevation provider.",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider"}),
		ConversionSeconds: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "groundtruth_conversion_duration_seconds",
			Help:    "Duration of a single geodetic to NED conversion.",
			Buckets: prometheus.ExponentialBuckets(1e-7, 10, 6),
		}),
		ActiveWorkers: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "groundtruth_active_workers",
			Help: "Current number of active workers converting fixes.",
		}),
	}
}
