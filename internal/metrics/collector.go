package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector holds all Prometheus metrics for the gateway.
type Collector struct {
	storeOps      *prometheus.CounterVec
	storeLatency  *prometheus.HistogramVec
	bytesStreamed *prometheus.CounterVec
}

// NewCollector creates and registers all gateway metrics.
func NewCollector() *Collector {
	return &Collector{
		storeOps: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "store_operations_total",
				Help: "Total number of object store operations",
			},
			[]string{"operation", "outcome"},
		),
		storeLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "store_operation_latency_ms",
				Help:    "Latency of object store operations in milliseconds",
				Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
			},
			[]string{"operation"},
		),
		bytesStreamed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bytes_streamed_total",
				Help: "Total bytes read from the object store per bucket",
			},
			[]string{"bucket"},
		),
	}
}

// ObserveStoreOp records one store operation's outcome and latency.
func (c *Collector) ObserveStoreOp(operation string, start time.Time, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	c.storeOps.WithLabelValues(operation, outcome).Inc()
	c.storeLatency.WithLabelValues(operation).Observe(float64(time.Since(start).Microseconds()) / 1000.0)
}

// AddBytesStreamed accounts bytes read from a bucket's object streams.
func (c *Collector) AddBytesStreamed(bucket string, n int64) {
	c.bytesStreamed.WithLabelValues(bucket).Add(float64(n))
}
