// Package metrics holds the Prometheus collectors of the commission engine.
// Each Collector owns its registry, so independent instances never clash.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Collector struct {
	registry *prometheus.Registry

	calculationsTotal   *prometheus.CounterVec
	calculationDuration prometheus.Histogram
	partnersPerRun      prometheus.Histogram
	httpRequestsTotal   *prometheus.CounterVec
}

func NewCollector(namespace string) *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,
		calculationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "calculations_total",
				Help:      "Total number of commission calculations by outcome",
			},
			[]string{"outcome"},
		),
		calculationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "calculation_duration_seconds",
				Help:      "Commission calculation duration in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
		),
		partnersPerRun: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "partners_per_calculation",
				Help:      "Number of partners submitted per calculation",
				Buckets:   prometheus.ExponentialBuckets(1, 10, 7),
			},
		),
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"path", "status"},
		),
	}
}

// Registry exposes the collector's registry for the /metrics endpoint.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) RecordCalculation(outcome string, partners int, duration time.Duration) {
	c.calculationsTotal.WithLabelValues(outcome).Inc()
	c.calculationDuration.Observe(duration.Seconds())
	c.partnersPerRun.Observe(float64(partners))
}

func (c *Collector) RecordHTTPRequest(path string, status int) {
	c.httpRequestsTotal.WithLabelValues(path, strconv.Itoa(status)).Inc()
}
