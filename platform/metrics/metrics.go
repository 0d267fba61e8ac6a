// Package metrics exposes Prometheus collectors for the service.
// This is part of the platform layer and contains no business logic.
package metrics

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder receives lead submission measurements.
type Recorder interface {
	ObserveSubmission(outcome string)
	ObserveAppend(d time.Duration)
}

// Metrics holds the registry and the service's collectors.
type Metrics struct {
	registry       *prometheus.Registry
	submissions    *prometheus.CounterVec
	appendDuration prometheus.Histogram
}

// New registers the process, Go runtime and service collectors on a fresh
// registry.
func New() (*Metrics, error) {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lead_submissions_total",
			Help: "Lead form submissions by outcome.",
		}, []string{"outcome"}),
		appendDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "sheet_append_duration_seconds",
			Help:    "Latency of spreadsheet append calls.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	for _, c := range []prometheus.Collector{
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
		m.submissions,
		m.appendDuration,
	} {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return nil, err
		}
	}

	return m, nil
}

// ObserveSubmission counts one submission with the given outcome label.
func (m *Metrics) ObserveSubmission(outcome string) {
	m.submissions.WithLabelValues(outcome).Inc()
}

// ObserveAppend records the latency of one spreadsheet append.
func (m *Metrics) ObserveAppend(d time.Duration) {
	m.appendDuration.Observe(d.Seconds())
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		h.ServeHTTP(c.Writer, c.Request)
	}
}

// Nop discards all measurements.
type Nop struct{}

func (Nop) ObserveSubmission(string)     {}
func (Nop) ObserveAppend(time.Duration) {}

var (
	_ Recorder = (*Metrics)(nil)
	_ Recorder = Nop{}
)

