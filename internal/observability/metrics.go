package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "forwards"

// Metrics holds the service's Prometheus collectors on a private registry.
type Metrics struct {
	registry   *prometheus.Registry
	uploads    *prometheus.CounterVec
	uploadRows *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,
		uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "uploads_total",
			Help:      "Uploaded files by detected format and outcome.",
		}, []string{"format", "outcome"}),
		uploadRows: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "upload_rows",
			Help:      "Data rows per uploaded file.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}, []string{"format"}),
	}
	registry.MustRegister(m.uploads, m.uploadRows)

	return m
}

// ObserveUpload counts one upload. Rows are only recorded when the file
// was parsed.
func (m *Metrics) ObserveUpload(format, outcome string, rows int) {
	if m == nil {
		return
	}
	m.uploads.WithLabelValues(format, outcome).Inc()
	if rows > 0 {
		m.uploadRows.WithLabelValues(format).Observe(float64(rows))
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
