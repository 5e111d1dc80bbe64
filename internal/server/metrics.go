package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for one server instance.
// Each server has its own registry so tests can build servers side by side.
type Metrics struct {
	registry        *prometheus.Registry
	requests        *prometheus.CounterVec
	duration        *prometheus.HistogramVec
	recommendations *prometheus.CounterVec
	records         *prometheus.GaugeVec
}

// NewMetrics creates and registers the service collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "esg_http_requests_total",
			Help: "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "esg_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route pattern.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		recommendations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "esg_recommendations_total",
			Help: "Recommendation requests by stated objective.",
		}, []string{"objective"}),
		records: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "esg_dataset_records",
			Help: "Records loaded into the served dataset by kind.",
		}, []string{"kind"}),
	}

	m.registry.MustRegister(
		m.requests,
		m.duration,
		m.recommendations,
		m.records,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveRequest records one completed HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, route).Observe(d.Seconds())
}

// RecordRecommendation counts a recommendation request.
func (m *Metrics) RecordRecommendation(objective string) {
	m.recommendations.WithLabelValues(objective).Inc()
}

// SetDatasetRecords publishes the record counts of the served dataset.
func (m *Metrics) SetDatasetRecords(counts map[string]int) {
	for kind, n := range counts {
		m.records.WithLabelValues(kind).Set(float64(n))
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
