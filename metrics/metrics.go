// Package metrics provides Prometheus metrics for the headless CMS MCP server.
// It tracks tool calls, CMS API latencies, and fallback values returned to callers.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const (
	Namespace = "headless_cms_mcp"
)

var (
	// RequestsTotal counts total MCP tool calls by tool name and status
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "requests_total",
		Help:      "Total number of MCP tool calls",
	}, []string{"tool", "status"})

	// RequestDuration measures request latency distribution
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "request_duration_seconds",
		Help:      "Request latency distribution by tool",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"tool"})

	// RequestInFlight tracks currently executing requests
	RequestInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "requests_in_flight",
		Help:      "Number of requests currently being processed",
	}, []string{"tool"})

	// PanicsRecovered counts recovered panics
	PanicsRecovered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "panics_recovered_total",
		Help:      "Number of panics recovered in tool handlers",
	}, []string{"tool"})

	// CMSAPILatency measures CMS API call latency by backend and resource
	CMSAPILatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "cms_api_latency_seconds",
		Help:      "CMS API call latency by backend and resource",
		Buckets:   prometheus.DefBuckets,
	}, []string{"backend", "resource"})

	// CMSAPIRequestsTotal counts CMS API requests
	CMSAPIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "cms_api_requests_total",
		Help:      "Total CMS API requests by backend, resource and status",
	}, []string{"backend", "resource", "status"})

	// CMSAPIErrors counts failed CMS API requests by HTTP status code ("0" for transport errors)
	CMSAPIErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "cms_api_errors_total",
		Help:      "CMS API errors by backend, resource and status code",
	}, []string{"backend", "resource", "status_code"})

	// FallbacksReturned counts fetches that absorbed a failure and returned nil or an empty list
	FallbacksReturned = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "fallbacks_returned_total",
		Help:      "Fetch calls that returned a fallback value instead of content",
	}, []string{"backend", "resource"})

	// ContentSize tracks response body sizes
	ContentSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "content_size_bytes",
		Help:      "CMS response body size distribution in bytes",
		Buckets:   []float64{100, 1000, 10000, 50000, 100000, 250000, 500000, 1000000},
	}, []string{"backend"})
)

// RecordRequest records a completed tool call with its duration and status
func RecordRequest(tool string, duration float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	RequestsTotal.WithLabelValues(tool, status).Inc()
	RequestDuration.WithLabelValues(tool).Observe(duration)
}

// RecordAPICall records a CMS API call
func RecordAPICall(backend, resource string, duration float64, success bool, statusCode string) {
	status := "success"
	if !success {
		status = "error"
	}
	CMSAPIRequestsTotal.WithLabelValues(backend, resource, status).Inc()
	CMSAPILatency.WithLabelValues(backend, resource).Observe(duration)
	if statusCode != "" {
		CMSAPIErrors.WithLabelValues(backend, resource, statusCode).Inc()
	}
}

// RecordFallback records a fetch that degraded to its fallback value
func RecordFallback(backend, resource string) {
	FallbacksReturned.WithLabelValues(backend, resource).Inc()
}

// RecordContentSize records the size of a response body
func RecordContentSize(backend string, size int) {
	ContentSize.WithLabelValues(backend).Observe(float64(size))
}
