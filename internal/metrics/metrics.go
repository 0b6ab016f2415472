// Package metrics provides Prometheus metrics for file-wrangler.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP request metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fw_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fw_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Bulk operation metrics
	operationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fw_operations_total",
			Help: "Total number of bulk operations",
		},
		[]string{"kind", "status"},
	)

	operationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fw_operation_duration_seconds",
			Help:    "Bulk operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)

	filesProcessedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fw_files_processed_total",
			Help: "Total files processed by bulk operations",
		},
		[]string{"kind", "result"},
	)

	// Listing and preview metrics
	listingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fw_listings_total",
			Help: "Total directory listings served",
		},
		[]string{"status"},
	)

	previewsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fw_previews_total",
			Help: "Total file previews served",
		},
		[]string{"status"},
	)
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordHTTPRequest records an HTTP request metric.
func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordOperation records the outcome of one bulk operation.
func RecordOperation(kind string, duration time.Duration, succeeded, failed, skipped int) {
	status := "ok"
	switch {
	case failed > 0 && succeeded == 0:
		status = "failed"
	case failed > 0 || skipped > 0:
		status = "partial"
	}
	operationsTotal.WithLabelValues(kind, status).Inc()
	operationDuration.WithLabelValues(kind).Observe(duration.Seconds())

	filesProcessedTotal.WithLabelValues(kind, "ok").Add(float64(succeeded))
	filesProcessedTotal.WithLabelValues(kind, "failed").Add(float64(failed))
	filesProcessedTotal.WithLabelValues(kind, "skipped").Add(float64(skipped))
}

// RecordListing records a directory listing.
func RecordListing(success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	listingsTotal.WithLabelValues(status).Inc()
}

// RecordPreview records a file preview.
func RecordPreview(success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	previewsTotal.WithLabelValues(status).Inc()
}
