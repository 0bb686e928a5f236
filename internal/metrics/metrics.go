// Package metrics provides Prometheus metrics collection for the storefront service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// CartOperationsTotal counts cart mutations by operation and outcome
	// (e.g. "add"/"added", "update"/"out_of_stock").
	CartOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_operations_total",
			Help: "Total number of cart operations",
		},
		[]string{"operation", "result"},
	)

	// CartCommitFailuresTotal counts cart mutations whose persistence failed.
	CartCommitFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_commit_failures_total",
			Help: "Total number of cart commits that could not be persisted",
		},
		[]string{"store"},
	)

	// CartDiscardedRecordsTotal counts persisted cart pieces dropped on load.
	CartDiscardedRecordsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_discarded_records_total",
			Help: "Total number of malformed persisted cart pieces discarded on load",
		},
		[]string{"piece"},
	)

	// OrdersPlacedTotal counts order placement attempts by result.
	OrdersPlacedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_placed_total",
			Help: "Total number of order placement attempts",
		},
		[]string{"result"},
	)

	// OrderValue tracks the grand total of placed orders.
	OrderValue = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "order_grand_total",
			Help:    "Grand total of placed orders",
			Buckets: []float64{10, 25, 50, 100, 150, 250, 500, 1000, 2500},
		},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"cache", "operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
		[]string{"cache"},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
		[]string{"cache"},
	)

	// CircuitBreakerState exposes the state of each circuit breaker
	// (0 closed, 1 open, 2 half-open).
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)

	// ActivityJournalEntriesTotal counts journal entries by outcome
	// (written, dropped, failed).
	ActivityJournalEntriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activity_journal_entries_total",
			Help: "Activity journal entries by outcome",
		},
		[]string{"result"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordCartOperation records the outcome of a cart operation.
func RecordCartOperation(operation, result string) {
	CartOperationsTotal.WithLabelValues(operation, result).Inc()
}

// RecordCartCommitFailure records a cart that could not be persisted.
func RecordCartCommitFailure(store string) {
	CartCommitFailuresTotal.WithLabelValues(store).Inc()
}

// RecordDiscardedCartRecord records a malformed cart piece dropped on load.
func RecordDiscardedCartRecord(piece string) {
	CartDiscardedRecordsTotal.WithLabelValues(piece).Inc()
}

// RecordOrderPlaced records an order placement attempt. grandTotal is only
// observed for successful placements.
func RecordOrderPlaced(result string, grandTotal float64) {
	OrdersPlacedTotal.WithLabelValues(result).Inc()
	if result == "success" {
		OrderValue.Observe(grandTotal)
	}
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(cache, operation, result string) {
	CacheOperationsTotal.WithLabelValues(cache, operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(cache string, size, capacity int) {
	CacheSize.WithLabelValues(cache).Set(float64(size))
	CacheCapacity.WithLabelValues(cache).Set(float64(capacity))
}

// SetCircuitBreakerState records the numeric state of a circuit breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordJournalEntries adds n journal entries with the given outcome.
func RecordJournalEntries(result string, n int) {
	ActivityJournalEntriesTotal.WithLabelValues(result).Add(float64(n))
}
