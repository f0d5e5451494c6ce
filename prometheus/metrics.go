package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/rasheduzzaman2024/polashtoli/pkg/config"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   *prometheus.CounterVec
	HttpRequestDuration *prometheus.HistogramVec

	// Authentication metrics
	SignInAttemptsCounter prometheus.Counter
	SignInSuccessCounter  prometheus.Counter
	RegistrationsCounter  prometheus.Counter
	AuthErrorsCounter     *prometheus.CounterVec

	// Session metrics
	ActiveSessionsGauge prometheus.Gauge

	// Cart metrics
	CartOperationsCounter *prometheus.CounterVec

	// Order metrics
	OrdersPlacedCounter prometheus.Counter
	OrderValueHistogram prometheus.Histogram

	// Product catalog metrics
	ProductOperationsCounter *prometheus.CounterVec

	initialized bool
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(cfg *config.Config) {
	if initialized {
		return
	}
	initialized = true

	// Use metric prefix from configuration
	prefix := cfg.Metrics.Prefix

	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	SignInAttemptsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_signin_attempts_total",
			Help: "Total number of sign-in attempts",
		},
	)

	SignInSuccessCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_signin_success_total",
			Help: "Total number of successful sign-ins",
		},
	)

	RegistrationsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_registrations_total",
			Help: "Total number of successful account registrations",
		},
	)

	AuthErrorsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_auth_errors_total",
			Help: "Total number of authentication errors by reason",
		},
		[]string{"reason"},
	)

	ActiveSessionsGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: prefix + "_active_sessions",
			Help: "Number of live storefront sessions",
		},
	)

	CartOperationsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_cart_operations_total",
			Help: "Total number of cart operations by type",
		},
		[]string{"operation"},
	)

	OrdersPlacedCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_orders_placed_total",
			Help: "Total number of orders placed",
		},
	)

	OrderValueHistogram = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    prefix + "_order_value",
			Help:    "Value of placed orders",
			Buckets: prometheus.ExponentialBuckets(100, 2, 10),
		},
	)

	ProductOperationsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_product_operations_total",
			Help: "Total number of product catalog operations by type",
		},
		[]string{"operation"},
	)
}

// RecordAuthError increments the auth error counter for the given reason
func RecordAuthError(reason string) {
	if AuthErrorsCounter != nil {
		AuthErrorsCounter.WithLabelValues(reason).Inc()
	}
}

// RecordCartOperation increments the cart operation counter
func RecordCartOperation(operation string) {
	if CartOperationsCounter != nil {
		CartOperationsCounter.WithLabelValues(operation).Inc()
	}
}

// RecordProductOperation increments the product operation counter
func RecordProductOperation(operation string) {
	if ProductOperationsCounter != nil {
		ProductOperationsCounter.WithLabelValues(operation).Inc()
	}
}
