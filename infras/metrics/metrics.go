package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "wehouse"

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Count of HTTP requests by method, route and status code.",
		},
		[]string{"method", "route", "code"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	roomsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rooms_created_total",
			Help:      "Count of rooms created.",
		},
	)

	roomStatusChanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "room_status_changes_total",
			Help:      "Count of room status changes by target status.",
		},
		[]string{"status"},
	)

	customersBanned = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "customers_banned_total",
			Help:      "Count of customers added to the ban list.",
		},
	)

	customersUnbanned = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "customers_unbanned_total",
			Help:      "Count of ban records removed.",
		},
	)
)

// Register registers metrics with the default registry (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			httpRequests,
			httpDuration,
			roomsCreated,
			roomStatusChanges,
			customersBanned,
			customersUnbanned,
		)
	})
}

func ObserveHTTPRequest(method, route string, code int, elapsed time.Duration) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func IncRoomCreated() {
	roomsCreated.Inc()
}

func IncRoomStatusChange(status string) {
	roomStatusChanges.WithLabelValues(status).Inc()
}

func IncCustomerBanned() {
	customersBanned.Inc()
}

func IncCustomerUnbanned() {
	customersUnbanned.Inc()
}
