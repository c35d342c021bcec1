package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tourguide",
			Name:      "booking_operations_total",
			Help:      "Booking operations by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	reminders = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tourguide",
			Name:      "checkin_reminders_total",
			Help:      "Check-in reminder tasks by stage (scheduled, schedule_failed, delivered, skipped).",
		},
		[]string{"stage"},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tourguide",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status class.",
		},
		[]string{"route", "status"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingOperations, reminders, httpRequests)
	})
}

// IncBookingOperation counts one booking service call.
func IncBookingOperation(operation, outcome string) {
	bookingOperations.WithLabelValues(operation, outcome).Inc()
}

// IncReminder counts a reminder lifecycle event.
func IncReminder(stage string) {
	reminders.WithLabelValues(stage).Inc()
}

// IncHTTP counts a served request.
func IncHTTP(route, status string) {
	httpRequests.WithLabelValues(route, status).Inc()
}
