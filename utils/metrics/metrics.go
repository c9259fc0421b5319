package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "railway_http_requests_total",
		Help: "HTTP requests by route and status",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "railway_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "railway_bookings_created_total",
		Help: "Bookings confirmed",
	})

	BookingsCancelled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "railway_bookings_cancelled_total",
		Help: "Bookings cancelled by reason",
	}, []string{"reason"})

	SeatsReserved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "railway_seats_reserved_total",
		Help: "Seats taken by confirmed bookings",
	})

	HoldMessages = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "railway_hold_messages_total",
		Help: "Booking hold expiration messages by outcome",
	}, []string{"outcome"})
)
