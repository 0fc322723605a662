package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	OrdersScreenedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_screened_total",
			Help: "Total number of orders screened against the watchlist",
		},
	)

	OrdersHeldTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_held_total",
			Help: "Total number of orders put on hold after a watchlist match",
		},
	)

	ScreeningFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "screening_failures_total",
			Help: "Total number of screenings that failed open (store or order lookup fault)",
		},
	)

	ScreeningDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "screening_duration_seconds",
			Help:    "Duration of a single order screening",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// Register registers all screening metrics on the default registry.
func Register() {
	prometheus.MustRegister(
		OrdersScreenedTotal,
		OrdersHeldTotal,
		ScreeningFailuresTotal,
		ScreeningDuration,
	)
}
