package api

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	ordersOpened = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "engine_orders_opened_total",
		Help: "Total orders accepted into a book.",
	})

	ordersClosed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "engine_orders_closed_total",
		Help: "Total orders fully filled.",
	})

	ordersRejected = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "engine_orders_rejected_total",
		Help: "Total placements rejected before reaching a book.",
	})
)

var registerMetricsOnce sync.Once

func registerMetrics() {
	registerMetricsOnce.Do(func() {
		prometheus.MustRegister(ordersOpened, ordersClosed, ordersRejected)
	})
}
