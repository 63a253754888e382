package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics carries its own registry so multiple servers (tests mainly) never
// fight over the default one.
type Metrics struct {
	registry *prometheus.Registry

	OrdersReceived prometheus.Counter
	OrdersRelayed  prometheus.Counter
	OrdersRejected prometheus.Counter
	OrdersFailed   prometheus.Counter
	RelayDuration  prometheus.Histogram
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		OrdersReceived: factory.NewCounter(prometheus.CounterOpts{
			Name: "fto_orders_received_total",
			Help: "Order submissions received, before validation.",
		}),
		OrdersRelayed: factory.NewCounter(prometheus.CounterOpts{
			Name: "fto_orders_relayed_total",
			Help: "Orders successfully relayed to the chat.",
		}),
		OrdersRejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "fto_orders_rejected_total",
			Help: "Submissions rejected by validation.",
		}),
		OrdersFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "fto_orders_failed_total",
			Help: "Submissions that failed at the relay or configuration stage.",
		}),
		RelayDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "fto_relay_duration_seconds",
			Help:    "Time spent relaying a notification upstream.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
