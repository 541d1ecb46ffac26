package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for order recording.
type Metrics struct {
	OrdersCreated        prometheus.Counter
	ArchiveFailuresTotal prometheus.Counter
}

// New creates and registers the order metrics.
func New() *Metrics {
	return &Metrics{
		OrdersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "codedrip_orders_created_total",
			Help: "Total orders confirmed at checkout.",
		}),
		ArchiveFailuresTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "codedrip_order_archive_failures_total",
			Help: "Durable order writes that failed and were swallowed.",
		}),
	}
}

func (m *Metrics) IncOrdersCreated() {
	if m == nil {
		return
	}
	m.OrdersCreated.Inc()
}

func (m *Metrics) IncArchiveFailure() {
	if m == nil {
		return
	}
	m.ArchiveFailuresTotal.Inc()
}
