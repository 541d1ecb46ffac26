package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for cart activity.
type Metrics struct {
	MutationsTotal       *prometheus.CounterVec
	MigrationsTotal      *prometheus.CounterVec
	PersistFailuresTotal *prometheus.CounterVec
}

// New creates and registers the cart metrics.
func New() *Metrics {
	return &Metrics{
		MutationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "codedrip_cart_mutations_total",
			Help: "Total cart mutations by operation.",
		}, []string{"op"}),
		MigrationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "codedrip_cart_migrations_total",
			Help: "Identity transitions by outcome (remote_wins, local_kept, logout).",
		}, []string{"outcome"}),
		PersistFailuresTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "codedrip_cart_persist_failures_total",
			Help: "Swallowed persistence failures by backing store.",
		}, []string{"store"}),
	}
}

func (m *Metrics) IncMutation(op string) {
	if m == nil {
		return
	}
	m.MutationsTotal.WithLabelValues(op).Inc()
}

func (m *Metrics) IncMigration(outcome string) {
	if m == nil {
		return
	}
	m.MigrationsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncPersistFailure(store string) {
	if m == nil {
		return
	}
	m.PersistFailuresTotal.WithLabelValues(store).Inc()
}
