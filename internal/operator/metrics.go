package operator

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/carson-networks/atm-server/internal/bankerr"
)

type Metrics struct {
	operations *prometheus.CounterVec
	pending    prometheus.Gauge
}

// NewMetrics registers the operator's collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "atm",
			Name:      "operations_total",
			Help:      "Operator actions by action name and outcome.",
		}, []string{"action", "outcome"}),
		pending: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "atm",
			Name:      "pending_transactions",
			Help:      "Transaction records buffered for the next flush.",
		}),
	}
	reg.MustRegister(m.operations, m.pending)
	return m
}

func (m *Metrics) ObserveOperation(action string, err error) {
	m.operations.WithLabelValues(action, bankerr.Outcome(err)).Inc()
}

func (m *Metrics) SetPending(n int) {
	m.pending.Set(float64(n))
}
