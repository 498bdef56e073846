package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "notes"

// Metrics метрики хранилищ заметок
type Metrics struct {
	// ChangesTotal - успешные мутации (каждое уведомление наблюдателей)
	ChangesTotal *prometheus.CounterVec
	// NoopTotal - мутации, проигнорированные из-за индекса вне диапазона
	NoopTotal *prometheus.CounterVec
	// SessionsActive - количество открытых экранных сессий
	SessionsActive prometheus.Gauge
}

// New создает метрики и регистрирует их в reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ChangesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "changes_total",
			Help:      "Number of note store mutations that notified observers.",
		}, []string{"op"}),
		NoopTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "noop_total",
			Help:      "Number of note store mutations ignored because of an out-of-range index.",
		}, []string{"op"}),
		SessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Number of open screen sessions.",
		}),
	}

	reg.MustRegister(m.ChangesTotal, m.NoopTotal, m.SessionsActive)

	return m
}

// ObserveChange учитывает успешную мутацию
func (m *Metrics) ObserveChange(op string) {
	if m == nil {
		return
	}
	m.ChangesTotal.WithLabelValues(op).Inc()
}

// ObserveNoop учитывает мутацию без эффекта
func (m *Metrics) ObserveNoop(op string) {
	if m == nil {
		return
	}
	m.NoopTotal.WithLabelValues(op).Inc()
}

// SessionOpened увеличивает счетчик открытых сессий
func (m *Metrics) SessionOpened() {
	if m == nil {
		return
	}
	m.SessionsActive.Inc()
}

// SessionClosed уменьшает счетчик открытых сессий
func (m *Metrics) SessionClosed() {
	if m == nil {
		return
	}
	m.SessionsActive.Dec()
}

// Handler возвращает HTTP обработчик для /metrics
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
