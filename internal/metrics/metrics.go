package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics exposes counters for the booking and bill request flows.
type BookingMetrics struct {
	notifyTotal     *prometheus.CounterVec
	notifyLatency   *prometheus.HistogramVec
	transitionTotal *prometheus.CounterVec
	handoffTotal    *prometheus.CounterVec
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		notifyTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "taxibooking",
			Subsystem: "notify",
			Name:      "total",
			Help:      "Booking notification attempts by provider and outcome",
		}, []string{"provider", "outcome"}),
		notifyLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "taxibooking",
			Subsystem: "notify",
			Name:      "latency_seconds",
			Help:      "Latency of the outbound notification call",
			Buckets:   prometheus.DefBuckets,
		}, []string{"provider"}),
		transitionTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "taxibooking",
			Subsystem: "wizard",
			Name:      "transitions_total",
			Help:      "Booking wizard transitions by action and result",
		}, []string{"action", "result"}),
		handoffTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "taxibooking",
			Subsystem: "chat",
			Name:      "handoff_total",
			Help:      "Chat deep links handed to customers",
		}, []string{"kind"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.notifyTotal, m.notifyLatency, m.transitionTotal, m.handoffTotal)
	return m
}

func (m *BookingMetrics) ObserveNotify(provider, outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.notifyTotal.WithLabelValues(provider, outcome).Inc()
	if seconds > 0 {
		m.notifyLatency.WithLabelValues(provider).Observe(seconds)
	}
}

func (m *BookingMetrics) ObserveTransition(action string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "blocked"
	}
	m.transitionTotal.WithLabelValues(action, result).Inc()
}

func (m *BookingMetrics) ObserveHandoff(kind string) {
	if m == nil {
		return
	}
	m.handoffTotal.WithLabelValues(kind).Inc()
}
