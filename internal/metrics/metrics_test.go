package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestBookingMetricsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewBookingMetrics(reg)

	m.ObserveNotify("brevo", "sent", 0.2)
	m.ObserveNotify("brevo", "missing_credential", 0)
	m.ObserveNotify("brevo", "sent", 0.1)
	m.ObserveTransition("next", nil)
	m.ObserveTransition("next", errors.New("blocked"))
	m.ObserveHandoff("bill")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.notifyTotal.WithLabelValues("brevo", "sent")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.notifyTotal.WithLabelValues("brevo", "missing_credential")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.transitionTotal.WithLabelValues("next", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.transitionTotal.WithLabelValues("next", "blocked")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.handoffTotal.WithLabelValues("bill")))
}

func TestNilMetricsAreNoops(t *testing.T) {
	var m *BookingMetrics

	assert.NotPanics(t, func() {
		m.ObserveNotify("brevo", "sent", 1)
		m.ObserveTransition("submit", nil)
		m.ObserveHandoff("booking")
	})
}
