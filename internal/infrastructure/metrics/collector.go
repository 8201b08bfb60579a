package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns a private registry so tests and binaries never share state.
// A nil *Collector is valid and records nothing.
type Collector struct {
	registry         *prometheus.Registry
	decisions        *prometheus.CounterVec
	creditScores     prometheus.Histogram
	payments         *prometheus.CounterVec
	lateFees         prometheus.Counter
	scheduleFailures prometheus.Counter
	reminders        *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

func NewCollector() *Collector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(registry)

	return &Collector{
		registry: registry,
		decisions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "lending_decisions_total",
			Help: "Automatic and manual credit decisions by outcome",
		}, []string{"outcome", "policy"}),
		creditScores: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "lending_credit_score_distribution",
			Help:    "Distribution of informational credit scores at decision time",
			Buckets: []float64{0, 20, 40, 60, 80, 100},
		}),
		payments: f.NewCounterVec(prometheus.CounterOpts{
			Name: "lending_payments_total",
			Help: "Installment state transitions by resulting status",
		}, []string{"status"}),
		lateFees: f.NewCounter(prometheus.CounterOpts{
			Name: "lending_late_fees_total",
			Help: "Sum of late fees charged, in currency units",
		}),
		scheduleFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "lending_schedule_failures_total",
			Help: "Approvals rolled back because the payment schedule could not be stored",
		}),
		reminders: f.NewCounterVec(prometheus.CounterOpts{
			Name: "lending_reminders_total",
			Help: "Installment reminders sent by kind",
		}, []string{"kind"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lending_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "code"}),
	}
}

func (m *Collector) RecordDecision(outcome, policy string, score int) {
	if m == nil {
		return
	}
	m.decisions.WithLabelValues(outcome, policy).Inc()
	m.creditScores.Observe(float64(score))
}

func (m *Collector) RecordPayment(status string, lateFee float64) {
	if m == nil {
		return
	}
	m.payments.WithLabelValues(status).Inc()
	if lateFee > 0 {
		m.lateFees.Add(lateFee)
	}
}

func (m *Collector) RecordScheduleFailure() {
	if m == nil {
		return
	}
	m.scheduleFailures.Inc()
}

func (m *Collector) RecordReminder(kind string) {
	if m == nil {
		return
	}
	m.reminders.WithLabelValues(kind).Inc()
}

func (m *Collector) ObserveHTTP(method, route string, code int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpDuration.WithLabelValues(method, route, strconv.Itoa(code)).Observe(d.Seconds())
}

func (m *Collector) Registry() *prometheus.Registry { return m.registry }

func (m *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
