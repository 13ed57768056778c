package service

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsObserver counts use cases and records their latency.
type MetricsObserver struct {
	runs     *prometheus.CounterVec
	errors   *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetricsObserver registers the use-case collectors with reg.
func NewMetricsObserver(reg prometheus.Registerer) (*MetricsObserver, error) {
	m := &MetricsObserver{
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tasktory_use_case_runs_total",
				Help: "Total service use case executions",
			},
			[]string{"use_case"},
		),
		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tasktory_use_case_errors_total",
				Help: "Total failed service use case executions",
			},
			[]string{"use_case"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tasktory_use_case_duration_seconds",
				Help:    "Service use case duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"use_case"},
		),
	}
	for _, c := range []prometheus.Collector{m.runs, m.errors, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *MetricsObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	m.runs.WithLabelValues(event.Name).Inc()
	if !event.Success {
		m.errors.WithLabelValues(event.Name).Inc()
	}
	m.duration.WithLabelValues(event.Name).Observe(event.Duration.Seconds())
}
