package calendar

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts what happens during a conversion run.
type Metrics struct {
	PatternsExpanded       prometheus.Counter
	EmptyPatternsDiscarded prometheus.Counter
	ExceptionsMerged       *prometheus.CounterVec
	RowsWritten            *prometheus.CounterVec
	MissingValidityPeriods prometheus.Counter
}

// NewMetrics creates the conversion metrics and registers them with reg.
// A nil registerer leaves them unregistered.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		PatternsExpanded: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "calendar_patterns_expanded_total",
				Help:      "Number of weekly patterns expanded into a service calendar",
			},
		),
		EmptyPatternsDiscarded: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "calendar_empty_patterns_discarded_total",
				Help:      "Number of weekly patterns that covered no day and were dropped",
			},
		),
		ExceptionsMerged: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "calendar_exceptions_merged_total",
				Help:      "Number of calendar dates applied, by outcome",
			},
			[]string{"outcome"},
		),
		RowsWritten: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "calendar_rows_written_total",
				Help:      "Number of rows written, by file",
			},
			[]string{"file"},
		),
		MissingValidityPeriods: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "calendar_missing_validity_periods_total",
				Help:      "Number of services whose weekly pattern was dropped for lack of a validity period",
			},
		),
	}
}
