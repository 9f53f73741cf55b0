package core

import "github.com/prometheus/client_golang/prometheus"

type Metrics struct {
	registry *prometheus.Registry

	journalSaves      prometheus.Counter
	journalDeletes    prometheus.Counter
	reviewGenerations *prometheus.CounterVec
}

func NewMetrics(namespace, subsystem string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		journalSaves: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "journal_saves_total",
			Help:      "Journal entry save transactions committed.",
		}),
		journalDeletes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "journal_deletes_total",
			Help:      "Journal entries deleted with their blocks and images.",
		}),
		reviewGenerations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "review_generations_total",
			Help:      "Weekly review generation attempts by result.",
		}, []string{"status"}),
	}

	m.registry.MustRegister(m.journalSaves, m.journalDeletes, m.reviewGenerations)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) IncrJournalSave()   { m.journalSaves.Inc() }
func (m *Metrics) IncrJournalDelete() { m.journalDeletes.Inc() }

func (m *Metrics) IncrReviewGeneration(status string) {
	m.reviewGenerations.WithLabelValues(status).Inc()
}
