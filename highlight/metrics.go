package highlight

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics instruments document searches. A nil *Metrics is a no-op, so
// callers that don't run a Prometheus registry pay nothing.
type Metrics struct {
	pagesScanned prometheus.Counter
	pagesSkipped prometheus.Counter
	matches      prometheus.Counter
}

// NewMetrics registers search counters with reg. Pass
// prometheus.DefaultRegisterer for the process-global registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		pagesScanned: factory.NewCounter(prometheus.CounterOpts{
			Name: "document_search_pages_scanned_total",
			Help: "Pages successfully indexed and scanned during searches.",
		}),
		pagesSkipped: factory.NewCounter(prometheus.CounterOpts{
			Name: "document_search_pages_skipped_total",
			Help: "Pages skipped because fetching or extraction failed.",
		}),
		matches: factory.NewCounter(prometheus.CounterOpts{
			Name: "document_search_matches_total",
			Help: "Match positions reported across all searches.",
		}),
	}
}

func (m *Metrics) pageScanned() {
	if m != nil {
		m.pagesScanned.Inc()
	}
}

func (m *Metrics) pageSkipped() {
	if m != nil {
		m.pagesSkipped.Inc()
	}
}

func (m *Metrics) matchesFound(n int) {
	if m != nil && n > 0 {
		m.matches.Add(float64(n))
	}
}
