package catalog

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for catalog resolution.
// Lookups are labelled by result: hit, missing or expired.
type Metrics struct {
	Lookups       *prometheus.CounterVec
	Fetches       *prometheus.CounterVec
	FetchDuration prometheus.Histogram
}

// NewMetrics registers the resolver metrics on reg. A nil reg uses the default registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		Lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "apimo_catalog_lookups_total",
			Help: "Catalog code lookups by catalog and result",
		}, []string{"catalog", "result"}),
		Fetches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "apimo_catalog_fetches_total",
			Help: "Catalog snapshot fetches by catalog and outcome",
		}, []string{"catalog", "outcome"}),
		FetchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "apimo_catalog_fetch_duration_seconds",
			Help:    "Duration of catalog snapshot fetches",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
	}
}

func (m *Metrics) lookup(name Name, entry *EntryName) {
	if m == nil {
		return
	}
	result := "hit"
	if entry == nil {
		result = "missing"
	}
	m.Lookups.WithLabelValues(name.String(), result).Inc()
}

func (m *Metrics) expired(name Name) {
	if m == nil {
		return
	}
	m.Lookups.WithLabelValues(name.String(), "expired").Inc()
}

func (m *Metrics) fetched(name Name, start time.Time, err error) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.Fetches.WithLabelValues(name.String(), outcome).Inc()
	m.FetchDuration.Observe(time.Since(start).Seconds())
}
