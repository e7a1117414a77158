package catalog

import "github.com/prometheus/client_golang/prometheus"

// Metrics are the catalog-specific instruments. Generic HTTP metrics
// live in pkg/kit.
type Metrics struct {
	Products       prometheus.Gauge
	Searches       prometheus.Counter
	SearchDuration prometheus.Histogram
	RankedResults  prometheus.Histogram
}

func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		Products: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "catalog_products",
			Help: "Products currently stored in the catalog",
		}),
		Searches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "catalog_searches_total",
			Help: "Search requests scored against the catalog",
		}),
		SearchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name: "catalog_search_duration_seconds",
			Help: "Full-scan scoring latency per search",
		}),
		RankedResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "catalog_search_results",
			Help:    "Ranked results returned per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
	}

	reg.MustRegister(m.Products, m.Searches, m.SearchDuration, m.RankedResults)
	return m
}
