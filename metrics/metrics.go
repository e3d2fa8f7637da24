// Package metrics exposes prometheus collectors for the directory
// service. Collectors are registered at init and served via Handler.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SearchesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "opdnav_searches_total",
		Help: "Total number of directory searches",
	}, []string{"campus"})
	SearchDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "opdnav_search_duration_ms",
		Help:    "Search duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	}, []string{"campus"})
	EmptyResultsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "opdnav_empty_results_total",
		Help: "Total number of searches with no matches",
	}, []string{"campus"})
	SuggestionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "opdnav_suggestions_total",
		Help: "Total number of fuzzy suggestions offered",
	}, []string{"campus"})
	MatchesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "opdnav_matches_total",
		Help: "Total matched records by cascade phase",
	}, []string{"campus", "phase"})
)

func init() {
	prometheus.MustRegister(SearchesTotal)
	prometheus.MustRegister(SearchDurationMs)
	prometheus.MustRegister(EmptyResultsTotal)
	prometheus.MustRegister(SuggestionsTotal)
	prometheus.MustRegister(MatchesTotal)
}

// Handler returns the prometheus scrape handler for /metrics.
func Handler() http.Handler { return promhttp.Handler() }
