package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SearchesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "caremap_searches_total",
		Help: "Total number of center searches",
	})
	EmptyResultsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "caremap_empty_results_total",
		Help: "Total number of searches with no matching center",
	})
	SearchDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "caremap_search_duration_ms",
		Help:    "Search pipeline duration in milliseconds",
		Buckets: []float64{0.1, 0.5, 1, 5, 10, 50, 100},
	})
	BoundaryFetchFailTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "caremap_boundary_fetch_fail_total",
		Help: "Total boundary overlay fetch failures",
	})
	BoundaryCacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "caremap_boundary_cache_hits_total",
		Help: "Total boundary overlay cache hits",
	})
	ReloadsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "caremap_reloads_total",
		Help: "Center snapshot reloads by result",
	}, []string{"result"})
	SignupsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "caremap_signup_acknowledgements_total",
		Help: "Total display-only signup acknowledgements",
	})
)

func init() {
	prometheus.MustRegister(
		SearchesTotal,
		EmptyResultsTotal,
		SearchDurationMs,
		BoundaryFetchFailTotal,
		BoundaryCacheHitsTotal,
		ReloadsTotal,
		SignupsTotal,
	)
}

// Handler /metrics 用のハンドラー
func Handler() http.Handler {
	return promhttp.Handler()
}
