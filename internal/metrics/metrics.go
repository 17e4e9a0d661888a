// Package metrics provides Prometheus metrics for the catalog service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ImageResolutions counts image lookups by the resolver stage that matched,
	// or "not_found".
	ImageResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_image_resolutions_total",
			Help: "Image name resolutions by matching stage",
		},
		[]string{"stage"},
	)

	// ImageResponses counts image endpoint responses by status code.
	ImageResponses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_image_responses_total",
			Help: "Image endpoint responses by HTTP status",
		},
		[]string{"status"},
	)

	// ImageBytes counts image bytes served.
	ImageBytes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_image_bytes_total",
			Help: "Total image bytes served",
		},
	)

	// ProductMatches counts image to product pairings by stage.
	ProductMatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_product_matches_total",
			Help: "Image to product pairings by matching stage",
		},
		[]string{"stage"},
	)

	// SearchQueries counts search queries and SearchResults observes result sizes.
	SearchQueries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_search_queries_total",
			Help: "Total catalog search queries",
		},
	)

	SearchResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_search_results",
			Help:    "Number of results returned per search query",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
		},
	)
)

// Handler returns the HTTP handler exposing the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
