// Package metrics holds the Prometheus instruments for the API server.
// Counters are package-level promauto vars so any component can increment
// them without carrying a registry around; everything is exposed on
// /metrics via promhttp in main.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// WeatherCacheHits counts forecast dates served from a fresh cache entry.
	WeatherCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "travelplanner_weather_cache_hits_total",
		Help: "Forecast dates served from cache within the TTL.",
	})

	// WeatherCacheMisses counts forecast dates that required an upstream fetch.
	WeatherCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "travelplanner_weather_cache_misses_total",
		Help: "Forecast dates missing or stale in cache.",
	})

	// WeatherStaleServed counts forecast dates served from a stale entry
	// after an upstream failure.
	WeatherStaleServed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "travelplanner_weather_stale_served_total",
		Help: "Forecast dates served stale because the upstream fetch failed.",
	})

	// UpstreamRequests counts calls to third-party collaborators by name.
	UpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "travelplanner_upstream_requests_total",
		Help: "Requests issued to upstream collaborators.",
	}, []string{"upstream"})

	// UpstreamErrors counts failed calls to third-party collaborators by name.
	UpstreamErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "travelplanner_upstream_errors_total",
		Help: "Failed requests to upstream collaborators.",
	}, []string{"upstream"})

	// LocationSearches counts location search requests served.
	LocationSearches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "travelplanner_location_searches_total",
		Help: "Location search requests processed.",
	})
)
