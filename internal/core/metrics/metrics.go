package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LoadSearches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "carrier_sales_load_searches_total",
			Help: "Total number of load searches by kind",
		},
		[]string{"kind"},
	)

	LoadSearchResults = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "carrier_sales_load_search_results",
			Help:    "Number of loads returned per search, split by strict and alternative",
			Buckets: []float64{0, 1, 2, 3, 5, 10, 25},
		},
		[]string{"list"},
	)

	NegotiationVerdicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "carrier_sales_negotiation_verdicts_total",
			Help: "Total number of offer analyses by verdict",
		},
		[]string{"verdict"},
	)

	LocationResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "carrier_sales_location_resolutions_total",
			Help: "Total number of location resolutions by the stage that resolved them",
		},
		[]string{"stage"},
	)

	GeocodeLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "carrier_sales_geocode_lookups_total",
			Help: "Total number of geocode fallback lookups by result",
		},
		[]string{"result"},
	)

	FMCSALookupDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "carrier_sales_fmcsa_lookup_duration_seconds",
			Help: "Duration of carrier registry lookups in seconds",
		},
		[]string{"source"},
	)

	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "carrier_sales_upstream_requests_total",
			Help: "Total number of outbound HTTP requests by host and outcome",
		},
		[]string{"host", "outcome"},
	)

	BookingsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "carrier_sales_bookings_total",
			Help: "Total number of loads booked",
		},
	)

	CallsLogged = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "carrier_sales_calls_total",
			Help: "Total number of logged carrier calls by outcome",
		},
		[]string{"outcome"},
	)
)
