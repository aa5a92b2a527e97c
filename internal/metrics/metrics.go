package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tablero",
			Name:      "http_requests_total",
			Help:      "Count of HTTP requests by endpoint.",
		},
		[]string{"endpoint"},
	)

	availabilityChecks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tablero",
			Name:      "availability_checks_total",
			Help:      "Count of availability checks by outcome.",
		},
		[]string{"outcome"},
	)

	slotQueries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tablero",
			Name:      "slot_queries_total",
			Help:      "Count of slot listing queries by cache result.",
		},
		[]string{"cache"},
	)

	maxPartyQueries = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "tablero",
			Name:      "max_party_queries_total",
			Help:      "Count of max-party-size queries.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, availabilityChecks, slotQueries, maxPartyQueries)
	})
}

func IncHTTP(endpoint string) {
	httpRequests.WithLabelValues(endpoint).Inc()
}

// Check outcomes.
const (
	OutcomeAvailable   = "available"
	OutcomeUnavailable = "unavailable"
	OutcomeError       = "error"
)

func IncCheck(outcome string) {
	availabilityChecks.WithLabelValues(outcome).Inc()
}

func IncSlotQuery(cache string) {
	slotQueries.WithLabelValues(cache).Inc()
}

func IncMaxPartyQuery() {
	maxPartyQueries.Inc()
}
