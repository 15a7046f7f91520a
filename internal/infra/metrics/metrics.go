package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "spotify_provider"

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics groups the provider collectors. A nil *Metrics is valid and records
// nothing, so components can be built without a registry.
type Metrics struct {
	TokenExchanges   *prometheus.CounterVec
	UpstreamRequests *prometheus.CounterVec
	Resolutions      *prometheus.CounterVec
	ResolveDuration  *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		TokenExchanges: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "token_exchanges_total",
				Help:      "Client-credentials exchanges against the Spotify accounts service",
			},
			[]string{"outcome"},
		),
		UpstreamRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "upstream_requests_total",
				Help:      "Requests sent to the Spotify Web API by status code",
			},
			[]string{"code"},
		),
		Resolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "resolutions_total",
				Help:      "Spotify lookups performed by the search provider",
			},
			[]string{"resource", "outcome"},
		),
		ResolveDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "resolve_duration_seconds",
				Help:      "Time spent resolving a Spotify lookup",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"resource"},
		),
	}

	reg.MustRegister(
		m.TokenExchanges,
		m.UpstreamRequests,
		m.Resolutions,
		m.ResolveDuration,
	)

	return m
}

func (m *Metrics) TokenExchange(err error) {
	if m == nil {
		return
	}
	m.TokenExchanges.WithLabelValues(outcome(err)).Inc()
}

// UpstreamRequest records a finished request; code 0 means the request never
// got a response.
func (m *Metrics) UpstreamRequest(code int) {
	if m == nil {
		return
	}
	m.UpstreamRequests.WithLabelValues(strconv.Itoa(code)).Inc()
}

func (m *Metrics) Resolution(resource string, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Resolutions.WithLabelValues(resource, outcome(err)).Inc()
	m.ResolveDuration.WithLabelValues(resource).Observe(elapsed.Seconds())
}

func outcome(err error) string {
	if err != nil {
		return OutcomeFailure
	}
	return OutcomeSuccess
}
