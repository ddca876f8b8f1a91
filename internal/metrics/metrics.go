package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ErlanBelekov/shift-calendar/internal/health"
)

var (
	// Auth metrics

	AuthFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "calendar",
		Name:      "auth_failures_total",
		Help:      "Rejected logins and token checks, by reason.",
	}, []string{"reason"})

	RegistrationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "calendar",
		Name:      "registrations_total",
		Help:      "Registration attempts, by outcome.",
	}, []string{"outcome"})

	// Entry metrics

	EntriesWrittenTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "calendar",
		Name:      "entries_written_total",
		Help:      "Successful entry writes, by operation.",
	}, []string{"op"})

	EntriesRejectedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "calendar",
		Name:      "entries_rejected_total",
		Help:      "Entry writes refused before reaching the database, by reason.",
	}, []string{"reason"})

	// HTTP metrics

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "calendar",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "calendar",
		Name:      "http_requests_total",
		Help:      "Total HTTP requests.",
	}, []string{"method", "path", "status"})
)

// Auth failure reasons.
const (
	ReasonInvalidToken   = "invalid_token"
	ReasonExpiredToken   = "expired_token"
	ReasonMissingToken   = "missing_token"
	ReasonBadCredentials = "bad_credentials"
)

func Register(reg prometheus.Registerer) {
	reg.MustRegister(
		AuthFailuresTotal,
		RegistrationsTotal,
		EntriesWrittenTotal,
		EntriesRejectedTotal,
		HTTPRequestDuration,
		HTTPRequestsTotal,
	)
}

// NewServer serves /metrics plus liveness and readiness probes on addr.
func NewServer(addr string, checker *health.Checker) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/healthz", checker.LivenessHandler())
	mux.Handle("/readyz", checker.ReadinessHandler())
	return &http.Server{Addr: addr, Handler: mux}
}
