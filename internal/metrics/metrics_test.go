package metrics_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/ErlanBelekov/shift-calendar/internal/health"
	"github.com/ErlanBelekov/shift-calendar/internal/metrics"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func TestRegister_ExposesCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.Register(reg)

	metrics.AuthFailuresTotal.WithLabelValues(metrics.ReasonExpiredToken).Inc()
	metrics.EntriesWrittenTotal.WithLabelValues("create").Inc()

	n, err := testutil.GatherAndCount(reg, "calendar_auth_failures_total", "calendar_entries_written_total")
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if n < 2 {
		t.Errorf("series = %d, want at least 2", n)
	}
}

func TestNewServer_Routes(t *testing.T) {
	checker := health.NewChecker(pinger{err: errors.New("down")}, slog.New(slog.DiscardHandler), prometheus.NewRegistry())
	srv := metrics.NewServer(":0", checker)

	cases := map[string]int{
		"/metrics": http.StatusOK,
		"/healthz": http.StatusOK,
		"/readyz":  http.StatusServiceUnavailable,
	}
	for path, want := range cases {
		w := httptest.NewRecorder()
		srv.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != want {
			t.Errorf("%s: status = %d, want %d", path, w.Code, want)
		}
	}
}
