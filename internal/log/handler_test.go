package log_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	ctxlog "github.com/ErlanBelekov/shift-calendar/internal/log"
	"github.com/ErlanBelekov/shift-calendar/internal/requestid"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	return rec
}

func TestContextHandler_AddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(ctxlog.NewContextHandler(slog.NewJSONHandler(&buf, nil))).With("component", "test")

	ctx := requestid.WithRequestID(context.Background(), "req-42")
	logger.InfoContext(ctx, "entry created")

	rec := decode(t, &buf)
	if rec["request_id"] != "req-42" {
		t.Errorf("request_id = %v", rec["request_id"])
	}
	if rec["component"] != "test" {
		t.Errorf("component = %v, WithAttrs lost", rec["component"])
	}
}

func TestContextHandler_NoRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(ctxlog.NewContextHandler(slog.NewJSONHandler(&buf, nil)))

	logger.InfoContext(context.Background(), "startup")

	if _, ok := decode(t, &buf)["request_id"]; ok {
		t.Error("request_id set without one in context")
	}
}

func TestContextHandler_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	h := ctxlog.NewContextHandler(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	if h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug enabled at warn level")
	}
	slog.New(h).Debug("token rejected")
	if buf.Len() != 0 {
		t.Errorf("debug record written: %s", buf.String())
	}
}
