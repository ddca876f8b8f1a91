package requestid_test

import (
	"context"
	"strings"
	"testing"

	"github.com/ErlanBelekov/shift-calendar/internal/requestid"
)

func TestNew_IsValid(t *testing.T) {
	if id := requestid.New(); !requestid.Valid(id) {
		t.Errorf("generated id %q is not valid", id)
	}
}

func TestValid(t *testing.T) {
	cases := map[string]bool{
		"":                       false,
		"abc-123":                true,
		"trace_01.HX":            true,
		"with space":             false,
		"line\nbreak":            false,
		"quote\"":                false,
		strings.Repeat("a", 128): true,
		strings.Repeat("a", 129): false,
	}
	for id, want := range cases {
		if got := requestid.Valid(id); got != want {
			t.Errorf("Valid(%q) = %v, want %v", id, got, want)
		}
	}
}

func TestContextRoundTrip(t *testing.T) {
	ctx := requestid.WithRequestID(context.Background(), "req-1")
	if got := requestid.FromContext(ctx); got != "req-1" {
		t.Errorf("FromContext = %q", got)
	}
	if got := requestid.FromContext(context.Background()); got != "" {
		t.Errorf("empty context = %q", got)
	}
}
