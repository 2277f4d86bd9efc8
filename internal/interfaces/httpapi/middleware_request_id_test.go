package httpapi

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/riskibarqy/fpl-viewer/internal/platform/logging"
)

type failingIDs struct{}

func (failingIDs) NewID() (string, error) { return "", errors.New("entropy exhausted") }

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		ids      fixedIDs
		incoming string
		want     string
	}{
		{name: "generated", ids: fixedIDs{value: "gen-1"}, want: "gen-1"},
		{name: "propagated", ids: fixedIDs{value: "gen-1"}, incoming: "caller-7", want: "caller-7"},
		{name: "oversized replaced", ids: fixedIDs{value: "gen-2"}, incoming: strings.Repeat("x", maxRequestIDLength+1), want: "gen-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = logging.RequestIDFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			if tt.incoming != "" {
				req.Header.Set("X-Request-ID", tt.incoming)
			}
			rec := httptest.NewRecorder()
			RequestID(tt.ids, next).ServeHTTP(rec, req)

			if seen != tt.want {
				t.Fatalf("request id in context=%q want=%q", seen, tt.want)
			}
			if got := rec.Header().Get("X-Request-ID"); got != tt.want {
				t.Fatalf("request id header=%q want=%q", got, tt.want)
			}
		})
	}
}

func TestRequestID_GeneratorFailureLeavesRequestUntagged(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = logging.RequestIDFromContext(r.Context())
	})

	rec := httptest.NewRecorder()
	RequestID(failingIDs{}, next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if seen != "" || rec.Header().Get("X-Request-ID") != "" {
		t.Fatalf("expected no request id, got context=%q header=%q", seen, rec.Header().Get("X-Request-ID"))
	}
}

func TestRequestLogging_CapturesStatus(t *testing.T) {
	var buf strings.Builder
	logger := logging.NewJSONWriter(&buf, logging.LevelInfo)
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	RequestLogging(logger, next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/league", nil))
	_ = logger.Sync()

	out := buf.String()
	if !strings.Contains(out, `"status":418`) || !strings.Contains(out, `"path":"/league"`) {
		t.Fatalf("unexpected request log: %s", out)
	}
}
