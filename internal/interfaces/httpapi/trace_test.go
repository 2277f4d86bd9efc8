package httpapi

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestShouldCreateHTTPAPISpan(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "handler span", in: "httpapi.Handler.GetDraftSquad", want: true},
		{name: "middleware span", in: "httpapi.RequestLogging", want: false},
		{name: "helper span", in: "httpapi.writeError", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shouldCreateHTTPAPISpan(tt.in)
			if got != tt.want {
				t.Fatalf("shouldCreateHTTPAPISpan(%q)=%v want=%v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAnnotateSpan_SetsDecodedIDs(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	_, span := provider.Tracer("test").Start(context.Background(), "httpapi.Handler.GetDraftSquad")
	annotateSpan(span, 7, 1001, true)
	span.End()

	ended := recorder.Ended()
	if len(ended) != 1 {
		t.Fatalf("expected 1 ended span, got %d", len(ended))
	}
	got := map[attribute.Key]attribute.Value{}
	for _, kv := range ended[0].Attributes() {
		got[kv.Key] = kv.Value
	}
	if got[attrTeamID].AsInt64() != 7 || got[attrLeagueID].AsInt64() != 1001 || !got[attrDraft].AsBool() {
		t.Fatalf("unexpected attributes: %v", ended[0].Attributes())
	}
}

func TestAnnotateSpan_SkipsZeroIDs(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	_, span := provider.Tracer("test").Start(context.Background(), "httpapi.Handler.GetLeagueStandings")
	annotateSpan(span, 0, 314, false)
	span.End()

	attrs := recorder.Ended()[0].Attributes()
	if len(attrs) != 2 {
		t.Fatalf("expected league id and draft flag only, got %v", attrs)
	}
	for _, kv := range attrs {
		if kv.Key == attrTeamID {
			t.Fatalf("zero team id should not be recorded: %v", attrs)
		}
	}
}

func TestAnnotateSpan_NoopSpan(t *testing.T) {
	annotateSpan(noopSpan, 1, 2, true)
	if noopSpan.IsRecording() {
		t.Fatal("noop span must stay non-recording")
	}
}
