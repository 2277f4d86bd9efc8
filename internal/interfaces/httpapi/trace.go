package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("fpl-viewer/internal/interfaces/httpapi")
var noopSpan = trace.SpanFromContext(context.Background())

const (
	attrTeamID   = attribute.Key("fpl.team_id")
	attrLeagueID = attribute.Key("fpl.league_id")
	attrDraft    = attribute.Key("fpl.draft")
)

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		// Filtered routes such as /healthz carry no parent span.
		return ctx, noopSpan
	}
	if !shouldCreateHTTPAPISpan(name) {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name)
}

func shouldCreateHTTPAPISpan(name string) bool {
	return strings.HasPrefix(name, "httpapi.Handler.")
}

// annotateSpan tags the handler span with the decoded FPL identifiers.
// Zero ids are left off so rejected requests don't carry placeholder values.
func annotateSpan(span trace.Span, teamID, leagueID int64, draft bool) {
	if !span.IsRecording() {
		return
	}
	attrs := make([]attribute.KeyValue, 0, 3)
	if teamID > 0 {
		attrs = append(attrs, attrTeamID.Int64(teamID))
	}
	if leagueID > 0 {
		attrs = append(attrs, attrLeagueID.Int64(leagueID))
	}
	attrs = append(attrs, attrDraft.Bool(draft))
	span.SetAttributes(attrs...)
}
