package memory

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/riskibarqy/fpl-viewer/internal/usecase"
)

func TestProviderUnknownIDAnswersNotFound(t *testing.T) {
	t.Parallel()

	p := NewProvider(SeedData())
	_, err := p.FetchDraftLeagueDetails(context.Background(), 9999)
	if !usecase.IsUpstreamNotFound(err) {
		t.Fatalf("expected upstream 404, got %v", err)
	}
	if got := p.Calls(usecase.CallLeagueDetails); got != 1 {
		t.Fatalf("unexpected call count: got=%d want=1", got)
	}
}

func TestProviderFailCall(t *testing.T) {
	t.Parallel()

	p := NewProvider(SeedData())
	boom := errors.New("connection reset")
	p.FailCall(usecase.CallBootstrap, boom)

	_, err := p.FetchDraftBootstrap(context.Background())
	var upstreamErr *usecase.UpstreamError
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if upstreamErr.StatusCode != http.StatusServiceUnavailable || !errors.Is(err, boom) {
		t.Fatalf("unexpected upstream error: %+v", upstreamErr)
	}

	p.FailCall(usecase.CallBootstrap, nil)
	if _, err := p.FetchDraftBootstrap(context.Background()); err != nil {
		t.Fatalf("expected failure to be cleared, got %v", err)
	}
}

func TestProviderFetchDraftRaw(t *testing.T) {
	t.Parallel()

	p := NewProvider(SeedData())
	payload, err := p.FetchDraftRaw(context.Background(), usecase.CallLeagueDetails, "/league/1001/details")
	if err != nil {
		t.Fatalf("fetch raw league details: %v", err)
	}
	if payload.StatusCode != http.StatusOK || payload.URL != "memory://fpl/league/1001/details" {
		t.Fatalf("unexpected payload meta: %+v", payload)
	}
	if !strings.Contains(string(payload.Body), `"league_entries"`) {
		t.Fatalf("unexpected body: %s", payload.Body)
	}

	if _, err := p.FetchDraftRaw(context.Background(), usecase.CallEntrySquad, "/entry/503/squad"); !usecase.IsUpstreamNotFound(err) {
		t.Fatalf("expected 404 for entry without picks, got %v", err)
	}
	if _, err := p.FetchDraftRaw(context.Background(), usecase.CallEntrySquad, "/unknown"); !usecase.IsUpstreamNotFound(err) {
		t.Fatalf("expected 404 for unknown path, got %v", err)
	}
}
