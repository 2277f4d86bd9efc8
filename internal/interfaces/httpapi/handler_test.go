package httpapi

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/fpl-viewer/internal/infrastructure/provider/memory"
	"github.com/riskibarqy/fpl-viewer/internal/platform/logging"
	"github.com/riskibarqy/fpl-viewer/internal/usecase"
	"github.com/stretchr/testify/require"
)

type fixedIDs struct{ value string }

func (f fixedIDs) NewID() (string, error) { return f.value, nil }

func newTestRouter(provider *memory.Provider) http.Handler {
	logger := logging.NewNop()
	handler := NewHandler(
		usecase.NewTeamService(provider),
		usecase.NewLeagueService(provider, 4, logger),
		usecase.NewSquadService(provider, logger),
		usecase.NewDraftProbeService(provider, logger),
		logger,
	)
	return NewRouter(handler, logger, []string{"*"}, fixedIDs{value: "req-1"})
}

func post(t *testing.T, router http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := sonic.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal response body %q: %v", rec.Body.String(), err)
	}
	return out
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(memory.NewProvider(memory.SeedData()))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := decodeBody[map[string]string](t, rec)
	if body["status"] != "ok" {
		t.Fatalf("unexpected health body: %v", body)
	}
	if got := rec.Header().Get("X-Request-ID"); got != "req-1" {
		t.Fatalf("expected generated request id, got %q", got)
	}
}

func TestGetTeamSummary_Classic(t *testing.T) {
	router := newTestRouter(memory.NewProvider(memory.SeedData()))

	rec := post(t, router, "/team", `{"teamId":"4242","isDraft":false}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody[teamSummaryDTO](t, rec)
	require.Equal(t, "Classic Crew", body.TeamName)
	require.Equal(t, "Katherine Johnson", body.PlayerName)
	require.Equal(t, 1234, body.Points)
	require.NotNil(t, body.Rank)
	require.Equal(t, 56789, *body.Rank)
	require.Len(t, body.History, 2)
	require.Equal(t, 133, body.History[1].TotalPoints)
	require.Equal(t, 9, body.History[1].PointsOnBench)
}

func TestGetTeamSummary_DraftRequiresAuth(t *testing.T) {
	provider := memory.NewProvider(memory.SeedData())
	router := newTestRouter(provider)

	rec := post(t, router, "/team", `{"teamId":4242,"isDraft":true}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
	body := decodeBody[map[string]any](t, rec)
	if body["requiresAuth"] != true {
		t.Fatalf("expected requiresAuth=true, got %v", body)
	}
	if !strings.HasPrefix(body["error"].(string), "Draft FPL requires authentication.") {
		t.Fatalf("unexpected error message: %v", body["error"])
	}
	if provider.TotalCalls() != 0 {
		t.Fatalf("expected no upstream calls, got %d", provider.TotalCalls())
	}
}

func TestGetTeamSummary_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantError  string
	}{
		{name: "missing id", body: `{}`, wantStatus: http.StatusBadRequest, wantError: "Team ID is required."},
		{name: "empty body", body: ``, wantStatus: http.StatusBadRequest, wantError: "Team ID is required."},
		{name: "non numeric id", body: `{"teamId":"abc"}`, wantStatus: http.StatusBadRequest, wantError: "Team ID is required."},
		{name: "unknown team", body: `{"teamId":9999}`, wantStatus: http.StatusNotFound, wantError: "Team not found. Please check the Team ID."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(memory.NewProvider(memory.SeedData()))

			rec := post(t, router, "/team", tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			body := decodeBody[errorResponse](t, rec)
			if body.Error != tt.wantError {
				t.Fatalf("unexpected error message: %q", body.Error)
			}
		})
	}
}

func TestGetTeamSummary_UpstreamFailure(t *testing.T) {
	provider := memory.NewProvider(memory.SeedData())
	provider.FailCall(usecase.CallClassicHistory, errors.New("bad gateway"))
	router := newTestRouter(provider)

	rec := post(t, router, "/team", `{"teamId":4242}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	body := decodeBody[errorResponse](t, rec)
	if body.Error != "Unable to fetch team data. Please check the Team ID." {
		t.Fatalf("unexpected error message: %q", body.Error)
	}
}

func TestGetLeagueStandings_DraftRanksByTotal(t *testing.T) {
	router := newTestRouter(memory.NewProvider(memory.SeedData()))

	rec := post(t, router, "/league", `{"leagueId":1001,"isDraft":true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody[leagueStandingsDTO](t, rec)
	require.Equal(t, "Sunday League", body.LeagueName)
	require.Equal(t, "Draft", body.LeagueType)
	require.Len(t, body.Standings, 3)

	wantTotals := []int{25, 10, 7}
	for i, row := range body.Standings {
		require.Equal(t, i+1, row.Rank)
		require.Equal(t, wantTotals[i], row.Total)
		require.NotNil(t, row.MatchesPlayed)
	}
	require.Equal(t, "Beta United", body.Standings[0].EntryName)
	require.Equal(t, &lastGameweekDTO{Event: 2, Points: 5}, body.Standings[0].LastGameweek)
}

func TestGetLeagueStandings_Classic(t *testing.T) {
	router := newTestRouter(memory.NewProvider(memory.SeedData()))

	rec := post(t, router, "/league", `{"leagueId":"314"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeBody[map[string]any](t, rec)
	if body["leagueType"] != "Regular" || body["leagueName"] != "Office Classic" {
		t.Fatalf("unexpected league header: %v", body)
	}
	rows := body["standings"].([]any)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	first := rows[0].(map[string]any)
	last, ok := first["last_gameweek"].(map[string]any)
	if !ok || last["event"] != float64(2) || last["points"] != float64(72) {
		t.Fatalf("unexpected last_gameweek: %v", first["last_gameweek"])
	}
	if _, ok := first["matches_played"]; ok {
		t.Fatalf("classic rows must not carry match records: %v", first)
	}
	second := rows[1].(map[string]any)
	if second["last_gameweek"] != nil {
		t.Fatalf("expected null last_gameweek for zero event total, got %v", second["last_gameweek"])
	}
}

func TestGetLeagueStandings_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantError  string
	}{
		{name: "missing id", body: `{"isDraft":true}`, wantStatus: http.StatusBadRequest, wantError: "League ID is required."},
		{name: "unknown draft league", body: `{"leagueId":7,"isDraft":true}`, wantStatus: http.StatusNotFound, wantError: "Draft League not found. Please check the League ID."},
		{name: "unknown classic league", body: `{"leagueId":7}`, wantStatus: http.StatusNotFound, wantError: "League not found. Please check the League ID."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(memory.NewProvider(memory.SeedData()))

			rec := post(t, router, "/league", tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			if got := decodeBody[errorResponse](t, rec).Error; got != tt.wantError {
				t.Fatalf("unexpected error message: %q", got)
			}
		})
	}
}

func TestGetDraftSquad(t *testing.T) {
	router := newTestRouter(memory.NewProvider(memory.SeedData()))

	rec := post(t, router, "/draft/squad", `{"leagueId":"1001","teamId":501}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody[squadInfoDTO](t, rec)
	require.Equal(t, "Ada Lovelace", body.Manager)
	require.Equal(t, "Alpha XI", body.TeamName)
	require.Len(t, body.Players.Starting, 11)
	require.Len(t, body.Players.Bench, 4)
	require.Equal(t, 1, body.Players.Starting[0].SquadPosition)
	require.Equal(t, "GKP", body.Players.Starting[0].Position)
	require.Equal(t, "doubtful", body.Players.Starting[2].Status)
	require.Equal(t, "75% chance of playing", body.Players.Starting[2].StatusInfo)
	require.Equal(t, 12, body.Players.Bench[0].SquadPosition)

	raw := decodeBody[map[string]any](t, rec)
	firstStarter := raw["players"].(map[string]any)["starting"].([]any)[0].(map[string]any)
	if _, ok := firstStarter["statusInfo"]; ok {
		t.Fatalf("statusInfo must be omitted when empty: %v", firstStarter)
	}
}

func TestGetDraftSquad_MissingIDsMakesNoUpstreamCalls(t *testing.T) {
	provider := memory.NewProvider(memory.SeedData())
	router := newTestRouter(provider)

	rec := post(t, router, "/draft/squad", `{"leagueId":1001}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	if got := decodeBody[errorResponse](t, rec).Error; got != "League ID and Team ID are required" {
		t.Fatalf("unexpected error message: %q", got)
	}
	if provider.TotalCalls() != 0 {
		t.Fatalf("expected no upstream calls, got %d", provider.TotalCalls())
	}
}

func TestGetDraftSquad_TeamNotInLeague(t *testing.T) {
	seed := memory.SeedData()
	seed.Publics[777] = seed.Publics[memory.DraftEntryAlpha]
	seed.Events[777] = seed.Events[memory.DraftEntryAlpha]
	router := newTestRouter(memory.NewProvider(seed))

	rec := post(t, router, "/draft/squad", `{"leagueId":1001,"teamId":777}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
	if got := decodeBody[errorResponse](t, rec).Error; got != "Team not found in league" {
		t.Fatalf("unexpected error message: %q", got)
	}
}

func TestGetDraftSquad_UpstreamFailureCarriesDetails(t *testing.T) {
	provider := memory.NewProvider(memory.SeedData())
	provider.FailCall(usecase.CallBootstrap, errors.New("connection reset"))
	router := newTestRouter(provider)

	rec := post(t, router, "/draft/squad", `{"leagueId":1001,"teamId":501}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	body := decodeBody[errorResponse](t, rec)
	if body.Error != "Failed to fetch squad data" {
		t.Fatalf("unexpected error message: %q", body.Error)
	}
	if !strings.Contains(body.Details, "bootstrap") {
		t.Fatalf("expected details to name the failed call, got %q", body.Details)
	}
}

func TestGetDraftPitch(t *testing.T) {
	router := newTestRouter(memory.NewProvider(memory.SeedData()))

	rec := post(t, router, "/draft/squad/pitch", `{"leagueId":1001,"teamId":501}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody[draftPitchDTO](t, rec)
	require.Equal(t, "3-5-2", body.Formation)
	require.Len(t, body.Markers, 11)
	require.Empty(t, body.Unplaced)
	require.Len(t, body.Bench, 4)
	require.Equal(t, "GKP", body.Markers[0].Player.Position)
	require.Equal(t, 50, body.Markers[0].X)
	require.Equal(t, 90, body.Markers[0].Y)
}

func TestProbeDraftEndpoints(t *testing.T) {
	router := newTestRouter(memory.NewProvider(memory.SeedData()))

	rec := post(t, router, "/draft/test", `{"leagueId":1001}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody[map[string]any](t, rec)
	require.Equal(t, "API endpoints tested successfully", body["message"])
	results := body["results"].([]any)
	require.Len(t, results, 3)

	first := results[0].(map[string]any)
	require.Equal(t, float64(http.StatusOK), first["status"])
	data, ok := first["data"].(map[string]any)
	require.True(t, ok, "expected embedded league payload, got %v", first["data"])
	require.Contains(t, data, "league_entries")
}

func TestProbeDraftEndpoints_Errors(t *testing.T) {
	provider := memory.NewProvider(memory.SeedData())
	router := newTestRouter(provider)

	rec := post(t, router, "/draft/test", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	if got := decodeBody[errorResponse](t, rec).Error; got != "League ID is required" {
		t.Fatalf("unexpected error message: %q", got)
	}

	provider.FailCall(usecase.CallLeagueDetails, errors.New("timeout"))
	rec = post(t, router, "/draft/test", `{"leagueId":1001}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	body := decodeBody[errorResponse](t, rec)
	if body.Error != "Failed to test draft API endpoints" || body.Details == "" {
		t.Fatalf("unexpected probe failure body: %+v", body)
	}
}

func TestRecoverPanic(t *testing.T) {
	handler := recoverPanic(logging.NewNop(), http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
}
