package usecase

import "context"

// Call names identify upstream requests in errors and logs.
const (
	CallLeagueDetails    = "league details"
	CallBootstrap        = "bootstrap"
	CallEntryPublic      = "entry public"
	CallEntryEvent       = "entry event"
	CallEntryHistory     = "entry history"
	CallEntrySquad       = "entry squad"
	CallClassicEntry     = "classic entry"
	CallClassicHistory   = "classic entry history"
	CallClassicStandings = "classic standings"
)

// FPLProvider reads the classic and draft FPL APIs.
type FPLProvider interface {
	FetchDraftLeagueDetails(ctx context.Context, leagueID int64) (ExternalDraftLeague, error)
	FetchDraftBootstrap(ctx context.Context) (ExternalDraftBootstrap, error)
	FetchDraftEntryPublic(ctx context.Context, entryID int64) (ExternalDraftEntryPublic, error)
	FetchDraftEntryEvent(ctx context.Context, entryID int64, round int) (ExternalDraftEntryEvent, error)
	FetchDraftEntryHistory(ctx context.Context, entryID int64) (ExternalDraftEntryHistory, error)
	FetchClassicEntry(ctx context.Context, entryID int64) (ExternalClassicEntry, error)
	FetchClassicEntryHistory(ctx context.Context, entryID int64) (ExternalClassicHistory, error)
	FetchClassicStandings(ctx context.Context, leagueID int64) (ExternalClassicStandings, error)
	// FetchDraftRaw returns an undecoded draft payload; call is used for error reporting.
	FetchDraftRaw(ctx context.Context, call, path string) (ExternalRawPayload, error)
}

type ExternalDraftLeague struct {
	League        ExternalDraftLeagueInfo    `json:"league"`
	LeagueEntries []ExternalDraftLeagueEntry `json:"league_entries"`
}

type ExternalDraftLeagueInfo struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	CurrentEvent int    `json:"current_event"`
}

type ExternalDraftLeagueEntry struct {
	ID              int64  `json:"id"`
	EntryID         int64  `json:"entry_id"`
	EntryName       string `json:"entry_name"`
	PlayerFirstName string `json:"player_first_name"`
	PlayerLastName  string `json:"player_last_name"`
	ShortName       string `json:"short_name"`
	Rank            int    `json:"rank"`
	MatchesPlayed   int    `json:"matches_played"`
	MatchesWon      int    `json:"matches_won"`
	MatchesDrawn    int    `json:"matches_drawn"`
	MatchesLost     int    `json:"matches_lost"`
}

type ExternalDraftBootstrap struct {
	Elements []ExternalDraftElement `json:"elements"`
	Teams    []ExternalDraftTeam    `json:"teams"`
}

type ExternalDraftElement struct {
	ID              int64  `json:"id"`
	ElementType     int    `json:"element_type"`
	FirstName       string `json:"first_name"`
	SecondName      string `json:"second_name"`
	WebName         string `json:"web_name"`
	Team            int64  `json:"team"`
	Status          string `json:"status"`
	ChanceNextRound *int   `json:"chance_of_playing_next_round"`
	ChanceThisRound *int   `json:"chance_of_playing_this_round"`
	News            string `json:"news"`
	TotalPoints     int    `json:"total_points"`
	Form            string `json:"form"`
}

type ExternalDraftTeam struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
}

type ExternalDraftEntryPublic struct {
	Entry ExternalDraftEntryProfile `json:"entry"`
}

type ExternalDraftEntryProfile struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	CurrentEvent int    `json:"current_event"`
}

type ExternalDraftEntryEvent struct {
	Picks []ExternalDraftPick `json:"picks"`
}

type ExternalDraftPick struct {
	Element       int64 `json:"element"`
	Position      int   `json:"position"`
	IsCaptain     bool  `json:"is_captain"`
	IsViceCaptain bool  `json:"is_vice_captain"`
	Multiplier    int   `json:"multiplier"`
}

type ExternalDraftEntryHistory struct {
	History []ExternalDraftRound `json:"history"`
}

type ExternalDraftRound struct {
	Event  int `json:"event"`
	Points int `json:"points"`
}

type ExternalClassicEntry struct {
	ID                   int64  `json:"id"`
	Name                 string `json:"name"`
	PlayerFirstName      string `json:"player_first_name"`
	PlayerLastName       string `json:"player_last_name"`
	SummaryOverallPoints int    `json:"summary_overall_points"`
	OverallPoints        int    `json:"overall_points"`
	SummaryOverallRank   int    `json:"summary_overall_rank"`
	OverallRank          int    `json:"overall_rank"`
}

type ExternalClassicHistory struct {
	Current []ExternalClassicRound `json:"current"`
}

type ExternalClassicRound struct {
	Event              int  `json:"event"`
	Points             int  `json:"points"`
	TotalPoints        int  `json:"total_points"`
	Rank               *int `json:"rank"`
	RankSort           *int `json:"rank_sort"`
	OverallRank        *int `json:"overall_rank"`
	Bank               int  `json:"bank"`
	Value              int  `json:"value"`
	EventTransfers     int  `json:"event_transfers"`
	EventTransfersCost int  `json:"event_transfers_cost"`
	PointsOnBench      int  `json:"points_on_bench"`
}

type ExternalClassicStandings struct {
	CurrentEvent int                         `json:"current_event"`
	League       ExternalClassicLeague       `json:"league"`
	Standings    ExternalClassicStandingPage `json:"standings"`
}

type ExternalClassicLeague struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ExternalClassicStandingPage struct {
	HasNext bool                         `json:"has_next"`
	Page    int                          `json:"page"`
	Results []ExternalClassicStandingRow `json:"results"`
}

type ExternalClassicStandingRow struct {
	Rank       int    `json:"rank"`
	EntryName  string `json:"entry_name"`
	PlayerName string `json:"player_name"`
	Total      int    `json:"total"`
	EventTotal int    `json:"event_total"`
}

// ExternalRawPayload is an upstream response kept as raw JSON.
type ExternalRawPayload struct {
	URL        string
	StatusCode int
	Body       []byte
}
