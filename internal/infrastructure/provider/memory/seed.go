package memory

import "github.com/riskibarqy/fpl-viewer/internal/usecase"

const (
	DraftLeagueID   int64 = 1001
	DraftEntryAlpha int64 = 501
	DraftEntryBeta  int64 = 502
	DraftEntryGamma int64 = 503
	DraftRound            = 3

	ClassicLeagueID int64 = 314
	ClassicTeamID   int64 = 4242
)

// Seed is the data served by a Provider.
type Seed struct {
	DraftLeagues     map[int64]usecase.ExternalDraftLeague
	Bootstrap        usecase.ExternalDraftBootstrap
	Publics          map[int64]usecase.ExternalDraftEntryPublic
	Events           map[int64]map[int]usecase.ExternalDraftEntryEvent
	Histories        map[int64]usecase.ExternalDraftEntryHistory
	ClassicEntries   map[int64]usecase.ExternalClassicEntry
	ClassicHistories map[int64]usecase.ExternalClassicHistory
	ClassicStandings map[int64]usecase.ExternalClassicStandings
}

// SeedData returns a small draft league with one full squad and a classic team and league.
// The draft entries carry stale upstream ranks that disagree with their history totals.
func SeedData() Seed {
	return Seed{
		DraftLeagues: map[int64]usecase.ExternalDraftLeague{
			DraftLeagueID: {
				League: usecase.ExternalDraftLeagueInfo{ID: DraftLeagueID, Name: "Sunday League", CurrentEvent: DraftRound},
				LeagueEntries: []usecase.ExternalDraftLeagueEntry{
					{ID: 1, EntryID: DraftEntryAlpha, Rank: 2, EntryName: "Alpha XI", PlayerFirstName: "Ada", PlayerLastName: "Lovelace", MatchesPlayed: 3, MatchesWon: 2, MatchesLost: 1},
					{ID: 2, EntryID: DraftEntryBeta, Rank: 3, EntryName: "Beta United", PlayerFirstName: "Grace", PlayerLastName: "Hopper", MatchesPlayed: 3, MatchesWon: 3},
					{ID: 3, EntryID: DraftEntryGamma, Rank: 1, EntryName: "Gamma Town", PlayerFirstName: "Alan", PlayerLastName: "Turing", MatchesPlayed: 3, MatchesDrawn: 1, MatchesLost: 2},
				},
			},
		},
		Bootstrap: seedBootstrap(),
		Publics: map[int64]usecase.ExternalDraftEntryPublic{
			DraftEntryAlpha: publicEntry(DraftEntryAlpha, "Alpha XI", DraftRound),
			DraftEntryBeta:  publicEntry(DraftEntryBeta, "Beta United", 0),
		},
		Events: map[int64]map[int]usecase.ExternalDraftEntryEvent{
			DraftEntryAlpha: {DraftRound: {Picks: seedPicks()}},
			DraftEntryBeta:  {1: {Picks: seedPicks()[:11]}},
		},
		Histories: map[int64]usecase.ExternalDraftEntryHistory{
			DraftEntryAlpha: {History: []usecase.ExternalDraftRound{{Event: 1, Points: 4}, {Event: 2, Points: 6}}},
			DraftEntryBeta:  {History: []usecase.ExternalDraftRound{{Event: 1, Points: 20}, {Event: 2, Points: 5}}},
			DraftEntryGamma: {History: []usecase.ExternalDraftRound{{Event: 1, Points: 7}}},
		},
		ClassicEntries: map[int64]usecase.ExternalClassicEntry{
			ClassicTeamID: {
				ID:                   ClassicTeamID,
				Name:                 "Classic Crew",
				PlayerFirstName:      "Katherine",
				PlayerLastName:       "Johnson ",
				SummaryOverallPoints: 1234,
				SummaryOverallRank:   56789,
			},
		},
		ClassicHistories: map[int64]usecase.ExternalClassicHistory{
			ClassicTeamID: {Current: []usecase.ExternalClassicRound{
				{Event: 1, Points: 61, TotalPoints: 61, Rank: intPtr(900000), OverallRank: intPtr(900000), Bank: 5, Value: 1000},
				{Event: 2, Points: 72, TotalPoints: 133, Rank: intPtr(300000), OverallRank: intPtr(450000), Bank: 3, Value: 1002, EventTransfers: 1, PointsOnBench: 9},
			}},
		},
		ClassicStandings: map[int64]usecase.ExternalClassicStandings{
			ClassicLeagueID: {
				CurrentEvent: 2,
				League:       usecase.ExternalClassicLeague{ID: ClassicLeagueID, Name: "Office Classic"},
				Standings: usecase.ExternalClassicStandingPage{Page: 1, Results: []usecase.ExternalClassicStandingRow{
					{Rank: 1, EntryName: "Classic Crew", PlayerName: "Katherine Johnson", Total: 133, EventTotal: 72},
					{Rank: 2, EntryName: "Benchwarmers", PlayerName: "Dorothy Vaughan", Total: 120},
				}},
			},
		},
	}
}

func publicEntry(id int64, name string, round int) usecase.ExternalDraftEntryPublic {
	return usecase.ExternalDraftEntryPublic{
		Entry: usecase.ExternalDraftEntryProfile{ID: id, Name: name, CurrentEvent: round},
	}
}

// seedPicks lists a 3-5-2 squad out of slot order.
func seedPicks() []usecase.ExternalDraftPick {
	return []usecase.ExternalDraftPick{
		{Element: 1, Position: 1, Multiplier: 1},
		{Element: 2, Position: 2, Multiplier: 1},
		{Element: 3, Position: 3, Multiplier: 1},
		{Element: 4, Position: 4, Multiplier: 1},
		{Element: 5, Position: 5, Multiplier: 1},
		{Element: 6, Position: 6, Multiplier: 1},
		{Element: 7, Position: 7, Multiplier: 1},
		{Element: 8, Position: 8, Multiplier: 1},
		{Element: 9, Position: 9, Multiplier: 1},
		{Element: 11, Position: 11, Multiplier: 1},
		{Element: 10, Position: 10, Multiplier: 2, IsCaptain: true},
		{Element: 15, Position: 15},
		{Element: 12, Position: 12},
		{Element: 14, Position: 14},
		{Element: 13, Position: 13},
	}
}

func seedBootstrap() usecase.ExternalDraftBootstrap {
	el := func(id int64, elementType int, webName string, team int64) usecase.ExternalDraftElement {
		return usecase.ExternalDraftElement{ID: id, ElementType: elementType, WebName: webName, Team: team, Status: "a", Form: "2.0"}
	}

	elements := []usecase.ExternalDraftElement{
		el(1, 1, "Keeper", 1),
		el(2, 2, "Wall", 1),
		el(3, 2, "Stopper", 2),
		el(4, 2, "Sweeper", 3),
		el(5, 3, "Engine", 2),
		el(6, 3, "Maestro", 3),
		el(7, 3, "Winger", 1),
		el(8, 3, "Pivot", 2),
		el(9, 3, "Runner", 3),
		el(10, 4, "Striker", 1),
		el(11, 4, "Poacher", 2),
		el(12, 1, "Backup", 3),
		el(13, 2, "Fullback", 1),
		el(14, 2, "Libero", 2),
		el(15, 3, "Spare", 3),
	}
	elements[2].Status = "d"
	elements[2].ChanceNextRound = intPtr(75)
	elements[6].Status = "i"
	elements[10].Status = "s"

	return usecase.ExternalDraftBootstrap{
		Elements: elements,
		Teams: []usecase.ExternalDraftTeam{
			{ID: 1, Name: "Arsenal", ShortName: "ARS"},
			{ID: 2, Name: "Brentford", ShortName: "BRE"},
			{ID: 3, Name: "Chelsea", ShortName: "CHE"},
		},
	}
}

func intPtr(v int) *int {
	return &v
}
