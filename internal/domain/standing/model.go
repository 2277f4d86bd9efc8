package standing

import (
	"sort"
	"strings"
)

// LeagueType labels which game a league belongs to.
type LeagueType string

const (
	LeagueTypeClassic LeagueType = "Regular"
	LeagueTypeDraft   LeagueType = "Draft"
)

// LastGameweek is the most recent scored round for an entry.
type LastGameweek struct {
	Event  int
	Points int
}

// Record holds head-to-head results, only populated for draft leagues.
type Record struct {
	Played int
	Won    int
	Drawn  int
	Lost   int
}

// Standing is one row of a league table.
type Standing struct {
	Rank         int
	EntryName    string
	PlayerName   string
	Total        int
	LastGameweek *LastGameweek
	Record       *Record
}

// LeagueStandings is the full table of a league.
type LeagueStandings struct {
	LeagueName      string
	LeagueType      LeagueType
	Standings       []Standing
	CurrentGameweek int
}

// RoundScore is the points an entry scored in one round.
type RoundScore struct {
	Event  int
	Points int
}

// DraftEntry is a league member together with its per-round history.
type DraftEntry struct {
	EntryName  string
	PlayerName string
	Record     Record
	History    []RoundScore
}

// PlayerName joins first and last names, trimming the result.
func PlayerName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}

// FromDraftHistory totals each entry's history and ranks entries by total, highest first.
// Ties keep league order. An entry with no history totals zero and has no last gameweek.
func FromDraftHistory(entries []DraftEntry) []Standing {
	out := make([]Standing, 0, len(entries))
	for _, e := range entries {
		total := 0
		for _, round := range e.History {
			total += round.Points
		}

		var last *LastGameweek
		if n := len(e.History); n > 0 {
			final := e.History[n-1]
			last = &LastGameweek{Event: final.Event, Points: final.Points}
		}

		record := e.Record
		out = append(out, Standing{
			EntryName:    e.EntryName,
			PlayerName:   strings.TrimSpace(e.PlayerName),
			Total:        total,
			LastGameweek: last,
			Record:       &record,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total > out[j].Total
	})
	for i := range out {
		out[i].Rank = i + 1
	}

	return out
}
