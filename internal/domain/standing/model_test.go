package standing

import "testing"

func TestFromDraftHistoryRanksByTotal(t *testing.T) {
	t.Parallel()

	entries := []DraftEntry{
		{EntryName: "A", History: []RoundScore{{Event: 1, Points: 4}, {Event: 2, Points: 6}}},
		{EntryName: "B", History: []RoundScore{{Event: 1, Points: 20}, {Event: 2, Points: 5}}},
		{EntryName: "C", History: []RoundScore{{Event: 1, Points: 7}}},
	}

	got := FromDraftHistory(entries)
	want := []struct {
		name  string
		total int
	}{{"B", 25}, {"A", 10}, {"C", 7}}

	if len(got) != len(want) {
		t.Fatalf("unexpected standings length: got=%d want=%d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].EntryName != w.name || got[i].Total != w.total || got[i].Rank != i+1 {
			t.Fatalf("unexpected row %d: got=%+v want name=%s total=%d rank=%d", i, got[i], w.name, w.total, i+1)
		}
	}
	if got[0].LastGameweek == nil || *got[0].LastGameweek != (LastGameweek{Event: 2, Points: 5}) {
		t.Fatalf("unexpected last gameweek: %+v", got[0].LastGameweek)
	}
}

func TestFromDraftHistoryTiesKeepLeagueOrder(t *testing.T) {
	t.Parallel()

	entries := []DraftEntry{
		{EntryName: "first", History: []RoundScore{{Event: 1, Points: 9}}},
		{EntryName: "second", History: []RoundScore{{Event: 1, Points: 9}}},
		{EntryName: "empty", PlayerName: "  Jo Bloggs "},
	}

	got := FromDraftHistory(entries)
	if got[0].EntryName != "first" || got[1].EntryName != "second" {
		t.Fatalf("tie order not preserved: got=%s,%s", got[0].EntryName, got[1].EntryName)
	}
	if got[1].Rank != 2 {
		t.Fatalf("unexpected rank for tied entry: got=%d want=2", got[1].Rank)
	}

	empty := got[2]
	if empty.Total != 0 || empty.LastGameweek != nil {
		t.Fatalf("entry without history should total zero: %+v", empty)
	}
	if empty.PlayerName != "Jo Bloggs" {
		t.Fatalf("unexpected player name: %q", empty.PlayerName)
	}
}

func TestPlayerName(t *testing.T) {
	t.Parallel()

	if got := PlayerName("Ada", "Lovelace"); got != "Ada Lovelace" {
		t.Fatalf("unexpected name: %q", got)
	}
	if got := PlayerName("", "Solo"); got != "Solo" {
		t.Fatalf("unexpected name: %q", got)
	}
}
