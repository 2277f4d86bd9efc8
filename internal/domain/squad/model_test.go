package squad

import (
	"errors"
	"testing"

	"github.com/riskibarqy/fpl-viewer/internal/domain/player"
)

func TestPartition_FifteenSlots(t *testing.T) {
	t.Parallel()

	// Reverse order so sorting is observable.
	players := make([]Player, 0, 15)
	for slot := 15; slot >= 1; slot-- {
		players = append(players, Player{ID: int64(100 + slot), Slot: slot})
	}

	starting, bench := Partition(players)
	if len(starting) != 11 {
		t.Fatalf("expected 11 starters, got %d", len(starting))
	}
	if len(bench) != 4 {
		t.Fatalf("expected 4 bench players, got %d", len(bench))
	}
	for i, p := range starting {
		if p.Slot != i+1 {
			t.Fatalf("starting[%d] slot=%d want=%d", i, p.Slot, i+1)
		}
	}
	for i, p := range bench {
		if p.Slot != 12+i {
			t.Fatalf("bench[%d] slot=%d want=%d", i, p.Slot, 12+i)
		}
	}
}

func TestPartition_Empty(t *testing.T) {
	t.Parallel()

	starting, bench := Partition(nil)
	if len(starting) != 0 || len(bench) != 0 {
		t.Fatalf("expected empty partitions, got starting=%d bench=%d", len(starting), len(bench))
	}
}

func TestNewPlayer(t *testing.T) {
	t.Parallel()

	chance := 75
	record := player.Record{
		ID:              7,
		ElementType:     3,
		Status:          "d",
		ChanceNextRound: &chance,
		WebName:         "Saka",
		ClubID:          1,
		TotalPoints:     88,
		Form:            "6.5",
	}
	club := player.Club{ID: 1, ShortName: "ARS"}
	pick := Pick{Element: 7, Slot: 9, IsCaptain: true}

	got, err := NewPlayer(pick, record, club)
	if err != nil {
		t.Fatalf("new player: %v", err)
	}
	if got.Position != player.PositionMidfielder {
		t.Fatalf("unexpected position: %s", got.Position)
	}
	if got.Status != player.StatusDoubtful || got.StatusInfo != "75% chance of playing" {
		t.Fatalf("unexpected status: %s %q", got.Status, got.StatusInfo)
	}
	if got.ClubShortName != "ARS" || got.Slot != 9 || !got.IsCaptain || got.IsViceCaptain {
		t.Fatalf("unexpected player: %+v", got)
	}
}

func TestNewPlayer_UnknownElementType(t *testing.T) {
	t.Parallel()

	_, err := NewPlayer(Pick{Element: 1, Slot: 1}, player.Record{ID: 1, ElementType: 9}, player.Club{ID: 1})
	if !errors.Is(err, player.ErrUnknownElementType) {
		t.Fatalf("expected ErrUnknownElementType, got %v", err)
	}
}
