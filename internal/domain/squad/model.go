package squad

import (
	"sort"

	"github.com/riskibarqy/fpl-viewer/internal/domain/player"
)

// LastStartingSlot is the highest squad slot counted as part of the starting eleven.
// Upstream does not enforce it; slots above it are treated as bench.
const LastStartingSlot = 11

// Pick assigns one element to a squad slot for a round.
type Pick struct {
	Element       int64
	Slot          int
	IsCaptain     bool
	IsViceCaptain bool
	Multiplier    int
}

// Player is a pick joined with its bootstrap record and club.
type Player struct {
	ID            int64
	WebName       string
	Position      player.Position
	ClubShortName string
	Status        player.Status
	StatusInfo    string
	Form          string
	TotalPoints   int
	Slot          int
	IsCaptain     bool
	IsViceCaptain bool
}

// Info is the squad view for one manager and round.
type Info struct {
	Manager  string
	TeamName string
	Starting []Player
	Bench    []Player
}

// NewPlayer joins a pick with the resolved record and club.
func NewPlayer(pick Pick, record player.Record, club player.Club) (Player, error) {
	position, err := player.PositionFromElementType(record.ElementType)
	if err != nil {
		return Player{}, err
	}
	status, info := player.ClassifyStatus(record.Status, record.ChanceNextRound, record.ChanceThisRound)

	return Player{
		ID:            record.ID,
		WebName:       record.WebName,
		Position:      position,
		ClubShortName: club.ShortName,
		Status:        status,
		StatusInfo:    info,
		Form:          record.Form,
		TotalPoints:   record.TotalPoints,
		Slot:          pick.Slot,
		IsCaptain:     pick.IsCaptain,
		IsViceCaptain: pick.IsViceCaptain,
	}, nil
}

// Partition splits players into starting and bench by slot, each sorted ascending by slot.
func Partition(players []Player) ([]Player, []Player) {
	starting := make([]Player, 0, LastStartingSlot)
	bench := make([]Player, 0, 4)
	for _, p := range players {
		if p.Slot <= LastStartingSlot {
			starting = append(starting, p)
			continue
		}
		bench = append(bench, p)
	}

	sort.SliceStable(starting, func(i, j int) bool { return starting[i].Slot < starting[j].Slot })
	sort.SliceStable(bench, func(i, j int) bool { return bench[i].Slot < bench[j].Slot })

	return starting, bench
}
