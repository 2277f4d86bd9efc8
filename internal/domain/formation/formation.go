package formation

import (
	"github.com/riskibarqy/fpl-viewer/internal/domain/player"
	"github.com/riskibarqy/fpl-viewer/internal/domain/squad"
)

// Name identifies a pitch template.
type Name string

const (
	FourFourTwo    Name = "4-4-2"
	FourThreeThree Name = "4-3-3"
	ThreeFiveTwo   Name = "3-5-2"

	// Fallback is used for any composition without its own template.
	Fallback = FourFourTwo
)

// Coordinate is a marker position in percent of pitch width (X) and height (Y).
type Coordinate struct {
	X int
	Y int
}

// Template lists marker coordinates per position group.
type Template map[player.Position][]Coordinate

type shape struct {
	name        Name
	defenders   int
	midfielders int
	forwards    int
}

var shapes = []shape{
	{name: FourFourTwo, defenders: 4, midfielders: 4, forwards: 2},
	{name: FourThreeThree, defenders: 4, midfielders: 3, forwards: 3},
	{name: ThreeFiveTwo, defenders: 3, midfielders: 5, forwards: 2},
}

var templates = map[Name]Template{
	FourFourTwo: {
		player.PositionGoalkeeper: {{50, 90}},
		player.PositionDefender:   {{15, 70}, {38, 70}, {62, 70}, {85, 70}},
		player.PositionMidfielder: {{15, 45}, {38, 45}, {62, 45}, {85, 45}},
		player.PositionForward:    {{35, 20}, {65, 20}},
	},
	FourThreeThree: {
		player.PositionGoalkeeper: {{50, 90}},
		player.PositionDefender:   {{15, 70}, {38, 70}, {62, 70}, {85, 70}},
		player.PositionMidfielder: {{35, 45}, {50, 45}, {65, 45}},
		player.PositionForward:    {{25, 20}, {50, 20}, {75, 20}},
	},
	ThreeFiveTwo: {
		player.PositionGoalkeeper: {{50, 90}},
		player.PositionDefender:   {{30, 70}, {50, 70}, {70, 70}},
		player.PositionMidfielder: {{15, 45}, {35, 45}, {50, 45}, {65, 45}, {85, 45}},
		player.PositionForward:    {{35, 20}, {65, 20}},
	},
}

var positionOrder = []player.Position{
	player.PositionGoalkeeper,
	player.PositionDefender,
	player.PositionMidfielder,
	player.PositionForward,
}

// Marker places one starter on the pitch.
type Marker struct {
	Player squad.Player
	At     Coordinate
}

// Pitch is the rendered layout for a starting eleven.
type Pitch struct {
	Formation Name
	Markers   []Marker
	// Unplaced holds starters the template has no coordinate for.
	Unplaced []squad.Player
}

// Detect matches the outfield composition against the known shapes.
// Compositions that match none of them fall back to 4-4-2.
func Detect(starting []squad.Player) Name {
	counts := countPositions(starting)
	for _, s := range shapes {
		if counts[player.PositionDefender] == s.defenders &&
			counts[player.PositionMidfielder] == s.midfielders &&
			counts[player.PositionForward] == s.forwards {
			return s.name
		}
	}
	return Fallback
}

// TemplateFor returns a copy of the coordinates for a formation.
func TemplateFor(name Name) (Template, bool) {
	tpl, ok := templates[name]
	if !ok {
		return nil, false
	}
	out := make(Template, len(tpl))
	for pos, coords := range tpl {
		out[pos] = append([]Coordinate(nil), coords...)
	}
	return out, true
}

// Arrange detects the formation and assigns coordinates by index within each position group,
// in the order players appear in the starting list.
func Arrange(starting []squad.Player) Pitch {
	name := Detect(starting)
	tpl := templates[name]

	byPosition := make(map[player.Position][]squad.Player, len(positionOrder))
	for _, p := range starting {
		byPosition[p.Position] = append(byPosition[p.Position], p)
	}

	pitch := Pitch{
		Formation: name,
		Markers:   make([]Marker, 0, len(starting)),
	}
	for _, pos := range positionOrder {
		coords := tpl[pos]
		for idx, p := range byPosition[pos] {
			if idx >= len(coords) {
				pitch.Unplaced = append(pitch.Unplaced, p)
				continue
			}
			pitch.Markers = append(pitch.Markers, Marker{Player: p, At: coords[idx]})
		}
	}

	return pitch
}

func countPositions(players []squad.Player) map[player.Position]int {
	counts := make(map[player.Position]int, len(positionOrder))
	for _, p := range players {
		counts[p.Position]++
	}
	return counts
}
