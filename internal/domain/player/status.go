package player

import "fmt"

// Status is the availability shown next to a player.
type Status string

const (
	StatusAvailable Status = "available"
	StatusInjured   Status = "injured"
	StatusDoubtful  Status = "doubtful"
	StatusSuspended Status = "suspended"
)

const (
	codeAvailable = "a"
	codeInjured   = "i"
	codeSuspended = "s"
)

// ClassifyStatus turns the upstream status code and playing chances into a display status.
// Status codes are checked before chances, and unknown codes fall back to available.
// The current-round chance does not affect the result.
func ClassifyStatus(code string, chanceNextRound, _ *int) (Status, string) {
	switch code {
	case codeAvailable:
		return StatusAvailable, ""
	case codeInjured:
		return StatusInjured, ""
	case codeSuspended:
		return StatusSuspended, ""
	}

	if chanceNextRound != nil && *chanceNextRound < 100 {
		return StatusDoubtful, fmt.Sprintf("%d%% chance of playing", *chanceNextRound)
	}

	return StatusAvailable, ""
}
