package player

import (
	"errors"
	"fmt"
)

// Position is the display label for an upstream element type.
type Position string

const (
	PositionGoalkeeper Position = "GKP"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionForward    Position = "FWD"
)

var ErrUnknownElementType = errors.New("unknown element type")

// Record is one element of the bootstrap player list, valid for the current round only.
type Record struct {
	ID              int64
	ElementType     int
	Status          string
	ChanceNextRound *int
	ChanceThisRound *int
	FirstName       string
	SecondName      string
	WebName         string
	ClubID          int64
	TotalPoints     int
	Form            string
}

// Club is a bootstrap team entry. Only the short code is shown to users.
type Club struct {
	ID        int64
	ShortName string
}

// PositionFromElementType maps upstream element types 1..4 onto position labels.
func PositionFromElementType(elementType int) (Position, error) {
	switch elementType {
	case 1:
		return PositionGoalkeeper, nil
	case 2:
		return PositionDefender, nil
	case 3:
		return PositionMidfielder, nil
	case 4:
		return PositionForward, nil
	default:
		return "", fmt.Errorf("%w: %d", ErrUnknownElementType, elementType)
	}
}
