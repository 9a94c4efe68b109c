package entity

import (
	"errors"
)

var ErrInvalidBoardKey = errors.New("invalid board key")

// Side is who placed a counter, independent of which counter it was.
type Side string

const (
	SidePlayer   Side = "player"
	SideOpponent Side = "opponent"

	// NoSide marks a drawn or unfinished game.
	NoSide Side = ""
)

func (that Side) Other() Side {
	if that == SidePlayer {
		return SideOpponent
	}
	return SidePlayer
}

// Move is one half-step: a single placement by one side.
type Move struct {
	Side   Side   `json:"side"`
	Action Action `json:"action"`
}

// GameRecord is a finished session as stored by the game repository.
type GameRecord struct {
	ID        string `json:"id"`
	WentFirst Side   `json:"went_first"`
	Moves     []Move `json:"moves"`
	Board     Board  `json:"board"`
	Winner    Side   `json:"winner,omitempty"`
	Return    int    `json:"return"`
}

func (that *GameRecord) IsDraw() bool {
	return that.Winner == NoSide
}

// CounterSides - which side placed the counter on each occupied square.
func (that *GameRecord) CounterSides() map[int]Side {
	sides := make(map[int]Side, len(that.Moves))
	for _, move := range that.Moves {
		sides[move.Action.Position] = move.Side
	}

	return sides
}
