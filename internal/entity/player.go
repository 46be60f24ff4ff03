package entity

import "fmt"

// PlayerID identifies one of the two seats at the board.
type PlayerID uint8

const (
	NoPlayer PlayerID = 0
	Player1  PlayerID = 1
	Player2  PlayerID = 2
)

// Opponent returns the other seat.
func (that PlayerID) Opponent() PlayerID {
	if that == Player1 {
		return Player2
	}
	return Player1
}

func (that PlayerID) IsValid() bool {
	return that == Player1 || that == Player2
}

func (that PlayerID) String() string {
	if !that.IsValid() {
		return "-"
	}
	return fmt.Sprintf("Player %d", that)
}
