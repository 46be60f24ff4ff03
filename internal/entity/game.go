package entity

import (
	"fmt"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
)

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusDraw       Status = "draw"
)

// Move describes a placed token and the game state right after it.
type Move struct {
	Row    int      `json:"row"`
	Column int      `json:"column"`
	Player PlayerID `json:"player"`
	Status Status   `json:"status"`
	Winner PlayerID `json:"winner,omitempty"`
	Turn   PlayerID `json:"turn"`
}

// Game is the state of a single hosted game.
type Game struct {
	ID       string   `json:"id"`
	Board    Board    `json:"board"`
	Turn     PlayerID `json:"turn"`
	Status   Status   `json:"status"`
	Winner   PlayerID `json:"winner,omitempty"`
	Moves    int      `json:"moves"`
	LastMove *Move    `json:"last_move,omitempty"`
}

func NewGame(id string) *Game {
	game := &Game{ID: id}
	game.Reset()

	return game
}

// Reset puts the game back to its initial configuration, keeping the ID.
func (that *Game) Reset() {
	that.Board.Clear()
	that.Turn = Player1
	that.Status = StatusInProgress
	that.Winner = NoPlayer
	that.Moves = 0
	that.LastMove = nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDraw
}

func (that *Game) IsInProgress() bool {
	return that.Status == StatusInProgress
}

// ConfirmInProgress returns apperror.ErrGameOver for a won or drawn game.
func (that *Game) ConfirmInProgress() error {
	switch {
	case that.IsInProgress():
		return nil
	case that.IsFinished():
		return apperror.ErrGameOver
	default:
		return fmt.Errorf("%w: %s", apperror.ErrUnknownGameStatus, that.Status)
	}
}

// Label is the status line a presentation layer shows above the board.
func (that *Game) Label() string {
	switch that.Status {
	case StatusWon:
		return fmt.Sprintf("%s wins!", that.Winner)
	case StatusDraw:
		return "Draw!"
	default:
		return fmt.Sprintf("Turn: %s", that.Turn)
	}
}

// Clone returns a deep copy, Board is an array so only LastMove needs care.
func (that *Game) Clone() *Game {
	clone := *that
	if that.LastMove != nil {
		move := *that.LastMove
		clone.LastMove = &move
	}

	return &clone
}
