package connectfour

import (
	"fmt"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

// WinLength is the run of same-player tokens that ends the game.
const WinLength = 4

// axes are the four lines through a cell, each scanned in both directions.
var axes = [4][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal
	{1, -1}, // anti-diagonal
}

// StatusView is the read-only state a presentation layer renders from.
type StatusView struct {
	Turn   entity.PlayerID `json:"turn"`
	Status entity.Status   `json:"status"`
	Winner entity.PlayerID `json:"winner,omitempty"`
	Label  string          `json:"label"`
}

// Engine applies the rules to a single game. It is not safe for concurrent
// use; callers serialise events.
type Engine struct {
	game *entity.Game
}

func NewEngine(id string) *Engine {
	return &Engine{game: entity.NewGame(id)}
}

// Resume wraps an existing game state, e.g. one loaded from storage.
func Resume(game *entity.Game) *Engine {
	return &Engine{game: game}
}

// Game exposes the underlying state for storage.
func (that *Engine) Game() *entity.Game {
	return that.game
}

// DropToken places the current player's token in column. Rejections leave
// the game untouched.
func (that *Engine) DropToken(column int) (entity.Move, error) {
	if !entity.ValidColumn(column) {
		return entity.Move{}, fmt.Errorf("%w: column %d", apperror.ErrInvalidColumn, column)
	}

	if err := that.game.ConfirmInProgress(); err != nil {
		return entity.Move{}, err
	}

	row := that.game.Board.LowestEmptyRow(column)
	if row < 0 {
		return entity.Move{}, fmt.Errorf("%w: column %d", apperror.ErrColumnFull, column)
	}

	player := that.game.Turn
	that.game.Board[row][column] = entity.CellOf(player)
	that.game.Moves++

	// the win check must see the player who just moved, before the turn switches
	switch {
	case that.CheckWin(row, column):
		that.game.Status = entity.StatusWon
		that.game.Winner = player
	case that.game.Board.IsFull():
		that.game.Status = entity.StatusDraw
	default:
		that.game.Turn = player.Opponent()
	}

	move := entity.Move{
		Row:    row,
		Column: column,
		Player: player,
		Status: that.game.Status,
		Winner: that.game.Winner,
		Turn:   that.game.Turn,
	}
	that.game.LastMove = &move

	return move, nil
}

// CheckWin reports whether the token at (row, col) is part of a run of at
// least WinLength along any axis. Empty or out-of-range origins never win.
func (that *Engine) CheckWin(row, col int) bool {
	if !entity.InBounds(row, col) {
		return false
	}

	cell := that.game.Board[row][col]
	if cell.IsEmpty() {
		return false
	}

	for _, axis := range axes {
		run := 1 +
			that.game.Board.CountFrom(row, col, axis[0], axis[1], cell) +
			that.game.Board.CountFrom(row, col, -axis[0], -axis[1], cell)
		if run >= WinLength {
			return true
		}
	}

	return false
}

func (that *Engine) Restart() {
	that.game.Reset()
}

func (that *Engine) Cell(row, col int) (entity.Cell, error) {
	if !entity.InBounds(row, col) {
		return entity.EmptyCell, fmt.Errorf("%w: row %d col %d", apperror.ErrInvalidCell, row, col)
	}

	return that.game.Board[row][col], nil
}

func (that *Engine) Status() StatusView {
	return StatusView{
		Turn:   that.game.Turn,
		Status: that.game.Status,
		Winner: that.game.Winner,
		Label:  that.game.Label(),
	}
}

func (that *Engine) CurrentTurnLabel() string {
	return that.game.Label()
}
