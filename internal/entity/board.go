package entity

import "strings"

const (
	Rows    = 6
	Columns = 7

	// BottomRow is where a token lands in an empty column.
	BottomRow = Rows - 1
)

// Cell holds either EmptyCell or the token of a player.
type Cell uint8

const EmptyCell Cell = 0

// CellOf returns the cell occupied by the given player.
func CellOf(player PlayerID) Cell {
	return Cell(player)
}

func (that Cell) IsEmpty() bool {
	return that == EmptyCell
}

// Owner reports which player occupies the cell.
func (that Cell) Owner() (PlayerID, bool) {
	player := PlayerID(that)
	return player, player.IsValid()
}

func (that Cell) String() string {
	switch PlayerID(that) {
	case Player1:
		return "1"
	case Player2:
		return "2"
	default:
		return "."
	}
}

// Board is the 6x7 grid, row 0 on top and row 5 on the bottom.
type Board [Rows][Columns]Cell

func InBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Columns
}

func ValidColumn(col int) bool {
	return col >= 0 && col < Columns
}

// LowestEmptyRow returns the row a token dropped into col would occupy,
// or -1 when the column is full.
func (that *Board) LowestEmptyRow(col int) int {
	for row := BottomRow; row >= 0; row-- {
		if that[row][col].IsEmpty() {
			return row
		}
	}
	return -1
}

func (that *Board) IsFull() bool {
	for col := 0; col < Columns; col++ {
		if that[0][col].IsEmpty() {
			return false
		}
	}
	return true
}

// CountFrom counts contiguous cells equal to cell, starting one step away
// from (row, col) and walking by (dRow, dCol) until a mismatch or the edge.
func (that *Board) CountFrom(row, col, dRow, dCol int, cell Cell) int {
	count := 0
	for r, c := row+dRow, col+dCol; InBounds(r, c) && that[r][c] == cell; r, c = r+dRow, c+dCol {
		count++
	}
	return count
}

func (that *Board) Clear() {
	*that = Board{}
}

func (that *Board) String() string {
	var sb strings.Builder
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			sb.WriteString(that[row][col].String())
		}
		if row < BottomRow {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
