package game

import (
	"errors"
	"fmt"
	"strings"
)

// BoardSize is fixed at 8: the board is always an 8x8 grid.
const BoardSize = 8

const winLength = 4

const (
	EmptyCell    = ""
	PlayerRed    = "R"
	PlayerYellow = "Y"
)

var (
	ErrInvalidColumn = errors.New("invalid column index")
	ErrColumnFull    = errors.New("column is already full")
)

// Board is the playing grid. Row 0 is the top row, row BoardSize-1 the bottom.
// Occupied cells in a column are always contiguous from the bottom row upward.
type Board [BoardSize][BoardSize]string

func NewBoard() *Board {
	return &Board{}
}

// Drop places mark in the lowest empty cell of column and returns the row used.
func (that *Board) Drop(column int, mark string) (int, error) {
	if column < 0 || column >= BoardSize {
		return -1, fmt.Errorf("%w: %d", ErrInvalidColumn, column)
	}

	for row := BoardSize - 1; row >= 0; row-- {
		if that[row][column] == EmptyCell {
			that[row][column] = mark
			return row, nil
		}
	}

	return -1, fmt.Errorf("%w: %d", ErrColumnFull, column)
}

// HasWin reports whether mark has four in a row anywhere on the board:
// horizontally, vertically, or on either diagonal. It stops at the first match.
func (that *Board) HasWin(mark string) bool {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col+winLength <= BoardSize; col++ {
			if that[row][col] == mark &&
				that[row][col+1] == mark &&
				that[row][col+2] == mark &&
				that[row][col+3] == mark {
				return true
			}
		}
	}

	for row := 0; row+winLength <= BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if that[row][col] == mark &&
				that[row+1][col] == mark &&
				that[row+2][col] == mark &&
				that[row+3][col] == mark {
				return true
			}
		}
	}

	for row := 0; row+winLength <= BoardSize; row++ {
		for col := 0; col+winLength <= BoardSize; col++ {
			if that[row][col] == mark &&
				that[row+1][col+1] == mark &&
				that[row+2][col+2] == mark &&
				that[row+3][col+3] == mark {
				return true
			}
		}
	}

	for row := 0; row+winLength <= BoardSize; row++ {
		for col := winLength - 1; col < BoardSize; col++ {
			if that[row][col] == mark &&
				that[row+1][col-1] == mark &&
				that[row+2][col-2] == mark &&
				that[row+3][col-3] == mark {
				return true
			}
		}
	}

	return false
}

func (that *Board) IsColumnFull(column int) bool {
	if column < 0 || column >= BoardSize {
		return false
	}
	return that[0][column] != EmptyCell
}

// IsFull reports whether no column can take another marker. Gravity keeps
// occupied cells contiguous from the bottom, so checking the top row is enough.
func (that *Board) IsFull() bool {
	for col := 0; col < BoardSize; col++ {
		if that[0][col] == EmptyCell {
			return false
		}
	}
	return true
}

// Clone returns an independent copy for simulate-then-discard evaluation.
func (that *Board) Clone() *Board {
	clone := *that
	return &clone
}

// Render draws the board one line per row, cells space-separated, using the
// given mark-to-icon mapping. The EmptyCell entry supplies the neutral glyph.
func (that *Board) Render(icons map[string]string) string {
	var sb strings.Builder

	for row := 0; row < BoardSize; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < BoardSize; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(icons[that[row][col]])
		}
	}

	return sb.String()
}
