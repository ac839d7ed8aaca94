package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const Size = 3

// Mark - symbol placed on the grid. The zero value is an empty slot.
type Mark string

const (
	Empty Mark = ""
	X     Mark = "X"
	O     Mark = "O"
)

// Opponent returns the other mark. Empty stays Empty.
func (m Mark) Opponent() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

func (m Mark) IsValid() bool {
	return m == X || m == O
}

// Cell - slot coordinate on the grid.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Cell) InBounds() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// Lines holds every winning triple in scan order: rows, columns, main diagonal, anti-diagonal.
var Lines = [8][3]Cell{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{2, 0}, {1, 1}, {0, 2}},
}

// Grid - the 3x3 board, indexed [row][col].
type Grid [Size][Size]Mark

func (that *Grid) At(c Cell) Mark {
	return that[c.Row][c.Col]
}

func (that *Grid) IsOccupied(row, col int) bool {
	return that[row][col] != Empty
}

// Lines returns the eight coordinate triples a game can be won on.
func (that *Grid) Lines() [8][3]Cell {
	return Lines
}

// WinningMark returns the mark of the first completed line, or Empty.
func (that *Grid) WinningMark() Mark {
	for _, line := range Lines {
		if mark, ok := that.lineOwner(line); ok {
			return mark
		}
	}

	return Empty
}

// WinningCells returns the cells of every completed line, without duplicates.
func (that *Grid) WinningCells() []Cell {
	var cells []Cell
	seen := make(map[Cell]struct{}, Size*Size)

	for _, line := range Lines {
		if _, ok := that.lineOwner(line); !ok {
			continue
		}

		for _, c := range line {
			if _, dup := seen[c]; dup {
				continue
			}
			seen[c] = struct{}{}
			cells = append(cells, c)
		}
	}

	return cells
}

func (that *Grid) lineOwner(line [3]Cell) (Mark, bool) {
	a, b, c := that.At(line[0]), that.At(line[1]), that.At(line[2])
	if a != Empty && a == b && b == c {
		return a, true
	}

	return Empty, false
}

func (that *Grid) IsFull() bool {
	return that.CountEmpty() == 0
}

func (that *Grid) CountEmpty() int {
	count := 0
	for row := range Size {
		for col := range Size {
			if that[row][col] == Empty {
				count++
			}
		}
	}

	return count
}

// EmptyCells lists the free slots in row-major order.
func (that *Grid) EmptyCells() []Cell {
	cells := make([]Cell, 0, Size*Size)
	for row := range Size {
		for col := range Size {
			if that[row][col] == Empty {
				cells = append(cells, Cell{Row: row, Col: col})
			}
		}
	}

	return cells
}

// Outcome derives the game status from the grid contents.
func (that *Grid) Outcome() Outcome {
	if mark := that.WinningMark(); mark != Empty {
		return Win(mark)
	}

	if that.IsFull() {
		return Tie()
	}

	return InProgress()
}

// Place puts mark into an empty slot. On error the grid is left unchanged.
func (that *Grid) Place(mark Mark, row, col int) error {
	if !mark.IsValid() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}

	if !(Cell{Row: row, Col: col}).InBounds() {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrInvalidCell, row, col)
	}

	if that.IsOccupied(row, col) {
		return apperror.ErrCellOccupied
	}

	that[row][col] = mark

	return nil
}
