package board

import (
	"fmt"
	"strings"
)

const (
	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""

	size = 3
)

// Position addresses a single cell, rows and columns counted from the
// top-left corner.
type Position struct {
	Row int
	Col int
}

// winLines are the eight mark triples that decide a game: three rows,
// three columns, two diagonals.
var winLines = [8][3]Position{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Board is a fixed 3x3 grid of cells. A cell holds PlayerX, PlayerO or
// EmptyCell. The zero grid is a fully empty board.
type Board struct {
	cells [size][size]string
}

// New returns an empty board.
func New() *Board {
	return &Board{}
}

// IsValidMove reports whether a mark may be placed at (row, col): both
// coordinates inside the grid and the target cell still empty. It is
// total over all integers; out-of-range coordinates are simply invalid.
func (that *Board) IsValidMove(row, col int) bool {
	if row < 0 || row >= size || col < 0 || col >= size {
		return false
	}

	return that.cells[row][col] == EmptyCell
}

// Place puts mark at (row, col). The caller must have checked
// IsValidMove first; placing on an occupied or out-of-range cell is a
// coordinator bug, and Place panics rather than corrupt the grid.
func (that *Board) Place(row, col int, mark string) {
	if !that.IsValidMove(row, col) {
		panic(fmt.Sprintf("board: illegal placement of %q at (%d, %d)", mark, row, col))
	}

	that.cells[row][col] = mark
}

// EmptyPositions returns every empty cell in row-major order. The order
// is fixed: the search engine breaks ties between equally scored moves
// by taking the first one it sees.
func (that *Board) EmptyPositions() []Position {
	positions := make([]Position, 0, size*size)

	for row := range size {
		for col := range size {
			if that.cells[row][col] == EmptyCell {
				positions = append(positions, Position{Row: row, Col: col})
			}
		}
	}

	return positions
}

// Winner returns the mark occupying a full win line, or EmptyCell when
// no line is complete. The result is recomputed from the grid on every
// call.
func (that *Board) Winner() string {
	for _, line := range winLines {
		a := that.cells[line[0].Row][line[0].Col]
		b := that.cells[line[1].Row][line[1].Col]
		c := that.cells[line[2].Row][line[2].Col]

		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	return EmptyCell
}

// IsFull reports whether no empty cells remain.
func (that *Board) IsFull() bool {
	for row := range size {
		for col := range size {
			if that.cells[row][col] == EmptyCell {
				return false
			}
		}
	}

	return true
}

// IsDraw reports whether the board is full without a winner.
func (that *Board) IsDraw() bool {
	return that.IsFull() && that.Winner() == EmptyCell
}

// Clone returns an independent copy; mutating either board never
// affects the other. The search engine explores hypothetical moves on
// clones so sibling branches stay isolated.
func (that *Board) Clone() *Board {
	clone := *that
	return &clone
}

// Cell returns the mark at (row, col). The second result is false when
// the coordinates fall outside the grid.
func (that *Board) Cell(row, col int) (string, bool) {
	if row < 0 || row >= size || col < 0 || col >= size {
		return EmptyCell, false
	}

	return that.cells[row][col], true
}

// Reset clears every cell in place.
func (that *Board) Reset() {
	that.cells = [size][size]string{}
}

// String renders the grid for logs.
func (that *Board) String() string {
	rows := make([]string, 0, size)

	for row := range size {
		marks := make([]string, 0, size)
		for col := range size {
			mark := that.cells[row][col]
			if mark == EmptyCell {
				mark = " "
			}
			marks = append(marks, mark)
		}
		rows = append(rows, strings.Join(marks, " | "))
	}

	return strings.Join(rows, "\n---------\n")
}
