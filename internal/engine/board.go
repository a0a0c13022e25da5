package engine

import (
	"errors"
	"fmt"
	"strings"
)

// Board size limits. An I piece must fit horizontally.
const (
	MinBoardWidth  = 4
	MinBoardHeight = 2
)

// ErrInvalidSize is returned when a board is created with unusable dimensions.
var ErrInvalidSize = errors.New("engine: invalid board size")

// Board is the fixed W x H grid of settled cells.
// Row y = 0 is the top. Dimensions never change after NewBoard.
type Board struct {
	width  int
	height int
	cells  [][]ColorID
}

// NewBoard creates an empty board.
func NewBoard(width, height int) (*Board, error) {
	if width < MinBoardWidth || height < MinBoardHeight {
		return nil, fmt.Errorf("%w: %dx%d (minimum %dx%d)",
			ErrInvalidSize, width, height, MinBoardWidth, MinBoardHeight)
	}

	b := &Board{width: width, height: height}
	b.cells = make([][]ColorID, height)
	for y := range b.cells {
		b.cells[y] = make([]ColorID, width)
	}
	return b, nil
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the cell color at (x, y). Out-of-range cells read as empty.
func (b *Board) At(x, y int) ColorID {
	if !b.inBounds(x, y) {
		return ColorEmpty
	}
	return b.cells[y][x]
}

// Filled reports whether (x, y) is an in-bounds filled cell.
func (b *Board) Filled(x, y int) bool {
	return b.At(x, y) != ColorEmpty
}

// set writes c at (x, y), ignoring out-of-range coordinates.
func (b *Board) set(x, y int, c ColorID) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y][x] = c
}

// Fill seeds a settled cell. Colors outside the catalog are rejected.
func (b *Board) Fill(x, y int, c ColorID) bool {
	if !c.Valid() || !b.inBounds(x, y) {
		return false
	}
	b.cells[y][x] = c
	return true
}

// Collides reports whether p overlaps a wall, the floor or a filled cell.
// The area above row 0 is open: cells with y < 0 only fail the side checks.
func (b *Board) Collides(p Piece) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= b.width || c.Y >= b.height {
			return true
		}
		if c.Y >= 0 && b.cells[c.Y][c.X] != ColorEmpty {
			return true
		}
	}
	return false
}

// Merge settles p into the grid using its color.
func (b *Board) Merge(p Piece) {
	for _, c := range p.Cells() {
		b.set(c.X, c.Y, p.Color)
	}
}

// ClearLines removes every full row, shifts the rows above down without gaps
// and refills the top with empty rows. It returns the number of rows removed.
func (b *Board) ClearLines() int {
	write := b.height - 1
	cleared := 0
	for read := b.height - 1; read >= 0; read-- {
		if b.rowFull(read) {
			cleared++
			continue
		}
		if write != read {
			copy(b.cells[write], b.cells[read])
		}
		write--
	}
	for y := write; y >= 0; y-- {
		clear(b.cells[y])
	}
	return cleared
}

func (b *Board) rowFull(y int) bool {
	for _, c := range b.cells[y] {
		if c == ColorEmpty {
			return false
		}
	}
	return true
}

// Rows returns a deep copy of the grid, top row first.
func (b *Board) Rows() [][]ColorID {
	out := make([][]ColorID, b.height)
	for y := range b.cells {
		out[y] = make([]ColorID, b.width)
		copy(out[y], b.cells[y])
	}
	return out
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	return &Board{width: b.width, height: b.height, cells: b.Rows()}
}

// Equal reports whether two boards have the same size and cells.
func (b *Board) Equal(other *Board) bool {
	if b.width != other.width || b.height != other.height {
		return false
	}
	for y := range b.cells {
		for x := range b.cells[y] {
			if b.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// String dumps the grid, one line per row: '.' empty, '1'-'7' color ids.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for y, row := range b.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			if c == ColorEmpty {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + byte(c))
			}
		}
	}
	return sb.String()
}
