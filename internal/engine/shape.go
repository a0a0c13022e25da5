// Package engine implements the falling-block puzzle core: piece catalog,
// board, active piece controller, speed model and the Running/GameOver
// state machine.
//
// The engine is a pure sequential state machine. It never sleeps, never reads
// the clock and holds no locks; hosts feed it discrete events and an external
// "interval elapsed" tick signal and read back snapshots.
package engine

import "strings"

// Point is a cell coordinate. For shapes it is relative to the bounding box,
// for pieces it is absolute on the board.
type Point struct {
	X, Y int
}

// Shape is an immutable rows x cols occupancy matrix.
// Rotated variants are derived copies; the catalog shapes are never mutated.
type Shape struct {
	rows  int
	cols  int
	cells []bool // row-major
}

// NewShape builds a shape from rows of 0/1 values.
// Rows shorter than the widest row are padded with empty cells.
func NewShape(grid [][]int) Shape {
	rows := len(grid)
	cols := 0
	for _, row := range grid {
		cols = max(cols, len(row))
	}

	s := Shape{rows: rows, cols: cols, cells: make([]bool, rows*cols)}
	for y, row := range grid {
		for x, v := range row {
			s.cells[y*cols+x] = v != 0
		}
	}
	return s
}

// Rows returns the bounding box height.
func (s Shape) Rows() int {
	return s.rows
}

// Cols returns the bounding box width.
func (s Shape) Cols() int {
	return s.cols
}

// At reports whether the relative cell (row, col) is occupied.
// Out-of-range coordinates are empty.
func (s Shape) At(row, col int) bool {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return false
	}
	return s.cells[row*s.cols+col]
}

// Cells returns the occupied relative cells in row-major order.
func (s Shape) Cells() []Point {
	out := make([]Point, 0, 4)
	for y := range s.rows {
		for x := range s.cols {
			if s.cells[y*s.cols+x] {
				out = append(out, Point{X: x, Y: y})
			}
		}
	}
	return out
}

// Rotate returns the shape turned 90 degrees clockwise.
// A rows x cols shape becomes cols x rows: new[x][rows-1-y] = old[y][x].
func (s Shape) Rotate() Shape {
	r := Shape{rows: s.cols, cols: s.rows, cells: make([]bool, len(s.cells))}
	for y := range s.rows {
		for x := range s.cols {
			r.cells[x*r.cols+(s.rows-1-y)] = s.cells[y*s.cols+x]
		}
	}
	return r
}

// Equal reports whether two shapes have identical dimensions and cells.
func (s Shape) Equal(other Shape) bool {
	if s.rows != other.rows || s.cols != other.cols {
		return false
	}
	for i := range s.cells {
		if s.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the shape with '#' for occupied and '.' for empty cells.
func (s Shape) String() string {
	var b strings.Builder
	for y := range s.rows {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := range s.cols {
			if s.cells[y*s.cols+x] {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}
