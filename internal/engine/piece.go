package engine

// Piece is the falling piece: its current (possibly rotated) shape anchored
// at X, Y on the board.
type Piece struct {
	Kind  Kind
	Shape Shape
	X, Y  int
	Color ColorID
}

// Moved returns a copy translated by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy with the shape turned clockwise around the same origin.
func (p Piece) Rotated() Piece {
	p.Shape = p.Shape.Rotate()
	return p
}

// Cells returns the absolute board cells the piece occupies.
func (p Piece) Cells() []Point {
	cells := p.Shape.Cells()
	for i := range cells {
		cells[i].X += p.X
		cells[i].Y += p.Y
	}
	return cells
}
