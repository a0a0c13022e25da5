package engine

// CellColor is an absolute board cell with the color drawn there.
type CellColor struct {
	X, Y  int
	Color ColorID
}

// Snapshot is a self-contained copy of everything a renderer needs.
// Mutating it never affects the game.
type Snapshot struct {
	Width          int
	Height         int
	Cells          [][]ColorID // settled cells, top row first
	Active         []CellColor // falling piece cells, may include y < 0
	ActiveKind     Kind
	Score          int
	Lines          int
	Pieces         int
	TickIntervalMs int
	Phase          Phase
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	cells := g.active.Cells()
	active := make([]CellColor, len(cells))
	for i, c := range cells {
		active[i] = CellColor{X: c.X, Y: c.Y, Color: g.active.Color}
	}

	return Snapshot{
		Width:          g.board.Width(),
		Height:         g.board.Height(),
		Cells:          g.board.Rows(),
		Active:         active,
		ActiveKind:     g.active.Kind,
		Score:          g.score,
		Lines:          g.lines,
		Pieces:         g.pieces,
		TickIntervalMs: int(g.speed.Interval().Milliseconds()),
		Phase:          g.phase,
	}
}

// Composite returns the settled cells with the active piece drawn on top.
// Piece cells above the board are dropped.
func (s Snapshot) Composite() [][]ColorID {
	out := make([][]ColorID, len(s.Cells))
	for y := range s.Cells {
		out[y] = make([]ColorID, len(s.Cells[y]))
		copy(out[y], s.Cells[y])
	}
	for _, c := range s.Active {
		if c.Y >= 0 && c.Y < len(out) && c.X >= 0 && c.X < len(out[c.Y]) {
			out[c.Y][c.X] = c.Color
		}
	}
	return out
}
