package engine

// spawn places a random catalog piece centered on the top row. A spawn that
// already collides ends the session.
func (g *Game) spawn() {
	e := g.catalog.RandomShape()
	g.active = Piece{
		Kind:  e.Kind,
		Shape: e.Shape,
		X:     (g.board.Width() - e.Shape.Cols()) / 2,
		Y:     0,
		Color: e.Color,
	}
	if g.board.Collides(g.active) {
		g.phase = PhaseGameOver
	}
}

// TryMove translates the active piece by (dx, dy) if the target is free.
// A blocked downward move locks the piece instead; blocked sideways or upward
// moves are simply rejected. The result reports whether the move itself was
// applied, not whether a lock happened.
func (g *Game) TryMove(dx, dy int) bool {
	if g.phase != PhaseRunning {
		return false
	}

	candidate := g.active.Moved(dx, dy)
	if !g.board.Collides(candidate) {
		g.active = candidate
		return true
	}
	if dy > 0 {
		g.lock()
	}
	return false
}

// Rotate turns the active piece clockwise in place. There is no wall kick:
// if the rotated shape collides the rotation is dropped.
func (g *Game) Rotate() bool {
	if g.phase != PhaseRunning {
		return false
	}

	candidate := g.active.Rotated()
	if g.board.Collides(candidate) {
		return false
	}
	g.active = candidate
	return true
}

// lock merges the active piece, clears rows, scores them, speeds up gravity
// and spawns the next piece.
func (g *Game) lock() {
	g.board.Merge(g.active)
	g.pieces++

	cleared := g.board.ClearLines()
	g.lines += cleared
	g.score += cleared * g.cfg.PointsPerLine

	// Stepped even when the next spawn tops out.
	g.speed.OnLock()
	g.spawn()
}
