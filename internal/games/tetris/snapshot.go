package tetris

// PieceSnapshot captures the active piece.
type PieceSnapshot struct {
	Kind     Kind
	X, Y     int
	Rotation int
}

// Snapshot captures the complete session state for determinism testing.
type Snapshot struct {
	Tick  uint64
	State State
	Score int
	Lines int
	Piece *PieceSnapshot // nil when no piece is falling
	Grid  string         // Grid.String() of the locked cells
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:  s.tick,
		State: s.state,
		Score: s.score,
		Lines: s.lines,
		Grid:  s.grid.String(),
	}
	if s.active != nil {
		snap.Piece = &PieceSnapshot{
			Kind:     s.active.Kind(),
			X:        s.active.X(),
			Y:        s.active.Y(),
			Rotation: s.active.Rotation(),
		}
	}
	return snap
}
