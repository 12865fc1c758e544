package tetris

// Snapshot captures the complete observable game state for one frame. The
// presentation layer reads it after Step; tests use it for determinism
// verification. The cell matrix is a copy, so holding a Snapshot never
// aliases live game state.
type Snapshot struct {
	State State

	Cells [Height][Width]Cell

	Piece       Piece
	Rot         Rotation
	AnchorX     int
	AnchorY     int
	GhostOffset int // rows to the hard-drop landing position

	Hold Piece // PieceNone while the slot is empty
	Next Piece

	Score        int
	PieceCount   int
	TickInterval int
}

// Snapshot returns the current frame's read-only view of the game.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		State:        g.state,
		Cells:        g.grid.cells,
		Piece:        g.piece,
		Rot:          g.rot,
		AnchorX:      g.anchor.X,
		AnchorY:      g.anchor.Y,
		GhostOffset:  g.GhostOffset(),
		Hold:         g.hold,
		Next:         g.next,
		Score:        g.score,
		PieceCount:   g.level.PieceCount(),
		TickInterval: g.level.TickInterval(),
	}
}
