// Package tetris implements the falling-block game: piece geometry, the
// playfield with collision and line-clear rules, level progression, and the
// game state machine. It depends only on internal/core so the whole engine
// stays deterministic and testable without a terminal.
package tetris

import (
	"math/rand"

	"github.com/akarpov/termtris/internal/core"
)

// Piece identifies one of the seven tetromino shapes.
type Piece int8

// PieceNone marks an empty hold slot or an empty grid cell.
const PieceNone Piece = -1

const (
	PieceI Piece = iota
	PieceO
	PieceT
	PieceJ
	PieceL
	PieceS
	PieceZ
)

// allPieces is the tagged-variant set used for uniform random selection.
var allPieces = [...]Piece{PieceI, PieceO, PieceT, PieceJ, PieceL, PieceS, PieceZ}

func (p Piece) String() string {
	switch p {
	case PieceI:
		return "I"
	case PieceO:
		return "O"
	case PieceT:
		return "T"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	case PieceS:
		return "S"
	case PieceZ:
		return "Z"
	case PieceNone:
		return "-"
	default:
		return "?"
	}
}

// Offset is a cell position relative to a piece's anchor.
type Offset struct {
	DX, DY int
}

// Blocks returns the four occupied cells of the piece in the given
// orientation, relative to its anchor. Pure static lookup; I, S and Z share
// offset sets between their visually identical orientation pairs and O is
// rotation-invariant.
func (p Piece) Blocks(rot Rotation) [4]Offset {
	switch p {
	case PieceI:
		if rot == Deg0 || rot == Deg180 {
			return [4]Offset{{-1, 0}, {0, 0}, {1, 0}, {2, 0}}
		}
		return [4]Offset{{0, -1}, {0, 0}, {0, 1}, {0, 2}}
	case PieceO:
		return [4]Offset{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	case PieceT:
		switch rot {
		case Deg0:
			return [4]Offset{{0, -1}, {-1, 0}, {0, 0}, {1, 0}}
		case Deg90:
			return [4]Offset{{0, -1}, {0, 0}, {1, 0}, {0, 1}}
		case Deg180:
			return [4]Offset{{-1, 0}, {0, 0}, {1, 0}, {0, 1}}
		default:
			return [4]Offset{{0, -1}, {-1, 0}, {0, 0}, {0, 1}}
		}
	case PieceJ:
		switch rot {
		case Deg0:
			return [4]Offset{{0, -1}, {0, 0}, {-1, 1}, {0, 1}}
		case Deg90:
			return [4]Offset{{-1, -1}, {-1, 0}, {0, 0}, {1, 0}}
		case Deg180:
			return [4]Offset{{0, -1}, {1, -1}, {0, 0}, {0, 1}}
		default:
			return [4]Offset{{-1, 0}, {0, 0}, {1, 0}, {1, 1}}
		}
	case PieceL:
		switch rot {
		case Deg0:
			return [4]Offset{{0, -1}, {0, 0}, {0, 1}, {1, 1}}
		case Deg90:
			return [4]Offset{{-1, 0}, {0, 0}, {1, 0}, {-1, 1}}
		case Deg180:
			return [4]Offset{{-1, -1}, {0, -1}, {0, 0}, {0, 1}}
		default:
			return [4]Offset{{1, -1}, {-1, 0}, {0, 0}, {1, 0}}
		}
	case PieceS:
		if rot == Deg0 || rot == Deg180 {
			return [4]Offset{{0, 0}, {1, 0}, {-1, 1}, {0, 1}}
		}
		return [4]Offset{{0, -1}, {0, 0}, {1, 0}, {1, 1}}
	case PieceZ:
		if rot == Deg0 || rot == Deg180 {
			return [4]Offset{{-1, 0}, {0, 0}, {0, 1}, {1, 1}}
		}
		return [4]Offset{{0, -1}, {-1, 0}, {0, 0}, {-1, 1}}
	default:
		panic("tetris: Blocks called on invalid piece")
	}
}

// Color returns the fill color of the piece.
func (p Piece) Color() core.Color {
	switch p {
	case PieceI:
		return core.ColorCyan
	case PieceO:
		return core.ColorYellow
	case PieceT:
		return core.ColorMagenta
	case PieceJ:
		return core.ColorBlue
	case PieceL:
		return core.ColorOrange
	case PieceS:
		return core.ColorGreen
	case PieceZ:
		return core.ColorRed
	default:
		return core.ColorDefault
	}
}

// GhostColor returns the translucent counterpart of the fill color, used for
// the hard-drop landing preview.
func (p Piece) GhostColor() core.Color {
	switch p {
	case PieceI:
		return core.ColorDimCyan
	case PieceO:
		return core.ColorDimYellow
	case PieceT:
		return core.ColorDimMagenta
	case PieceJ:
		return core.ColorDimBlue
	case PieceL:
		return core.ColorDimOrange
	case PieceS:
		return core.ColorDimGreen
	case PieceZ:
		return core.ColorDimRed
	default:
		return core.ColorDefault
	}
}

// randomPiece draws a shape uniformly from the seven named variants.
func randomPiece(rng *rand.Rand) Piece {
	return allPieces[rng.Intn(len(allPieces))]
}
