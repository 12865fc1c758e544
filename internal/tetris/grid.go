package tetris

import "fmt"

// Playfield dimensions, fixed by the rules.
const (
	Width  = 10
	Height = 22
)

// Cell is one playfield slot: PieceNone when empty, otherwise the identity
// of the locked piece occupying it (used only for color at render time).
type Cell = Piece

// Grid is the fixed-size playfield. Row 0 is the top. All coordinate access
// is bounds-checked; going out of range is a programming error and panics
// rather than clamping.
type Grid struct {
	cells [Height][Width]Cell
}

// NewGrid returns an empty playfield.
func NewGrid() *Grid {
	g := &Grid{}
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = PieceNone
		}
	}
	return g
}

func checkBounds(x, y int) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		panic(fmt.Sprintf("tetris: grid access out of bounds: (%d, %d)", x, y))
	}
}

// At returns the cell at (x, y). Panics on out-of-range coordinates.
func (g *Grid) At(x, y int) Cell {
	checkBounds(x, y)
	return g.cells[y][x]
}

func (g *Grid) set(x, y int, c Cell) {
	checkBounds(x, y)
	g.cells[y][x] = c
}

// Fits reports whether the piece in the given orientation, anchored at
// (x, y) and translated by (dx, dy), lies fully inside the playfield with
// all four of its cells empty. This is the sole collision primitive: moves,
// rotations, gravity, ghost projection and spawn checks all route through it.
func (g *Grid) Fits(p Piece, rot Rotation, x, y, dx, dy int) bool {
	for _, off := range p.Blocks(rot) {
		cx := x + off.DX + dx
		cy := y + off.DY + dy
		if cx < 0 || cx >= Width || cy < 0 || cy >= Height {
			return false
		}
		if g.cells[cy][cx] != PieceNone {
			return false
		}
	}
	return true
}

// Lock writes the piece's identity into its four occupied cells. The caller
// guarantees the placement is legal; out-of-range cells panic.
func (g *Grid) Lock(p Piece, rot Rotation, x, y int) {
	for _, off := range p.Blocks(rot) {
		g.set(x+off.DX, y+off.DY, p)
	}
}

// SquashFilledRows removes every completely filled row and shifts all rows
// above downward by the number of removals below them, preserving the
// relative order of surviving rows. Freed rows at the top become empty.
// Returns the number of rows cleared.
//
// Single bottom-up pass with a write pointer: runs on every lock, so no
// intermediate allocation.
func (g *Grid) SquashFilledRows() int {
	write := Height - 1
	cleared := 0

	for y := Height - 1; y >= 0; y-- {
		if g.rowFilled(y) {
			cleared++
			continue
		}
		if write != y {
			g.cells[write] = g.cells[y]
		}
		write--
	}

	for y := write; y >= 0; y-- {
		for x := 0; x < Width; x++ {
			g.cells[y][x] = PieceNone
		}
	}

	return cleared
}

func (g *Grid) rowFilled(y int) bool {
	for x := 0; x < Width; x++ {
		if g.cells[y][x] == PieceNone {
			return false
		}
	}
	return true
}

// ScoreForRows maps a single lock's cleared-row count to its score
// contribution. Multi-line clears earn a super-linear bonus. A count above
// four cannot result from locking one piece; observing it means a broken
// invariant, so it panics.
func ScoreForRows(rows int) int {
	switch rows {
	case 0:
		return 0
	case 1:
		return 5
	case 2:
		return 15
	case 3:
		return 30
	case 4:
		return 50
	default:
		panic(fmt.Sprintf("tetris: impossible clear count %d from a single lock", rows))
	}
}
