package tetris

import "testing"

// fillRow fills every cell of row y with the given piece identity.
func fillRow(g *Grid, y int, p Piece) {
	for x := 0; x < Width; x++ {
		g.set(x, y, p)
	}
}

// rowAsPieces returns row y as a slice for comparison.
func rowAsPieces(g *Grid, y int) []Piece {
	row := make([]Piece, Width)
	for x := 0; x < Width; x++ {
		row[x] = g.At(x, y)
	}
	return row
}

func rowEmpty(g *Grid, y int) bool {
	for x := 0; x < Width; x++ {
		if g.At(x, y) != PieceNone {
			return false
		}
	}
	return true
}

func TestGridStartsEmpty(t *testing.T) {
	g := NewGrid()
	for y := 0; y < Height; y++ {
		if !rowEmpty(g, y) {
			t.Errorf("new grid row %d should be empty", y)
		}
	}
}

func TestGridOutOfBoundsPanics(t *testing.T) {
	g := NewGrid()

	cases := [][2]int{{-1, 0}, {Width, 0}, {0, -1}, {0, Height}}
	for _, c := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("At(%d, %d) should panic", c[0], c[1])
				}
			}()
			g.At(c[0], c[1])
		}()
	}
}

func TestFitsBoundsAndOccupancy(t *testing.T) {
	g := NewGrid()

	// O-piece at the left wall: anchor column 0 keeps offsets {0,1} inside.
	if !g.Fits(PieceO, Deg0, 0, 0, 0, 0) {
		t.Error("O at the left wall should fit")
	}
	if g.Fits(PieceO, Deg0, 0, 0, -1, 0) {
		t.Error("O translated past the left wall should not fit")
	}

	// Bottom boundary: O occupies rows y and y+1.
	if !g.Fits(PieceO, Deg0, 0, Height-2, 0, 0) {
		t.Error("O resting on the floor should fit")
	}
	if g.Fits(PieceO, Deg0, 0, Height-2, 0, 1) {
		t.Error("O pushed through the floor should not fit")
	}

	// Occupied cells block placement.
	g.set(1, 5, PieceT)
	if g.Fits(PieceO, Deg0, 0, 5, 0, 0) {
		t.Error("O overlapping an occupied cell should not fit")
	}
	if !g.Fits(PieceO, Deg0, 2, 5, 0, 0) {
		t.Error("O next to the occupied cell should fit")
	}
}

func TestLockWritesIdentity(t *testing.T) {
	g := NewGrid()
	g.Lock(PieceT, Deg0, 5, 10)

	for _, off := range PieceT.Blocks(Deg0) {
		if got := g.At(5+off.DX, 10+off.DY); got != PieceT {
			t.Errorf("cell (%d, %d) = %v, expected T", 5+off.DX, 10+off.DY, got)
		}
	}
}

func TestSquashNoFilledRows(t *testing.T) {
	g := NewGrid()
	g.set(0, Height-1, PieceI) // partially filled bottom row

	if got := g.SquashFilledRows(); got != 0 {
		t.Errorf("SquashFilledRows on no filled rows = %d, expected 0", got)
	}
	if g.At(0, Height-1) != PieceI {
		t.Error("partial rows must be untouched")
	}
}

func TestSquashBottomContiguous(t *testing.T) {
	g := NewGrid()
	fillRow(g, Height-1, PieceI)
	fillRow(g, Height-2, PieceO)
	g.set(3, Height-3, PieceT) // survivor above the clears

	if got := g.SquashFilledRows(); got != 2 {
		t.Fatalf("cleared = %d, expected 2", got)
	}

	// Survivor shifted down by exactly the clear count.
	if g.At(3, Height-1) != PieceT {
		t.Error("surviving cell should shift down by 2 rows")
	}
	if !rowEmpty(g, Height-2) || !rowEmpty(g, Height-3) {
		t.Error("freed rows should be empty")
	}
}

func TestSquashNonContiguousPreservesOrder(t *testing.T) {
	g := NewGrid()

	// Filled rows at depths 3 and 7 with distinct survivors between them.
	fillRow(g, Height-3, PieceI)
	fillRow(g, Height-7, PieceO)
	g.set(0, Height-4, PieceT) // between the two filled rows
	g.set(0, Height-5, PieceJ)
	g.set(0, Height-8, PieceS) // above both filled rows
	g.set(0, Height-1, PieceZ) // below the lowest clear: untouched
	below := rowAsPieces(g, Height-1)

	if got := g.SquashFilledRows(); got != 2 {
		t.Fatalf("cleared = %d, expected 2", got)
	}

	// Below the lowest clear: identical.
	got := rowAsPieces(g, Height-1)
	for x := range got {
		if got[x] != below[x] {
			t.Fatalf("row below the clears changed at column %d", x)
		}
	}

	// Rows between the clears shift by one (one clear below them),
	// rows above both clears shift by two; relative order preserved.
	if g.At(0, Height-3) != PieceT || g.At(0, Height-4) != PieceJ {
		t.Error("rows between the clears should shift down by 1, in order")
	}
	if g.At(0, Height-6) != PieceS {
		t.Error("rows above both clears should shift down by 2")
	}
}

func TestSquashIsIdempotent(t *testing.T) {
	g := NewGrid()
	fillRow(g, Height-1, PieceI)
	fillRow(g, Height-4, PieceO)
	g.set(2, Height-2, PieceT)

	first := g.SquashFilledRows()
	if first != 2 {
		t.Fatalf("first squash = %d, expected 2", first)
	}
	if again := g.SquashFilledRows(); again != 0 {
		t.Errorf("second squash = %d, expected 0 (idempotent without new locks)", again)
	}
}

func TestSquashAllFourRows(t *testing.T) {
	g := NewGrid()
	for i := 1; i <= 4; i++ {
		fillRow(g, Height-i, PieceL)
	}

	if got := g.SquashFilledRows(); got != 4 {
		t.Errorf("cleared = %d, expected 4", got)
	}
	for y := 0; y < Height; y++ {
		if !rowEmpty(g, y) {
			t.Errorf("row %d should be empty after clearing everything", y)
		}
	}
}

func TestScoreForRowsTable(t *testing.T) {
	want := map[int]int{0: 0, 1: 5, 2: 15, 3: 30, 4: 50}
	for rows, score := range want {
		if got := ScoreForRows(rows); got != score {
			t.Errorf("ScoreForRows(%d) = %d, expected %d", rows, got, score)
		}
	}
}

func TestScoreForRowsPanicsAboveFour(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("ScoreForRows(5) should panic: impossible after a single lock")
		}
	}()
	ScoreForRows(5)
}
