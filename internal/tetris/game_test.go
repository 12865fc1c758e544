package tetris

import (
	"testing"

	"github.com/akarpov/termtris/internal/core"
)

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func newPlayingGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24})

	if g.Phase() != StateStart {
		t.Fatalf("fresh game phase = %v, expected start", g.Phase())
	}
	g.Step(frame(core.ActionConfirm))
	if g.Phase() != StatePlay {
		t.Fatalf("phase after start = %v, expected play", g.Phase())
	}
	return g
}

func TestStateMachineTransitions(t *testing.T) {
	g := newPlayingGame(t, 1)

	// Play -> Pause -> Play.
	g.Step(frame(core.ActionPause))
	if g.Phase() != StatePause {
		t.Fatalf("phase after pause = %v, expected pause", g.Phase())
	}
	res := g.Step(frame(core.ActionConfirm))
	if g.Phase() != StatePlay || res.State.Paused {
		t.Fatalf("phase after unpause = %v, expected play", g.Phase())
	}

	// Quit is honored from any state.
	g.Step(frame(core.ActionQuit))
	if g.Phase() != StateClosed {
		t.Fatalf("phase after quit = %v, expected closed", g.Phase())
	}
}

func TestStepAfterClosedPanics(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24})
	g.Step(frame(core.ActionQuit))

	defer func() {
		if recover() == nil {
			t.Error("Step on a closed game should panic")
		}
	}()
	g.Step(frame())
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and input script stay identical.
	script := func(tick int) core.InputFrame {
		switch {
		case tick == 0:
			return frame(core.ActionConfirm)
		case tick%97 == 5:
			return frame(core.ActionLeft)
		case tick%89 == 7:
			return frame(core.ActionRotateCW)
		case tick%131 == 11:
			return frame(core.ActionHardDrop)
		case tick%53 == 13:
			return frame(core.ActionRight)
		default:
			return frame()
		}
	}

	g1 := New()
	g2 := New()
	cfg := core.RuntimeConfig{Seed: 12345, ScreenW: 80, ScreenH: 24}
	g1.Reset(cfg)
	g2.Reset(cfg)

	for tick := 0; tick < 600; tick++ {
		if g1.Phase() == StateOver {
			break
		}
		g1.Step(script(tick))
		g2.Step(script(tick))
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("same-seed games diverged:\n%+v\nvs\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestMoveAppliesOnlyWhenLegal(t *testing.T) {
	g := newPlayingGame(t, 2)
	g.piece = PieceO
	g.rot = Deg0
	g.anchor = point{X: 0, Y: 5} // O offsets {0,1} touch the left wall

	g.Step(frame(core.ActionLeft))
	if g.anchor.X != 0 {
		t.Errorf("blocked left move changed anchor to %d", g.anchor.X)
	}

	g.Step(frame(core.ActionRight))
	if g.anchor.X != 1 {
		t.Errorf("legal right move: anchor = %d, expected 1", g.anchor.X)
	}
}

func TestBlockedMoveFallsThroughPriorityOrder(t *testing.T) {
	g := newPlayingGame(t, 2)
	g.piece = PieceO
	g.rot = Deg0
	g.anchor = point{X: 0, Y: 5}

	// Left is blocked by the wall, so the lower-priority right applies.
	g.Step(frame(core.ActionLeft, core.ActionRight))
	if g.anchor.X != 1 {
		t.Errorf("anchor = %d, expected right move to apply at 1", g.anchor.X)
	}
}

func TestTakenActionSkipsGravity(t *testing.T) {
	g := newPlayingGame(t, 3)
	g.piece = PieceO
	g.rot = Deg0
	g.anchor = point{X: 4, Y: 5}
	g.fallTick = g.level.TickInterval() - 1

	g.Step(frame(core.ActionLeft))
	if g.anchor.Y != 5 {
		t.Error("a taken discrete action must skip the automatic fall")
	}
	if g.fallTick != g.level.TickInterval()-1 {
		t.Errorf("fall timer = %d, expected unchanged", g.fallTick)
	}

	// The very next empty frame triggers the descent.
	g.Step(frame())
	if g.anchor.Y != 6 {
		t.Errorf("anchor.Y = %d, expected gravity descent to 6", g.anchor.Y)
	}
	if g.fallTick != 0 {
		t.Errorf("fall timer = %d, expected reset after descent", g.fallTick)
	}
}

func TestGravityDescendsAtTickInterval(t *testing.T) {
	g := newPlayingGame(t, 4)
	g.piece = PieceT
	g.rot = Deg0
	g.anchor = point{X: 5, Y: 1}

	interval := g.level.TickInterval()
	for i := 0; i < interval-1; i++ {
		g.Step(frame())
	}
	if g.anchor.Y != 1 {
		t.Fatalf("piece descended early at fall tick %d", g.fallTick)
	}

	g.Step(frame())
	if g.anchor.Y != 2 {
		t.Errorf("anchor.Y = %d, expected 2 after %d frames", g.anchor.Y, interval)
	}
}

func TestSoftDropDescendsAndResetsTimer(t *testing.T) {
	g := newPlayingGame(t, 5)
	g.piece = PieceT
	g.anchor = point{X: 5, Y: 5}
	g.fallTick = 17

	g.Step(frame(core.ActionSoftDrop))
	if g.anchor.Y != 6 {
		t.Errorf("anchor.Y = %d, expected 6", g.anchor.Y)
	}
	if g.fallTick != 0 {
		t.Errorf("fall timer = %d, expected 0 after soft drop", g.fallTick)
	}
}

func TestSoftDropOnFloorLocks(t *testing.T) {
	g := newPlayingGame(t, 6)
	g.piece = PieceO
	g.rot = Deg0
	g.anchor = point{X: 0, Y: Height - 2} // resting on the floor

	g.Step(frame(core.ActionSoftDrop))

	if g.grid.At(0, Height-1) != PieceO || g.grid.At(1, Height-2) != PieceO {
		t.Error("soft drop on the floor should lock the piece in place")
	}
	if g.anchor != spawnAnchor() {
		t.Errorf("anchor = %+v, expected spawn reset", g.anchor)
	}
	if g.level.PieceCount() != 1 {
		t.Errorf("piece count = %d, expected 1 after lock", g.level.PieceCount())
	}
	if g.fallTick != 0 {
		t.Error("fall timer should reset after lock")
	}
}

func TestHardDropLocksAtGhostPosition(t *testing.T) {
	g := newPlayingGame(t, 7)
	g.piece = PieceO
	g.rot = Deg0
	g.anchor = point{X: 3, Y: 1}

	want := g.GhostOffset()
	if want == 0 {
		t.Fatal("expected a positive ghost offset on an empty field")
	}

	g.Step(frame(core.ActionHardDrop))

	if g.grid.At(3, Height-1) != PieceO {
		t.Error("hard drop should lock at the bottom")
	}
	if g.level.PieceCount() != 1 {
		t.Error("hard drop should complete the lock sequence")
	}
}

func TestGhostOffsetProbesCollision(t *testing.T) {
	g := newPlayingGame(t, 8)
	g.piece = PieceO
	g.rot = Deg0
	g.anchor = point{X: 0, Y: 1}

	// O occupies rows y and y+1; the floor stops it at y = Height-2.
	if got := g.GhostOffset(); got != Height-3 {
		t.Errorf("GhostOffset = %d, expected %d", got, Height-3)
	}

	// A locked obstacle shortens the drop.
	g.grid.set(0, 10, PieceZ)
	if got := g.GhostOffset(); got != 7 {
		t.Errorf("GhostOffset above obstacle = %d, expected 7", got)
	}
}

func TestWallKickSearchOrderIsDeterministic(t *testing.T) {
	g := newPlayingGame(t, 9)
	g.piece = PieceT
	g.rot = Deg0
	g.anchor = point{X: 5, Y: 5}

	// Target 90° occupies (x, y-1), (x, y), (x+1, y), (x, y+1). Occupy
	// (6, 5) so offset 0 is blocked while both −1 and +1 stay legal: the
	// search must settle on −1, never +1.
	g.grid.set(6, 5, PieceZ)

	g.Step(frame(core.ActionRotateCW))
	if g.rot != Deg90 {
		t.Fatalf("rotation = %v, expected 90°", g.rot)
	}
	if g.anchor.X != 4 {
		t.Errorf("anchor.X = %d, expected kick to -1 (column 4)", g.anchor.X)
	}
}

func TestRotationRejectedWhenAllKicksBlocked(t *testing.T) {
	g := newPlayingGame(t, 10)
	g.piece = PieceI
	g.rot = Deg90 // vertical
	g.anchor = point{X: 5, Y: 5}

	// Wall off every horizontal landing spot for all kick offsets.
	for x := 0; x < Width; x++ {
		if x != 5 {
			g.grid.set(x, 5, PieceZ)
		}
	}

	g.Step(frame(core.ActionRotateCW))
	if g.rot != Deg90 {
		t.Errorf("rotation = %v, expected unchanged 90°", g.rot)
	}
	if g.anchor.X != 5 {
		t.Errorf("anchor.X = %d, expected unchanged 5", g.anchor.X)
	}
}

func TestHoldOncePerPieceLifetime(t *testing.T) {
	g := newPlayingGame(t, 11)
	first := g.piece
	second := g.next

	// First hold on an empty slot consumes the next-queue piece.
	g.Step(frame(core.ActionHold))
	if g.hold != first {
		t.Fatalf("hold = %v, expected %v", g.hold, first)
	}
	if g.piece != second {
		t.Fatalf("active = %v, expected promoted next piece %v", g.piece, second)
	}
	if g.anchor != spawnAnchor() || g.rot != Deg0 {
		t.Error("hold must reset anchor and rotation to spawn defaults")
	}

	// Second hold before the next lock has no effect.
	prevActive, prevHold := g.piece, g.hold
	g.Step(frame(core.ActionHold))
	if g.piece != prevActive || g.hold != prevHold {
		t.Error("second hold before a lock must be ignored")
	}

	// After a lock the hold becomes available again and swaps.
	g.Step(frame(core.ActionHardDrop))
	active := g.piece
	held := g.hold
	g.Step(frame(core.ActionHold))
	if g.piece != held || g.hold != active {
		t.Error("hold after a lock should swap the active and held pieces")
	}
}

func TestSpawnBlockedTransitionsToOver(t *testing.T) {
	g := newPlayingGame(t, 12)
	g.piece = PieceO
	g.rot = Deg0
	g.anchor = point{X: 0, Y: 5}
	g.next = PieceO

	// Occupy one cell of the next piece's spawn footprint.
	spawn := spawnAnchor()
	g.grid.set(spawn.X, spawn.Y+1, PieceZ)

	g.Step(frame(core.ActionHardDrop))
	if g.Phase() != StateOver {
		t.Fatalf("phase = %v, expected over when the spawn is blocked", g.Phase())
	}

	// Restart builds a brand-new session.
	g.Step(frame(core.ActionConfirm))
	if g.Phase() != StatePlay {
		t.Fatalf("phase after restart = %v, expected play", g.Phase())
	}
	if g.Score() != 0 || g.level.PieceCount() != 0 || g.hold != PieceNone {
		t.Error("restart must reset score, level and hold slot")
	}
	for y := 0; y < Height; y++ {
		if !rowEmpty(g.grid, y) {
			t.Fatalf("restart must clear the playfield, row %d is not empty", y)
		}
	}
}

func TestTwoRowClearScoresFifteen(t *testing.T) {
	g := newPlayingGame(t, 13)

	// Pre-fill the bottom two rows except the leftmost two columns, then
	// drop an O flat into the gap: both rows complete at once.
	for y := Height - 2; y < Height; y++ {
		for x := 2; x < Width; x++ {
			g.grid.set(x, y, PieceL)
		}
	}
	g.grid.set(4, Height-3, PieceT) // survivor above the clear region
	g.piece = PieceO
	g.rot = Deg0
	g.anchor = point{X: 0, Y: 1}

	g.Step(frame(core.ActionHardDrop))

	if g.Score() != 15 {
		t.Errorf("score = %d, expected exactly 15 for a double clear", g.Score())
	}
	if g.grid.At(4, Height-1) != PieceT {
		t.Error("survivor above the clears should shift down by 2 rows")
	}
	if !rowEmpty(g.grid, Height-2) || !rowEmpty(g.grid, Height-3) {
		t.Error("rows above the shifted survivor should be empty")
	}
}

func TestScoreIsMonotonic(t *testing.T) {
	g := newPlayingGame(t, 14)

	prev := g.Score()
	for i := 0; i < 400 && g.Phase() == StatePlay; i++ {
		g.Step(frame(core.ActionHardDrop))
		if g.Score() < prev {
			t.Fatalf("score decreased from %d to %d", prev, g.Score())
		}
		prev = g.Score()
	}
}

func TestRenderFitsDefaultTerminal(t *testing.T) {
	g := newPlayingGame(t, 15)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	if screen.String() == "" {
		t.Fatal("render produced an empty screen")
	}
	// The well border must be visible on a default 80x24 terminal.
	found := false
	for y := 0; y < screen.Height() && !found; y++ {
		for x := 0; x < screen.Width(); x++ {
			if screen.Get(x, y) == '┌' {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("expected the well border on an 80x24 screen")
	}
}
