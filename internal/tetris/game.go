package tetris

import (
	"math/rand"

	"github.com/akarpov/termtris/internal/core"
)

// State is the top-level game state.
type State int8

const (
	StateStart State = iota // title overlay, waiting for start input
	StatePlay
	StatePause
	StateOver
	StateClosed // terminal; Step must not be called again
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlay:
		return "play"
	case StatePause:
		return "pause"
	case StateOver:
		return "over"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// wallKicks is the anchor-column offset search order tried when a rotation
// is blocked in place. Deliberately simpler than standard kick tables (no
// floor kicks, no per-shape tables); the order is part of the contract.
var wallKicks = [...]int{0, -1, 1, -2, 2}

// point is a playfield coordinate: x is the column, y the row (0 = top).
type point struct {
	X, Y int
}

func spawnAnchor() point {
	return point{X: Width / 2, Y: 1}
}

// Game orchestrates the active piece, hold slot, next queue, fall timer,
// level and score. It is the sole mutator of the Grid and the Level.
type Game struct {
	state State
	grid  *Grid

	piece   Piece
	rot     Rotation
	anchor  point
	hold    Piece // PieceNone while the slot is empty
	swapped bool  // hold already used for the current piece
	next    Piece

	level    *Level
	fallTick int
	score    int

	rng *rand.Rand
}

// New creates a game in the Start state. Call Reset before stepping.
func New() *Game {
	return &Game{state: StateStart, hold: PieceNone}
}

// ID returns the game identifier used for score storage.
func (g *Game) ID() string {
	return "termtris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Termtris"
}

// Reset initializes or restarts the whole session: fresh playfield, score,
// level, active/next pieces and an empty hold slot.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.restart()
	g.state = StateStart
}

// restart rebuilds the session state but keeps the RNG stream, so a seeded
// session stays reproducible across restarts.
func (g *Game) restart() {
	g.grid = NewGrid()
	g.piece = randomPiece(g.rng)
	g.next = randomPiece(g.rng)
	g.rot = Deg0
	g.anchor = spawnAnchor()
	g.hold = PieceNone
	g.swapped = false
	g.level = NewLevel()
	g.fallTick = 0
	g.score = 0
}

// Step advances the game by one frame. Input carries the debounced logical
// actions registered for this frame. Calling Step after the game reached
// StateClosed is a contract violation and panics.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.state {
	case StateStart:
		if in.Has(core.ActionQuit) {
			g.state = StateClosed
		} else if in.Has(core.ActionConfirm) {
			g.state = StatePlay
		}

	case StatePlay:
		g.stepPlay(in)

	case StatePause:
		if in.Has(core.ActionQuit) {
			g.state = StateClosed
		} else if in.Has(core.ActionConfirm) || in.Has(core.ActionPause) {
			g.state = StatePlay
		}

	case StateOver:
		if in.Has(core.ActionQuit) {
			g.state = StateClosed
		} else if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			g.restart()
			g.state = StatePlay
		}

	case StateClosed:
		panic("tetris: Step called on a closed game")
	}

	return core.StepResult{State: g.gameState()}
}

// stepPlay runs one frame of active play: pause first, then at most one
// discrete action, then gravity if no action consumed the frame.
func (g *Game) stepPlay(in core.InputFrame) {
	if in.Has(core.ActionQuit) {
		g.state = StateClosed
		return
	}
	if in.Has(core.ActionPause) {
		g.state = StatePause
		return
	}

	if g.handleAction(in) {
		return
	}

	g.fallTick++
	if g.fallTick >= g.level.TickInterval() {
		if g.grid.Fits(g.piece, g.rot, g.anchor.X, g.anchor.Y, 0, 1) {
			g.anchor.Y++
			g.fallTick = 0
		} else {
			g.lockPiece()
		}
	}
}

// handleAction applies at most one discrete action, checked in priority
// order. Returns true if an action consumed the frame (skipping gravity).
// Blocked moves are not taken, so a later action in the order may still
// apply the same frame; a rotation with no legal kick is rejected silently.
func (g *Game) handleAction(in core.InputFrame) bool {
	switch {
	case in.Has(core.ActionLeft) && g.grid.Fits(g.piece, g.rot, g.anchor.X, g.anchor.Y, -1, 0):
		g.anchor.X--
		return true

	case in.Has(core.ActionRight) && g.grid.Fits(g.piece, g.rot, g.anchor.X, g.anchor.Y, 1, 0):
		g.anchor.X++
		return true

	case in.Has(core.ActionSoftDrop):
		if g.grid.Fits(g.piece, g.rot, g.anchor.X, g.anchor.Y, 0, 1) {
			g.anchor.Y++
			g.fallTick = 0
		} else {
			g.lockPiece()
		}
		return true

	case in.Has(core.ActionHardDrop):
		for g.grid.Fits(g.piece, g.rot, g.anchor.X, g.anchor.Y, 0, 1) {
			g.anchor.Y++
		}
		g.lockPiece()
		return true

	case in.Has(core.ActionRotateCW):
		return g.tryRotate(g.rot.SpinCW())

	case in.Has(core.ActionRotateCCW):
		return g.tryRotate(g.rot.SpinCCW())

	case in.Has(core.ActionHold) && !g.swapped:
		g.holdSwap()
		return true
	}
	return false
}

// tryRotate attempts the target orientation at each wall-kick offset in
// order, applying the first legal one. Returns false if every offset is
// blocked; the piece is left untouched.
func (g *Game) tryRotate(target Rotation) bool {
	for _, dx := range wallKicks {
		if g.grid.Fits(g.piece, target, g.anchor.X, g.anchor.Y, dx, 0) {
			g.anchor.X += dx
			g.rot = target
			return true
		}
	}
	return false
}

// holdSwap stashes the active piece, activating the held piece if the slot
// was occupied or the next-queue piece otherwise. Permitted once per piece
// lifetime; the guard resets at lock.
func (g *Game) holdSwap() {
	if g.hold == PieceNone {
		g.hold = g.piece
		g.piece = g.next
		g.next = randomPiece(g.rng)
	} else {
		g.hold, g.piece = g.piece, g.hold
	}
	g.anchor = spawnAnchor()
	g.rot = Deg0
	g.swapped = true
}

// lockPiece writes the active piece into the grid, scores any cleared rows,
// and spawns the next piece, or ends the game if the spawn cell is blocked.
func (g *Game) lockPiece() {
	g.grid.Lock(g.piece, g.rot, g.anchor.X, g.anchor.Y)
	g.score += ScoreForRows(g.grid.SquashFilledRows())

	g.anchor = spawnAnchor()
	if !g.grid.Fits(g.next, Deg0, g.anchor.X, g.anchor.Y, 0, 0) {
		g.state = StateOver
		return
	}

	g.piece = g.next
	g.next = randomPiece(g.rng)
	g.rot = Deg0
	g.swapped = false
	g.level.Update()
	g.fallTick = 0
}

// GhostOffset returns how many rows the active piece would fall on an
// immediate hard drop, computed by probing Fits with increasing descent.
func (g *Game) GhostOffset() int {
	off := 0
	for g.grid.Fits(g.piece, g.rot, g.anchor.X, g.anchor.Y, 0, off+1) {
		off++
	}
	return off
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Phase returns the current top-level state.
func (g *Game) Phase() State {
	return g.state
}

func (g *Game) gameState() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateOver,
		Paused:   g.state == StatePause,
		Closed:   g.state == StateClosed,
	}
}

// State returns the platform-facing game state.
func (g *Game) State() core.GameState {
	return g.gameState()
}
