package tetris

// Level tracks how many pieces have locked and derives the fall interval,
// in ticks between automatic one-row descents. The curve is keyed by piece
// count, not score, and never resets except on a full game restart.
type Level struct {
	pieceCount   int
	tickInterval int
}

// NewLevel starts at the slowest interval with no pieces placed.
func NewLevel() *Level {
	return &Level{tickInterval: intervalForCount(0)}
}

// Update registers one locked piece and recomputes the fall interval.
func (l *Level) Update() {
	l.pieceCount++
	l.tickInterval = intervalForCount(l.pieceCount)
}

// TickInterval returns the current ticks-per-descent.
func (l *Level) TickInterval() int {
	return l.tickInterval
}

// PieceCount returns the cumulative number of locked pieces.
func (l *Level) PieceCount() int {
	return l.pieceCount
}

// intervalForCount is the fixed step table. Monotonically non-increasing.
func intervalForCount(pieces int) int {
	switch {
	case pieces <= 25:
		return 30
	case pieces <= 50:
		return 25
	case pieces <= 100:
		return 20
	case pieces <= 200:
		return 15
	case pieces <= 300:
		return 12
	case pieces <= 500:
		return 10
	case pieces <= 700:
		return 8
	case pieces <= 900:
		return 6
	default:
		return 5
	}
}
