package core

// Color represents a foreground color for a screen cell.
// Mapped to ANSI palette entries by the platform renderer.
type Color uint8

// Predefined colors for game elements. The Dim variants keep the same hue but
// are rendered faint; piece ghosts use them as their "translucent" counterpart.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
	ColorDimRed
	ColorDimGreen
	ColorDimYellow
	ColorDimBlue
	ColorDimMagenta
	ColorDimCyan
	ColorDimOrange
)
