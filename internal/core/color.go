package core

// Color is the foreground color of a screen cell.
// Values map onto ANSI 256-color codes in the terminal renderer.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorBrightWhite
	ColorGray
)
