package core

// Color is a foreground color for a screen cell.
// The platform layer maps it to an ANSI 256-color code.
type Color uint8

// Palette used by the board, the HUD and the menus.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorPurple
	ColorOrange
	ColorGray
	ColorBrightWhite
)
