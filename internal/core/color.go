package core

// Color represents a foreground color for a screen cell.
type Color uint8

// Colors used by the play-field renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorGray
)

// Palette is the cycle of colors assigned to falling objects.
var Palette = []Color{ColorRed, ColorYellow, ColorBlue, ColorMagenta, ColorCyan}
