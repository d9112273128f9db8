package core

// Color is the foreground color of a screen cell.
// The platform layer maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the games. Values are stable because screenshots and
// tests compare them.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorGray
	ColorRed
	ColorLightRed
	ColorGreen
	ColorLightGreen
	ColorDarkGreen
	ColorYellow
	ColorGold
	ColorOrange
	ColorBlue
	ColorNavy
	ColorSky
	ColorBrown
	ColorPurple
)

// Dimmed returns the color used when a cell sits under a translucent
// overlay.
func (c Color) Dimmed() Color {
	if c == ColorDefault {
		return ColorDefault
	}
	return ColorGray
}
