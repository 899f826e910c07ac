package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to an ANSI 256-color code.
type Color uint8

// Predefined colors for board elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorPink
	ColorGray
)

// String returns the color name used in logs and config dumps.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorWhite:
		return "white"
	case ColorBrightRed:
		return "bright-red"
	case ColorBrightGreen:
		return "bright-green"
	case ColorBrightYellow:
		return "bright-yellow"
	case ColorBrightBlue:
		return "bright-blue"
	case ColorPink:
		return "pink"
	case ColorGray:
		return "gray"
	default:
		return "default"
	}
}

// RGB returns the 24-bit color used by pixel renderers.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorRed, ColorBrightRed:
		return 0xff, 0x44, 0x44
	case ColorGreen, ColorBrightGreen:
		return 0x44, 0xff, 0x44
	case ColorBlue, ColorBrightBlue:
		return 0x44, 0xaa, 0xff
	case ColorYellow:
		return 0xff, 0xff, 0x44
	case ColorBrightYellow:
		return 0xff, 0xff, 0x00
	case ColorPink:
		return 0xff, 0xc0, 0xcb
	case ColorGray:
		return 0x88, 0x88, 0x88
	default:
		return 0xff, 0xff, 0xff
	}
}
