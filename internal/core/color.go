package core

// Color represents a foreground color for a screen cell or canvas shape.
// Terminal frontends map it to ANSI codes, the browser frontend to CSS hex.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
	ColorPink
	ColorPurple
)

var colorHex = [...]string{
	ColorDefault: "#ffffff",
	ColorBlack:   "#000000",
	ColorRed:     "#ff0000",
	ColorGreen:   "#00ff00",
	ColorYellow:  "#ffff00",
	ColorBlue:    "#0099ff",
	ColorMagenta: "#ff00ff",
	ColorCyan:    "#00ffff",
	ColorWhite:   "#ffffff",
	ColorOrange:  "#ff9900",
	ColorGray:    "#555555",
	ColorPink:    "#ff66cc",
	ColorPurple:  "#9900ff",
}

// Hex returns the CSS color used by the browser canvas.
func (c Color) Hex() string {
	if int(c) < len(colorHex) {
		return colorHex[c]
	}
	return colorHex[ColorDefault]
}
