package core

import (
	"fmt"
	"strings"
)

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for layer glyphs.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

var colorNames = map[Color]string{
	ColorDefault:       "default",
	ColorRed:           "red",
	ColorGreen:         "green",
	ColorYellow:        "yellow",
	ColorBlue:          "blue",
	ColorMagenta:       "magenta",
	ColorCyan:          "cyan",
	ColorWhite:         "white",
	ColorBrightRed:     "bright-red",
	ColorBrightGreen:   "bright-green",
	ColorBrightYellow:  "bright-yellow",
	ColorBrightBlue:    "bright-blue",
	ColorBrightMagenta: "bright-magenta",
	ColorBrightCyan:    "bright-cyan",
	ColorBrightWhite:   "bright-white",
	ColorOrange:        "orange",
	ColorGray:          "gray",
}

// String returns the config name of the colour.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// ParseColor converts a config name ("bright-green", "gray", ...) to a Color.
// "grey" is accepted as an alias.
func ParseColor(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "grey" {
		name = "gray"
	}
	for c, n := range colorNames {
		if n == name {
			return c, nil
		}
	}
	return ColorDefault, fmt.Errorf("unknown color %q", name)
}
