package core

import (
	"fmt"
	"strconv"
)

// Color is a "#RRGGBB" foreground color for a screen cell or shape.
// The empty string means the frontend's default color.
type Color string

// Predefined colors for scene elements.
const (
	ColorDefault Color = ""
	ColorRain    Color = "#3399F2"
	ColorShelter Color = "#99CC4D"
	ColorPlayer  Color = "#D94C4C"
	ColorHandle  Color = "#6B4F3A"
	ColorEye     Color = "#1A6666"
	ColorSky     Color = "#1E2A38"
	ColorGround  Color = "#3A4A2F"
	ColorText    Color = "#F0F0F0"
	ColorDim     Color = "#808080"
)

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color(fmt.Sprintf("#%02X%02X%02X", r, g, b))
}

// Components parses the color. ok is false for the default color or a malformed value.
func (c Color) Components() (r, g, b uint8, ok bool) {
	if len(c) != 7 || c[0] != '#' {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(string(c[1:]), 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true //#nosec G115 -- masked by truncation
}
