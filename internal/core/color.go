package core

import "image/color"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
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

// ColorEmpty marks an unoccupied board cell.
const ColorEmpty = ColorDefault

// rgb is the palette used by pixel renderers.
var rgb = map[Color]color.RGBA{
	ColorDefault:       {0, 0, 0, 255},
	ColorRed:           {220, 80, 100, 255},
	ColorGreen:         {80, 220, 100, 255},
	ColorYellow:        {220, 220, 80, 255},
	ColorBlue:          {80, 100, 220, 255},
	ColorMagenta:       {200, 80, 220, 255},
	ColorCyan:          {80, 200, 220, 255},
	ColorWhite:         {255, 255, 255, 255},
	ColorBrightRed:     {255, 110, 130, 255},
	ColorBrightGreen:   {120, 255, 140, 255},
	ColorBrightYellow:  {255, 255, 120, 255},
	ColorBrightBlue:    {120, 140, 255, 255},
	ColorBrightMagenta: {240, 120, 255, 255},
	ColorBrightCyan:    {120, 240, 255, 255},
	ColorBrightWhite:   {255, 255, 255, 255},
	ColorOrange:        {220, 140, 80, 255},
	ColorGray:          {128, 128, 128, 255},
}

// Pixel returns the RGB value of c for pixel renderers. Unknown colors map to black.
func (c Color) Pixel() color.RGBA {
	if v, ok := rgb[c]; ok {
		return v
	}
	return rgb[ColorDefault]
}
