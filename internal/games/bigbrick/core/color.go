package core

import (
	"fmt"
	"image/color"
)

// Color is an index into Palette.
type Color uint8

// Palette holds every color a piece can be painted with.
var Palette = [...]color.RGBA{
	{231, 101, 27, 255},
	{239, 159, 28, 255},
	{113, 44, 6, 255},
	{234, 107, 72, 255},
	{113, 169, 29, 255},
	{247, 181, 127, 255},
	{48, 181, 114, 255},
	{255, 87, 13, 255},
	{249, 244, 47, 255},
	{0, 106, 178, 255},
	{226, 36, 47, 255},
	{60, 16, 123, 255},
	{0, 75, 42, 255},
	{153, 22, 60, 255},
	{150, 129, 185, 255},
	{244, 161, 187, 255},
	{142, 206, 243, 255},
	{255, 56, 252, 255},
}

// ColorCount is the number of palette entries.
const ColorCount = len(Palette)

// RGBA returns the palette entry. Out-of-range indices wrap.
func (c Color) RGBA() color.RGBA {
	return Palette[int(c)%ColorCount]
}

// Hex returns the color as "#rrggbb", the form terminal renderers accept.
func (c Color) Hex() string {
	rgba := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}
