// Package graphics provides the drawing primitives used by the widget tree:
// integer rect geometry, packed RGB colors, a clipped canvas over a pixel
// buffer, decoded raster images, and text measurement and drawing.
package graphics

// Color is stored as packed RGB (0x00RRGGBB).
type Color uint32

// RGB constructs a Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGBBytes returns the red, green and blue components.
func (c Color) RGBBytes() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Common colors.
var (
	ColorBlack = Color(0x000000)
	ColorWhite = Color(0xFFFFFF)
	ColorGray  = Color(0x888888)
)
