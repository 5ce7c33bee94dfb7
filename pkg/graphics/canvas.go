package graphics

import (
	"image"
	"image/color"
)

// Canvas is a clipped view over a mutable pixel buffer. All drawing in the
// toolkit goes through it. The buffer layout is row-major packed RGB, one
// uint32 per pixel, matching what a softbuffer-style presenter expects.
//
// Canvas also implements draw.Image so the x/image font drawer can render
// glyphs directly through the clip.
type Canvas struct {
	buf    []uint32
	width  int
	height int
	clip   *Rect
}

// NewCanvas wraps a pixel buffer of width*height uint32 values.
func NewCanvas(buf []uint32, width, height int) *Canvas {
	return &Canvas{buf: buf, width: width, height: height}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// SetClip installs a clip rectangle that gates all subsequent writes.
// Pass nil to clear the clip.
func (c *Canvas) SetClip(clip *Rect) {
	c.clip = clip
}

// ClipRect returns the current clip rectangle, or nil if none is set.
func (c *Canvas) ClipRect() *Rect {
	return c.clip
}

// SetPixel writes a single pixel. Writes outside the buffer or the current
// clip rectangle are ignored.
func (c *Canvas) SetPixel(x, y int, col Color) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	if c.clip != nil && !c.clip.Contains(x, y) {
		return
	}
	c.buf[y*c.width+x] = uint32(col)
}

// SetPixelRGB writes a single pixel from RGB components.
func (c *Canvas) SetPixelRGB(x, y int, r, g, b uint8) {
	c.SetPixel(x, y, RGB(r, g, b))
}

// Clear fills the entire buffer with a color, ignoring the clip.
func (c *Canvas) Clear(col Color) {
	for i := range c.buf {
		c.buf[i] = uint32(col)
	}
}

// FillRect fills a rectangular region, honoring the clip.
func (c *Canvas) FillRect(r Rect, col Color) {
	area := r.Intersect(Rect{Width: c.width, Height: c.height})
	if c.clip != nil {
		area = area.Intersect(*c.clip)
	}
	for y := area.Y; y < area.Bottom(); y++ {
		row := c.buf[y*c.width : y*c.width+c.width]
		for x := area.X; x < area.Right(); x++ {
			row[x] = uint32(col)
		}
	}
}

// DrawImage blits an image with its top-left corner at (x, y).
// An optional extra clip rectangle further restricts the write area.
func (c *Canvas) DrawImage(img *Image, x, y int, clip *Rect) {
	if img == nil {
		return
	}
	for iy := 0; iy < img.Height; iy++ {
		py := y + iy
		for ix := 0; ix < img.Width; ix++ {
			px := x + ix
			if clip != nil && !clip.Contains(px, py) {
				continue
			}
			c.SetPixel(px, py, img.At(ix, iy))
		}
	}
}

// ColorModel implements image.Image.
func (c *Canvas) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// At implements image.Image.
func (c *Canvas) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return color.RGBA{}
	}
	r, g, b := Color(c.buf[y*c.width+x]).RGBBytes()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// Set implements draw.Image. Fully transparent source pixels are skipped so
// glyph rasterization doesn't punch black holes into the background; partial
// coverage is blended against the existing pixel.
func (c *Canvas) Set(x, y int, col color.Color) {
	r, g, b, a := col.RGBA()
	if a == 0 {
		return
	}
	if a == 0xFFFF {
		c.SetPixelRGB(x, y, uint8(r>>8), uint8(g>>8), uint8(b>>8))
		return
	}
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	br, bg, bb := Color(c.buf[y*c.width+x]).RGBBytes()
	// Source components are alpha-premultiplied 16-bit values.
	blend := func(src uint32, dst uint8) uint8 {
		d := uint32(dst) * 0x101
		return uint8((src + d*(0xFFFF-a)/0xFFFF) >> 8)
	}
	c.SetPixelRGB(x, y, blend(r, br), blend(g, bg), blend(b, bb))
}
