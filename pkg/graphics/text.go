package graphics

import (
	"image"
	"image/color"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Font wraps a parsed OpenType font and caches faces per size.
// Widgets hold a *Font handed to them by the skin builder; a nil Font makes
// every text operation a no-op, so trees built without fonts still draw.
type Font struct {
	sfnt  *opentype.Font
	size  float64
	faces map[float64]font.Face
}

// LoadFont reads and parses a TTF/OTF file. size is the default size used
// when a widget doesn't override it.
func LoadFont(path string, size float64) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseFont(data, size)
}

// ParseFont parses font data already in memory.
func ParseFont(data []byte, size float64) (*Font, error) {
	sfnt, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	return &Font{sfnt: sfnt, size: size, faces: make(map[float64]font.Face)}, nil
}

// Size returns the default size the font was loaded with.
func (f *Font) Size() float64 {
	return f.size
}

func (f *Font) face(size float64) font.Face {
	if size <= 0 {
		size = f.size
	}
	if face, ok := f.faces[size]; ok {
		return face
	}
	face, err := opentype.NewFace(f.sfnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil
	}
	f.faces[size] = face
	return face
}

// LineHeight returns the line height in pixels for the given size.
// Pass 0 to use the default size.
func (f *Font) LineHeight(size float64) int {
	if f == nil {
		return 0
	}
	face := f.face(size)
	if face == nil {
		return 0
	}
	return face.Metrics().Height.Ceil()
}

// Measure returns the advance width of text in pixels at the given size.
func (f *Font) Measure(text string, size float64) int {
	if f == nil {
		return 0
	}
	face := f.face(size)
	if face == nil {
		return 0
	}
	return font.MeasureString(face, text).Ceil()
}

// CaretX returns the x offset in pixels of the caret placed before the
// rune at index. An index past the end measures the full string.
func (f *Font) CaretX(text string, index int, size float64) int {
	runes := []rune(text)
	if index > len(runes) {
		index = len(runes)
	}
	return f.Measure(string(runes[:index]), size)
}

// DrawText renders a single line of text with its top-left at (x, y),
// clipped to clip when non-nil. Pass size 0 for the default size.
func (f *Font) DrawText(c *Canvas, x, y int, clip *Rect, text string, col Color, size float64) {
	if f == nil || text == "" {
		return
	}
	face := f.face(size)
	if face == nil {
		return
	}

	prev := c.ClipRect()
	if clip != nil {
		effective := *clip
		if prev != nil {
			effective = effective.Intersect(*prev)
		}
		c.SetClip(&effective)
		defer c.SetClip(prev)
	}

	r, g, b := col.RGBBytes()
	drawer := font.Drawer{
		Dst:  c,
		Src:  image.NewUniform(color.RGBA{R: r, G: g, B: b, A: 0xFF}),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(x),
			Y: fixed.I(y) + face.Metrics().Ascent,
		},
	}
	drawer.DrawString(text)
}

// DrawCaret renders a one pixel wide text caret at (x, y) of the given
// height, clipped to clip when non-nil.
func DrawCaret(c *Canvas, x, y, height int, clip *Rect, col Color) {
	for dy := 0; dy < height; dy++ {
		py := y + dy
		if clip != nil && !clip.Contains(x, py) {
			continue
		}
		c.SetPixel(x, py, col)
	}
}
