package graphics

import (
	"fmt"
	"image"
	"os"

	// Registered decoders for skin assets.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

// Image is a decoded fixed-size RGB raster.
type Image struct {
	Width  int
	Height int
	pix    []Color
}

// NewImage creates a blank image filled with black.
func NewImage(width, height int) *Image {
	return &Image{Width: width, Height: height, pix: make([]Color, width*height)}
}

// NewImageFilled creates an image filled with a solid color. Handy for tests.
func NewImageFilled(width, height int, col Color) *Image {
	img := NewImage(width, height)
	for i := range img.pix {
		img.pix[i] = col
	}
	return img
}

// DecodeImage reads and decodes an image file (PNG, JPEG or BMP) into an
// RGB raster. Any decode failure is returned to the caller; the skin
// builder treats it as fatal.
func DecodeImage(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return FromImage(src), nil
}

// FromImage converts any image.Image into a packed RGB raster.
func FromImage(src image.Image) *Image {
	bounds := src.Bounds()
	img := NewImage(bounds.Dx(), bounds.Dy())
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			r, g, b, _ := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			img.pix[y*img.Width+x] = RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
		}
	}
	return img
}

// At returns the pixel color at (x, y). Out-of-range coordinates return black.
func (img *Image) At(x, y int) Color {
	if x < 0 || y < 0 || x >= img.Width || y >= img.Height {
		return 0
	}
	return img.pix[y*img.Width+x]
}

// SetAt overwrites the pixel at (x, y). Out-of-range coordinates are ignored.
func (img *Image) SetAt(x, y int, col Color) {
	if x < 0 || y < 0 || x >= img.Width || y >= img.Height {
		return
	}
	img.pix[y*img.Width+x] = col
}
