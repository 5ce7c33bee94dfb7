package widgets

import (
	"github.com/choneface/curvy/pkg/graphics"
	"github.com/choneface/curvy/pkg/ui"
)

// Image displays a static raster.
type Image struct {
	data *graphics.Image
}

// NewImage wraps a decoded image.
func NewImage(data *graphics.Image) *Image {
	return &Image{data: data}
}

// LoadImage decodes an image file into a widget.
func LoadImage(path string) (*Image, error) {
	data, err := graphics.DecodeImage(path)
	if err != nil {
		return nil, err
	}
	return &Image{data: data}, nil
}

// Draw blits the image clipped to bounds.
func (w *Image) Draw(canvas *graphics.Canvas, bounds graphics.Rect, _ ui.State) {
	canvas.DrawImage(w.data, bounds.X, bounds.Y, &bounds)
}

// PreferredSize returns the image dimensions.
func (w *Image) PreferredSize() (int, int) {
	return w.data.Width, w.data.Height
}

// HandleEvent never consumes events.
func (w *Image) HandleEvent(ui.Event) bool {
	return false
}
