package widgets

import (
	"github.com/choneface/curvy/pkg/graphics"
	"github.com/choneface/curvy/pkg/ui"
)

// VScroll is a vertical scroll container holding a single child. The
// child is owned by the scroll widget, not by the tree; its content is
// clipped to the viewport and offset by the scroll position. The
// scrollbar can be skinned with track/thumb images (the track is tiled
// vertically) or falls back to flat colors.
type VScroll struct {
	width          int
	height         int
	scrollbarWidth int

	scrollY       float64
	contentHeight int
	scrollSpeed   float64

	child ui.Widget

	trackImage *graphics.Image
	thumbImage *graphics.Image
}

// NewVScroll creates an unskinned scroll container with a flat scrollbar.
func NewVScroll(width, height, scrollbarWidth int) *VScroll {
	return &VScroll{
		width:          width,
		height:         height,
		scrollbarWidth: scrollbarWidth,
		scrollSpeed:    1,
	}
}

// NewSkinnedVScroll creates a scroll container with image scrollbar parts.
// The scrollbar width comes from the track image.
func NewSkinnedVScroll(width, height int, track, thumb *graphics.Image) *VScroll {
	return &VScroll{
		width:          width,
		height:         height,
		scrollbarWidth: track.Width,
		scrollSpeed:    1,
		trackImage:     track,
		thumbImage:     thumb,
	}
}

// SetChild installs the child and derives content height from its
// preferred size.
func (v *VScroll) SetChild(child ui.Widget) {
	_, h := child.PreferredSize()
	v.contentHeight = h
	v.child = child
	v.scrollY = clampFloat(v.scrollY, 0, v.MaxScroll())
}

// WithChild installs the child and returns the container for chaining.
func (v *VScroll) WithChild(child ui.Widget) *VScroll {
	v.SetChild(child)
	return v
}

// WithContentHeight overrides the content height, for children that don't
// report a useful preferred size.
func (v *VScroll) WithContentHeight(height int) *VScroll {
	v.contentHeight = height
	return v
}

// WithScrollSpeed sets the wheel-to-pixels multiplier.
func (v *VScroll) WithScrollSpeed(speed float64) *VScroll {
	v.scrollSpeed = speed
	return v
}

// Child returns the contained widget, or nil.
func (v *VScroll) Child() ui.Widget {
	return v.child
}

// ViewportWidth is the container width minus the scrollbar.
func (v *VScroll) ViewportWidth() int {
	return max(v.width-v.scrollbarWidth, 0)
}

// MaxScroll is the largest valid scroll offset.
func (v *VScroll) MaxScroll() float64 {
	if v.contentHeight > v.height {
		return float64(v.contentHeight - v.height)
	}
	return 0
}

// ScrollBy adjusts the offset by a wheel delta, clamped to the content.
func (v *VScroll) ScrollBy(delta float64) {
	v.scrollY = clampFloat(v.scrollY-delta*v.scrollSpeed, 0, v.MaxScroll())
}

// ScrollRatio is the scroll position as a 0..1 fraction.
func (v *VScroll) ScrollRatio() float64 {
	if m := v.MaxScroll(); m > 0 {
		return v.scrollY / m
	}
	return 0
}

func (v *VScroll) thumbHeight() int {
	if v.thumbImage != nil {
		return v.thumbImage.Height
	}
	if v.contentHeight == 0 {
		return v.height
	}
	ratio := float64(v.height) / float64(v.contentHeight)
	h := float64(v.height) * ratio
	if h < 20 {
		h = 20 // minimum grabbable thumb
	}
	if h > float64(v.height) {
		h = float64(v.height)
	}
	return int(h)
}

func (v *VScroll) thumbY(trackY int) int {
	trackRange := v.height - v.thumbHeight()
	return trackY + int(float64(trackRange)*v.ScrollRatio())
}

func (v *VScroll) drawScrollbar(canvas *graphics.Canvas, bounds graphics.Rect) {
	trackX := bounds.X + v.ViewportWidth()

	if v.trackImage != nil {
		// Tile the track image down the full height.
		for y := bounds.Y; y < bounds.Y+v.height; y += v.trackImage.Height {
			clip := graphics.Rect{X: trackX, Y: bounds.Y, Width: v.scrollbarWidth, Height: v.height}
			canvas.DrawImage(v.trackImage, trackX, y, &clip)
		}
		canvas.DrawImage(v.thumbImage, trackX, v.thumbY(bounds.Y), nil)
		return
	}

	track := graphics.Rect{X: trackX, Y: bounds.Y, Width: v.scrollbarWidth, Height: v.height}
	canvas.FillRect(track, graphics.Color(0x333333))
	thumb := graphics.Rect{X: trackX, Y: v.thumbY(bounds.Y), Width: v.scrollbarWidth, Height: v.thumbHeight()}
	canvas.FillRect(thumb, graphics.Color(0x666666))
}

// Draw renders the scrollbar, then the child offset and clipped to the
// viewport.
func (v *VScroll) Draw(canvas *graphics.Canvas, bounds graphics.Rect, _ ui.State) {
	v.drawScrollbar(canvas, bounds)

	if v.child == nil {
		return
	}

	viewport := graphics.Rect{
		X:      bounds.X,
		Y:      bounds.Y,
		Width:  v.ViewportWidth(),
		Height: v.height,
	}
	prev := canvas.ClipRect()
	effective := viewport
	if prev != nil {
		effective = effective.Intersect(*prev)
	}
	canvas.SetClip(&effective)

	childBounds := graphics.Rect{
		X:      bounds.X,
		Y:      bounds.Y - int(v.scrollY),
		Width:  v.ViewportWidth(),
		Height: v.contentHeight,
	}
	v.child.Draw(canvas, childBounds, ui.State{})

	canvas.SetClip(prev)
}

// PreferredSize returns the container size.
func (v *VScroll) PreferredSize() (int, int) {
	return v.width, v.height
}

// HandleEvent consumes wheel events while there is room to scroll.
func (v *VScroll) HandleEvent(event ui.Event) bool {
	if e, ok := event.(ui.WheelEvent); ok {
		if v.MaxScroll() > 0 {
			v.ScrollBy(e.DeltaY)
			return true
		}
	}
	return false
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
