// Package widgets implements the concrete widget variants the skin builder
// instantiates: containers, buttons, images, text, inputs, checkboxes,
// scroll containers and pickers. All variants satisfy ui.Widget; widgets
// with store bindings additionally expose binding/dirty accessors that the
// reconciliation sweep discovers by type assertion.
package widgets

import (
	"github.com/choneface/curvy/pkg/graphics"
	"github.com/choneface/curvy/pkg/ui"
)

// Container is a plain rectangular widget with an optional solid
// background. Children are managed by the tree, not the container.
type Container struct {
	width      int
	height     int
	background graphics.Color
	hasBG      bool
}

// NewContainer creates a transparent container of the given size.
func NewContainer(width, height int) *Container {
	return &Container{width: width, height: height}
}

// WithBackground sets a solid background color.
func (c *Container) WithBackground(col graphics.Color) *Container {
	c.background = col
	c.hasBG = true
	return c
}

// Draw fills the bounds with the background color, if one is set.
func (c *Container) Draw(canvas *graphics.Canvas, bounds graphics.Rect, _ ui.State) {
	if c.hasBG {
		canvas.FillRect(bounds, c.background)
	}
}

// PreferredSize returns the declared size.
func (c *Container) PreferredSize() (int, int) {
	return c.width, c.height
}

// HandleEvent never consumes events.
func (c *Container) HandleEvent(ui.Event) bool {
	return false
}
