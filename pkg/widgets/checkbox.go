package widgets

import (
	"github.com/choneface/curvy/pkg/graphics"
	"github.com/choneface/curvy/pkg/store"
	"github.com/choneface/curvy/pkg/ui"
)

// Checkbox toggles between checked and unchecked image states, with an
// optional text label to the right.
type Checkbox struct {
	unchecked *graphics.Image
	checked   *graphics.Image
	width     int
	height    int

	isChecked bool
	label     string
	textColor graphics.Color
	font      *graphics.Font
	fontSize  float64
	padding   int

	binding string
	action  string
	dirty   bool
}

// NewCheckbox creates a checkbox with the given state images. The widget
// size comes from the unchecked image.
func NewCheckbox(unchecked, checked *graphics.Image, font *graphics.Font) *Checkbox {
	return &Checkbox{
		unchecked: unchecked,
		checked:   checked,
		width:     unchecked.Width,
		height:    unchecked.Height,
		font:      font,
		textColor: graphics.Color(0xDDDDDD),
		padding:   8,
	}
}

// WithLabel sets the label text.
func (c *Checkbox) WithLabel(label string) *Checkbox {
	c.label = label
	return c
}

// WithTextColor sets the label color.
func (c *Checkbox) WithTextColor(col graphics.Color) *Checkbox {
	c.textColor = col
	return c
}

// WithFontSize overrides the font's default size.
func (c *Checkbox) WithFontSize(size float64) *Checkbox {
	c.fontSize = size
	return c
}

// WithPadding sets the gap between the box and the label.
func (c *Checkbox) WithPadding(padding int) *Checkbox {
	c.padding = padding
	return c
}

// WithBinding sets the store key this checkbox syncs to.
func (c *Checkbox) WithBinding(binding string) *Checkbox {
	c.binding = binding
	return c
}

// WithChecked sets the initial checked state without marking it dirty.
func (c *Checkbox) WithChecked(checked bool) *Checkbox {
	c.isChecked = checked
	return c
}

// WithAction sets the action name dispatched when toggled.
func (c *Checkbox) WithAction(action string) *Checkbox {
	c.action = action
	return c
}

// Action returns the toggle action name, or "".
func (c *Checkbox) Action() string {
	return c.action
}

// Binding returns the bound store key, or "".
func (c *Checkbox) Binding() string {
	return c.binding
}

// Dirty reports whether the state changed since the last store sync.
func (c *Checkbox) Dirty() bool {
	return c.dirty
}

// ClearDirty resets the dirty flag after a store sync.
func (c *Checkbox) ClearDirty() {
	c.dirty = false
}

// Value returns the checked state as a store value.
func (c *Checkbox) Value() store.Value {
	return store.Bool(c.isChecked)
}

// Checked returns the current state.
func (c *Checkbox) Checked() bool {
	return c.isChecked
}

// SetChecked updates the state, marking it dirty on change.
func (c *Checkbox) SetChecked(checked bool) {
	if c.isChecked != checked {
		c.isChecked = checked
		c.dirty = true
	}
}

// Toggle flips the state and marks it dirty.
func (c *Checkbox) Toggle() {
	c.isChecked = !c.isChecked
	c.dirty = true
}

// Draw renders the state image vertically centered, plus the label.
func (c *Checkbox) Draw(canvas *graphics.Canvas, bounds graphics.Rect, _ ui.State) {
	img := c.unchecked
	if c.isChecked {
		img = c.checked
	}

	imgY := bounds.Y + max(bounds.Height-img.Height, 0)/2
	canvas.DrawImage(img, bounds.X, imgY, &bounds)

	if c.label != "" {
		textHeight := c.font.LineHeight(c.fontSize)
		labelX := bounds.X + img.Width + c.padding
		labelY := bounds.Y + (bounds.Height-textHeight)/2
		c.font.DrawText(canvas, labelX, labelY, &bounds, c.label, c.textColor, c.fontSize)
	}
}

// PreferredSize returns the unchecked image size.
func (c *Checkbox) PreferredSize() (int, int) {
	return c.width, c.height
}

// HandleEvent toggles on click.
func (c *Checkbox) HandleEvent(event ui.Event) bool {
	if _, ok := event.(ui.ClickEvent); ok {
		c.Toggle()
		return true
	}
	return false
}
