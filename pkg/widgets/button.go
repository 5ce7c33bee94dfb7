package widgets

import (
	"github.com/choneface/curvy/pkg/graphics"
	"github.com/choneface/curvy/pkg/ui"
)

// Button is a flat-color button with hover and pressed colors.
type Button struct {
	width        int
	height       int
	color        graphics.Color
	hoverColor   graphics.Color
	pressedColor graphics.Color
	onClick      func()
}

// NewButton creates a button with default gray colors.
func NewButton(width, height int) *Button {
	return &Button{
		width:        width,
		height:       height,
		color:        graphics.Color(0x444444),
		hoverColor:   graphics.Color(0x666666),
		pressedColor: graphics.Color(0x222222),
	}
}

// WithColor sets the idle color.
func (b *Button) WithColor(col graphics.Color) *Button {
	b.color = col
	return b
}

// WithHoverColor sets the hovered color.
func (b *Button) WithHoverColor(col graphics.Color) *Button {
	b.hoverColor = col
	return b
}

// WithPressedColor sets the pressed color.
func (b *Button) WithPressedColor(col graphics.Color) *Button {
	b.pressedColor = col
	return b
}

// OnClick registers a click callback.
func (b *Button) OnClick(fn func()) *Button {
	b.onClick = fn
	return b
}

// Draw fills the bounds with the state-appropriate color.
func (b *Button) Draw(canvas *graphics.Canvas, bounds graphics.Rect, state ui.State) {
	col := b.color
	if state.Pressed {
		col = b.pressedColor
	} else if state.Hovered {
		col = b.hoverColor
	}
	canvas.FillRect(bounds, col)
}

// PreferredSize returns the declared size.
func (b *Button) PreferredSize() (int, int) {
	return b.width, b.height
}

// HandleEvent consumes clicks, invoking the callback.
func (b *Button) HandleEvent(event ui.Event) bool {
	if _, ok := event.(ui.ClickEvent); ok {
		if b.onClick != nil {
			b.onClick()
		}
		return true
	}
	return false
}

// ImageButton is a button driven by skin assets for each interaction state.
type ImageButton struct {
	normal  *graphics.Image
	hover   *graphics.Image
	pressed *graphics.Image
	width   int
	height  int
	action  string
}

// NewImageButton creates a skinned button. The widget size comes from the
// normal-state image.
func NewImageButton(normal, hover, pressed *graphics.Image, action string) *ImageButton {
	return &ImageButton{
		normal:  normal,
		hover:   hover,
		pressed: pressed,
		width:   normal.Width,
		height:  normal.Height,
		action:  action,
	}
}

// Action returns the action name dispatched on click, or "" for none.
func (b *ImageButton) Action() string {
	return b.action
}

// Draw blits the state-appropriate image clipped to bounds.
func (b *ImageButton) Draw(canvas *graphics.Canvas, bounds graphics.Rect, state ui.State) {
	img := b.normal
	if state.Pressed {
		img = b.pressed
	} else if state.Hovered {
		img = b.hover
	}
	canvas.DrawImage(img, bounds.X, bounds.Y, &bounds)
}

// PreferredSize returns the normal image size.
func (b *ImageButton) PreferredSize() (int, int) {
	return b.width, b.height
}

// HandleEvent consumes clicks; the controller dispatches the action.
func (b *ImageButton) HandleEvent(event ui.Event) bool {
	_, ok := event.(ui.ClickEvent)
	return ok
}
