package widgets

import (
	"github.com/choneface/curvy/pkg/graphics"
	"github.com/choneface/curvy/pkg/store"
	"github.com/choneface/curvy/pkg/ui"
)

// DirectoryPicker shows a selected directory path in a skinned bar with a
// browse button on the right. Clicking the widget emits its pick action;
// the application resolves the action and calls SetPath with the result.
type DirectoryPicker struct {
	normal       *graphics.Image
	hover        *graphics.Image
	buttonNormal *graphics.Image
	buttonHover  *graphics.Image

	width       int
	height      int
	buttonWidth int

	path        string
	placeholder string

	font             *graphics.Font
	fontSize         float64
	textColor        graphics.Color
	placeholderColor graphics.Color
	padding          int

	binding    string
	pickAction string
	dirty      bool

	buttonHovered bool
}

// NewDirectoryPicker creates a picker from its four skin images. Size
// comes from the bar image, button width from the button image.
func NewDirectoryPicker(normal, hover, buttonNormal, buttonHover *graphics.Image) *DirectoryPicker {
	return &DirectoryPicker{
		normal:           normal,
		hover:            hover,
		buttonNormal:     buttonNormal,
		buttonHover:      buttonHover,
		width:            normal.Width,
		height:           normal.Height,
		buttonWidth:      buttonNormal.Width,
		placeholder:      "Select directory...",
		textColor:        graphics.Color(0x000000),
		placeholderColor: graphics.Color(0x888888),
		padding:          8,
	}
}

// WithFont sets the font used for the path text.
func (d *DirectoryPicker) WithFont(font *graphics.Font, size float64) *DirectoryPicker {
	d.font = font
	d.fontSize = size
	return d
}

// WithPlaceholder sets the text shown when no directory is selected.
func (d *DirectoryPicker) WithPlaceholder(text string) *DirectoryPicker {
	d.placeholder = text
	return d
}

// WithTextColor sets the path text color.
func (d *DirectoryPicker) WithTextColor(color graphics.Color) *DirectoryPicker {
	d.textColor = color
	return d
}

// WithPlaceholderColor sets the placeholder text color.
func (d *DirectoryPicker) WithPlaceholderColor(color graphics.Color) *DirectoryPicker {
	d.placeholderColor = color
	return d
}

// WithPadding sets the horizontal text inset.
func (d *DirectoryPicker) WithPadding(padding int) *DirectoryPicker {
	d.padding = padding
	return d
}

// WithBinding sets the store key the selected path syncs to.
func (d *DirectoryPicker) WithBinding(key string) *DirectoryPicker {
	d.binding = key
	return d
}

// WithPickAction sets the action dispatched when the widget is clicked.
func (d *DirectoryPicker) WithPickAction(name string) *DirectoryPicker {
	d.pickAction = name
	return d
}

// Binding returns the store key, or "".
func (d *DirectoryPicker) Binding() string { return d.binding }

// Action returns the pick action name, or "".
func (d *DirectoryPicker) Action() string { return d.pickAction }

// Path returns the selected directory path, or "".
func (d *DirectoryPicker) Path() string { return d.path }

// SetPath sets the selected directory and marks the widget dirty so the
// new path syncs to the store.
func (d *DirectoryPicker) SetPath(path string) {
	if path == d.path {
		return
	}
	d.path = path
	d.dirty = true
}

// Content returns the displayed path for store sync.
func (d *DirectoryPicker) Content() string { return d.path }

// SetContent updates the path from the store without marking it dirty.
func (d *DirectoryPicker) SetContent(text string) { d.path = text }

// Dirty reports whether the path changed since the last sync.
func (d *DirectoryPicker) Dirty() bool { return d.dirty }

// ClearDirty resets the dirty flag after a store sync.
func (d *DirectoryPicker) ClearDirty() { d.dirty = false }

// Value returns the selected path as a store value.
func (d *DirectoryPicker) Value() store.Value {
	return store.String(d.path)
}

// truncatePath shortens long paths from the left, keeping the tail.
func truncatePath(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	return "..." + text[len(text)-(limit-3):]
}

func (d *DirectoryPicker) Draw(canvas *graphics.Canvas, bounds graphics.Rect, state ui.State) {
	bg := d.normal
	if state.Hovered || state.Focused {
		bg = d.hover
	}
	canvas.DrawImage(bg, bounds.X, bounds.Y, &bounds)

	btn := d.buttonNormal
	if d.buttonHovered {
		btn = d.buttonHover
	}
	canvas.DrawImage(btn, bounds.X+d.width-d.buttonWidth, bounds.Y, &bounds)

	text := d.path
	color := d.textColor
	if text == "" {
		text = d.placeholder
		color = d.placeholderColor
	}
	text = truncatePath(text, 40)

	textClip := graphics.Rect{
		X:      bounds.X + d.padding,
		Y:      bounds.Y,
		Width:  d.width - d.buttonWidth - d.padding*2,
		Height: d.height,
	}
	lineH := d.font.LineHeight(d.fontSize)
	textY := bounds.Y + (d.height-lineH)/2
	d.font.DrawText(canvas, bounds.X+d.padding, textY, &textClip, text, color, d.fontSize)
}

func (d *DirectoryPicker) PreferredSize() (int, int) {
	return d.width, d.height
}

// HandleEvent tracks button hover from widget-local pointer moves and
// consumes clicks so the pick action fires.
func (d *DirectoryPicker) HandleEvent(event ui.Event) bool {
	switch e := event.(type) {
	case ui.PointerMoveEvent:
		d.buttonHovered = e.X >= d.width-d.buttonWidth
		return false
	case ui.ClickEvent:
		return true
	}
	return false
}
