package widgets

import (
	"github.com/choneface/curvy/pkg/graphics"
	"github.com/choneface/curvy/pkg/ui"
)

// TextAlign is the horizontal text alignment.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// VerticalAlign is the vertical text alignment.
type VerticalAlign int

const (
	VAlignTop VerticalAlign = iota
	VAlignCenter
	VAlignBottom
)

// StaticText displays non-editable text. Bound to a store key it shows
// dynamic values: the reconciliation sweep overwrites its content from the
// store when the rendered value is non-empty and differs from what is
// already displayed.
type StaticText struct {
	content       string
	font          *graphics.Font
	fontSize      float64
	textColor     graphics.Color
	textAlign     TextAlign
	verticalAlign VerticalAlign
	padding       int
	binding       string
}

// NewStaticText creates a static text widget with black left/center text.
func NewStaticText(content string, font *graphics.Font) *StaticText {
	return &StaticText{
		content:       content,
		font:          font,
		textColor:     graphics.ColorBlack,
		verticalAlign: VAlignCenter,
	}
}

// WithFontSize overrides the font's default size.
func (s *StaticText) WithFontSize(size float64) *StaticText {
	s.fontSize = size
	return s
}

// WithTextColor sets the text color.
func (s *StaticText) WithTextColor(col graphics.Color) *StaticText {
	s.textColor = col
	return s
}

// WithTextAlign sets the horizontal alignment.
func (s *StaticText) WithTextAlign(align TextAlign) *StaticText {
	s.textAlign = align
	return s
}

// WithVerticalAlign sets the vertical alignment.
func (s *StaticText) WithVerticalAlign(align VerticalAlign) *StaticText {
	s.verticalAlign = align
	return s
}

// WithPadding sets the edge padding.
func (s *StaticText) WithPadding(padding int) *StaticText {
	s.padding = padding
	return s
}

// WithBinding sets the store key this text displays.
func (s *StaticText) WithBinding(binding string) *StaticText {
	s.binding = binding
	return s
}

// Binding returns the bound store key, or "".
func (s *StaticText) Binding() string {
	return s.binding
}

// Content returns the displayed text.
func (s *StaticText) Content() string {
	return s.content
}

// SetContent replaces the displayed text.
func (s *StaticText) SetContent(content string) {
	s.content = content
}

func (s *StaticText) contentRect(bounds graphics.Rect) graphics.Rect {
	return graphics.Rect{
		X:      bounds.X + s.padding,
		Y:      bounds.Y + s.padding,
		Width:  max(bounds.Width-2*s.padding, 0),
		Height: max(bounds.Height-2*s.padding, 0),
	}
}

// Draw renders the text with the configured alignment, clipped to bounds.
func (s *StaticText) Draw(canvas *graphics.Canvas, bounds graphics.Rect, _ ui.State) {
	content := s.contentRect(bounds)
	textHeight := s.font.LineHeight(s.fontSize)
	textWidth := s.font.Measure(s.content, s.fontSize)

	x := content.X
	switch s.textAlign {
	case AlignCenter:
		x = content.X + (content.Width-textWidth)/2
	case AlignRight:
		x = content.X + content.Width - textWidth
	}

	y := content.Y
	switch s.verticalAlign {
	case VAlignCenter:
		y = content.Y + (content.Height-textHeight)/2
	case VAlignBottom:
		y = content.Y + content.Height - textHeight
	}

	s.font.DrawText(canvas, x, y, &content, s.content, s.textColor, s.fontSize)
}

// PreferredSize is the measured text size plus padding.
func (s *StaticText) PreferredSize() (int, int) {
	width := s.font.Measure(s.content, s.fontSize) + 2*s.padding
	height := s.font.LineHeight(s.fontSize) + 2*s.padding
	return width, height
}

// HandleEvent never consumes events.
func (s *StaticText) HandleEvent(ui.Event) bool {
	return false
}
