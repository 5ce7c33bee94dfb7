package widgets

import (
	"strings"

	"github.com/choneface/curvy/pkg/graphics"
	"github.com/choneface/curvy/pkg/store"
	"github.com/choneface/curvy/pkg/ui"
)

// ValidationMode restricts which characters a text input accepts.
type ValidationMode int

const (
	// ValidateAny accepts any printable ASCII character.
	ValidateAny ValidationMode = iota
	// ValidateNumeric accepts digits only.
	ValidateNumeric
	// ValidateAlpha accepts letters only.
	ValidateAlpha
	// ValidateAlphanumeric accepts letters and digits.
	ValidateAlphanumeric
	// ValidateCharset accepts only characters in the Charset whitelist.
	ValidateCharset
)

// Validation is a text input's character acceptance policy.
type Validation struct {
	Mode ValidationMode
	// Charset is the whitelist used by ValidateCharset
	// (e.g. "0123456789." for decimal numbers).
	Charset string
}

// TextInput is an editable single-line text field with skinned state
// backgrounds. Rejected characters (validation or max length) leave the
// text unmodified; that is a no-op, not an error.
//
// Limitations: ASCII input only, no selection, no clipboard, no IME.
type TextInput struct {
	text   []rune
	cursor int

	normal  *graphics.Image
	hover   *graphics.Image
	focused *graphics.Image
	invalid *graphics.Image

	width  int
	height int

	font       *graphics.Font
	fontSize   float64
	padding    int
	textColor  graphics.Color
	caretColor graphics.Color

	maxLength  int
	validation Validation
	isInvalid  bool

	caretVisible bool

	onChange string
	onSubmit string
	binding  string
	dirty    bool
}

// NewTextInput creates a text input with backgrounds for each state.
// invalid may be nil. The widget size comes from the normal image.
func NewTextInput(normal, hover, focused, invalid *graphics.Image, font *graphics.Font) *TextInput {
	return &TextInput{
		normal:       normal,
		hover:        hover,
		focused:      focused,
		invalid:      invalid,
		width:        normal.Width,
		height:       normal.Height,
		font:         font,
		padding:      4,
		textColor:    graphics.ColorBlack,
		caretColor:   graphics.ColorBlack,
		caretVisible: true,
	}
}

// WithPadding sets the text padding.
func (t *TextInput) WithPadding(padding int) *TextInput {
	t.padding = padding
	return t
}

// WithTextColor sets the text color.
func (t *TextInput) WithTextColor(col graphics.Color) *TextInput {
	t.textColor = col
	return t
}

// WithCaretColor sets the caret color.
func (t *TextInput) WithCaretColor(col graphics.Color) *TextInput {
	t.caretColor = col
	return t
}

// WithFontSize overrides the font's default size.
func (t *TextInput) WithFontSize(size float64) *TextInput {
	t.fontSize = size
	return t
}

// WithMaxLength caps the number of characters. Zero means unlimited.
func (t *TextInput) WithMaxLength(maxLength int) *TextInput {
	t.maxLength = maxLength
	return t
}

// WithValidation sets the character acceptance policy.
func (t *TextInput) WithValidation(v Validation) *TextInput {
	t.validation = v
	return t
}

// WithOnChange sets the action name emitted when the text changes.
func (t *TextInput) WithOnChange(action string) *TextInput {
	t.onChange = action
	return t
}

// WithOnSubmit sets the action name emitted on Enter.
func (t *TextInput) WithOnSubmit(action string) *TextInput {
	t.onSubmit = action
	return t
}

// WithBinding sets the store key this input syncs to.
func (t *TextInput) WithBinding(binding string) *TextInput {
	t.binding = binding
	return t
}

// Binding returns the bound store key, or "".
func (t *TextInput) Binding() string {
	return t.binding
}

// Dirty reports whether the text changed since the last store sync.
func (t *TextInput) Dirty() bool {
	return t.dirty
}

// ClearDirty resets the dirty flag after a store sync.
func (t *TextInput) ClearDirty() {
	t.dirty = false
}

// Value returns the current text as a store value.
func (t *TextInput) Value() store.Value {
	return store.String(t.Text())
}

// Text returns the current text.
func (t *TextInput) Text() string {
	return string(t.text)
}

// SetText replaces the text, clamping the cursor.
func (t *TextInput) SetText(text string) {
	t.text = []rune(text)
	if t.cursor > len(t.text) {
		t.cursor = len(t.text)
	}
}

// Cursor returns the caret position in runes.
func (t *TextInput) Cursor() int {
	return t.cursor
}

// SetInvalid toggles the invalid state used for validation feedback.
func (t *TextInput) SetInvalid(invalid bool) {
	t.isInvalid = invalid
}

// IsInvalid reports whether the input is marked invalid.
func (t *TextInput) IsInvalid() bool {
	return t.isInvalid
}

// OnChangeAction returns the change action name, or "".
func (t *TextInput) OnChangeAction() string {
	return t.onChange
}

// OnSubmitAction returns the submit action name, or "".
func (t *TextInput) OnSubmitAction() string {
	return t.onSubmit
}

// AcceptsFocus marks text inputs as focusable on click.
func (t *TextInput) AcceptsFocus() bool {
	return true
}

func (t *TextInput) validateChar(c rune) bool {
	if c < 32 || c > 126 {
		return false
	}
	switch t.validation.Mode {
	case ValidateNumeric:
		return c >= '0' && c <= '9'
	case ValidateAlpha:
		return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
	case ValidateAlphanumeric:
		return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
	case ValidateCharset:
		return strings.ContainsRune(t.validation.Charset, c)
	default:
		return true
	}
}

// insertChar inserts at the cursor, reporting whether the text changed.
func (t *TextInput) insertChar(c rune) bool {
	if t.maxLength > 0 && len(t.text) >= t.maxLength {
		return false
	}
	if !t.validateChar(c) {
		return false
	}
	t.text = append(t.text[:t.cursor], append([]rune{c}, t.text[t.cursor:]...)...)
	t.cursor++
	t.dirty = true
	t.caretVisible = true
	return true
}

func (t *TextInput) backspace() bool {
	if t.cursor == 0 {
		return false
	}
	t.cursor--
	t.text = append(t.text[:t.cursor], t.text[t.cursor+1:]...)
	t.dirty = true
	t.caretVisible = true
	return true
}

func (t *TextInput) deleteForward() bool {
	if t.cursor >= len(t.text) {
		return false
	}
	t.text = append(t.text[:t.cursor], t.text[t.cursor+1:]...)
	t.dirty = true
	t.caretVisible = true
	return true
}

// Draw renders the state background, the text, and the caret when focused.
func (t *TextInput) Draw(canvas *graphics.Canvas, bounds graphics.Rect, state ui.State) {
	img := t.normal
	switch {
	case t.isInvalid && t.invalid != nil:
		img = t.invalid
	case state.Focused:
		img = t.focused
	case state.Hovered:
		img = t.hover
	}
	canvas.DrawImage(img, bounds.X, bounds.Y, &bounds)

	content := graphics.Rect{
		X:      bounds.X + t.padding,
		Y:      bounds.Y + t.padding,
		Width:  max(bounds.Width-2*t.padding, 0),
		Height: max(bounds.Height-2*t.padding, 0),
	}

	textHeight := t.font.LineHeight(t.fontSize)
	textY := content.Y + (content.Height-textHeight)/2
	t.font.DrawText(canvas, content.X, textY, &content, t.Text(), t.textColor, t.fontSize)

	if state.Focused && t.caretVisible {
		caretX := content.X + t.font.CaretX(t.Text(), t.cursor, t.fontSize)
		graphics.DrawCaret(canvas, caretX, textY, textHeight, &content, t.caretColor)
	}
}

// PreferredSize returns the background image size.
func (t *TextInput) PreferredSize() (int, int) {
	return t.width, t.height
}

// HandleEvent edits the text. Named-key events are consumed whenever the
// input is the focus target, even when they don't modify the text; a
// character rejected by validation or the length limit is not consumed.
func (t *TextInput) HandleEvent(event ui.Event) bool {
	switch e := event.(type) {
	case ui.CharEvent:
		return t.insertChar(e.Char)
	case ui.KeyEvent:
		switch e.Key {
		case ui.KeyBackspace:
			t.backspace()
		case ui.KeyDelete:
			t.deleteForward()
		case ui.KeyLeft:
			if t.cursor > 0 {
				t.cursor--
				t.caretVisible = true
			}
		case ui.KeyRight:
			if t.cursor < len(t.text) {
				t.cursor++
				t.caretVisible = true
			}
		case ui.KeyHome:
			t.cursor = 0
			t.caretVisible = true
		case ui.KeyEnd:
			t.cursor = len(t.text)
			t.caretVisible = true
		case ui.KeyEnter:
			// Submit is surfaced through OnSubmitAction by the controller.
		}
		return true
	case ui.FocusGainedEvent:
		t.caretVisible = true
		return true
	case ui.FocusLostEvent:
		t.caretVisible = false
		return true
	case ui.ClickEvent:
		return true
	}
	return false
}
