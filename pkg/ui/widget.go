// Package ui implements the retained-mode widget tree: the Widget contract,
// the arena-owned node structure, hit testing, and the interaction state
// (hover/press/focus/capture) that the event controller drives.
package ui

import "github.com/choneface/curvy/pkg/graphics"

// State is the read-only interaction projection passed to Draw. It is
// computed by the tree from its interaction singletons and never stored on
// the widget itself.
type State struct {
	Hovered bool
	Pressed bool
	Focused bool
}

// Widget is the capability every visual element implements.
//
// Concrete widget state (binding keys, dirty flags) is intentionally not
// part of this interface; layers that need it recover the concrete type
// with a type assertion.
type Widget interface {
	// Draw renders the widget into the canvas region described by bounds.
	// It must not mutate logical layout state.
	Draw(c *graphics.Canvas, bounds graphics.Rect, state State)

	// PreferredSize returns the widget's advisory natural size.
	PreferredSize() (width, height int)

	// HandleEvent processes an input event and reports whether it was
	// consumed. This is the only legitimate place for widget-local state
	// changes.
	HandleEvent(event Event) bool
}

// KeyCode identifies a named (non-character) key.
type KeyCode int

const (
	KeyBackspace KeyCode = iota
	KeyDelete
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyEnter
)

// Event is a closed set of input events delivered to widgets.
type Event interface {
	isEvent()
}

// PointerDownEvent is a pointer button press in the widget's local coordinates.
type PointerDownEvent struct {
	X, Y int
}

// PointerUpEvent is a pointer button release in the widget's local coordinates.
type PointerUpEvent struct {
	X, Y int
}

// PointerMoveEvent is a pointer position change in the widget's local coordinates.
type PointerMoveEvent struct {
	X, Y int
}

// ClickEvent is synthesized when a release lands on the pressed node.
// X and Y are the release position in the widget's local coordinates.
type ClickEvent struct {
	X, Y int
}

// WheelEvent is a scroll wheel delta. Positive DeltaY scrolls up.
type WheelEvent struct {
	DeltaY float64
}

// CharEvent is a typed printable character.
type CharEvent struct {
	Char rune
}

// KeyEvent is a named key press.
type KeyEvent struct {
	Key KeyCode
}

// FocusGainedEvent tells a widget it became the focus target.
type FocusGainedEvent struct{}

// FocusLostEvent tells a widget it stopped being the focus target.
type FocusLostEvent struct{}

func (PointerDownEvent) isEvent() {}
func (PointerUpEvent) isEvent()   {}
func (PointerMoveEvent) isEvent() {}
func (ClickEvent) isEvent()       {}
func (WheelEvent) isEvent()       {}
func (CharEvent) isEvent()        {}
func (KeyEvent) isEvent()         {}
func (FocusGainedEvent) isEvent() {}
func (FocusLostEvent) isEvent()   {}
