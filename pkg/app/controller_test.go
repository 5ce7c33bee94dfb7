package app

import (
	"errors"
	"testing"

	curvyerrors "github.com/choneface/curvy/pkg/errors"
	"github.com/choneface/curvy/pkg/graphics"
	"github.com/choneface/curvy/pkg/store"
	"github.com/choneface/curvy/pkg/ui"
	"github.com/choneface/curvy/pkg/widgets"
)

// recorder consumes configured events and remembers everything it saw.
type recorder struct {
	baseWidget
	events  []ui.Event
	consume bool
	action  string
	focus   bool
}

func (r *recorder) HandleEvent(e ui.Event) bool {
	r.events = append(r.events, e)
	return r.consume
}

func (r *recorder) Action() string     { return r.action }
func (r *recorder) AcceptsFocus() bool { return r.focus }

func (r *recorder) last() ui.Event {
	if len(r.events) == 0 {
		return nil
	}
	return r.events[len(r.events)-1]
}

type fixture struct {
	tree       *ui.UiTree
	store      *store.Store
	dispatcher *store.ActionDispatcher
	controller *Controller
	dispatched []store.Action
}

func newFixture() *fixture {
	f := &fixture{
		tree:       ui.NewTree(),
		store:      store.New(),
		dispatcher: store.NewDispatcher(),
	}
	f.dispatcher.AddHandler(store.HandlerFunc(func(a store.Action, _ *store.Store, _ *store.Services) (bool, error) {
		f.dispatched = append(f.dispatched, a)
		return true, nil
	}))
	root := f.tree.Add(widgets.NewContainer(200, 200), ui.NoNode)
	f.tree.SetBounds(root, graphics.RectFromSize(200, 200))
	f.controller = NewController(f.tree, f.store, f.dispatcher)
	return f
}

func (f *fixture) add(w ui.Widget, bounds graphics.Rect) ui.NodeId {
	id := f.tree.Add(w, f.tree.Root())
	f.tree.SetBounds(id, bounds)
	return id
}

func TestPointerMovedUpdatesHover(t *testing.T) {
	f := newFixture()
	w := &recorder{}
	id := f.add(w, graphics.Rect{X: 10, Y: 10, Width: 50, Height: 20})

	f.controller.PointerMoved(30, 15)
	if f.tree.Hovered() != id {
		t.Fatalf("Hovered() = %v, want %v", f.tree.Hovered(), id)
	}

	// The widget sees local coordinates.
	move, ok := w.last().(ui.PointerMoveEvent)
	if !ok {
		t.Fatalf("last event = %T, want PointerMoveEvent", w.last())
	}
	if move.X != 20 || move.Y != 5 {
		t.Fatalf("local move = (%d, %d), want (20, 5)", move.X, move.Y)
	}

	f.controller.PointerMoved(150, 150)
	if f.tree.Hovered() == id {
		t.Fatal("hover should leave the widget")
	}
}

func TestCapturedNodeReceivesMovesAnywhere(t *testing.T) {
	f := newFixture()
	w := &recorder{consume: true}
	id := f.add(w, graphics.Rect{X: 10, Y: 10, Width: 20, Height: 20})
	f.tree.SetCaptured(id)

	f.controller.PointerMoved(190, 190)

	move, ok := w.last().(ui.PointerMoveEvent)
	if !ok {
		t.Fatalf("captured widget saw %T, want PointerMoveEvent", w.last())
	}
	if move.X != 180 || move.Y != 180 {
		t.Fatalf("local move = (%d, %d), want (180, 180)", move.X, move.Y)
	}
}

func TestPointerDownSetsPressedAndFocus(t *testing.T) {
	f := newFixture()
	plain := &recorder{}
	focusable := &recorder{focus: true}
	plainID := f.add(plain, graphics.Rect{X: 0, Y: 0, Width: 50, Height: 50})
	focusID := f.add(focusable, graphics.Rect{X: 100, Y: 0, Width: 50, Height: 50})

	f.controller.PointerDown(110, 10)
	if f.tree.Pressed() != focusID {
		t.Fatalf("Pressed() = %v, want %v", f.tree.Pressed(), focusID)
	}
	if f.tree.Focused() != focusID {
		t.Fatalf("Focused() = %v, want %v", f.tree.Focused(), focusID)
	}
	if _, ok := focusable.events[0].(ui.FocusGainedEvent); !ok {
		t.Fatalf("first event = %T, want FocusGainedEvent", focusable.events[0])
	}

	// Pressing a non-focusable widget drops focus and notifies the
	// old holder.
	f.controller.PointerDown(10, 10)
	if f.tree.Pressed() != plainID {
		t.Fatalf("Pressed() = %v, want %v", f.tree.Pressed(), plainID)
	}
	if f.tree.Focused() != ui.NoNode {
		t.Fatalf("Focused() = %v, want NoNode", f.tree.Focused())
	}
	if _, ok := focusable.last().(ui.FocusLostEvent); !ok {
		t.Fatalf("last event = %T, want FocusLostEvent", focusable.last())
	}
}

func TestPointerUpSynthesizesClickAndEmitsAction(t *testing.T) {
	f := newFixture()
	w := &recorder{consume: true, action: "press_go"}
	f.add(w, graphics.Rect{X: 10, Y: 10, Width: 40, Height: 40})

	f.controller.PointerDown(20, 20)
	f.controller.PointerUp(25, 30)

	click, ok := w.last().(ui.ClickEvent)
	if !ok {
		t.Fatalf("last event = %T, want ClickEvent", w.last())
	}
	if click.X != 15 || click.Y != 20 {
		t.Fatalf("click at (%d, %d), want (15, 20)", click.X, click.Y)
	}
	if len(f.dispatched) != 1 || f.dispatched[0].Name != "press_go" {
		t.Fatalf("dispatched = %+v, want one press_go action", f.dispatched)
	}
	if f.tree.Pressed() != ui.NoNode {
		t.Fatal("release must clear pressed")
	}
}

func TestPointerUpOutsidePressedNodeIsNotAClick(t *testing.T) {
	f := newFixture()
	w := &recorder{consume: true, action: "press_go"}
	f.add(w, graphics.Rect{X: 10, Y: 10, Width: 40, Height: 40})

	f.controller.PointerDown(20, 20)
	f.controller.PointerUp(150, 150)

	for _, e := range w.events {
		if _, ok := e.(ui.ClickEvent); ok {
			t.Fatal("release off the widget must not synthesize a click")
		}
	}
	if len(f.dispatched) != 0 {
		t.Fatalf("dispatched = %+v, want none", f.dispatched)
	}
}

func TestWheelBubblesToScrollAncestor(t *testing.T) {
	f := newFixture()
	scroll := widgets.NewVScroll(100, 100, 10).WithContentHeight(400)
	scrollID := f.add(scroll, graphics.Rect{X: 0, Y: 0, Width: 100, Height: 100})

	label := &recorder{}
	labelID := f.tree.Add(label, scrollID)
	f.tree.SetBounds(labelID, graphics.Rect{X: 10, Y: 10, Width: 50, Height: 20})

	if !f.controller.Wheel(20, 20, -3) {
		t.Fatal("wheel should be consumed by the scroll ancestor")
	}
	if scroll.ScrollRatio() == 0 {
		t.Fatal("scroll container did not scroll")
	}
}

func TestCharTypedGoesToFocusedAndEmitsChange(t *testing.T) {
	f := newFixture()
	img := graphics.NewImage(100, 24)
	in := widgets.NewTextInput(img, img, img, nil, nil).
		WithBinding("inputs.name").
		WithOnChange("name_changed")
	f.add(in, graphics.Rect{X: 0, Y: 0, Width: 100, Height: 24})

	f.controller.PointerDown(10, 10)
	f.controller.PointerUp(10, 10)
	if !f.controller.CharTyped('a') {
		t.Fatal("char should reach the focused input")
	}

	if in.Text() != "a" {
		t.Fatalf("Text() = %q, want %q", in.Text(), "a")
	}
	if got := f.store.GetString("inputs.name"); got != "a" {
		t.Fatalf("store value = %q, want %q", got, "a")
	}

	var change *store.Action
	for i := range f.dispatched {
		if f.dispatched[i].Name == "name_changed" {
			change = &f.dispatched[i]
		}
	}
	if change == nil {
		t.Fatalf("dispatched = %+v, want a name_changed action", f.dispatched)
	}
	if got := change.GetStr("value"); got != "a" {
		t.Fatalf("change payload value = %q, want %q", got, "a")
	}
}

func TestCharTypedWithoutFocusIsIgnored(t *testing.T) {
	f := newFixture()
	if f.controller.CharTyped('x') {
		t.Fatal("char with no focus target must not be consumed")
	}
}

func TestEnterEmitsSubmitAction(t *testing.T) {
	f := newFixture()
	img := graphics.NewImage(100, 24)
	in := widgets.NewTextInput(img, img, img, nil, nil).
		WithBinding("inputs.name").
		WithOnSubmit("name_submitted")
	f.add(in, graphics.Rect{X: 0, Y: 0, Width: 100, Height: 24})

	f.controller.PointerDown(10, 10)
	f.controller.CharTyped('h')
	f.controller.CharTyped('i')
	f.controller.KeyPressed(ui.KeyEnter)

	var submit *store.Action
	for i := range f.dispatched {
		if f.dispatched[i].Name == "name_submitted" {
			submit = &f.dispatched[i]
		}
	}
	if submit == nil {
		t.Fatalf("dispatched = %+v, want a name_submitted action", f.dispatched)
	}
	if got := submit.GetStr("value"); got != "hi" {
		t.Fatalf("submit payload value = %q, want %q", got, "hi")
	}
}

type captureHandler struct {
	reported []*curvyerrors.ToolkitError
}

func (h *captureHandler) HandleError(err *curvyerrors.ToolkitError) {
	h.reported = append(h.reported, err)
}

func (h *captureHandler) HandlePanic(*curvyerrors.PanicError) {}

func TestHandlerErrorIsReportedNotSwallowed(t *testing.T) {
	f := newFixture()
	boom := errors.New("script exploded")
	f.dispatcher = store.NewDispatcher()
	f.dispatcher.AddHandler(store.HandlerFunc(func(store.Action, *store.Store, *store.Services) (bool, error) {
		return false, boom
	}))
	f.controller = NewController(f.tree, f.store, f.dispatcher)

	capture := &captureHandler{}
	curvyerrors.SetHandler(capture)
	defer curvyerrors.SetHandler(nil)

	w := &recorder{consume: true, action: "explode"}
	f.add(w, graphics.Rect{X: 0, Y: 0, Width: 20, Height: 20})

	f.controller.PointerDown(5, 5)
	f.controller.PointerUp(5, 5)

	if len(capture.reported) != 1 {
		t.Fatalf("reported %d errors, want 1", len(capture.reported))
	}
	reported := capture.reported[0]
	if reported.Kind != curvyerrors.KindAction {
		t.Fatalf("reported kind = %v, want KindAction", reported.Kind)
	}
	if !errors.Is(reported, boom) {
		t.Fatal("reported error must wrap the handler error")
	}
}
