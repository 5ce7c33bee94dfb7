// Package app wires the widget tree, store and action dispatcher into a
// single-threaded event controller. Window integration stays outside:
// the host translates its native events into the controller's pointer
// and key operations and redraws when they report a change.
package app

import (
	"github.com/choneface/curvy/pkg/errors"
	"github.com/choneface/curvy/pkg/store"
	"github.com/choneface/curvy/pkg/ui"
)

// Controller routes input to the widget tree and keeps the interaction
// singletons (hovered, pressed, focused, captured) coherent. Every
// consumed event is followed by a store reconciliation sweep. Not safe
// for concurrent use.
type Controller struct {
	tree       *ui.UiTree
	store      *store.Store
	dispatcher *store.ActionDispatcher
	services   *store.Services
}

// NewController creates a controller over an existing tree.
func NewController(tree *ui.UiTree, st *store.Store, dispatcher *store.ActionDispatcher) *Controller {
	return &Controller{
		tree:       tree,
		store:      st,
		dispatcher: dispatcher,
		services:   &store.Services{},
	}
}

// Tree returns the controlled tree.
func (c *Controller) Tree() *ui.UiTree { return c.tree }

// Store returns the backing store.
func (c *Controller) Store() *store.Store { return c.store }

// localPoint translates tree coordinates into a node's local space.
func (c *Controller) localPoint(id ui.NodeId, x, y int) (int, int) {
	node := c.tree.Node(id)
	if node == nil {
		return x, y
	}
	b := node.Bounds()
	return x - b.X, y - b.Y
}

// deliver routes an event to a node's widget, reporting consumption.
func (c *Controller) deliver(id ui.NodeId, event ui.Event) bool {
	node := c.tree.Node(id)
	if node == nil || node.Widget() == nil {
		return false
	}
	return node.Widget().HandleEvent(event)
}

// dispatch runs an action through the handler chain. Handler errors
// abort the chain and are reported, never swallowed.
func (c *Controller) dispatch(action store.Action) {
	if c.dispatcher == nil {
		return
	}
	if _, err := c.dispatcher.Dispatch(action, c.store, c.services); err != nil {
		errors.Report(&errors.ToolkitError{
			Op:   "app.Controller.dispatch",
			Kind: errors.KindAction,
			Err:  err,
		})
	}
}

// emitWidgetAction dispatches a widget's named action, attaching the
// widget's current value when it has one.
func (c *Controller) emitWidgetAction(id ui.NodeId) {
	node := c.tree.Node(id)
	if node == nil {
		return
	}
	src, ok := node.Widget().(ActionSource)
	if !ok || src.Action() == "" {
		return
	}
	action := store.NewAction(src.Action())
	if input, ok := node.Widget().(InputSource); ok {
		action = action.With("value", input.Value())
	}
	c.dispatch(action)
}

// sync runs the two-phase store reconciliation.
func (c *Controller) sync() {
	Sync(c.tree, c.store)
}

// PointerMoved updates hover tracking and routes the move. While a node
// holds the pointer capture, moves go to it regardless of position.
// Returns true when the tree changed visibly.
func (c *Controller) PointerMoved(x, y int) bool {
	if captured := c.tree.Captured(); captured != ui.NoNode {
		lx, ly := c.localPoint(captured, x, y)
		consumed := c.deliver(captured, ui.PointerMoveEvent{X: lx, Y: ly})
		if consumed {
			c.sync()
		}
		return consumed
	}

	hit := c.tree.HitTest(x, y)
	changed := hit != c.tree.Hovered()
	c.tree.SetHovered(hit)

	if hit != ui.NoNode {
		lx, ly := c.localPoint(hit, x, y)
		if c.deliver(hit, ui.PointerMoveEvent{X: lx, Y: ly}) {
			c.sync()
			changed = true
		}
	}
	return changed
}

// PointerDown presses the hit node and moves keyboard focus to it when
// it accepts focus. Pressing empty space clears focus.
func (c *Controller) PointerDown(x, y int) bool {
	hit := c.tree.HitTest(x, y)
	c.tree.SetPressed(hit)
	c.moveFocus(c.focusTarget(hit))

	if hit != ui.NoNode {
		lx, ly := c.localPoint(hit, x, y)
		if c.deliver(hit, ui.PointerDownEvent{X: lx, Y: ly}) {
			c.sync()
		}
	}
	return true
}

// focusTarget returns the node that should take focus from a press on
// hit, or NoNode.
func (c *Controller) focusTarget(hit ui.NodeId) ui.NodeId {
	node := c.tree.Node(hit)
	if node == nil {
		return ui.NoNode
	}
	if f, ok := node.Widget().(Focusable); ok && f.AcceptsFocus() {
		return hit
	}
	return ui.NoNode
}

// moveFocus transfers focus, notifying both widgets.
func (c *Controller) moveFocus(target ui.NodeId) {
	current := c.tree.Focused()
	if current == target {
		return
	}
	if current != ui.NoNode {
		c.deliver(current, ui.FocusLostEvent{})
	}
	c.tree.SetFocused(target)
	if target != ui.NoNode {
		c.deliver(target, ui.FocusGainedEvent{})
	}
}

// PointerUp releases the press. A release landing on the pressed node
// synthesizes a click there and emits the widget's action.
func (c *Controller) PointerUp(x, y int) bool {
	pressed := c.tree.Pressed()
	c.tree.SetPressed(ui.NoNode)
	if pressed == ui.NoNode {
		return false
	}

	hit := c.tree.HitTest(x, y)
	lx, ly := c.localPoint(pressed, x, y)
	c.deliver(pressed, ui.PointerUpEvent{X: lx, Y: ly})

	if hit == pressed {
		if c.deliver(pressed, ui.ClickEvent{X: lx, Y: ly}) {
			c.emitWidgetAction(pressed)
		}
	}
	c.sync()
	return true
}

// Wheel routes a scroll delta to the node under the pointer, bubbling
// up the parent chain until something consumes it. Children of a scroll
// container therefore never trap scrolling.
func (c *Controller) Wheel(x, y int, deltaY float64) bool {
	for id := c.tree.HitTest(x, y); id != ui.NoNode; {
		node := c.tree.Node(id)
		if node == nil {
			return false
		}
		if c.deliver(id, ui.WheelEvent{DeltaY: deltaY}) {
			c.sync()
			return true
		}
		id = node.Parent()
	}
	return false
}

// CharTyped sends a printable character to the focused widget, emitting
// its change action when the text actually changed.
func (c *Controller) CharTyped(ch rune) bool {
	focused := c.tree.Focused()
	if focused == ui.NoNode {
		return false
	}
	if !c.deliver(focused, ui.CharEvent{Char: ch}) {
		return false
	}
	c.emitChangeAction(focused)
	c.sync()
	return true
}

// KeyPressed sends a named key to the focused widget. Enter emits the
// widget's submit action.
func (c *Controller) KeyPressed(key ui.KeyCode) bool {
	focused := c.tree.Focused()
	if focused == ui.NoNode {
		return false
	}
	if !c.deliver(focused, ui.KeyEvent{Key: key}) {
		return false
	}

	switch key {
	case ui.KeyEnter:
		c.emitSubmitAction(focused)
	case ui.KeyBackspace, ui.KeyDelete:
		c.emitChangeAction(focused)
	}
	c.sync()
	return true
}

type changeSource interface {
	OnChangeAction() string
}

type submitSource interface {
	OnSubmitAction() string
}

func (c *Controller) emitChangeAction(id ui.NodeId) {
	node := c.tree.Node(id)
	if node == nil {
		return
	}
	src, ok := node.Widget().(changeSource)
	if !ok || src.OnChangeAction() == "" {
		return
	}
	action := store.NewAction(src.OnChangeAction())
	if input, ok := node.Widget().(InputSource); ok {
		// A consumed key that left the value alone (backspace at the
		// start, say) is not a change.
		if !input.Dirty() {
			return
		}
		action = action.With("value", input.Value())
	}
	c.dispatch(action)
}

func (c *Controller) emitSubmitAction(id ui.NodeId) {
	node := c.tree.Node(id)
	if node == nil {
		return
	}
	src, ok := node.Widget().(submitSource)
	if !ok || src.OnSubmitAction() == "" {
		return
	}
	action := store.NewAction(src.OnSubmitAction())
	if input, ok := node.Widget().(InputSource); ok {
		action = action.With("value", input.Value())
	}
	c.dispatch(action)
}
