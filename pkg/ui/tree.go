package ui

import "github.com/choneface/curvy/pkg/graphics"

// UiTree owns all widgets in an arena of slots plus a free list of
// reclaimed indices. It holds at most one root and the four interaction
// singletons. Every singleton, when set, names a currently occupied slot;
// removal clears any singleton pointing into the removed subtree.
type UiTree struct {
	nodes    []*Node
	freeList []int

	root     NodeId
	hovered  NodeId
	pressed  NodeId
	focused  NodeId
	captured NodeId
}

// NewTree creates an empty tree.
func NewTree() *UiTree {
	return &UiTree{
		root:     NoNode,
		hovered:  NoNode,
		pressed:  NoNode,
		focused:  NoNode,
		captured: NoNode,
	}
}

// Add allocates a node for widget, reusing a free-listed slot if available.
// If parent is a valid id the new node is appended to its children; if
// parent is NoNode and no root exists yet, the new node becomes the root.
func (t *UiTree) Add(widget Widget, parent NodeId) NodeId {
	id := t.allocate(newNode(widget))

	if p := t.Node(parent); p != nil {
		p.children = append(p.children, id)
		t.nodes[id].parent = parent
	} else if t.root == NoNode {
		t.root = id
	}
	return id
}

func (t *UiTree) allocate(n *Node) NodeId {
	if len(t.freeList) > 0 {
		index := t.freeList[len(t.freeList)-1]
		t.freeList = t.freeList[:len(t.freeList)-1]
		t.nodes[index] = n
		return NodeId(index)
	}
	t.nodes = append(t.nodes, n)
	return NodeId(len(t.nodes) - 1)
}

// Remove deletes the subtree rooted at id, children first. It unlinks id
// from its former parent, clears every interaction singleton that names a
// removed node, and returns the slots to the free list. Removing a stale
// id is a no-op.
func (t *UiTree) Remove(id NodeId) {
	node := t.Node(id)
	if node == nil {
		return
	}

	// Copy before recursing: Remove mutates child lists under us.
	children := make([]NodeId, len(node.children))
	copy(children, node.children)
	for _, child := range children {
		t.Remove(child)
	}

	if parent := t.Node(node.parent); parent != nil {
		kept := parent.children[:0]
		for _, c := range parent.children {
			if c != id {
				kept = append(kept, c)
			}
		}
		parent.children = kept
	}

	if t.root == id {
		t.root = NoNode
	}
	if t.hovered == id {
		t.hovered = NoNode
	}
	if t.pressed == id {
		t.pressed = NoNode
	}
	if t.focused == id {
		t.focused = NoNode
	}
	if t.captured == id {
		t.captured = NoNode
	}

	t.nodes[id] = nil
	t.freeList = append(t.freeList, int(id))
}

// Node returns the node for id, or nil if id is stale or foreign.
func (t *UiTree) Node(id NodeId) *Node {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil
	}
	return t.nodes[id]
}

// SetBounds overwrites the node's cached layout rect. No-op for stale ids.
func (t *UiTree) SetBounds(id NodeId, bounds graphics.Rect) {
	if n := t.Node(id); n != nil {
		n.bounds = bounds
	}
}

// Root returns the root id, or NoNode.
func (t *UiTree) Root() NodeId {
	return t.root
}

// SetRoot replaces the root reference. The previous root node, if any,
// stays in the arena.
func (t *UiTree) SetRoot(id NodeId) {
	t.root = id
}

// Hovered returns the hovered singleton.
func (t *UiTree) Hovered() NodeId { return t.hovered }

// SetHovered updates the hovered singleton.
func (t *UiTree) SetHovered(id NodeId) { t.hovered = id }

// Pressed returns the pressed singleton.
func (t *UiTree) Pressed() NodeId { return t.pressed }

// SetPressed updates the pressed singleton.
func (t *UiTree) SetPressed(id NodeId) { t.pressed = id }

// Focused returns the focused singleton.
func (t *UiTree) Focused() NodeId { return t.focused }

// SetFocused updates the focused singleton.
func (t *UiTree) SetFocused(id NodeId) { t.focused = id }

// Captured returns the captured singleton.
func (t *UiTree) Captured() NodeId { return t.captured }

// SetCaptured updates the captured singleton.
func (t *UiTree) SetCaptured(id NodeId) { t.captured = id }

// HitTest finds the topmost node whose bounds contain (x, y). Children are
// tested in reverse insertion order so the last added sibling wins,
// matching paint order. Returns NoNode if there is no root or the point is
// outside it.
func (t *UiTree) HitTest(x, y int) NodeId {
	if t.root == NoNode {
		return NoNode
	}
	return t.hitTestNode(t.root, x, y)
}

func (t *UiTree) hitTestNode(id NodeId, x, y int) NodeId {
	node := t.Node(id)
	if node == nil || !node.bounds.Contains(x, y) {
		return NoNode
	}
	for i := len(node.children) - 1; i >= 0; i-- {
		if hit := t.hitTestNode(node.children[i], x, y); hit != NoNode {
			return hit
		}
	}
	return id
}

// Draw renders the tree pre-order from the root. Children draw after their
// parent in insertion order, so later siblings paint on top — consistent
// with HitTest's reverse-order rule.
func (t *UiTree) Draw(c *graphics.Canvas) {
	if t.root != NoNode {
		t.drawNode(t.root, c)
	}
}

func (t *UiTree) drawNode(id NodeId, c *graphics.Canvas) {
	node := t.Node(id)
	if node == nil {
		return
	}

	state := State{
		Hovered: t.hovered == id,
		Pressed: t.pressed == id,
		Focused: t.focused == id,
	}
	node.widget.Draw(c, node.bounds, state)

	for _, child := range node.children {
		t.drawNode(child, c)
	}
}

// Size returns the root node's bounds size, or (0, 0) without a root.
// This is what a window driver sizes its surface to.
func (t *UiTree) Size() (width, height int) {
	node := t.Node(t.root)
	if node == nil {
		return 0, 0
	}
	return node.bounds.Width, node.bounds.Height
}

// NodeIds returns the ids of all occupied slots. The slice is freshly
// allocated so callers can mutate the tree while iterating it.
func (t *UiTree) NodeIds() []NodeId {
	ids := make([]NodeId, 0, len(t.nodes))
	for i, n := range t.nodes {
		if n != nil {
			ids = append(ids, NodeId(i))
		}
	}
	return ids
}
