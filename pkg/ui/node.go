package ui

import "github.com/choneface/curvy/pkg/graphics"

// NodeId is an opaque handle to a slot in a UiTree arena. It is valid only
// while its slot is occupied and only for the tree that issued it; a stale
// id resolves to nil lookups, never to an error. Removed slots are recycled,
// so a stale id may later name a different node — callers must not hold ids
// across removals they don't control.
type NodeId int

// NoNode is the handle meaning "no node".
const NoNode NodeId = -1

// Node is one slot in the tree: it exclusively owns its widget, keeps the
// ordered child ids (insertion order = paint order, last on top), a
// non-owning back-reference to its parent, and the last computed layout
// bounds. Bounds are mutated only by the tree and the builder.
type Node struct {
	widget   Widget
	children []NodeId
	parent   NodeId
	bounds   graphics.Rect
}

func newNode(w Widget) *Node {
	return &Node{widget: w, parent: NoNode}
}

// Widget returns the node's widget.
func (n *Node) Widget() Widget {
	return n.widget
}

// Children returns the node's child ids in insertion order. The returned
// slice is owned by the node; callers must not mutate it.
func (n *Node) Children() []NodeId {
	return n.children
}

// Parent returns the parent id, or NoNode for the root.
func (n *Node) Parent() NodeId {
	return n.parent
}

// Bounds returns the node's last computed layout rect.
func (n *Node) Bounds() graphics.Rect {
	return n.bounds
}
