package app

import (
	"github.com/choneface/curvy/pkg/store"
	"github.com/choneface/curvy/pkg/ui"
)

// InputSource is a widget whose user-edited value flows into the store.
// TextInput, Checkbox and FilePicker satisfy it.
type InputSource interface {
	Binding() string
	Dirty() bool
	ClearDirty()
	Value() store.Value
}

// DisplaySink is a widget whose displayed text flows from the store.
// StaticText and DirectoryPicker satisfy it.
type DisplaySink interface {
	Binding() string
	Content() string
	SetContent(text string)
}

// ActionSource is a widget that names an action to dispatch when it is
// activated.
type ActionSource interface {
	Action() string
}

// Focusable marks widgets that take keyboard focus on pointer press.
type Focusable interface {
	AcceptsFocus() bool
}

// Sync reconciles the widget tree with the store in two phases. Phase
// one drains dirty input widgets into their bound keys. Phase two pushes
// bound store values into display sinks, skipping writes when the
// rendered value is empty or already matches the widget, so placeholder
// text survives until the store actually has something to say.
func Sync(tree *ui.UiTree, st *store.Store) {
	ids := tree.NodeIds()

	for _, id := range ids {
		node := tree.Node(id)
		if node == nil {
			continue
		}
		src, ok := node.Widget().(InputSource)
		if !ok || src.Binding() == "" || !src.Dirty() {
			continue
		}
		st.Set(src.Binding(), src.Value())
		src.ClearDirty()
	}

	for _, id := range ids {
		node := tree.Node(id)
		if node == nil {
			continue
		}
		sink, ok := node.Widget().(DisplaySink)
		if !ok || sink.Binding() == "" {
			continue
		}
		value, ok := st.Get(sink.Binding())
		if !ok {
			continue
		}
		rendered := value.String()
		if rendered == "" || rendered == sink.Content() {
			continue
		}
		sink.SetContent(rendered)
	}
}
