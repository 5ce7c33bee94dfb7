package widgets

import (
	"testing"

	"github.com/choneface/curvy/pkg/app"
	"github.com/choneface/curvy/pkg/graphics"
	"github.com/choneface/curvy/pkg/store"
	"github.com/choneface/curvy/pkg/ui"
)

func newTestDirPicker() *DirectoryPicker {
	bar := graphics.NewImage(200, 24)
	btn := graphics.NewImage(24, 24)
	return NewDirectoryPicker(bar, bar, btn, btn)
}

func TestDirectoryPickerSetPathSyncsToStore(t *testing.T) {
	picker := newTestDirPicker().WithBinding("paths.dir")
	picker.SetPath("/home/user/music")

	if !picker.Dirty() {
		t.Fatal("SetPath should mark the picker dirty")
	}

	tree := ui.NewTree()
	tree.Add(picker, ui.NoNode)
	st := store.New()
	app.Sync(tree, st)

	if got := st.GetStr("paths.dir"); got != "/home/user/music" {
		t.Fatalf("store value = %q, want %q", got, "/home/user/music")
	}
	if picker.Dirty() {
		t.Fatal("sync should clear the dirty flag")
	}
}

func TestDirectoryPickerSetPathDirtyOnlyOnChange(t *testing.T) {
	picker := newTestDirPicker()
	picker.SetPath("/tmp")
	picker.ClearDirty()

	picker.SetPath("/tmp")
	if picker.Dirty() {
		t.Fatal("SetPath with an unchanged path should not mark dirty")
	}
	picker.SetPath("/var")
	if !picker.Dirty() {
		t.Fatal("SetPath with a new path should mark dirty")
	}
}

func TestDirectoryPickerValue(t *testing.T) {
	picker := newTestDirPicker()
	picker.SetPath("/srv/data")

	got, ok := picker.Value().AsString()
	if !ok || got != "/srv/data" {
		t.Fatalf("Value() = %q, %v, want %q, true", got, ok, "/srv/data")
	}
}

func TestDirectoryPickerStoreToContent(t *testing.T) {
	picker := newTestDirPicker().WithBinding("paths.dir")
	tree := ui.NewTree()
	tree.Add(picker, ui.NoNode)

	st := store.New()
	st.Set("paths.dir", store.String("/opt/skins"))
	app.Sync(tree, st)

	if got := picker.Content(); got != "/opt/skins" {
		t.Fatalf("Content() = %q, want %q", got, "/opt/skins")
	}
	if picker.Dirty() {
		t.Fatal("a store write must not mark the picker dirty")
	}
}

func TestDirectoryPickerButtonHover(t *testing.T) {
	picker := newTestDirPicker()

	if consumed := picker.HandleEvent(ui.PointerMoveEvent{X: 100, Y: 12}); consumed {
		t.Fatal("pointer moves should not be consumed")
	}
	if picker.buttonHovered {
		t.Fatal("move over the bar should not hover the button")
	}

	picker.HandleEvent(ui.PointerMoveEvent{X: 190, Y: 12})
	if !picker.buttonHovered {
		t.Fatal("move over the button region should hover the button")
	}

	if consumed := picker.HandleEvent(ui.ClickEvent{X: 190, Y: 12}); !consumed {
		t.Fatal("clicks should be consumed")
	}
}
