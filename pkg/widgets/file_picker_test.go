package widgets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/choneface/curvy/pkg/graphics"
	"github.com/choneface/curvy/pkg/ui"
)

func newTestPicker(t *testing.T, filter string) *FilePicker {
	t.Helper()
	bar := graphics.NewImage(200, 24)
	btn := graphics.NewImage(24, 24)
	track := graphics.NewImage(12, 16)
	thumb := graphics.NewImage(12, 32)
	item := graphics.NewImage(100, 20)
	p := NewFilePicker(200, 224, bar, bar, btn, btn, track, thumb, item, item, item)
	if filter != "" {
		p = p.WithFilter(filter)
	}
	return p
}

func writeTestDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func entryNames(entries []FileEntry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

func TestFilePickerListingSortsDirectoriesFirst(t *testing.T) {
	dir := writeTestDir(t, "zeta.txt", "Alpha.txt")
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	p := newTestPicker(t, "")
	p.SetDirectory(dir)

	got := entryNames(p.Entries())
	want := []string{"sub", "Alpha.txt", "zeta.txt"}
	if len(got) != len(want) {
		t.Fatalf("entries = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entries = %v, want %v", got, want)
		}
	}
}

func TestFilePickerFilterAndHiddenFiles(t *testing.T) {
	dir := writeTestDir(t, "song.trk", "notes.txt", ".hidden.trk")

	p := newTestPicker(t, ".trk")
	p.SetDirectory(dir)

	got := entryNames(p.Entries())
	if len(got) != 1 || got[0] != "song.trk" {
		t.Fatalf("entries = %v, want [song.trk]", got)
	}
}

func TestFilePickerClickSelectsEntry(t *testing.T) {
	dir := writeTestDir(t, "a.txt", "b.txt")

	p := newTestPicker(t, "").WithBinding("file").WithSelectAction("file_chosen")
	p.SetDirectory(dir)

	// Second row: picker bar is 24px, items are 20px tall.
	if !p.HandleEvent(ui.ClickEvent{X: 10, Y: 24 + 20 + 5}) {
		t.Fatal("list click should be consumed")
	}
	if got := p.SelectedFile(); got != filepath.Join(dir, "b.txt") {
		t.Fatalf("SelectedFile() = %q", got)
	}
	if !p.Dirty() {
		t.Fatal("selection should mark the picker dirty")
	}
	if p.Action() != "file_chosen" {
		t.Fatalf("Action() = %q, want %q", p.Action(), "file_chosen")
	}
}

func TestFilePickerClickDescendsIntoDirectory(t *testing.T) {
	dir := writeTestDir(t)
	sub := filepath.Join(dir, "inner")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "deep.txt"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	p := newTestPicker(t, "")
	p.SetDirectory(dir)

	p.HandleEvent(ui.ClickEvent{X: 10, Y: 24 + 5})
	if p.Directory() != sub {
		t.Fatalf("Directory() = %q, want %q", p.Directory(), sub)
	}
	if got := entryNames(p.Entries()); len(got) != 1 || got[0] != "deep.txt" {
		t.Fatalf("entries after descend = %v", got)
	}
	if p.Dirty() {
		t.Fatal("descending must not mark the picker dirty")
	}
}

func TestFilePickerBrowseButtonArmsPickAction(t *testing.T) {
	p := newTestPicker(t, "").WithPickAction("choose_dir")

	if !p.HandleEvent(ui.ClickEvent{X: 190, Y: 10}) {
		t.Fatal("button click should be consumed")
	}
	if p.Action() != "choose_dir" {
		t.Fatalf("Action() = %q, want %q", p.Action(), "choose_dir")
	}
}

func TestFilePickerWheelScrollClamped(t *testing.T) {
	names := make([]string, 20)
	for i := range names {
		names[i] = string(rune('a'+i)) + ".txt"
	}
	dir := writeTestDir(t, names...)

	p := newTestPicker(t, "")
	p.SetDirectory(dir)

	// 20 items * 20px = 400 content vs 200 visible.
	if p.maxScroll() != 200 {
		t.Fatalf("maxScroll() = %v, want 200", p.maxScroll())
	}

	if !p.HandleEvent(ui.WheelEvent{DeltaY: -100}) {
		t.Fatal("wheel should be consumed while scrollable")
	}
	if p.scrollY != 200 {
		t.Fatalf("scrollY = %v, want clamped to 200", p.scrollY)
	}

	p.HandleEvent(ui.WheelEvent{DeltaY: 100})
	if p.scrollY != 0 {
		t.Fatalf("scrollY = %v, want clamped to 0", p.scrollY)
	}
}

func TestVScrollClampAndRatio(t *testing.T) {
	v := NewVScroll(100, 100, 12).WithContentHeight(300)

	if v.MaxScroll() != 200 {
		t.Fatalf("MaxScroll() = %v, want 200", v.MaxScroll())
	}

	v.ScrollBy(-50)
	if v.scrollY != 50 {
		t.Fatalf("scrollY = %v, want 50", v.scrollY)
	}
	if got := v.ScrollRatio(); got != 0.25 {
		t.Fatalf("ScrollRatio() = %v, want 0.25", got)
	}

	v.ScrollBy(-1000)
	if v.scrollY != 200 {
		t.Fatalf("scrollY = %v, want clamped to 200", v.scrollY)
	}
	v.ScrollBy(1000)
	if v.scrollY != 0 {
		t.Fatalf("scrollY = %v, want clamped to 0", v.scrollY)
	}
}

func TestVScrollWheelIgnoredWhenContentFits(t *testing.T) {
	v := NewVScroll(100, 100, 12).WithContentHeight(80)

	if v.HandleEvent(ui.WheelEvent{DeltaY: -10}) {
		t.Fatal("wheel must not be consumed when nothing can scroll")
	}
}
