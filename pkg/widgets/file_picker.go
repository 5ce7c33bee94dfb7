package widgets

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/choneface/curvy/pkg/graphics"
	"github.com/choneface/curvy/pkg/store"
	"github.com/choneface/curvy/pkg/ui"
)

// FileEntry is one row of the file list.
type FileEntry struct {
	Name  string
	Path  string
	IsDir bool
}

// FilePicker combines a directory bar with a scrollable, filtered file
// list. Clicking the browse button emits the pick action; clicking a list
// row selects the entry, or descends into it when it is a directory.
// The selected file path syncs to the store through the binding.
type FilePicker struct {
	width  int
	height int

	pickerNormal    *graphics.Image
	pickerHover     *graphics.Image
	pickerBtnNormal *graphics.Image
	pickerBtnHover  *graphics.Image

	trackImage *graphics.Image
	thumbImage *graphics.Image

	itemNormal   *graphics.Image
	itemHover    *graphics.Image
	itemSelected *graphics.Image

	dir     string
	entries []FileEntry
	filter  string

	hoveredIndex  int
	selectedIndex int

	scrollY        float64
	itemHeight     int
	pickerHeight   int
	scrollbarWidth int

	font      *graphics.Font
	fontSize  float64
	textColor graphics.Color
	dirColor  graphics.Color
	padding   int

	binding      string
	pickAction   string
	selectAction string
	armedAction  string
	dirty        bool

	pickerBtnHovered bool
}

const noEntry = -1

// NewFilePicker creates a file picker from its skin images. The picker
// bar height, scrollbar width and item height come from the images.
func NewFilePicker(width, height int,
	pickerNormal, pickerHover, pickerBtnNormal, pickerBtnHover,
	track, thumb,
	itemNormal, itemHover, itemSelected *graphics.Image) *FilePicker {
	return &FilePicker{
		width:           width,
		height:          height,
		pickerNormal:    pickerNormal,
		pickerHover:     pickerHover,
		pickerBtnNormal: pickerBtnNormal,
		pickerBtnHover:  pickerBtnHover,
		trackImage:      track,
		thumbImage:      thumb,
		itemNormal:      itemNormal,
		itemHover:       itemHover,
		itemSelected:    itemSelected,
		hoveredIndex:    noEntry,
		selectedIndex:   noEntry,
		itemHeight:      itemNormal.Height,
		pickerHeight:    pickerNormal.Height,
		scrollbarWidth:  track.Width,
		textColor:       graphics.Color(0xDDDDDD),
		dirColor:        graphics.Color(0x88AAFF),
		padding:         8,
	}
}

// WithFont sets the font used for the bar and list text.
func (f *FilePicker) WithFont(font *graphics.Font, size float64) *FilePicker {
	f.font = font
	f.fontSize = size
	return f
}

// WithFilter keeps only entries whose name contains the substring.
func (f *FilePicker) WithFilter(filter string) *FilePicker {
	f.filter = filter
	return f
}

// WithTextColor sets the file name color.
func (f *FilePicker) WithTextColor(color graphics.Color) *FilePicker {
	f.textColor = color
	return f
}

// WithDirColor sets the directory name color.
func (f *FilePicker) WithDirColor(color graphics.Color) *FilePicker {
	f.dirColor = color
	return f
}

// WithPadding sets the horizontal text inset.
func (f *FilePicker) WithPadding(padding int) *FilePicker {
	f.padding = padding
	return f
}

// WithBinding sets the store key the selected file syncs to.
func (f *FilePicker) WithBinding(key string) *FilePicker {
	f.binding = key
	return f
}

// WithPickAction sets the action dispatched by the browse button.
func (f *FilePicker) WithPickAction(name string) *FilePicker {
	f.pickAction = name
	return f
}

// WithSelectAction sets the action dispatched when a file is selected.
func (f *FilePicker) WithSelectAction(name string) *FilePicker {
	f.selectAction = name
	return f
}

// Binding returns the store key, or "".
func (f *FilePicker) Binding() string { return f.binding }

// Action returns the action armed by the most recent click. It is the
// pick action after a browse click and the select action after a file
// row click.
func (f *FilePicker) Action() string { return f.armedAction }

// Directory returns the listed directory, or "".
func (f *FilePicker) Directory() string { return f.dir }

// Entries returns the current filtered listing.
func (f *FilePicker) Entries() []FileEntry { return f.entries }

// SelectedFile returns the path of the selected entry, or "".
func (f *FilePicker) SelectedFile() string {
	if f.selectedIndex == noEntry || f.selectedIndex >= len(f.entries) {
		return ""
	}
	return f.entries[f.selectedIndex].Path
}

// Value returns the selected file path for store sync.
func (f *FilePicker) Value() store.Value {
	return store.String(f.SelectedFile())
}

// Dirty reports whether the selection changed since the last sync.
func (f *FilePicker) Dirty() bool { return f.dirty }

// ClearDirty resets the dirty flag.
func (f *FilePicker) ClearDirty() { f.dirty = false }

// SetDirectory lists a new directory, resetting scroll and selection.
func (f *FilePicker) SetDirectory(path string) {
	f.dir = path
	f.refreshEntries()
	f.scrollY = 0
	f.selectedIndex = noEntry
	f.hoveredIndex = noEntry
}

func (f *FilePicker) refreshEntries() {
	f.entries = f.entries[:0]
	if f.dir == "" {
		return
	}
	dirents, err := os.ReadDir(f.dir)
	if err != nil {
		return
	}
	for _, de := range dirents {
		name := de.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if f.filter != "" && !strings.Contains(name, f.filter) {
			continue
		}
		f.entries = append(f.entries, FileEntry{
			Name:  name,
			Path:  filepath.Join(f.dir, name),
			IsDir: de.IsDir(),
		})
	}
	sort.SliceStable(f.entries, func(i, j int) bool {
		a, b := f.entries[i], f.entries[j]
		if a.IsDir != b.IsDir {
			return a.IsDir
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})
}

func (f *FilePicker) listWidth() int  { return f.width - f.scrollbarWidth }
func (f *FilePicker) listHeight() int { return f.height - f.pickerHeight }

func (f *FilePicker) contentHeight() int {
	return len(f.entries) * f.itemHeight
}

func (f *FilePicker) maxScroll() float64 {
	if c := f.contentHeight(); c > f.listHeight() {
		return float64(c - f.listHeight())
	}
	return 0
}

func (f *FilePicker) scrollBy(delta float64) {
	f.scrollY = clampFloat(f.scrollY-delta*30, 0, f.maxScroll())
}

func (f *FilePicker) scrollRatio() float64 {
	if m := f.maxScroll(); m > 0 {
		return f.scrollY / m
	}
	return 0
}

// entryAt maps a widget-local position to a list entry index, or noEntry.
func (f *FilePicker) entryAt(x, y int) int {
	if x < 0 || x >= f.listWidth() || y < f.pickerHeight || y >= f.height {
		return noEntry
	}
	i := (y - f.pickerHeight + int(f.scrollY)) / f.itemHeight
	if i < 0 || i >= len(f.entries) {
		return noEntry
	}
	return i
}

// overButton reports whether a widget-local position is on the browse
// button.
func (f *FilePicker) overButton(x, y int) bool {
	return y >= 0 && y < f.pickerHeight && x >= f.width-f.pickerBtnNormal.Width
}

func (f *FilePicker) drawPicker(canvas *graphics.Canvas, bounds graphics.Rect, hovered bool) {
	pickerBounds := graphics.Rect{X: bounds.X, Y: bounds.Y, Width: f.width, Height: f.pickerHeight}

	bg := f.pickerNormal
	if hovered {
		bg = f.pickerHover
	}
	canvas.DrawImage(bg, bounds.X, bounds.Y, &pickerBounds)

	btn := f.pickerBtnNormal
	if f.pickerBtnHovered {
		btn = f.pickerBtnHover
	}
	btnX := bounds.X + f.width - btn.Width
	canvas.DrawImage(btn, btnX, bounds.Y, &pickerBounds)

	text := f.dir
	if text == "" {
		text = "Select directory..."
	}
	text = truncatePath(text, 60)

	textClip := graphics.Rect{
		X:      bounds.X + f.padding,
		Y:      bounds.Y,
		Width:  f.width - btn.Width - f.padding*2,
		Height: f.pickerHeight,
	}
	lineH := f.font.LineHeight(f.fontSize)
	textY := bounds.Y + (f.pickerHeight-lineH)/2
	f.font.DrawText(canvas, bounds.X+f.padding, textY, &textClip, text, f.textColor, f.fontSize)
}

func (f *FilePicker) drawScrollbar(canvas *graphics.Canvas, bounds graphics.Rect) {
	trackX := bounds.X + f.width - f.scrollbarWidth
	trackY := bounds.Y + f.pickerHeight
	track := graphics.Rect{X: trackX, Y: trackY, Width: f.scrollbarWidth, Height: f.listHeight()}

	for y := trackY; y < trackY+f.listHeight(); y += f.trackImage.Height {
		canvas.DrawImage(f.trackImage, trackX, y, &track)
	}

	trackRange := f.listHeight() - f.thumbImage.Height
	thumbY := trackY + int(float64(trackRange)*f.scrollRatio())
	canvas.DrawImage(f.thumbImage, trackX, thumbY, nil)
}

func (f *FilePicker) drawList(canvas *graphics.Canvas, bounds graphics.Rect) {
	listArea := graphics.Rect{
		X:      bounds.X,
		Y:      bounds.Y + f.pickerHeight,
		Width:  f.listWidth(),
		Height: f.listHeight(),
	}
	prev := canvas.ClipRect()
	effective := listArea
	if prev != nil {
		effective = effective.Intersect(*prev)
	}
	canvas.SetClip(&effective)

	listY := bounds.Y + f.pickerHeight
	for i, entry := range f.entries {
		itemY := listY + i*f.itemHeight - int(f.scrollY)
		if itemY+f.itemHeight <= listY || itemY >= listY+f.listHeight() {
			continue
		}

		bg := f.itemNormal
		switch i {
		case f.selectedIndex:
			bg = f.itemSelected
		case f.hoveredIndex:
			bg = f.itemHover
		}

		// Tile the row image across the list width.
		for x := bounds.X; x < bounds.X+f.listWidth(); x += bg.Width {
			canvas.DrawImage(bg, x, itemY, &listArea)
		}

		name := entry.Name
		color := f.textColor
		if entry.IsDir {
			name = "[DIR] " + name
			color = f.dirColor
		}
		lineH := f.font.LineHeight(f.fontSize)
		textY := itemY + (f.itemHeight-lineH)/2
		f.font.DrawText(canvas, bounds.X+f.padding, textY, &listArea, name, color, f.fontSize)
	}

	canvas.SetClip(prev)
}

func (f *FilePicker) Draw(canvas *graphics.Canvas, bounds graphics.Rect, state ui.State) {
	f.drawPicker(canvas, bounds, state.Hovered)
	f.drawScrollbar(canvas, bounds)
	f.drawList(canvas, bounds)
}

func (f *FilePicker) PreferredSize() (int, int) {
	return f.width, f.height
}

// HandleEvent resolves widget-local clicks against the browse button and
// the list rows, tracks hover, and scrolls the list on wheel events.
func (f *FilePicker) HandleEvent(event ui.Event) bool {
	switch e := event.(type) {
	case ui.PointerMoveEvent:
		f.pickerBtnHovered = f.overButton(e.X, e.Y)
		f.hoveredIndex = f.entryAt(e.X, e.Y)
		return false
	case ui.ClickEvent:
		f.armedAction = ""
		if f.overButton(e.X, e.Y) || e.Y < f.pickerHeight {
			f.armedAction = f.pickAction
			return true
		}
		if i := f.entryAt(e.X, e.Y); i != noEntry {
			if f.entries[i].IsDir {
				f.SetDirectory(f.entries[i].Path)
				return true
			}
			if f.selectedIndex != i {
				f.selectedIndex = i
				f.dirty = true
			}
			f.armedAction = f.selectAction
			return true
		}
		return true
	case ui.WheelEvent:
		if f.maxScroll() > 0 {
			f.scrollBy(e.DeltaY)
			return true
		}
		return false
	}
	return false
}
