// Package skin loads declarative skin descriptions and builds widget
// trees from them. A skin names its window, an asset table of image
// paths, and an ordered list of parts; the builder turns parts into
// widgets fail-fast, so a broken skin never produces a partial tree.
package skin

import (
	"github.com/choneface/curvy/pkg/graphics"
	"github.com/choneface/curvy/pkg/widgets"
)

// Meta identifies a skin.
type Meta struct {
	Name    string
	Author  string
	Version string
}

// Window is the window configuration a skin requests.
type Window struct {
	Width     int
	Height    int
	Resizable bool
}

// PartDraw names the three state images of a button part.
type PartDraw struct {
	Normal  string
	Hover   string
	Pressed string
}

// TextInputDraw names the state images of a text input part. Invalid is
// optional.
type TextInputDraw struct {
	Normal  string
	Hover   string
	Focused string
	Invalid string
}

// CheckboxDraw names the two state images of a checkbox part.
type CheckboxDraw struct {
	Unchecked string
	Checked   string
}

// ScrollbarDraw names the scrollbar images of a scroll container part.
type ScrollbarDraw struct {
	Width int
	Track string
	Thumb string
}

// DirectoryPickerDraw names the bar and button images of a directory
// picker part.
type DirectoryPickerDraw struct {
	Normal       string
	Hover        string
	ButtonNormal string
	ButtonHover  string
}

// FilePickerDraw names the nine images of a file picker part.
type FilePickerDraw struct {
	PickerNormal    string
	PickerHover     string
	PickerBtnNormal string
	PickerBtnHover  string
	Track           string
	Thumb           string
	ItemNormal      string
	ItemHover       string
	ItemSelected    string
}

// PartType discriminates the widget a part builds into.
type PartType string

const (
	PartImage            PartType = "image"
	PartButton           PartType = "button"
	PartTextInput        PartType = "text_input"
	PartStaticText       PartType = "static_text"
	PartCheckbox         PartType = "checkbox"
	PartVScrollContainer PartType = "vscroll_container"
	PartDirectoryPicker  PartType = "directory_picker"
	PartFilePicker       PartType = "file_picker"
)

// Part is one widget definition in a skin. Which optional sections and
// fields apply depends on Type; the builder enforces the required ones.
type Part struct {
	ID   string
	Type PartType

	// Asset key, image parts only.
	Asset string

	X      int
	Y      int
	Width  int
	Height int
	Z      int

	Draw                *PartDraw
	TextInputDraw       *TextInputDraw
	CheckboxDraw        *CheckboxDraw
	Scrollbar           *ScrollbarDraw
	DirectoryPickerDraw *DirectoryPickerDraw
	FilePickerDraw      *FilePickerDraw

	Action        string
	TextColor     *graphics.Color
	Padding       *int
	FontSize      *float64
	MaxLength     *int
	Validation    *widgets.Validation
	Content       string
	Label         string
	TextAlign     *widgets.TextAlign
	VerticalAlign *widgets.VerticalAlign
	Binding       string
	ContentHeight *int
	Filter        string
	OnSelect      string

	// Single nested part, scroll containers only.
	Child *Part
}

// Skin is a parsed skin description. Asset paths are resolved relative
// to the file they were loaded from.
type Skin struct {
	Meta   Meta
	Window Window
	Assets map[string]string
	Parts  []Part
}
