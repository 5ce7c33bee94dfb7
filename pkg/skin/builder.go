package skin

import (
	"sort"

	"github.com/choneface/curvy/pkg/graphics"
	"github.com/choneface/curvy/pkg/ui"
	"github.com/choneface/curvy/pkg/widgets"
)

// Builder turns a loaded skin into a widget tree. Font is the default
// font injected into text-bearing widgets; FontSize applies when a part
// does not declare its own.
type Builder struct {
	Font     *graphics.Font
	FontSize float64
}

// Build creates the tree: a transparent root container sized to the
// skin's window, with one child per part in ascending z order. Any
// missing asset or section fails the build; no tree is returned.
func (b *Builder) Build(loaded *LoadedSkin) (*ui.UiTree, Window, error) {
	window := loaded.Skin.Window

	tree := ui.NewTree()
	root := tree.Add(widgets.NewContainer(window.Width, window.Height), ui.NoNode)
	tree.SetBounds(root, graphics.RectFromSize(window.Width, window.Height))

	parts := make([]*Part, len(loaded.Skin.Parts))
	for i := range loaded.Skin.Parts {
		parts[i] = &loaded.Skin.Parts[i]
	}
	sort.SliceStable(parts, func(i, j int) bool {
		return parts[i].Z < parts[j].Z
	})

	for _, part := range parts {
		widget, err := b.createWidget(part, loaded)
		if err != nil {
			return nil, Window{}, err
		}
		id := tree.Add(widget, root)
		tree.SetBounds(id, graphics.Rect{X: part.X, Y: part.Y, Width: part.Width, Height: part.Height})
	}

	return tree, window, nil
}

func (b *Builder) createWidget(part *Part, loaded *LoadedSkin) (ui.Widget, error) {
	switch part.Type {
	case PartImage:
		return b.buildImage(part, loaded)
	case PartButton:
		return b.buildButton(part, loaded)
	case PartTextInput:
		return b.buildTextInput(part, loaded)
	case PartStaticText:
		return b.buildStaticText(part), nil
	case PartCheckbox:
		return b.buildCheckbox(part, loaded)
	case PartVScrollContainer:
		return b.buildVScroll(part, loaded)
	case PartDirectoryPicker:
		return b.buildDirectoryPicker(part, loaded)
	case PartFilePicker:
		return b.buildFilePicker(part, loaded)
	default:
		return nil, &UnknownPartError{Type: string(part.Type)}
	}
}

func (b *Builder) fontSize(part *Part) float64 {
	if part.FontSize != nil {
		return *part.FontSize
	}
	return b.FontSize
}

func (b *Builder) buildImage(part *Part, loaded *LoadedSkin) (ui.Widget, error) {
	img, err := loaded.image(part.Asset)
	if err != nil {
		return nil, err
	}
	return widgets.NewImage(img), nil
}

func (b *Builder) buildButton(part *Part, loaded *LoadedSkin) (ui.Widget, error) {
	draw := part.Draw
	if draw == nil {
		return nil, &MissingSectionError{PartID: part.ID, Section: "draw"}
	}
	normal, err := loaded.image(draw.Normal)
	if err != nil {
		return nil, err
	}
	hover, err := loaded.image(draw.Hover)
	if err != nil {
		return nil, err
	}
	pressed, err := loaded.image(draw.Pressed)
	if err != nil {
		return nil, err
	}
	return widgets.NewImageButton(normal, hover, pressed, part.Action), nil
}

func (b *Builder) buildTextInput(part *Part, loaded *LoadedSkin) (ui.Widget, error) {
	draw := part.TextInputDraw
	if draw == nil {
		return nil, &MissingSectionError{PartID: part.ID, Section: "text_input_draw"}
	}
	normal, err := loaded.image(draw.Normal)
	if err != nil {
		return nil, err
	}
	hover, err := loaded.image(draw.Hover)
	if err != nil {
		return nil, err
	}
	focused, err := loaded.image(draw.Focused)
	if err != nil {
		return nil, err
	}
	var invalid *graphics.Image
	if draw.Invalid != "" {
		if invalid, err = loaded.image(draw.Invalid); err != nil {
			return nil, err
		}
	}

	input := widgets.NewTextInput(normal, hover, focused, invalid, b.Font).
		WithFontSize(b.fontSize(part))
	if part.Action != "" {
		input = input.WithOnChange(part.Action)
	}
	if part.TextColor != nil {
		input = input.WithTextColor(*part.TextColor)
	}
	if part.Padding != nil {
		input = input.WithPadding(*part.Padding)
	}
	if part.MaxLength != nil {
		input = input.WithMaxLength(*part.MaxLength)
	}
	if part.Validation != nil {
		input = input.WithValidation(*part.Validation)
	}
	if part.Binding != "" {
		input = input.WithBinding(part.Binding)
	}
	return input, nil
}

func (b *Builder) buildStaticText(part *Part) ui.Widget {
	text := widgets.NewStaticText(part.Content, b.Font).
		WithFontSize(b.fontSize(part))
	if part.TextColor != nil {
		text = text.WithTextColor(*part.TextColor)
	}
	if part.TextAlign != nil {
		text = text.WithTextAlign(*part.TextAlign)
	}
	if part.VerticalAlign != nil {
		text = text.WithVerticalAlign(*part.VerticalAlign)
	}
	if part.Padding != nil {
		text = text.WithPadding(*part.Padding)
	}
	if part.Binding != "" {
		text = text.WithBinding(part.Binding)
	}
	return text
}

func (b *Builder) buildCheckbox(part *Part, loaded *LoadedSkin) (ui.Widget, error) {
	draw := part.CheckboxDraw
	if draw == nil {
		return nil, &MissingSectionError{PartID: part.ID, Section: "checkbox_draw"}
	}
	unchecked, err := loaded.image(draw.Unchecked)
	if err != nil {
		return nil, err
	}
	checked, err := loaded.image(draw.Checked)
	if err != nil {
		return nil, err
	}

	box := widgets.NewCheckbox(unchecked, checked, b.Font).
		WithFontSize(b.fontSize(part))
	if part.Label != "" {
		box = box.WithLabel(part.Label)
	}
	if part.TextColor != nil {
		box = box.WithTextColor(*part.TextColor)
	}
	if part.Padding != nil {
		box = box.WithPadding(*part.Padding)
	}
	if part.Binding != "" {
		box = box.WithBinding(part.Binding)
	}
	if part.Action != "" {
		box = box.WithAction(part.Action)
	}
	return box, nil
}

func (b *Builder) buildVScroll(part *Part, loaded *LoadedSkin) (ui.Widget, error) {
	sb := part.Scrollbar
	if sb == nil {
		return nil, &MissingSectionError{PartID: part.ID, Section: "scrollbar"}
	}
	track, err := loaded.image(sb.Track)
	if err != nil {
		return nil, err
	}
	thumb, err := loaded.image(sb.Thumb)
	if err != nil {
		return nil, err
	}

	scroll := widgets.NewSkinnedVScroll(part.Width, part.Height, track, thumb)
	if part.ContentHeight != nil {
		scroll = scroll.WithContentHeight(*part.ContentHeight)
	}
	if part.Child != nil {
		child, err := b.createWidget(part.Child, loaded)
		if err != nil {
			return nil, err
		}
		scroll = scroll.WithChild(child)
	}
	return scroll, nil
}

func (b *Builder) buildDirectoryPicker(part *Part, loaded *LoadedSkin) (ui.Widget, error) {
	draw := part.DirectoryPickerDraw
	if draw == nil {
		return nil, &MissingSectionError{PartID: part.ID, Section: "directory_picker_draw"}
	}
	normal, err := loaded.image(draw.Normal)
	if err != nil {
		return nil, err
	}
	hover, err := loaded.image(draw.Hover)
	if err != nil {
		return nil, err
	}
	btnNormal, err := loaded.image(draw.ButtonNormal)
	if err != nil {
		return nil, err
	}
	btnHover, err := loaded.image(draw.ButtonHover)
	if err != nil {
		return nil, err
	}

	picker := widgets.NewDirectoryPicker(normal, hover, btnNormal, btnHover).
		WithFont(b.Font, b.fontSize(part))
	if part.TextColor != nil {
		picker = picker.WithTextColor(*part.TextColor)
	}
	if part.Padding != nil {
		picker = picker.WithPadding(*part.Padding)
	}
	if part.Binding != "" {
		picker = picker.WithBinding(part.Binding)
	}
	if part.Action != "" {
		picker = picker.WithPickAction(part.Action)
	}
	return picker, nil
}

func (b *Builder) buildFilePicker(part *Part, loaded *LoadedSkin) (ui.Widget, error) {
	draw := part.FilePickerDraw
	if draw == nil {
		return nil, &MissingSectionError{PartID: part.ID, Section: "file_picker_draw"}
	}

	keys := []string{
		draw.PickerNormal, draw.PickerHover, draw.PickerBtnNormal,
		draw.PickerBtnHover, draw.Track, draw.Thumb,
		draw.ItemNormal, draw.ItemHover, draw.ItemSelected,
	}
	images := make([]*graphics.Image, len(keys))
	for i, key := range keys {
		img, err := loaded.image(key)
		if err != nil {
			return nil, err
		}
		images[i] = img
	}

	picker := widgets.NewFilePicker(part.Width, part.Height,
		images[0], images[1], images[2], images[3],
		images[4], images[5],
		images[6], images[7], images[8]).
		WithFont(b.Font, b.fontSize(part))
	if part.Filter != "" {
		picker = picker.WithFilter(part.Filter)
	}
	if part.TextColor != nil {
		picker = picker.WithTextColor(*part.TextColor)
	}
	if part.Padding != nil {
		picker = picker.WithPadding(*part.Padding)
	}
	if part.Binding != "" {
		picker = picker.WithBinding(part.Binding)
	}
	if part.Action != "" {
		picker = picker.WithPickAction(part.Action)
	}
	if part.OnSelect != "" {
		picker = picker.WithSelectAction(part.OnSelect)
	}
	return picker, nil
}
