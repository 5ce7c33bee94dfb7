package skin

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/choneface/curvy/pkg/graphics"
	"github.com/choneface/curvy/pkg/widgets"
)

// Raw decode targets. YAML is the primary format; .json files decode
// through the same structs for compatibility with older skins.

type rawSkin struct {
	Skin   rawMeta           `yaml:"skin" json:"skin"`
	Window rawWindow         `yaml:"window" json:"window"`
	Assets map[string]string `yaml:"assets" json:"assets"`
	Parts  []rawPart         `yaml:"parts" json:"parts"`
}

type rawMeta struct {
	Name    string `yaml:"name" json:"name"`
	Author  string `yaml:"author" json:"author"`
	Version string `yaml:"version" json:"version"`
}

type rawWindow struct {
	Width     int  `yaml:"width" json:"width"`
	Height    int  `yaml:"height" json:"height"`
	Resizable bool `yaml:"resizable" json:"resizable"`
}

type rawPart struct {
	ID     string `yaml:"id" json:"id"`
	Type   string `yaml:"type" json:"type"`
	Asset  string `yaml:"asset" json:"asset"`
	X      int    `yaml:"x" json:"x"`
	Y      int    `yaml:"y" json:"y"`
	Width  int    `yaml:"width" json:"width"`
	Height int    `yaml:"height" json:"height"`
	Z      int    `yaml:"z" json:"z"`

	Draw                *rawPartDraw       `yaml:"draw" json:"draw"`
	TextInputDraw       *rawTextInputDraw  `yaml:"text_input_draw" json:"text_input_draw"`
	CheckboxDraw        *rawCheckboxDraw   `yaml:"checkbox_draw" json:"checkbox_draw"`
	Scrollbar           *rawScrollbar      `yaml:"scrollbar" json:"scrollbar"`
	DirectoryPickerDraw *rawDirPickerDraw  `yaml:"directory_picker_draw" json:"directory_picker_draw"`
	FilePickerDraw      *rawFilePickerDraw `yaml:"file_picker_draw" json:"file_picker_draw"`

	Action        string   `yaml:"action" json:"action"`
	TextColor     string   `yaml:"text_color" json:"text_color"`
	Padding       *int     `yaml:"padding" json:"padding"`
	FontSize      *float64 `yaml:"font_size" json:"font_size"`
	MaxLength     *int     `yaml:"max_length" json:"max_length"`
	Validation    string   `yaml:"validation" json:"validation"`
	Content       string   `yaml:"content" json:"content"`
	Label         string   `yaml:"label" json:"label"`
	TextAlign     string   `yaml:"text_align" json:"text_align"`
	VerticalAlign string   `yaml:"vertical_align" json:"vertical_align"`
	Binding       string   `yaml:"binding" json:"binding"`
	ContentHeight *int     `yaml:"content_height" json:"content_height"`
	Filter        string   `yaml:"filter" json:"filter"`
	OnSelect      string   `yaml:"on_select" json:"on_select"`
	Child         *rawPart `yaml:"child" json:"child"`
}

type rawPartDraw struct {
	Normal  string `yaml:"normal" json:"normal"`
	Hover   string `yaml:"hover" json:"hover"`
	Pressed string `yaml:"pressed" json:"pressed"`
}

type rawTextInputDraw struct {
	Normal  string `yaml:"normal" json:"normal"`
	Hover   string `yaml:"hover" json:"hover"`
	Focused string `yaml:"focused" json:"focused"`
	Invalid string `yaml:"invalid" json:"invalid"`
}

type rawCheckboxDraw struct {
	Unchecked string `yaml:"unchecked" json:"unchecked"`
	Checked   string `yaml:"checked" json:"checked"`
}

type rawScrollbar struct {
	Width int    `yaml:"width" json:"width"`
	Track string `yaml:"track" json:"track"`
	Thumb string `yaml:"thumb" json:"thumb"`
}

type rawDirPickerDraw struct {
	Normal       string `yaml:"normal" json:"normal"`
	Hover        string `yaml:"hover" json:"hover"`
	ButtonNormal string `yaml:"button_normal" json:"button_normal"`
	ButtonHover  string `yaml:"button_hover" json:"button_hover"`
}

type rawFilePickerDraw struct {
	PickerNormal    string `yaml:"picker_normal" json:"picker_normal"`
	PickerHover     string `yaml:"picker_hover" json:"picker_hover"`
	PickerBtnNormal string `yaml:"picker_btn_normal" json:"picker_btn_normal"`
	PickerBtnHover  string `yaml:"picker_btn_hover" json:"picker_btn_hover"`
	Track           string `yaml:"track" json:"track"`
	Thumb           string `yaml:"thumb" json:"thumb"`
	ItemNormal      string `yaml:"item_normal" json:"item_normal"`
	ItemHover       string `yaml:"item_hover" json:"item_hover"`
	ItemSelected    string `yaml:"item_selected" json:"item_selected"`
}

// Load parses a skin description from disk. Format follows the file
// extension: .json decodes as JSON, everything else as YAML. Asset paths
// are resolved relative to the skin file.
func Load(path string) (*Skin, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read skin %s: %w", path, err)
	}

	var raw rawSkin
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse skin %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse skin %s: %w", path, err)
		}
	}

	base := filepath.Dir(path)
	assets := make(map[string]string, len(raw.Assets))
	for key, p := range raw.Assets {
		assets[key] = filepath.Join(base, p)
	}

	parts := make([]Part, 0, len(raw.Parts))
	for i := range raw.Parts {
		part, err := convertPart(&raw.Parts[i])
		if err != nil {
			return nil, err
		}
		parts = append(parts, *part)
	}

	return &Skin{
		Meta: Meta{
			Name:    raw.Skin.Name,
			Author:  raw.Skin.Author,
			Version: raw.Skin.Version,
		},
		Window: Window{
			Width:     raw.Window.Width,
			Height:    raw.Window.Height,
			Resizable: raw.Window.Resizable,
		},
		Assets: assets,
		Parts:  parts,
	}, nil
}

func convertPart(raw *rawPart) (*Part, error) {
	partType := PartType(raw.Type)
	switch partType {
	case PartImage:
		if raw.Asset == "" {
			return nil, &MissingSectionError{PartID: raw.ID, Section: "asset"}
		}
	case PartButton, PartTextInput, PartStaticText, PartCheckbox,
		PartVScrollContainer, PartDirectoryPicker, PartFilePicker:
	default:
		return nil, &UnknownPartError{Type: raw.Type}
	}

	part := &Part{
		ID:            raw.ID,
		Type:          partType,
		Asset:         raw.Asset,
		X:             raw.X,
		Y:             raw.Y,
		Width:         raw.Width,
		Height:        raw.Height,
		Z:             raw.Z,
		Action:        raw.Action,
		Padding:       raw.Padding,
		FontSize:      raw.FontSize,
		MaxLength:     raw.MaxLength,
		Content:       raw.Content,
		Label:         raw.Label,
		Binding:       raw.Binding,
		ContentHeight: raw.ContentHeight,
		Filter:        raw.Filter,
		OnSelect:      raw.OnSelect,
	}

	if raw.TextColor != "" {
		col, err := parseColor(raw.TextColor)
		if err != nil {
			return nil, fmt.Errorf("part %q: %w", raw.ID, err)
		}
		part.TextColor = &col
	}
	if raw.Validation != "" {
		v := parseValidation(raw.Validation)
		part.Validation = &v
	}
	if raw.TextAlign != "" {
		a := parseTextAlign(raw.TextAlign)
		part.TextAlign = &a
	}
	if raw.VerticalAlign != "" {
		a := parseVerticalAlign(raw.VerticalAlign)
		part.VerticalAlign = &a
	}

	if raw.Draw != nil {
		part.Draw = &PartDraw{
			Normal:  raw.Draw.Normal,
			Hover:   raw.Draw.Hover,
			Pressed: raw.Draw.Pressed,
		}
	}
	if raw.TextInputDraw != nil {
		part.TextInputDraw = &TextInputDraw{
			Normal:  raw.TextInputDraw.Normal,
			Hover:   raw.TextInputDraw.Hover,
			Focused: raw.TextInputDraw.Focused,
			Invalid: raw.TextInputDraw.Invalid,
		}
	}
	if raw.CheckboxDraw != nil {
		part.CheckboxDraw = &CheckboxDraw{
			Unchecked: raw.CheckboxDraw.Unchecked,
			Checked:   raw.CheckboxDraw.Checked,
		}
	}
	if raw.Scrollbar != nil {
		part.Scrollbar = &ScrollbarDraw{
			Width: raw.Scrollbar.Width,
			Track: raw.Scrollbar.Track,
			Thumb: raw.Scrollbar.Thumb,
		}
	}
	if raw.DirectoryPickerDraw != nil {
		part.DirectoryPickerDraw = &DirectoryPickerDraw{
			Normal:       raw.DirectoryPickerDraw.Normal,
			Hover:        raw.DirectoryPickerDraw.Hover,
			ButtonNormal: raw.DirectoryPickerDraw.ButtonNormal,
			ButtonHover:  raw.DirectoryPickerDraw.ButtonHover,
		}
	}
	if raw.FilePickerDraw != nil {
		part.FilePickerDraw = &FilePickerDraw{
			PickerNormal:    raw.FilePickerDraw.PickerNormal,
			PickerHover:     raw.FilePickerDraw.PickerHover,
			PickerBtnNormal: raw.FilePickerDraw.PickerBtnNormal,
			PickerBtnHover:  raw.FilePickerDraw.PickerBtnHover,
			Track:           raw.FilePickerDraw.Track,
			Thumb:           raw.FilePickerDraw.Thumb,
			ItemNormal:      raw.FilePickerDraw.ItemNormal,
			ItemHover:       raw.FilePickerDraw.ItemHover,
			ItemSelected:    raw.FilePickerDraw.ItemSelected,
		}
	}

	if raw.Child != nil {
		child, err := convertPart(raw.Child)
		if err != nil {
			return nil, err
		}
		part.Child = child
	}

	return part, nil
}

// parseColor accepts "0xRRGGBB" and "#RRGGBB" hex notations.
func parseColor(s string) (graphics.Color, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X"), "#")
	v, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return graphics.Color(v), nil
}

// parseValidation maps the mode tag; an unrecognized tag is treated as a
// character whitelist, so skins can write validation: "0123456789.".
func parseValidation(s string) widgets.Validation {
	switch s {
	case "any":
		return widgets.Validation{Mode: widgets.ValidateAny}
	case "numeric":
		return widgets.Validation{Mode: widgets.ValidateNumeric}
	case "alpha":
		return widgets.Validation{Mode: widgets.ValidateAlpha}
	case "alphanumeric":
		return widgets.Validation{Mode: widgets.ValidateAlphanumeric}
	default:
		return widgets.Validation{Mode: widgets.ValidateCharset, Charset: s}
	}
}

func parseTextAlign(s string) widgets.TextAlign {
	switch s {
	case "center":
		return widgets.AlignCenter
	case "right":
		return widgets.AlignRight
	default:
		return widgets.AlignLeft
	}
}

func parseVerticalAlign(s string) widgets.VerticalAlign {
	switch s {
	case "top":
		return widgets.VAlignTop
	case "bottom":
		return widgets.VAlignBottom
	default:
		return widgets.VAlignCenter
	}
}
