package skin

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/choneface/curvy/pkg/widgets"
)

const testSkinYAML = `
skin:
  name: Test Skin
  author: someone
  version: "1.2.0"
window:
  width: 640
  height: 480
  resizable: true
assets:
  bg: images/bg.png
  btn_n: images/btn_n.png
parts:
  - id: background
    type: image
    asset: bg
    x: 0
    y: 0
    width: 640
    height: 480
    z: -10
  - id: name_input
    type: text_input
    x: 20
    y: 40
    width: 200
    height: 24
    z: 5
    text_color: "0xDDEEFF"
    validation: alphanumeric
    max_length: 12
    binding: user.name
    text_input_draw:
      normal: btn_n
      hover: btn_n
      focused: btn_n
  - id: list
    type: vscroll_container
    x: 0
    y: 80
    width: 300
    height: 200
    content_height: 600
    scrollbar:
      width: 12
      track: btn_n
      thumb: btn_n
    child:
      id: list_text
      type: static_text
      x: 0
      y: 0
      width: 288
      height: 600
      content: hello
      text_align: center
      vertical_align: top
`

func writeSkinFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeSkinFile(t, "skin.yaml", testSkinYAML)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if s.Meta.Name != "Test Skin" || s.Meta.Version != "1.2.0" {
		t.Fatalf("meta = %+v", s.Meta)
	}
	if s.Window.Width != 640 || s.Window.Height != 480 || !s.Window.Resizable {
		t.Fatalf("window = %+v", s.Window)
	}
	if len(s.Parts) != 3 {
		t.Fatalf("len(parts) = %d, want 3", len(s.Parts))
	}

	// Asset paths resolve relative to the skin file.
	wantBg := filepath.Join(filepath.Dir(path), "images/bg.png")
	if s.Assets["bg"] != wantBg {
		t.Fatalf("assets[bg] = %q, want %q", s.Assets["bg"], wantBg)
	}

	input := s.Parts[1]
	if input.Type != PartTextInput {
		t.Fatalf("part type = %q", input.Type)
	}
	if input.TextColor == nil || uint32(*input.TextColor) != 0xDDEEFF {
		t.Fatalf("text color = %v", input.TextColor)
	}
	if input.Validation == nil || input.Validation.Mode != widgets.ValidateAlphanumeric {
		t.Fatalf("validation = %v", input.Validation)
	}
	if input.MaxLength == nil || *input.MaxLength != 12 {
		t.Fatalf("max length = %v", input.MaxLength)
	}
	if input.Binding != "user.name" {
		t.Fatalf("binding = %q", input.Binding)
	}

	scroll := s.Parts[2]
	if scroll.Child == nil {
		t.Fatal("scroll part lost its child")
	}
	if scroll.Child.Type != PartStaticText || scroll.Child.Content != "hello" {
		t.Fatalf("child = %+v", scroll.Child)
	}
	if scroll.Child.TextAlign == nil || *scroll.Child.TextAlign != widgets.AlignCenter {
		t.Fatalf("child text align = %v", scroll.Child.TextAlign)
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeSkinFile(t, "skin.json", `{
		"skin": {"name": "J", "author": "a", "version": "0.1.0"},
		"window": {"width": 100, "height": 50},
		"assets": {"bg": "bg.png"},
		"parts": [
			{"id": "bg", "type": "image", "asset": "bg",
			 "x": 0, "y": 0, "width": 100, "height": 50}
		]
	}`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.Meta.Name != "J" || len(s.Parts) != 1 || s.Parts[0].Type != PartImage {
		t.Fatalf("skin = %+v", s)
	}
}

func TestLoadUnknownPartType(t *testing.T) {
	path := writeSkinFile(t, "skin.yaml", `
skin: {name: x, author: y, version: "0"}
window: {width: 10, height: 10}
assets: {}
parts:
  - id: bad
    type: hologram
    x: 0
    y: 0
    width: 1
    height: 1
`)

	_, err := Load(path)
	var unknownErr *UnknownPartError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("Load() error = %v, want UnknownPartError", err)
	}
	if unknownErr.Type != "hologram" {
		t.Fatalf("unknown type = %q", unknownErr.Type)
	}
}

func TestLoadImagePartWithoutAsset(t *testing.T) {
	path := writeSkinFile(t, "skin.yaml", `
skin: {name: x, author: y, version: "0"}
window: {width: 10, height: 10}
assets: {}
parts:
  - id: pic
    type: image
    x: 0
    y: 0
    width: 1
    height: 1
`)

	_, err := Load(path)
	var missingErr *MissingSectionError
	if !errors.As(err, &missingErr) {
		t.Fatalf("Load() error = %v, want MissingSectionError", err)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    uint32
		wantErr bool
	}{
		{"0xFF0000", 0xFF0000, false},
		{"0X00ff00", 0x00FF00, false},
		{"#336699", 0x336699, false},
		{"not-a-color", 0, true},
	}
	for _, tt := range tests {
		got, err := parseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseColor(%q) error = %v", tt.in, err)
			continue
		}
		if !tt.wantErr && uint32(got) != tt.want {
			t.Errorf("parseColor(%q) = %06X, want %06X", tt.in, uint32(got), tt.want)
		}
	}
}

func TestParseValidationCharsetFallback(t *testing.T) {
	v := parseValidation("0123456789.")
	if v.Mode != widgets.ValidateCharset || v.Charset != "0123456789." {
		t.Fatalf("parseValidation = %+v", v)
	}
}
