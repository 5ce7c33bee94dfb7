// Package bundle loads app bundles: directories carrying an app.toml
// manifest next to their skin, font and action script files. Loading
// validates every referenced path up front, so a bundle that loads is a
// bundle that runs.
package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/mod/semver"

	"github.com/choneface/curvy/pkg/graphics"
	"github.com/choneface/curvy/pkg/skin"
)

// EngineVersion is the toolkit version bundles check their
// [engine] min_version requirement against.
const EngineVersion = "v0.4.0"

// Meta is the [app] section of app.toml.
type Meta struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
	Author  string `toml:"author"`
}

type manifest struct {
	App     Meta              `toml:"app"`
	Skin    skinConfig        `toml:"skin"`
	Fonts   fontConfig        `toml:"fonts"`
	Engine  engineConfig      `toml:"engine"`
	Actions map[string]string `toml:"actions"`
}

type skinConfig struct {
	Path string `toml:"path"`
}

type fontConfig struct {
	Default string  `toml:"default"`
	Size    float64 `toml:"size"`
}

type engineConfig struct {
	MinVersion string `toml:"min_version"`
}

const defaultFontSize = 16

// Bundle is a loaded app bundle with every path resolved and validated.
type Bundle struct {
	root     string
	Meta     Meta
	skinPath string
	fontPath string
	FontSize float64
	scripts  map[string]string
}

// Load reads and validates the bundle at path.
func Load(path string) (*Bundle, error) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return nil, &NotFoundError{Path: path}
	}

	manifestPath := filepath.Join(path, "app.toml")
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, &NoManifestError{Path: path}
	}

	var m manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", manifestPath, err)
	}

	if m.Engine.MinVersion != "" {
		min := canonicalVersion(m.Engine.MinVersion)
		if !semver.IsValid(min) {
			return nil, fmt.Errorf("invalid engine min_version %q in %s", m.Engine.MinVersion, manifestPath)
		}
		if semver.Compare(EngineVersion, min) < 0 {
			return nil, &IncompatibleEngineError{Required: min, Engine: EngineVersion}
		}
	}

	if m.Skin.Path == "" {
		return nil, &MissingFieldError{Field: "skin.path"}
	}
	skinPath := filepath.Join(path, m.Skin.Path)
	if _, err := os.Stat(skinPath); err != nil {
		return nil, &SkinNotFoundError{Path: skinPath}
	}

	if m.Fonts.Default == "" {
		return nil, &MissingFieldError{Field: "fonts.default"}
	}
	fontPath := filepath.Join(path, m.Fonts.Default)
	if _, err := os.Stat(fontPath); err != nil {
		return nil, &FontNotFoundError{Path: fontPath}
	}
	size := m.Fonts.Size
	if size == 0 {
		size = defaultFontSize
	}

	scripts := make(map[string]string, len(m.Actions))
	for action, rel := range m.Actions {
		scriptPath := filepath.Join(path, rel)
		if _, err := os.Stat(scriptPath); err != nil {
			return nil, &ScriptNotFoundError{Action: action, Path: scriptPath}
		}
		scripts[action] = scriptPath
	}

	return &Bundle{
		root:     path,
		Meta:     m.App,
		skinPath: skinPath,
		fontPath: fontPath,
		FontSize: size,
		scripts:  scripts,
	}, nil
}

// canonicalVersion accepts versions with or without the leading v.
func canonicalVersion(v string) string {
	if v == "" || v[0] == 'v' {
		return v
	}
	return "v" + v
}

// Root returns the bundle directory.
func (b *Bundle) Root() string { return b.root }

// SkinPath returns the resolved skin file path.
func (b *Bundle) SkinPath() string { return b.skinPath }

// FontPath returns the resolved default font path.
func (b *Bundle) FontPath() string { return b.fontPath }

// Script returns the resolved script path for an action, or "".
func (b *Bundle) Script(action string) string { return b.scripts[action] }

// HasAction reports whether the bundle defines a script for an action.
func (b *Bundle) HasAction(action string) bool {
	_, ok := b.scripts[action]
	return ok
}

// ActionNames returns the defined action names, sorted.
func (b *Bundle) ActionNames() []string {
	names := make([]string, 0, len(b.scripts))
	for name := range b.scripts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadSkin parses the bundle's skin and decodes its assets.
func (b *Bundle) LoadSkin() (*skin.LoadedSkin, error) {
	return skin.LoadSkin(b.skinPath)
}

// LoadFont loads the bundle's default font at its configured size.
func (b *Bundle) LoadFont() (*graphics.Font, error) {
	return graphics.LoadFont(b.fontPath, b.FontSize)
}
