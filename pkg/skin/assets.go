package skin

import (
	"fmt"

	"github.com/choneface/curvy/pkg/graphics"
)

// LoadedSkin is a skin with every referenced asset decoded and ready.
// Loading is all-or-nothing: one missing or undecodable asset fails the
// whole skin.
type LoadedSkin struct {
	Skin   *Skin
	images map[string]*graphics.Image
}

// LoadAssets decodes every image in the skin's asset table.
func LoadAssets(s *Skin) (*LoadedSkin, error) {
	images := make(map[string]*graphics.Image, len(s.Assets))
	for key, path := range s.Assets {
		img, err := graphics.DecodeImage(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load asset %q from %s: %w", key, path, err)
		}
		images[key] = img
	}
	return &LoadedSkin{Skin: s, images: images}, nil
}

// LoadSkin parses a skin file and loads its assets in one step.
func LoadSkin(path string) (*LoadedSkin, error) {
	s, err := Load(path)
	if err != nil {
		return nil, err
	}
	return LoadAssets(s)
}

// Window returns the skin's window configuration.
func (l *LoadedSkin) Window() Window {
	return l.Skin.Window
}

// Image returns the decoded image for an asset key, or nil.
func (l *LoadedSkin) Image(key string) *graphics.Image {
	return l.images[key]
}

// image resolves an asset key or fails with AssetNotFoundError.
func (l *LoadedSkin) image(key string) (*graphics.Image, error) {
	img, ok := l.images[key]
	if !ok {
		return nil, &AssetNotFoundError{Key: key}
	}
	return img, nil
}
