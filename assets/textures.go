package assets

import (
	"bytes"
	"fmt"
	_ "image/png" // register decoder for ebitenutil
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// TextureLoader loads and caches UI textures from the asset directory.
type TextureLoader struct {
	root  string
	cache map[string]*ebiten.Image
}

func NewTextureLoader(root string) *TextureLoader {
	return &TextureLoader{
		root:  root,
		cache: make(map[string]*ebiten.Image),
	}
}

// Load reads an image relative to the loader root.
func (l *TextureLoader) Load(path string) (*ebiten.Image, error) {
	if img, ok := l.cache[path]; ok {
		return img, nil
	}

	full := filepath.Join(l.root, filepath.FromSlash(path))
	imgBytes, err := os.ReadFile(full)
	if err != nil {
		return nil, fmt.Errorf("failed to read texture %s: %w", full, err)
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", full, err)
	}

	l.cache[path] = img
	return img, nil
}
