// Package assets resolves texture names to ebiten images.
package assets

import (
	"image/color"
	_ "image/png"
	"io/fs"
	"path"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rotisserie/eris"
)

// ErrResourceMissing is returned when a texture cannot be loaded. The
// Library hands back a placeholder alongside it, so drawing can continue.
var ErrResourceMissing = eris.New("resource missing")

// PlaceholderSize is the edge length of the generated placeholder image.
const PlaceholderSize = 16

// Library loads textures from a file system on first use and caches them.
type Library struct {
	fsys fs.FS
	dir  string

	mu          sync.Mutex
	textures    map[string]*ebiten.Image
	missing     map[string]error
	placeholder *ebiten.Image
}

// NewLibrary reads textures from dir inside fsys.
func NewLibrary(fsys fs.FS, dir string) *Library {
	return &Library{
		fsys:     fsys,
		dir:      dir,
		textures: make(map[string]*ebiten.Image),
		missing:  make(map[string]error),
	}
}

// Texture returns the named image. When it cannot be loaded the placeholder
// is returned together with an error wrapping ErrResourceMissing. Failures
// are remembered, so a missing file is only looked up once.
func (l *Library) Texture(name string) (*ebiten.Image, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if img, ok := l.textures[name]; ok {
		return img, nil
	}
	if err, ok := l.missing[name]; ok {
		return l.placeholderLocked(), err
	}

	if name == "" {
		err := eris.Wrap(ErrResourceMissing, "empty texture name")
		l.missing[name] = err
		return l.placeholderLocked(), err
	}

	img, _, loadErr := ebitenutil.NewImageFromFileSystem(l.fsys, path.Join(l.dir, name))
	if loadErr != nil {
		err := eris.Wrapf(ErrResourceMissing, "texture %q: %v", name, loadErr)
		l.missing[name] = err
		return l.placeholderLocked(), err
	}

	l.textures[name] = img
	return img, nil
}

// Preload loads every name and returns the first failure.
func (l *Library) Preload(names ...string) error {
	var first error
	for _, name := range names {
		if _, err := l.Texture(name); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Placeholder returns the magenta square drawn in place of missing textures.
func (l *Library) Placeholder() *ebiten.Image {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.placeholderLocked()
}

func (l *Library) placeholderLocked() *ebiten.Image {
	if l.placeholder == nil {
		l.placeholder = ebiten.NewImage(PlaceholderSize, PlaceholderSize)
		l.placeholder.Fill(color.RGBA{R: 0xff, B: 0xff, A: 0xff})
	}
	return l.placeholder
}
