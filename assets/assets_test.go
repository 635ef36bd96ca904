package assets_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/plus3/asteroids/assets"
	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.White)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestTextureLoadsAndCaches(t *testing.T) {
	fsys := fstest.MapFS{
		"images/rocket.png": {Data: pngBytes(t, 55, 77)},
	}
	lib := assets.NewLibrary(fsys, "images")

	img, err := lib.Texture("rocket.png")
	require.NoError(t, err)
	assert.Equal(t, 55, img.Bounds().Dx())
	assert.Equal(t, 77, img.Bounds().Dy())

	again, err := lib.Texture("rocket.png")
	require.NoError(t, err)
	assert.Same(t, img, again)
}

func TestMissingTextureReturnsPlaceholder(t *testing.T) {
	lib := assets.NewLibrary(fstest.MapFS{}, "images")

	img, err := lib.Texture("asteroid.png")
	require.Error(t, err)
	assert.True(t, eris.Is(err, assets.ErrResourceMissing))
	assert.Same(t, lib.Placeholder(), img)
	assert.Equal(t, assets.PlaceholderSize, img.Bounds().Dx())

	_, again := lib.Texture("asteroid.png")
	assert.Equal(t, err, again, "failures are remembered")

	_, err = lib.Texture("")
	assert.True(t, eris.Is(err, assets.ErrResourceMissing))
}

func TestPreloadReportsFirstFailure(t *testing.T) {
	fsys := fstest.MapFS{
		"rocket.png": {Data: pngBytes(t, 4, 4)},
	}
	lib := assets.NewLibrary(fsys, ".")

	assert.NoError(t, lib.Preload("rocket.png"))

	err := lib.Preload("rocket.png", "laser.png", "asteroid.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "laser.png")
}
