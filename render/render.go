// Package render draws game snapshots with ebiten.
package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/asteroids/config"
	"github.com/plus3/asteroids/game"
	"github.com/rs/zerolog"
)

// Textures resolves texture names. A failed lookup still returns an image
// to draw.
type Textures interface {
	Texture(name string) (*ebiten.Image, error)
}

// Renderer draws sprites and the HUD.
type Renderer struct {
	textures Textures
	logger   zerolog.Logger
	reported map[string]bool

	// Bounds outlines every sprite's collision circle.
	Bounds bool

	op ebiten.DrawImageOptions
}

func NewRenderer(textures Textures, logger zerolog.Logger) *Renderer {
	return &Renderer{
		textures: textures,
		logger:   logger,
		reported: make(map[string]bool),
	}
}

// Configure applies the debug drawing settings.
func (r *Renderer) Configure(cfg config.DebugConfig) {
	r.Bounds = cfg.Bounds
}

var (
	background  = color.Black
	boundsColor = color.RGBA{G: 0xc0, A: 0xff}
)

func (r *Renderer) Draw(screen *ebiten.Image, snap game.Snapshot) {
	screen.Fill(background)

	for _, s := range snap.Sprites {
		img, err := r.textures.Texture(s.Texture)
		if err != nil && !r.reported[s.Texture] {
			r.reported[s.Texture] = true
			r.logger.Error().Err(err).Str("texture", s.Texture).Msg("drawing placeholder")
		}

		bounds := img.Bounds()
		r.op.GeoM = SpriteGeoM(s, bounds.Dx(), bounds.Dy())
		r.op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, &r.op)

		if r.Bounds {
			vector.StrokeCircle(screen, float32(s.X), float32(s.Y), float32(s.Width/2), 1, boundsColor, true)
		}
	}

	for i, line := range HUDLines(snap) {
		ebitenutil.DebugPrintAt(screen, line, 8, 8+i*16)
	}
}

// SpriteGeoM scales an imgW by imgH image to the sprite's output size,
// rotates it about its center and moves the center to the sprite position.
func SpriteGeoM(s game.Sprite, imgW, imgH int) ebiten.GeoM {
	var m ebiten.GeoM
	if imgW == 0 || imgH == 0 {
		return m
	}
	m.Translate(-float64(imgW)/2, -float64(imgH)/2)
	m.Scale(s.Width/float64(imgW), s.Height/float64(imgH))
	m.Rotate(s.Rotation * math.Pi / 180)
	m.Translate(s.X, s.Y)
	return m
}

// HUDLines is the text shown in the top left corner.
func HUDLines(snap game.Snapshot) []string {
	lines := []string{
		fmt.Sprintf("Score: %d", snap.Game.Score),
		fmt.Sprintf("Level: %d", snap.Game.Level),
		fmt.Sprintf("Health: %d", snap.Health),
		fmt.Sprintf("Entities: %d", snap.Entities),
	}
	if snap.Game.InvinciblePlayer {
		lines = append(lines, "INVINCIBLE")
	}
	return lines
}
