package game

import (
	"github.com/plus3/asteroids/components"
	"github.com/plus3/asteroids/ecs"
)

// Sprite is a drawable entity at the moment the snapshot was taken.
type Sprite struct {
	Texture  string
	X, Y     float64
	Rotation float64 // degrees
	Width    float64
	Height   float64
}

// Snapshot is a read-only copy of everything the renderer needs.
type Snapshot struct {
	Screen   components.Screen
	Sprites  []Sprite
	Game     components.GameData
	Health   int // zero when there is no player
	Entities int
	Frame    uint64
}

type drawable struct {
	*components.Position
	*components.Renderable
}

// Snapshot copies the drawable state out of the store. Sprites are in
// store iteration order.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Entities: w.storage.EntityCount(),
		Frame:    w.frames,
	}

	var screen *components.Screen
	if w.storage.ReadSingleton(&screen) {
		snap.Screen = *screen
	}
	var data *components.GameData
	if w.storage.ReadSingleton(&data) {
		snap.Game = *data
	}

	for p := range ecs.NewView[struct{ *components.Player }](w.storage).Values() {
		snap.Health = p.Player.Health
	}

	snap.Sprites = make([]Sprite, 0, snap.Entities)
	for d := range ecs.NewView[drawable](w.storage).Values() {
		snap.Sprites = append(snap.Sprites, Sprite{
			Texture:  d.Renderable.Texture,
			X:        d.Position.X,
			Y:        d.Position.Y,
			Rotation: d.Renderable.ImgRotation,
			Width:    d.Renderable.OutputWidth,
			Height:   d.Renderable.OutputHeight,
		})
	}
	return snap
}
