// Package components holds the data the simulation operates on. Components
// are plain structs; behavior lives in the systems package.
package components

import (
	"github.com/plus3/asteroids/ecs"
	"gonum.org/v1/gonum/spatial/r2"
)

// Position is a location in screen space with a heading in degrees,
// measured clockwise from up.
type Position struct {
	X, Y float64
	Rot  float64
}

// Renderable names a texture and the size it is drawn at.
// OutputWidth doubles as the collision diameter.
type Renderable struct {
	Texture      string
	ImgWidth     float64
	ImgHeight    float64
	OutputWidth  float64
	OutputHeight float64
	ImgRotation  float64
}

// Radius is half the output width.
func (r Renderable) Radius() float64 {
	return r.OutputWidth / 2
}

// MaxHealth caps Player.Health.
const MaxHealth = 10

type Player struct {
	Impulse       r2.Vec
	Velocity      r2.Vec
	RotationSpeed float64
	MaxSpeed      float64
	Friction      float64
	Health        int
}

// Asteroid friction is carried for parity with the player but is not
// integrated.
type Asteroid struct {
	RotationSpeed float64
	Speed         float64
	Friction      float64
	Quadrant      Quadrant
}

type Laser struct {
	Speed float64
}

// GameData is the score keeping singleton.
type GameData struct {
	Score            int
	Level            int
	InvinciblePlayer bool
}

// FireIntent is a pending projectile spawn captured at the player's pose.
type FireIntent struct {
	Pending bool
	X, Y    float64
	Rot     float64
}

// Requests carries one-shot requests from player control to the wave
// director within a single tick.
type Requests struct {
	Fire      FireIntent
	SpawnMany bool
}

// Screen is the play field size.
type Screen struct {
	Width, Height float64
}

// Register adds every entity component to the registry.
// Singletons do not need registering.
func Register(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Renderable](registry)
	ecs.RegisterComponent[Player](registry)
	ecs.RegisterComponent[Asteroid](registry)
	ecs.RegisterComponent[Laser](registry)
}
