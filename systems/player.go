package systems

import (
	"github.com/plus3/asteroids/components"
	"github.com/plus3/asteroids/ecs"
	"github.com/plus3/asteroids/input"
	"gonum.org/v1/gonum/spatial/r2"
)

type playerView struct {
	ecs.EntityId
	*components.Player
	*components.Position
	*components.Renderable
}

// PlayerControl turns the input state into ship rotation, thrust and fire
// requests and moves the ship.
type PlayerControl struct {
	Players  ecs.Query[playerView]
	Game     ecs.Singleton[components.GameData]
	Requests ecs.Singleton[components.Requests]
	Screen   ecs.Singleton[components.Screen]

	Input *input.State
}

func NewPlayerControl(state *input.State) *PlayerControl {
	return &PlayerControl{Input: state}
}

func (s *PlayerControl) Execute(frame *ecs.UpdateFrame) {
	game := mustSingleton(&s.Game)
	requests := mustSingleton(&s.Requests)
	screen := mustSingleton(&s.Screen)

	if s.Input.Consume(input.ToggleInvincible) {
		game.InvinciblePlayer = !game.InvinciblePlayer
	}
	if s.Input.Consume(input.SpawnMany) {
		requests.SpawnMany = true
	}

	if n := s.Players.Len(); n > 1 {
		invariant("%d live players", n)
	}
	_, p, ok := s.Players.First()
	if !ok {
		return
	}

	dt := frame.DeltaTime
	if s.Input.IsPressed(input.RotateRight) {
		p.Position.Rot += p.Player.RotationSpeed * dt
	}
	if s.Input.IsPressed(input.RotateLeft) {
		p.Position.Rot -= p.Player.RotationSpeed * dt
	}

	IntegrateVelocity(p.Player)

	// Thrust lands in the impulse after integration, so it moves the ship
	// on the next tick.
	if s.Input.IsPressed(input.Thrust) {
		p.Player.Impulse = r2.Add(p.Player.Impulse, r2.Scale(p.Player.MaxSpeed, Heading(p.Position.Rot)))
	}

	p.Position.X += p.Player.Velocity.X * dt
	p.Position.Y -= p.Player.Velocity.Y * dt
	p.Position.X = Wrap(p.Position.X, screen.Width)
	p.Position.Y = Wrap(p.Position.Y, screen.Height)

	p.Renderable.ImgRotation = p.Position.Rot

	if s.Input.Consume(input.Fire) {
		requests.Fire = components.FireIntent{
			Pending: true,
			X:       p.Position.X,
			Y:       p.Position.Y,
			Rot:     p.Position.Rot,
		}
	}
}

func mustSingleton[T any](s *ecs.Singleton[T]) *T {
	v := s.Get()
	if v == nil {
		var zero T
		invariant("missing %T singleton", zero)
	}
	return v
}
