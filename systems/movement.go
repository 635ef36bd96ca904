package systems

import (
	"github.com/plus3/asteroids/components"
	"github.com/plus3/asteroids/ecs"
)

// AsteroidMover drifts asteroids along their heading, bounces them off the
// screen edges and refreshes their cached quadrant.
type AsteroidMover struct {
	Asteroids ecs.Query[struct {
		*components.Position
		*components.Renderable
		*components.Asteroid
	}]
	Screen ecs.Singleton[components.Screen]
}

func (s *AsteroidMover) Execute(frame *ecs.UpdateFrame) {
	screen := mustSingleton(&s.Screen)
	dt := frame.DeltaTime

	for a := range s.Asteroids.Values() {
		pos := a.Position
		Advance(pos, a.Asteroid.Speed*dt)

		halfW := a.Renderable.OutputWidth / 2
		halfH := a.Renderable.OutputHeight / 2
		if pos.X > screen.Width-halfW || pos.X < halfW {
			pos.Rot = ReflectHorizontal(pos.Rot)
		} else if pos.Y > screen.Height-halfH || pos.Y < halfH {
			pos.Rot = ReflectVertical(pos.Rot)
		}

		a.Renderable.ImgRotation = WrapDegrees(a.Renderable.ImgRotation + a.Asteroid.RotationSpeed*dt)
		a.Asteroid.Quadrant = components.QuadrantOf(pos.X, pos.Y, screen.Width, screen.Height)
	}
}

// LaserMover flies projectiles straight ahead and removes them once they
// leave the screen.
type LaserMover struct {
	Lasers ecs.Query[struct {
		ecs.EntityId
		*components.Position
		*components.Renderable
		*components.Laser
	}]
	Screen ecs.Singleton[components.Screen]
}

func (s *LaserMover) Execute(frame *ecs.UpdateFrame) {
	screen := mustSingleton(&s.Screen)

	for l := range s.Lasers.Values() {
		Advance(l.Position, l.Laser.Speed*frame.DeltaTime)

		x, y := l.Position.X, l.Position.Y
		if x > screen.Width || x < 0 || y > screen.Height || y < 0 {
			frame.Commands.Delete(l.EntityId)
		}

		l.Renderable.ImgRotation = l.Position.Rot
	}
}
