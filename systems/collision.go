package systems

import (
	"github.com/plus3/asteroids/components"
	"github.com/plus3/asteroids/ecs"
	"github.com/rs/zerolog"
)

type asteroidBody struct {
	ecs.EntityId
	*components.Asteroid
	*components.Position
	*components.Renderable
}

// Collision resolves player and laser hits against asteroids. Hits only mark
// entities for deletion, so an asteroid destroyed earlier in the pass can
// still be struck again before the frame ends.
type Collision struct {
	Players   ecs.Query[playerView]
	Asteroids ecs.Query[asteroidBody]
	Lasers    ecs.Query[struct {
		ecs.EntityId
		*components.Laser
		*components.Position
	}]
	Game   ecs.Singleton[components.GameData]
	Screen ecs.Singleton[components.Screen]

	// ScorePerLevel is multiplied by the current level for each laser hit.
	ScorePerLevel int

	Logger zerolog.Logger
}

func NewCollision(scorePerLevel int, logger zerolog.Logger) *Collision {
	return &Collision{ScorePerLevel: scorePerLevel, Logger: logger}
}

func (s *Collision) Execute(frame *ecs.UpdateFrame) {
	game := mustSingleton(&s.Game)
	screen := mustSingleton(&s.Screen)

	if !game.InvinciblePlayer {
		for _, p := range s.Players.Iter() {
			s.collidePlayer(frame, p, screen)
		}
	}

	for _, l := range s.Lasers.Iter() {
		shot := Circle{X: l.Position.X, Y: l.Position.Y}
		for _, a := range s.Asteroids.Iter() {
			rock := Circle{X: a.Position.X, Y: a.Position.Y, R: a.Renderable.Radius()}
			if !Overlaps(shot, rock, rock.R) {
				continue
			}
			frame.Commands.Delete(a.EntityId)
			frame.Commands.Delete(l.EntityId)
			game.Score += s.ScorePerLevel * game.Level
		}
	}
}

func (s *Collision) collidePlayer(frame *ecs.UpdateFrame, p playerView, screen *components.Screen) {
	quadrant := components.QuadrantOf(p.Position.X, p.Position.Y, screen.Width, screen.Height)
	ship := Circle{X: p.Position.X, Y: p.Position.Y, R: p.Renderable.Radius()}

	for _, a := range s.Asteroids.Iter() {
		if a.Asteroid.Quadrant != quadrant {
			continue
		}
		rock := Circle{X: a.Position.X, Y: a.Position.Y, R: a.Renderable.Radius()}
		if !Overlaps(ship, rock, ship.R+rock.R) {
			continue
		}

		frame.Commands.Delete(a.EntityId)
		p.Player.Health--
		s.Logger.Debug().Int("health", p.Player.Health).Msg("player hit")
		if p.Player.Health < 1 {
			frame.Commands.Delete(p.EntityId)
		}
	}
}
