package systems

import (
	"github.com/plus3/asteroids/config"
	"github.com/plus3/asteroids/ecs"
	"github.com/plus3/asteroids/input"
	"github.com/plus3/asteroids/logging"
	"github.com/rs/zerolog"
)

// Pipeline holds one instance of every system in frame order.
type Pipeline struct {
	Player    *PlayerControl
	Director  *WaveDirector
	Asteroids *AsteroidMover
	Lasers    *LaserMover
	Collision *Collision
}

func NewPipeline(cfg *config.Config, state *input.State, spawner *Spawner, logger zerolog.Logger) *Pipeline {
	return &Pipeline{
		Player:    NewPlayerControl(state),
		Director:  NewWaveDirector(spawner, cfg, logging.ForSystem(logger, "wave_director")),
		Asteroids: &AsteroidMover{},
		Lasers:    &LaserMover{},
		Collision: NewCollision(cfg.Waves.ScorePerLevel, logging.ForSystem(logger, "collision")),
	}
}

// Register appends the systems to the scheduler. The order is player
// control, wave director, asteroid movement, laser movement, collision.
func (p *Pipeline) Register(scheduler *ecs.Scheduler) {
	scheduler.Register(p.Player)
	scheduler.Register(p.Director)
	scheduler.Register(p.Asteroids)
	scheduler.Register(p.Lasers)
	scheduler.Register(p.Collision)
}
