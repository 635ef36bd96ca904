package systems

import (
	"math/rand/v2"

	"github.com/plus3/asteroids/components"
	"github.com/plus3/asteroids/config"
	"github.com/plus3/asteroids/ecs"
)

// Spawner builds the game's entities from configuration.
type Spawner struct {
	cfg *config.Config
	rng *rand.Rand
}

func NewSpawner(cfg *config.Config, rng *rand.Rand) *Spawner {
	return &Spawner{cfg: cfg, rng: rng}
}

// LoadWorld populates an empty store with the player and one seed asteroid,
// and resets the per-game singletons.
func (s *Spawner) LoadWorld(storage *ecs.Storage) ecs.EntityId {
	w, h := float64(s.cfg.Screen.Width), float64(s.cfg.Screen.Height)

	storage.SetSingleton(components.Screen{Width: w, Height: h})
	storage.SetSingleton(components.GameData{Level: 1})
	storage.SetSingleton(components.Requests{})

	player := s.SpawnPlayer(storage, w/2, h/2)
	s.SpawnAsteroid(storage, components.QuadrantOf(w/2, h/2, w, h))
	return player
}

func (s *Spawner) SpawnPlayer(storage *ecs.Storage, x, y float64) ecs.EntityId {
	p := s.cfg.Player
	return storage.Spawn(
		components.Position{X: x, Y: y},
		components.Renderable{
			Texture:      s.cfg.Textures.Player,
			ImgWidth:     p.Width,
			ImgHeight:    p.Height,
			OutputWidth:  p.Width,
			OutputHeight: p.Height,
		},
		components.Player{
			RotationSpeed: p.RotationSpeed,
			MaxSpeed:      p.MaxSpeed,
			Friction:      p.Friction,
			Health:        p.StartHealth,
		},
	)
}

// SpawnQuadrant picks where a new asteroid goes: the quadrant opposite the
// player half of the time, otherwise one of the two adjacent quadrants.
func (s *Spawner) SpawnQuadrant(player components.Quadrant) components.Quadrant {
	adjacent := player.Adjacent()
	switch s.rng.IntN(4) {
	case 0, 1:
		return player.Opposite()
	case 2:
		return adjacent[0]
	default:
		return adjacent[1]
	}
}

// SpawnAsteroid creates an asteroid with randomized size, speed, spin and
// heading somewhere outside the avoid quadrant. The asteroid is placed
// fully inside its quadrant so it starts clear of the bounce margins.
func (s *Spawner) SpawnAsteroid(storage *ecs.Storage, avoid components.Quadrant) ecs.EntityId {
	a := s.cfg.Asteroid
	w, h := float64(s.cfg.Screen.Width), float64(s.cfg.Screen.Height)

	quadrant := s.SpawnQuadrant(avoid)
	size := s.uniform(a.MinSize, a.MaxSize)
	r := size / 2
	minX, minY, maxX, maxY := quadrant.Bounds(w, h)

	return storage.Spawn(
		components.Position{
			X:   s.uniform(minX+r, maxX-r),
			Y:   s.uniform(minY+r, maxY-r),
			Rot: s.rng.Float64() * 360,
		},
		components.Renderable{
			Texture:      s.cfg.Textures.Asteroid,
			ImgWidth:     size,
			ImgHeight:    size,
			OutputWidth:  size,
			OutputHeight: size,
			ImgRotation:  s.rng.Float64() * 360,
		},
		components.Asteroid{
			RotationSpeed: s.uniform(a.MinRotationSpeed, a.MaxRotationSpeed),
			Speed:         s.uniform(a.MinSpeed, a.MaxSpeed),
			Friction:      a.Friction,
			Quadrant:      quadrant,
		},
	)
}

// SpawnLaser creates a projectile at the captured pose.
func (s *Spawner) SpawnLaser(storage *ecs.Storage, intent components.FireIntent) ecs.EntityId {
	l := s.cfg.Laser
	return storage.Spawn(
		components.Position{X: intent.X, Y: intent.Y, Rot: intent.Rot},
		components.Renderable{
			Texture:      s.cfg.Textures.Laser,
			ImgWidth:     l.Width,
			ImgHeight:    l.Height,
			OutputWidth:  l.Width,
			OutputHeight: l.Height,
			ImgRotation:  intent.Rot,
		},
		components.Laser{Speed: l.Speed},
	)
}

func (s *Spawner) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Float64()*(hi-lo)
}
