package systems_test

import (
	"iter"
	"math/rand/v2"
	"testing"

	"github.com/plus3/asteroids/components"
	"github.com/plus3/asteroids/config"
	"github.com/plus3/asteroids/ecs"
	"github.com/plus3/asteroids/input"
	"github.com/plus3/asteroids/systems"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const tick = 1.0 / 60

type harness struct {
	cfg       *config.Config
	storage   *ecs.Storage
	scheduler *ecs.Scheduler
	input     *input.State
	spawner   *systems.Spawner
	pipeline  *systems.Pipeline
}

func newStorage() *ecs.Storage {
	registry := ecs.NewComponentRegistry()
	components.Register(registry)
	return ecs.NewStorage(registry)
}

// newHarness loads a fresh world. With no stages given the full pipeline is
// registered, otherwise only the named ones in the given order.
func newHarness(t *testing.T, stages ...string) *harness {
	t.Helper()

	cfg := config.Default()
	h := &harness{
		cfg:     cfg,
		storage: newStorage(),
		input:   &input.State{},
		spawner: systems.NewSpawner(cfg, rand.New(rand.NewPCG(1, 2))),
	}
	h.spawner.LoadWorld(h.storage)
	h.scheduler = ecs.NewScheduler(h.storage)
	h.pipeline = systems.NewPipeline(cfg, h.input, h.spawner, zerolog.Nop())

	if len(stages) == 0 {
		h.pipeline.Register(h.scheduler)
		return h
	}

	byName := map[string]ecs.System{
		"player":    h.pipeline.Player,
		"director":  h.pipeline.Director,
		"asteroids": h.pipeline.Asteroids,
		"lasers":    h.pipeline.Lasers,
		"collision": h.pipeline.Collision,
	}
	for _, name := range stages {
		system, ok := byName[name]
		require.True(t, ok, "unknown stage %q", name)
		h.scheduler.RegisterNamed(name, system)
	}
	return h
}

type playerItem struct {
	ecs.EntityId
	*components.Player
	*components.Position
	*components.Renderable
}

func (h *harness) player(t *testing.T) playerItem {
	t.Helper()
	var found []playerItem
	for p := range ecs.NewView[playerItem](h.storage).Values() {
		found = append(found, p)
	}
	require.Len(t, found, 1)
	return found[0]
}

func (h *harness) game() *components.GameData {
	var game *components.GameData
	h.storage.ReadSingleton(&game)
	return game
}

func (h *harness) requests() *components.Requests {
	var requests *components.Requests
	h.storage.ReadSingleton(&requests)
	return requests
}

type asteroidItem struct {
	ecs.EntityId
	*components.Asteroid
	*components.Position
	*components.Renderable
}

func (h *harness) asteroids() []asteroidItem {
	var out []asteroidItem
	for a := range ecs.NewView[asteroidItem](h.storage).Values() {
		out = append(out, a)
	}
	return out
}

func (h *harness) clearAsteroids() {
	for _, a := range h.asteroids() {
		h.storage.Delete(a.EntityId)
	}
}

func (h *harness) laserCount() int {
	return ecs.NewView[struct{ *components.Laser }](h.storage).Count()
}

func (h *harness) playerCount() int {
	return ecs.NewView[struct{ *components.Player }](h.storage).Count()
}

// spawnAsteroidAt places a motionless asteroid with the given diameter.
func (h *harness) spawnAsteroidAt(x, y, size float64) ecs.EntityId {
	return h.storage.Spawn(
		components.Position{X: x, Y: y},
		components.Renderable{OutputWidth: size, OutputHeight: size, ImgWidth: size, ImgHeight: size},
		components.Asteroid{Quadrant: components.QuadrantOf(x, y, 800, 600)},
	)
}

func ecsPosition(t *testing.T, h *harness, id ecs.EntityId) *components.Position {
	t.Helper()
	pos := ecs.ReadComponent[components.Position](h.storage, id)
	require.NotNil(t, pos)
	return pos
}

type laserItem struct {
	*components.Laser
	*components.Position
}

func ecsLasers(h *harness) iter.Seq[laserItem] {
	return ecs.NewView[laserItem](h.storage).Values()
}
