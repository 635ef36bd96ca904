// Package game wires the entity store, the systems and the input state into
// a World that advances one frame at a time, plus the drivers that run it.
package game

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/asteroids/components"
	"github.com/plus3/asteroids/config"
	"github.com/plus3/asteroids/ecs"
	"github.com/plus3/asteroids/input"
	"github.com/plus3/asteroids/systems"
	"github.com/plus3/asteroids/telemetry"
	"github.com/rs/zerolog"
)

// World owns the simulation. It is not safe for concurrent use.
type World struct {
	cfg       *config.Config
	storage   *ecs.Storage
	scheduler *ecs.Scheduler
	input     *input.State
	spawner   *systems.Spawner
	pipeline  *systems.Pipeline

	logger  zerolog.Logger
	waves   *telemetry.WaveLog
	rng     *rand.Rand
	session uuid.UUID
	started time.Time
	frames  uint64
}

type Option func(*World)

// WithRand fixes the random source, for reproducible runs.
func WithRand(rng *rand.Rand) Option {
	return func(w *World) { w.rng = rng }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(w *World) { w.logger = logger }
}

// WithWaveLog records reloads and cleared waves.
func WithWaveLog(log *telemetry.WaveLog) Option {
	return func(w *World) { w.waves = log }
}

// NewWorld builds the store, registers the pipeline and loads the first
// world.
func NewWorld(cfg *config.Config, opts ...Option) *World {
	w := &World{
		cfg:    cfg,
		input:  &input.State{},
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.rng == nil {
		seed := cfg.Waves.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		w.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}

	registry := ecs.NewComponentRegistry()
	components.Register(registry)
	w.storage = ecs.NewStorage(registry)

	w.spawner = systems.NewSpawner(cfg, w.rng)
	w.pipeline = systems.NewPipeline(cfg, w.input, w.spawner, w.logger)
	w.pipeline.Director.OnEvent = w.onWaveEvent

	w.scheduler = ecs.NewScheduler(w.storage)
	w.pipeline.Register(w.scheduler)

	w.spawner.LoadWorld(w.storage)
	w.newSession()
	return w
}

// Step runs every system once with the given elapsed seconds and applies the
// frame's deferred deletions. It returns the number of entities removed.
func (w *World) Step(dt float64) int {
	w.frames++
	return w.scheduler.Once(dt)
}

func (w *World) Input() *input.State {
	return w.input
}

func (w *World) Storage() *ecs.Storage {
	return w.storage
}

func (w *World) Stats() *ecs.SchedulerStats {
	return w.scheduler.GetStats()
}

func (w *World) Session() uuid.UUID {
	return w.session
}

func (w *World) Frames() uint64 {
	return w.frames
}

func (w *World) Config() *config.Config {
	return w.cfg
}

func (w *World) newSession() {
	w.session = uuid.New()
	w.started = time.Now()
	w.logger.Info().Str("session", w.session.String()).Msg("world loaded")
}

func (w *World) onWaveEvent(event systems.WaveEvent) {
	record := telemetry.WaveRecord{
		Session: w.session.String(),
		Event:   event.Kind.String(),
		Level:   event.Level,
		Score:   event.Score,
		Health:  event.Health,
		Spawned: event.Spawned,
		Elapsed: time.Since(w.started).Seconds(),
	}
	if err := w.waves.Write(record); err != nil {
		w.logger.Warn().Err(err).Msg("telemetry write failed")
	}

	if event.Kind == systems.GameOver {
		w.newSession()
	}
}
