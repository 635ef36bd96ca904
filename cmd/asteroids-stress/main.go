package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/asteroids/config"
	"github.com/plus3/asteroids/game"
	"github.com/plus3/asteroids/input"
	"github.com/plus3/asteroids/logging"
	"github.com/plus3/asteroids/telemetry"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	frames := flag.Int("frames", 0, "Stop after this many frames. Zero runs for the full duration.")
	spawnEvery := flag.Int("spawn-every", 300, "Request a mass spawn every N frames.")
	dt := flag.Duration("dt", 0, "Fixed frame delta. Zero uses the wall clock.")
	seed := flag.Uint64("seed", 1, "Random seed for the world.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, eris.ToString(err, true))
		os.Exit(1)
	}
	logger := logging.New(cfg.Log, os.Stderr)

	world := game.NewWorld(cfg,
		game.WithLogger(logging.ForSystem(logger, "world")),
		game.WithRand(rand.New(rand.NewPCG(*seed, *seed))),
	)

	report := &Report{
		Duration:       *duration,
		Frames:         *frames,
		SpawnEvery:     *spawnEvery,
		MassSpawnCount: cfg.Waves.MassSpawnCount,
		Seed:           *seed,
		GCPauseMetrics: *gcPauseMetrics,
	}
	sampler := telemetry.NewFrameSampler(4096)

	driver := &game.Driver{
		World:     world,
		MaxFrames: *frames,
		BeforeStep: func(frame int) {
			press(world.Input(), frame, *spawnEvery)
		},
		AfterStep: func(frame int, took time.Duration) {
			sampler.Add(took)
			entities := world.Storage().EntityCount()
			if entities > report.PeakEntities {
				report.PeakEntities = entities
			}
		},
	}
	if *dt > 0 {
		driver.Clock = game.NewClockWith(fixedStep(*dt))
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info().Dur("duration", *duration).Int("frames", *frames).Msg("running simulation")
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	start := time.Now()
	report.TotalUpdates = driver.Run(ctx)
	report.TotalTime = time.Since(start)
	report.UpdateTime = sampler.Summary()
	runtime.ReadMemStats(&report.MemStatsEnd)

	logging.Storage(&logger, world.Storage().CollectStats(), zerolog.InfoLevel)
	logging.Systems(&logger, world.Stats(), zerolog.InfoLevel)

	report.Systems = world.Stats().Systems
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Fatal().Err(err).Msg("failed to generate report")
	}
	fmt.Println("--- End of Report ---")
}

// press scripts the player: invincible from the first frame, spinning and
// firing every frame, with periodic mass spawns.
func press(state *input.State, frame, spawnEvery int) {
	if frame == 0 {
		state.KeyDown(input.ToggleInvincible)
		state.KeyDown(input.RotateRight)
	}
	state.KeyDown(input.Fire)
	if spawnEvery > 0 && frame%spawnEvery == 0 {
		state.KeyDown(input.SpawnMany)
	}
}

// fixedStep returns a fake clock that advances by step on every call.
func fixedStep(step time.Duration) func() time.Time {
	now := time.Now()
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}
