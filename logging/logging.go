// Package logging builds the game's zerolog loggers and the helpers that dump
// store and pipeline state into log events.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/plus3/asteroids/config"
	"github.com/plus3/asteroids/ecs"
	"github.com/rs/zerolog"
)

// New creates a logger writing to out. Pretty console output is used unless
// cfg.JSON is set. Unknown levels fall back to info.
func New(cfg config.LogConfig, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	writer := out
	if !cfg.JSON {
		writer = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.Kitchen,
		}
	}

	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// ForSystem returns a sub-logger tagged with the system name.
func ForSystem(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("system", name).Logger()
}

func archetypeDict(a ecs.ArchetypeStats) *zerolog.Event {
	components := zerolog.Arr()
	for _, name := range a.ComponentTypes {
		components = components.Str(name)
	}
	return zerolog.Dict().
		Uint32("archetype_id", a.ID).
		Int("entities", a.EntityCount).
		Array("components", components)
}

// Storage logs a summary of the store with one entry per archetype.
func Storage(logger *zerolog.Logger, stats ecs.StorageStats, level zerolog.Level) {
	archetypes := zerolog.Arr()
	for _, a := range stats.ArchetypeBreakdown {
		archetypes = archetypes.Dict(archetypeDict(a))
	}
	logger.WithLevel(level).
		Int("total_entities", stats.TotalEntityCount).
		Int("total_archetypes", stats.ArchetypeCount).
		Strs("singletons", stats.SingletonTypes).
		Array("archetypes", archetypes).
		Msg("storage")
}

// Systems logs the pipeline's stage order and timings.
func Systems(logger *zerolog.Logger, stats *ecs.SchedulerStats, level zerolog.Level) {
	systems := zerolog.Arr()
	for _, s := range stats.Systems {
		systems = systems.Dict(zerolog.Dict().
			Str("name", s.Name).
			Int64("executions", s.ExecutionCount).
			Dur("avg", s.AvgDuration).
			Dur("max", s.MaxDuration))
	}
	logger.WithLevel(level).
		Int("total_systems", stats.SystemCount).
		Int64("total_executions", stats.TotalExecutions).
		Array("systems", systems).
		Msg("systems")
}
