package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/plus3/asteroids/config"
	"github.com/plus3/asteroids/ecs"
	"github.com/plus3/asteroids/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type marker struct{ N int }

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(config.LogConfig{Level: "warn", JSON: true}, &buf)

	logger.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	logger.Warn().Msg("shown")
	assert.Contains(t, buf.String(), `"message":"shown"`)
}

func TestNewFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(config.LogConfig{Level: "loud", JSON: true}, &buf)

	logger.Debug().Msg("hidden")
	logger.Info().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(config.LogConfig{Level: "info"}, &buf)
	sub := logging.ForSystem(logger, "wave_director")
	sub.Info().Msg("wave cleared")

	assert.Contains(t, buf.String(), "wave cleared")
	assert.Contains(t, buf.String(), "wave_director")
}

func TestStorageSummary(t *testing.T) {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[marker](registry)
	storage := ecs.NewStorage(registry)
	storage.Spawn(marker{N: 1})
	storage.Spawn(marker{N: 2})

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	logging.Storage(&logger, storage.CollectStats(), zerolog.InfoLevel)

	var event struct {
		TotalEntities int `json:"total_entities"`
		Archetypes    []struct {
			Entities   int      `json:"entities"`
			Components []string `json:"components"`
		} `json:"archetypes"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
	assert.Equal(t, 2, event.TotalEntities)
	require.Len(t, event.Archetypes, 1)
	assert.Equal(t, []string{"logging_test.marker"}, event.Archetypes[0].Components)
}

func TestSystemsSummary(t *testing.T) {
	scheduler := ecs.NewScheduler(ecs.NewStorage(ecs.NewComponentRegistry()))
	scheduler.RegisterNamed("noop", ecs.SystemFunc(func(*ecs.UpdateFrame) {}))
	scheduler.Once(0.016)

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	logging.Systems(&logger, scheduler.GetStats(), zerolog.InfoLevel)

	assert.Contains(t, buf.String(), `"name":"noop"`)
	assert.Contains(t, buf.String(), `"total_executions":1`)
}
