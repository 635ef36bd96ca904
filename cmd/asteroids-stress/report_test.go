package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/plus3/asteroids/ecs"
	"github.com/plus3/asteroids/input"
	"github.com/plus3/asteroids/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportGenerate(t *testing.T) {
	r := &Report{
		Duration:       time.Second,
		SpawnEvery:     300,
		MassSpawnCount: 1000,
		TotalUpdates:   42,
		PeakEntities:   1002,
		UpdateTime:     telemetry.FrameSummary{Count: 42, MeanMS: 2, P50MS: 1.5, P99MS: 4, MaxMS: 5},
		Systems: []ecs.SystemStats{
			{Name: "Collision", ExecutionCount: 42, AvgDuration: time.Millisecond},
		},
		GCPauseMetrics: true,
	}
	r.MemStatsEnd.HeapAlloc = 2 * 1024 * 1024

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "**Frame Limit:** none")
	assert.Contains(t, out, "1000 asteroids every 300 frames")
	assert.Contains(t, out, "**Peak Entities:** 1002")
	assert.Contains(t, out, "2.000ms (stddev 0.000ms, 500 FPS)")
	assert.Contains(t, out, "- Collision: avg 1ms")
	assert.Contains(t, out, "delta: 2.00")
	assert.Contains(t, out, "## GC Pause Durations")
}

func TestPressScript(t *testing.T) {
	var state input.State

	press(&state, 0, 10)
	assert.True(t, state.IsPressed(input.ToggleInvincible))
	assert.True(t, state.IsPressed(input.RotateRight))
	assert.True(t, state.IsPressed(input.Fire))
	assert.True(t, state.IsPressed(input.SpawnMany))

	state.Reset()
	press(&state, 3, 10)
	assert.False(t, state.IsPressed(input.ToggleInvincible))
	assert.True(t, state.IsPressed(input.Fire))
	assert.False(t, state.IsPressed(input.SpawnMany))

	press(&state, 20, 10)
	assert.True(t, state.IsPressed(input.SpawnMany))
}

func TestFixedStep(t *testing.T) {
	now := fixedStep(20 * time.Millisecond)
	a := now()
	b := now()
	assert.Equal(t, 20*time.Millisecond, b.Sub(a))
}
