package game

import (
	"context"
	"time"
)

// Driver runs a World without a window, for tools and tests.
type Driver struct {
	World *World
	Clock *Clock

	// MaxFrames stops the run after that many frames. Zero means no limit.
	MaxFrames int
	// Interval throttles the loop. Zero runs frames back to back.
	Interval time.Duration
	// BeforeStep runs before each frame, for scripted input.
	BeforeStep func(frame int)
	// AfterStep observes each frame with its step duration.
	AfterStep func(frame int, took time.Duration)
}

// Run steps the world with wall-clock deltas until ctx is done or MaxFrames
// is reached. It returns the number of frames run.
func (d *Driver) Run(ctx context.Context) int {
	clock := d.Clock
	if clock == nil {
		clock = NewClock()
	}
	clock.Tick()

	var ticker *time.Ticker
	if d.Interval > 0 {
		ticker = time.NewTicker(d.Interval)
		defer ticker.Stop()
	}

	for frame := 0; d.MaxFrames == 0 || frame < d.MaxFrames; frame++ {
		if ctx.Err() != nil {
			return frame
		}
		if ticker != nil {
			select {
			case <-ctx.Done():
				return frame
			case <-ticker.C:
			}
		}

		if d.BeforeStep != nil {
			d.BeforeStep(frame)
		}
		start := time.Now()
		d.World.Step(clock.Tick())
		if d.AfterStep != nil {
			d.AfterStep(frame, time.Since(start))
		}
	}
	return d.MaxFrames
}
