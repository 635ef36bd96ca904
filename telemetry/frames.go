package telemetry

import (
	"slices"
	"time"

	"gonum.org/v1/gonum/stat"
)

// FrameSampler collects frame durations.
type FrameSampler struct {
	samples []float64 // milliseconds
}

func NewFrameSampler(capacity int) *FrameSampler {
	return &FrameSampler{samples: make([]float64, 0, capacity)}
}

func (s *FrameSampler) Add(d time.Duration) {
	s.samples = append(s.samples, float64(d.Microseconds())/1000)
}

func (s *FrameSampler) Len() int {
	return len(s.samples)
}

func (s *FrameSampler) Reset() {
	s.samples = s.samples[:0]
}

// FrameSummary describes a set of frame durations in milliseconds.
type FrameSummary struct {
	Count  int
	MeanMS float64
	StdMS  float64
	P50MS  float64
	P99MS  float64
	MaxMS  float64
}

// FPS is the frame rate implied by the mean frame time.
func (s FrameSummary) FPS() float64 {
	if s.MeanMS <= 0 {
		return 0
	}
	return 1000 / s.MeanMS
}

// Summary computes statistics over the collected samples.
func (s *FrameSampler) Summary() FrameSummary {
	if len(s.samples) == 0 {
		return FrameSummary{}
	}

	sorted := slices.Clone(s.samples)
	slices.Sort(sorted)

	mean, std := stat.MeanStdDev(sorted, nil)
	if len(sorted) == 1 {
		std = 0
	}
	return FrameSummary{
		Count:  len(sorted),
		MeanMS: mean,
		StdMS:  std,
		P50MS:  stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P99MS:  stat.Quantile(0.99, stat.Empirical, sorted, nil),
		MaxMS:  sorted[len(sorted)-1],
	}
}
