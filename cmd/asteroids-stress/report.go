package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/asteroids/ecs"
	"github.com/plus3/asteroids/telemetry"
)

type Report struct {
	// Configuration
	Duration       time.Duration
	Frames         int
	SpawnEvery     int
	MassSpawnCount int
	Seed           uint64

	// Results
	TotalUpdates   int
	TotalTime      time.Duration
	PeakEntities   int
	UpdateTime     telemetry.FrameSummary
	Systems        []ecs.SystemStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

const reportTemplate = `
# Asteroids Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Frame Limit:** {{if .Frames}}{{.Frames}}{{else}}none{{end}}
- **Mass Spawn:** {{.MassSpawnCount}} asteroids every {{.SpawnEvery}} frames
- **Seed:** {{.Seed}}

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Peak Entities:** {{.PeakEntities}}
- **Update Time (Frame):**
  - **Mean:** {{ms .UpdateTime.MeanMS}} (stddev {{ms .UpdateTime.StdMS}}, {{printf "%.0f" .UpdateTime.FPS}} FPS)
  - **P50:** {{ms .UpdateTime.P50MS}}
  - **P99:** {{ms .UpdateTime.P99MS}}
  - **Max:** {{ms .UpdateTime.MaxMS}}

## Systems
{{range .Systems}}- {{.Name}}: avg {{.AvgDuration}}, max {{.MaxDuration}} over {{.ExecutionCount}} runs
{{end}}
## Memory Usage (MiB)
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} (start) -> {{mb .MemStatsEnd.HeapAlloc}} (end) -> delta: {{mb (bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc)}}
- Total Alloc:    {{mb .MemStatsStart.TotalAlloc}} (start) -> {{mb .MemStatsEnd.TotalAlloc}} (end) -> delta: {{mb (bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc)}}
- Sys Memory:     {{mb .MemStatsStart.Sys}} (start) -> {{mb .MemStatsEnd.Sys}} (end)
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{ns (u64sub .MemStatsEnd.PauseTotalNs .MemStatsStart.PauseTotalNs)}}
- **Num GC Cycles:** {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{end}}`

var reportFuncs = template.FuncMap{
	"mb": func(v any) string {
		switch val := v.(type) {
		case uint64:
			return fmt.Sprintf("%.2f", float64(val)/1024/1024)
		case int64:
			return fmt.Sprintf("%.2f", float64(val)/1024/1024)
		default:
			return "N/A"
		}
	},
	"ms": func(v float64) string {
		return fmt.Sprintf("%.3fms", v)
	},
	"bsub": func(a, b uint64) int64 {
		return int64(a) - int64(b)
	},
	"u64sub": func(a, b uint64) uint64 {
		return a - b
	},
	"usub": func(a, b uint32) uint32 {
		return a - b
	},
	"ns": func(ns uint64) string {
		return time.Duration(ns).String()
	},
}

func (r *Report) Generate(w io.Writer) error {
	tmpl, err := template.New("report").Funcs(reportFuncs).Parse(reportTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, r)
}
