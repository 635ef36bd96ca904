package ecs

import (
	"context"
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// binder is satisfied by *Query[T] and *Singleton[T].
type binder interface {
	Init(storage *Storage)
}

// executor is satisfied by *Query[T].
type executor interface {
	Execute()
}

type stage struct {
	name    string
	system  System
	queries []executor
	stats   systemStatsInternal
}

// Scheduler runs a fixed, ordered pipeline of systems against one storage.
type Scheduler struct {
	storage  *Storage
	stages   []*stage
	commands *Commands
}

// NewScheduler creates a new scheduler for the given storage.
func NewScheduler(storage *Storage) *Scheduler {
	return &Scheduler{
		storage:  storage,
		commands: NewCommands(),
	}
}

// Register appends a system to the pipeline and binds its Query and Singleton fields.
// The stage is named after the system's type.
func (s *Scheduler) Register(system System) {
	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	s.RegisterNamed(systemType.Name(), system)
}

// RegisterNamed appends a system under an explicit stage name.
func (s *Scheduler) RegisterNamed(name string, system System) {
	st := &stage{
		name:   name,
		system: system,
		stats:  systemStatsInternal{minDuration: time.Duration(1<<63 - 1)},
	}
	st.queries = s.bindFields(system)
	s.stages = append(s.stages, st)
}

func (s *Scheduler) bindFields(system System) []executor {
	systemValue := reflect.ValueOf(system)
	if systemValue.Kind() == reflect.Ptr {
		systemValue = systemValue.Elem()
	}
	if systemValue.Kind() != reflect.Struct {
		return nil
	}

	var queries []executor
	for i := 0; i < systemValue.NumField(); i++ {
		field := systemValue.Field(i)
		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}

		b, ok := field.Addr().Interface().(binder)
		if !ok {
			continue
		}
		b.Init(s.storage)

		if q, ok := b.(executor); ok {
			queries = append(queries, q)
		}
	}
	return queries
}

// Storage returns the storage the pipeline runs against.
func (s *Scheduler) Storage() *Storage {
	return s.storage
}

// Once executes every stage in registration order with the given delta time,
// then flushes the frame's deferred commands. It returns the number of
// entities removed by the flush.
func (s *Scheduler) Once(dt float64) int {
	frame := &UpdateFrame{
		DeltaTime: dt,
		Commands:  s.commands,
		Storage:   s.storage,
	}

	for _, st := range s.stages {
		start := time.Now()
		for _, q := range st.queries {
			q.Execute()
		}
		st.system.Execute(frame)
		duration := time.Since(start)

		stats := &st.stats
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration
		stats.minDuration = min(stats.minDuration, duration)
		stats.maxDuration = max(stats.maxDuration, duration)
	}

	return s.commands.Flush(s.storage)
}

// Run executes all systems repeatedly at the given interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.stages),
		Systems:     make([]SystemStats, len(s.stages)),
	}

	var totalExecs int64
	for i, st := range s.stages {
		internal := st.stats
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           st.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
