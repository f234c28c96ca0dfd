package sim

import (
	"context"
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Frames          int64
	LastFrame       time.Duration
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
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler runs systems against a registry once per frame.
type Scheduler struct {
	registry    *Registry
	systems     []System
	systemStats []*systemStatsInternal

	frames    int64
	lastFrame time.Duration
}

// NewScheduler creates a scheduler for registry.
func NewScheduler(registry *Registry) *Scheduler {
	if registry == nil {
		panic("sim: NewScheduler with nil registry")
	}
	return &Scheduler{
		registry: registry,
		systems:  make([]System, 0),
	}
}

// Register appends a system. Systems execute in registration order.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Once executes every system with the given delta time and input, then
// flushes the frame's commands. The error comes from the flush.
func (s *Scheduler) Once(dt float64, input Input) error {
	frameStart := time.Now()
	frame := newUpdateFrame(dt, input, s.registry)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	err := frame.Commands.Flush(s.registry)
	s.frames++
	s.lastFrame = time.Since(frameStart)
	return err
}

// Run executes frames at the given interval until ctx is cancelled or a
// frame fails. A non-positive interval runs frames back to back. input is
// sampled once per frame, on the scheduler goroutine.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration, input func() Input) error {
	lastTime := time.Now()
	frame := func(now time.Time) error {
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		var in Input
		if input != nil {
			in = input()
		}
		return s.Once(dt, in)
	}

	if interval <= 0 {
		for {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := frame(time.Now()); err != nil {
				return err
			}
		}
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			if err := frame(now); err != nil {
				return err
			}
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		LastFrame:   s.lastFrame,
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
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
