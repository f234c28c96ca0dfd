package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"runtime"
	"time"

	"github.com/plus3/hunters/config"
	"github.com/plus3/hunters/sim"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	enemyCount := flag.Int("enemies", 500, "The number of enemies to spawn.")
	width := flag.Int("width", 4000, "Playfield width.")
	height := flag.Int("height", 4000, "Playfield height.")
	seed := flag.String("seed", "stress", "Seed for enemy placement.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting pursuit stress test...")

	cfg := config.Default()
	cfg.Window.Width = *width
	cfg.Window.Height = *height
	cfg.Enemies.Count = *enemyCount
	cfg.Seed = *seed

	game, err := sim.NewGame(cfg)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	log.Printf("Populating playfield with %d enemies...\n", *enemyCount)
	if err := game.Bootstrap(); err != nil {
		log.Fatalf("Failed to populate: %v", err)
	}
	log.Println("Population complete.")

	report := &Report{
		Duration:       *duration,
		Enemies:        *enemyCount,
		Width:          *width,
		Height:         *height,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	// The player circles the centre so the pursuers keep turning.
	centre := sim.Vec2{X: float64(*width) / 2, Y: float64(*height) / 2}
	orbit := math.Min(float64(*width), float64(*height)) / 4

	startTime := time.Now()
	var totalUpdates int64
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			angle := time.Since(startTime).Seconds()
			target := centre.Add(sim.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}.Scale(orbit))

			updateStart := time.Now()
			if err := game.AdvanceFrame(deltaTime.Seconds(), target); err != nil {
				log.Fatalf("Frame %d failed: %v", totalUpdates, err)
			}
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	report.Collisions = game.Counters().Snapshot()
	report.Scheduler = game.Scheduler().GetStats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
