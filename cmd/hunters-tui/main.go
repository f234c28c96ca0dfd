// Command hunters-tui runs the pursuit simulation in a terminal. The player
// follows the mouse and a short tone plays whenever circles collide.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/plus3/hunters/audio"
	"github.com/plus3/hunters/config"
	"github.com/plus3/hunters/logging"
	"github.com/plus3/hunters/sim"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file. Defaults are used when empty.")
	logPath := flag.String("log", "hunters-tui.log", "File receiving the log, since the terminal is taken by the game.")
	mute := flag.Bool("mute", false, "Disable collision sounds.")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Logging.Output = *logPath

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	game, err := sim.NewGame(cfg, sim.WithGameObserver(sim.NewLogObserver(logger)))
	if err != nil {
		logger.Fatal("create game", zap.Error(err))
	}
	if err := game.Bootstrap(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		logger.Fatal("bootstrap", zap.Error(err))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Fatal("create screen", zap.Error(err))
	}
	if err := screen.Init(); err != nil {
		logger.Fatal("init screen", zap.Error(err))
	}
	screen.EnableMouse()
	screen.HideCursor()

	blipper := audio.NewBlipper()
	if !*mute {
		if err := blipper.Initialize(); err != nil {
			logger.Warn("audio disabled", zap.Error(err))
		}
	}

	a := newApp(screen, game, blipper, logger)
	err = a.run()

	blipper.Cleanup()
	screen.Fini()

	if err != nil {
		logger.Error("game stopped", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Game stopped: %v\n", err)
		os.Exit(1)
	}

	counters := game.Counters().Snapshot()
	logger.Info("game stopped",
		zap.Int64("collisions", counters.Collisions),
		zap.Int64("resolved", counters.Resolved),
		zap.Int64("reverted", counters.Unresolved),
	)
}
