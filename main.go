package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/pthm-cable/arena/config"
	"github.com/pthm-cable/arena/game"
	"github.com/pthm-cable/arena/highscore"
	"github.com/pthm-cable/arena/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs, config and snapshots")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Uint64("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	highScorePath := flag.String("highscore", "", "High score file (empty = use config)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(*configPath, *headless, *logStats, *outputDir, *seed, *maxTicks, *highScorePath); err != nil {
		slog.Error("arena exited", "error", err)
		os.Exit(1)
	}
}

func run(configPath string, headless, logStats bool, outputDir string, seed int64, maxTicks uint64, highScorePath string) error {
	// Initialize config before anything else
	if err := config.Init(configPath); err != nil {
		return err
	}
	cfg := config.Cfg()

	rngSeed := seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	if highScorePath == "" {
		highScorePath = cfg.Persistence.HighScorePath
	}

	output, err := telemetry.NewOutputManager(outputDir)
	if err != nil {
		return err
	}
	defer output.Close()
	if err := output.WriteConfig(cfg); err != nil {
		return err
	}

	g, err := game.New(game.Options{
		Config:     cfg,
		Seed:       rngSeed,
		HighScores: highscore.NewFileStore(highScorePath),
		Output:     output,
		LogStats:   logStats,
	})
	if err != nil {
		return err
	}

	if headless {
		return runHeadless(g, rngSeed, maxTicks)
	}
	return runGraphical(g, cfg, maxTicks)
}

// runHeadless plays one session with no input at the nominal frame rate,
// as fast as the CPU allows.
func runHeadless(g *game.Game, seed int64, maxTicks uint64) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	slog.Info("starting headless simulation",
		"seed", seed,
		"max_ticks", maxTicks,
	)

	g.Start()
	if err := game.RunFixed(ctx, g, game.FrameInterval, maxTicks); err != nil && ctx.Err() == nil {
		return err
	}

	slog.Info("headless run finished",
		"tick", g.Tick(),
		"score", g.Score(),
		"state", g.State().String(),
	)
	g.LogPerf()
	return nil
}
