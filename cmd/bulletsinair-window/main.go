package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/bulletsinair/audio"
	"github.com/lixenwraith/bulletsinair/config"
	"github.com/lixenwraith/bulletsinair/engine"
	"github.com/lixenwraith/bulletsinair/game"
	"github.com/lixenwraith/bulletsinair/input"
	"github.com/lixenwraith/bulletsinair/logging"
	"github.com/lixenwraith/bulletsinair/status"
	"github.com/lixenwraith/bulletsinair/window"
)

var (
	configFlag = flag.String("config", "", "Config file (.toml, .yaml or .yml)")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/ and show the status line")
	muteFlag   = flag.Bool("mute", false, "Disable sound")
	scaleFlag  = flag.Int("scale", 1, "Initial window scale")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	cfg.Debug = cfg.Debug || *debugFlag
	cfg.Audio.Muted = cfg.Audio.Muted || *muteFlag

	keys := input.DefaultKeyTable()
	if err := keys.Apply(cfg.Input.Keys); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := logging.Setup(cfg.Debug, logging.DefaultDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	sounds := audio.NewSoundManager(cfg.Audio.Volume, cfg.Audio.Muted)
	if err := sounds.Initialize(); err != nil {
		logger.Warn("audio initialization failed", zap.Error(err))
	}
	defer sounds.Cleanup()

	rules := cfg.Rules()
	provider := engine.NewMonotonicTimeProvider()

	var pad *input.TouchPad
	if cfg.Input.TouchButtons {
		pad = input.NewTouchPad(rules.SurfaceWidth, rules.SurfaceHeight)
	}
	// The window reports key releases, so holds never expire on their own
	agg := input.NewAggregator(keys, input.NewHoldTracker(0, 0), pad)

	metrics := status.NewRegistry()
	var statusLine *status.Registry
	if cfg.Debug {
		statusLine = metrics
	}

	ctrl := game.NewController(engine.NewSession(rules, provider), agg, sounds, metrics, logger, provider)

	scale := max(*scaleFlag, 1)
	ebiten.SetWindowSize(int(rules.SurfaceWidth)*scale, int(rules.SurfaceHeight)*scale)
	ebiten.SetWindowTitle("Bullets in Air")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(int(time.Second / cfg.FrameInterval()))

	if err := ebiten.RunGame(window.NewGame(ctrl, statusLine)); err != nil {
		logger.Error("run failed", zap.Error(err))
		closeLog()
		fmt.Fprintf(os.Stderr, "Game failed: %v\n", err)
		os.Exit(1)
	}
	logger.Info("exiting", zap.Int64("matches", metrics.Ints.Get(status.KeyMatches).Load()))
}
