package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/bulletsinair/audio"
	"github.com/lixenwraith/bulletsinair/config"
	"github.com/lixenwraith/bulletsinair/engine"
	"github.com/lixenwraith/bulletsinair/game"
	"github.com/lixenwraith/bulletsinair/input"
	"github.com/lixenwraith/bulletsinair/logging"
	"github.com/lixenwraith/bulletsinair/render"
	"github.com/lixenwraith/bulletsinair/status"
)

var (
	configFlag = flag.String("config", "", "Config file (.toml, .yaml or .yml)")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/ and show the status line")
	muteFlag   = flag.Bool("mute", false, "Disable sound")
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

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			logger.Error("crashed", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
			closeLog()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mBULLETS IN AIR CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.HideCursor()
	screen.EnableMouse()

	sounds := audio.NewSoundManager(cfg.Audio.Volume, cfg.Audio.Muted)
	if err := sounds.Initialize(); err != nil {
		// Non-fatal, the game runs without sound
		logger.Warn("audio initialization failed", zap.Error(err))
	}
	defer sounds.Cleanup()

	rules := cfg.Rules()
	provider := engine.NewMonotonicTimeProvider()

	var pad *input.TouchPad
	if cfg.Input.TouchButtons {
		pad = input.NewTouchPad(rules.SurfaceWidth, rules.SurfaceHeight)
	}
	agg := input.NewAggregator(keys, input.NewHoldTracker(cfg.HoldTimeouts()), pad)

	metrics := status.NewRegistry()
	var statusLine *status.Registry
	if cfg.Debug {
		statusLine = metrics
	}

	ctrl := game.NewController(engine.NewSession(rules, provider), agg, sounds, metrics, logger, provider)
	renderer := render.NewTerminalRenderer(screen, rules, pad, statusLine)
	runner := game.NewTerminalRunner(screen, ctrl, renderer, cfg.FrameInterval())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting",
		zap.String("config", *configFlag),
		zap.Duration("frame", cfg.FrameInterval()),
		zap.Bool("touch_buttons", cfg.Input.TouchButtons))

	err = runner.Run(ctx)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("run failed", zap.Error(err))
	}
	logger.Info("exiting", zap.Int64("matches", metrics.Ints.Get(status.KeyMatches).Load()))
}
