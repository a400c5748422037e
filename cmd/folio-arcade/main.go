package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/folio-arcade/app"
	"github.com/lixenwraith/folio-arcade/audio"
	"github.com/lixenwraith/folio-arcade/config"
	"github.com/lixenwraith/folio-arcade/constants"
	"github.com/lixenwraith/folio-arcade/core"
	"github.com/lixenwraith/folio-arcade/engine"
	"github.com/lixenwraith/folio-arcade/game"
	"github.com/lixenwraith/folio-arcade/input"
	"github.com/lixenwraith/folio-arcade/logging"
	"github.com/lixenwraith/folio-arcade/notify"
	"github.com/lixenwraith/folio-arcade/progress"
	"github.com/lixenwraith/folio-arcade/render"
	"github.com/lixenwraith/folio-arcade/status"
	"github.com/lixenwraith/folio-arcade/storage"
)

var (
	configFlag = flag.String("config", "", "Path to config file (default $XDG_CONFIG_HOME/folio-arcade/config.yaml)")
	storeFlag  = flag.String("store", "", "Store driver: sqlite, postgres, redis, memory")
	dsnFlag    = flag.String("dsn", "", "Store location: file path, connection string or redis URL")
	muteFlag   = flag.Bool("mute", false, "Start with sound muted")
	debugFlag  = flag.Bool("debug", false, "Show the metrics footer")
	colorFlag  = flag.String("color", "auto", "Color mode: auto, on, off")
)

func main() {
	// Panic Recovery: restores the terminal if the loop crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "folio-arcade: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if err := applyFlags(cfg); err != nil {
		return err
	}

	log, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	keys := input.DefaultKeyTable()
	if len(cfg.Keys) > 0 {
		override, err := input.LoadKeyConfig(cfg.Keys)
		if err != nil {
			return fmt.Errorf("keys: %w", err)
		}
		keys = input.MergeKeyTable(keys, override)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	reg := status.NewRegistry()
	loop := engine.NewLoop(constants.LoopTaskBuffer)
	notices := notify.New(loop, log.Named("notify"), reg)

	// Initialize audio; the arcade runs silent when no device is available
	sounds := audio.NewSoundManager(log.Named("audio"))
	if cfg.Audio.Enabled {
		if err := sounds.Initialize(); err != nil {
			log.Warn("audio unavailable, continuing without sound", zap.Error(err))
		}
		defer sounds.Cleanup()
	}
	sounds.SetMuted(*muteFlag)

	store := progress.NewStore(openBackend(ctx, cfg, log),
		progress.WithKey(cfg.Store.Key),
		progress.WithTimeout(cfg.Store.Timeout),
		progress.WithNotifier(notices),
		progress.WithLevelHook(func(int) { sounds.Play(game.CueLevelUp) }),
		progress.WithLogger(log.Named("progress")),
		progress.WithStatus(reg),
	)
	defer func() {
		if err := store.Close(); err != nil {
			log.Warn("store close failed", zap.Error(err))
		}
	}()
	store.Load(ctx)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	core.RegisterScreen(screen)
	// Normal exit terminal cleanup
	defer func() {
		core.RegisterScreen(nil)
		screen.Fini()
	}()
	if cfg.Display.Mouse {
		screen.EnableMouse()
	}
	screen.HideCursor()

	arcade := app.New(app.Options{
		Screen:    screen,
		Scheduler: loop,
		Progress:  store,
		Notices:   notices,
		Sounds:    sounds,
		Keys:      keys,
		Palette:   render.NewPalette(cfg.Display.Color),
		Debug:     cfg.Display.Debug,
		Log:       log,
		Status:    reg,
	})

	// Deferred store.Close writes whatever is still queued
	return arcade.Run(ctx, loop)
}

// applyFlags layers explicit command-line values over the loaded config
func applyFlags(cfg *config.Config) error {
	if *storeFlag != "" {
		cfg.Store.Driver = *storeFlag
	}
	if *dsnFlag != "" {
		cfg.Store.DSN = *dsnFlag
	}
	if *debugFlag {
		cfg.Display.Debug = true
	}
	switch strings.ToLower(*colorFlag) {
	case "on", "true":
		cfg.Display.Color = true
	case "off", "false", "mono":
		cfg.Display.Color = false
	case "auto", "":
	default:
		return fmt.Errorf("%w: -color %q", config.ErrInvalid, *colorFlag)
	}
	return cfg.Validate()
}

// openBackend connects the configured store; failures fall back to in-memory progress
func openBackend(ctx context.Context, cfg *config.Config, log *zap.Logger) progress.Backend {
	ctx, cancel := context.WithTimeout(ctx, cfg.Store.Timeout)
	defer cancel()

	backend, err := storage.Open(ctx, cfg.Store.Driver, cfg.Store.DSN)
	if err != nil {
		level := log.Warn
		if errors.Is(err, storage.ErrUnknownDriver) {
			level = log.Error
		}
		level("store unavailable, progress will not persist",
			zap.String("driver", cfg.Store.Driver), zap.Error(err))
		return nil
	}
	log.Info("store opened", zap.String("driver", cfg.Store.Driver))
	return backend
}
