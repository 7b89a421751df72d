package main

import (
	"context"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/elir-elirlab/elirdeskclock/config"
	"github.com/elir-elirlab/elirdeskclock/internal/dialog"
	"github.com/elir-elirlab/elirdeskclock/internal/game"
	"github.com/elir-elirlab/elirdeskclock/internal/monitor"
	"github.com/elir-elirlab/elirdeskclock/internal/overlay"
	"github.com/elir-elirlab/elirdeskclock/internal/schedule"
	"github.com/elir-elirlab/elirdeskclock/internal/watch"
)

const defaultConfigFile = "deskclock.yaml"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type flags struct {
	configFile string
	image      string
	windowed   bool
	logLevel   string
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:           "elirdeskclock",
		Short:         "Fullscreen desktop clock over a background image",
		Long:          "Esc toggles fullscreen, right click opens the menu, double click quits.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				log.Error().Err(err).Msg("invalid configuration")
				return err
			}
			if err := run(cfg); err != nil {
				log.Error().Err(err).Msg("clock exited with error")
				return err
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&f.configFile, "config", "c", defaultConfigFile, "optional YAML config file")
	cmd.Flags().StringVar(&f.image, "image", "", "background loaded at startup (default image.png)")
	cmd.Flags().BoolVar(&f.windowed, "windowed", false, "start in a window instead of fullscreen")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")

	cmd.AddCommand(newConfigCmd(&f))
	return cmd
}

func newConfigCmd(f *flags) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}
	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the default configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := os.Stat(f.configFile); err == nil {
				cmd.Printf("%s already exists\n", f.configFile)
				return nil
			}
			if err := config.Save(config.NewDefault(), f.configFile); err != nil {
				return err
			}
			cmd.Printf("wrote %s\n", f.configFile)
			return nil
		},
	})
	return configCmd
}

// loadConfig applies file, environment and then flags, and sets up logging.
func loadConfig(cmd *cobra.Command, f flags) (*config.Config, error) {
	setupLogger(zerolog.InfoLevel)

	cfg, err := config.Load(f.configFile)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("image") {
		cfg.DefaultImage = f.image
	}
	if f.windowed {
		cfg.Fullscreen = false
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	setupLogger(cfg.Level())
	return cfg, nil
}

func setupLogger(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}

func run(cfg *config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 1. timers
	sched, err := schedule.New()
	if err != nil {
		return err
	}
	sched.Start()
	defer func() {
		if err := sched.Shutdown(); err != nil {
			log.Warn().Err(err).Msg("scheduler shutdown")
		}
	}()

	// 2. the overlay and its window
	win := game.NewWindow(cfg.WindowWidth, cfg.WindowHeight)
	opts := overlay.Options{
		Dialogs:         dialog.Native{},
		Scheduler:       sched,
		DefaultImage:    cfg.DefaultImage,
		RefreshInterval: cfg.RefreshInterval,
		ReloadDelay:     cfg.ReloadDelay,
		BaseFill:        cfg.Base(),
	}
	var ov *overlay.ClockOverlay
	if cfg.WatchBackground {
		w, err := watch.New(watch.DebounceTime, func() { ov.Post(overlay.ReloadEvent()) })
		if err != nil {
			log.Warn().Err(err).Msg("background file watching disabled")
		} else {
			defer w.Close()
			opts.Watcher = w
		}
	}
	ov = overlay.New(win, cfg.Fullscreen, opts)

	// 3. optional system line
	var status game.StatusLine
	if cfg.ShowMonitor {
		sampler := monitor.NewSampler(cfg.MonitorInterval)
		sampler.Start(ctx)
		status = sampler
	}

	mgr, err := game.New(ov, win, game.Style{
		TextColor:         cfg.Text(),
		FontScale:         cfg.FontScale,
		DoubleClickWindow: cfg.DoubleClickWindow,
	}, status)
	if err != nil {
		return err
	}

	// 4. window
	ebiten.SetWindowTitle("Desk Clock")
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Fullscreen)
	ebiten.SetRunnableOnUnfocused(true)

	log.Info().
		Bool("fullscreen", cfg.Fullscreen).
		Str("default_image", cfg.DefaultImage).
		Msg("starting clock")

	if err := ebiten.RunGame(mgr); err != nil {
		return err
	}
	log.Info().Msg("clock closed")
	return nil
}
