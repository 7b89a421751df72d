package config

import (
	"image/color"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment override, e.g. DESKCLOCK_FULLSCREEN.
const EnvPrefix = "DESKCLOCK"

// Config mirrors the optional deskclock.yaml file.
// The chosen background is never written back here.
type Config struct {
	DefaultImage      string        `yaml:"default_image" envconfig:"DEFAULT_IMAGE"`       // loaded at startup when it exists
	Fullscreen        bool          `yaml:"fullscreen" envconfig:"FULLSCREEN"`             // start in fullscreen
	WindowWidth       int           `yaml:"window_width" envconfig:"WINDOW_WIDTH"`         // windowed size
	WindowHeight      int           `yaml:"window_height" envconfig:"WINDOW_HEIGHT"`       // windowed size
	RefreshInterval   time.Duration `yaml:"refresh_interval" envconfig:"REFRESH_INTERVAL"` // clock tick
	ReloadDelay       time.Duration `yaml:"reload_delay" envconfig:"RELOAD_DELAY"`         // wait after a fullscreen toggle
	DoubleClickWindow time.Duration `yaml:"double_click_window" envconfig:"DOUBLE_CLICK"`  // max gap between two clicks
	FontScale         float64       `yaml:"font_scale" envconfig:"FONT_SCALE"`             // multiplies the clock size
	TextColor         string        `yaml:"text_color" envconfig:"TEXT_COLOR"`             // #rrggbb
	BaseColor         string        `yaml:"base_color" envconfig:"BASE_COLOR"`             // #rrggbb
	WatchBackground   bool          `yaml:"watch_background" envconfig:"WATCH_BACKGROUND"` // reload when the file changes
	ShowMonitor       bool          `yaml:"show_monitor" envconfig:"SHOW_MONITOR"`         // CPU/MEM line
	MonitorInterval   time.Duration `yaml:"monitor_interval" envconfig:"MONITOR_INTERVAL"` // CPU/MEM sample period
	LogLevel          string        `yaml:"log_level" envconfig:"LOG_LEVEL"`               // debug, info, warn, error
}

// NewDefault returns the configuration used when no file is present.
func NewDefault() *Config {
	return &Config{
		DefaultImage:      "image.png",
		Fullscreen:        true,
		WindowWidth:       1280,
		WindowHeight:      720,
		RefreshInterval:   time.Second,
		ReloadDelay:       100 * time.Millisecond,
		DoubleClickWindow: 400 * time.Millisecond,
		FontScale:         1,
		TextColor:         "#ffffff",
		BaseColor:         "#000000",
		WatchBackground:   true,
		ShowMonitor:       false,
		MonitorInterval:   2 * time.Second,
		LogLevel:          "info",
	}
}

// Load reads filename on top of the defaults and then applies environment
// overrides. A missing file is not an error.
func Load(filename string) (*Config, error) {
	cfg := NewDefault()

	// 1. optional file
	if filename != "" {
		data, err := os.ReadFile(filename)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, errors.Wrapf(err, "parse %s", filename)
			}
		case os.IsNotExist(err):
		default:
			return nil, errors.Wrapf(err, "read %s", filename)
		}
	}

	// 2. environment
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, errors.Wrap(err, "environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as YAML, used by "config init".
func Save(cfg *Config, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return err
	}
	return encoder.Close()
}

// Validate rejects values the overlay cannot run with.
func (c *Config) Validate() error {
	if c.RefreshInterval <= 0 {
		return errors.New("refresh_interval must be positive")
	}
	if c.ReloadDelay < 0 {
		return errors.New("reload_delay must not be negative")
	}
	if c.DoubleClickWindow <= 0 {
		return errors.New("double_click_window must be positive")
	}
	if c.MonitorInterval <= 0 {
		return errors.New("monitor_interval must be positive")
	}
	if c.FontScale <= 0 {
		return errors.New("font_scale must be positive")
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return errors.New("window size must be positive")
	}
	if _, err := ParseColor(c.TextColor); err != nil {
		return errors.Wrap(err, "text_color")
	}
	if _, err := ParseColor(c.BaseColor); err != nil {
		return errors.Wrap(err, "base_color")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log_level")
	}
	return nil
}

// Text returns the parsed label color. Validate must have passed.
func (c *Config) Text() color.RGBA {
	rgba, _ := ParseColor(c.TextColor)
	return rgba
}

// Base returns the parsed base fill. Validate must have passed.
func (c *Config) Base() color.RGBA {
	rgba, _ := ParseColor(c.BaseColor)
	return rgba
}

// Level returns the parsed log level, info if unset.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

const hexDigits = "0123456789abcdefABCDEF"

// ParseColor accepts "#rgb" and "#rrggbb" (leading # optional).
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if (len(hex) != 3 && len(hex) != 6) || strings.Trim(hex, hexDigits) != "" {
		return color.RGBA{}, errors.Errorf("invalid color %q", s)
	}
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return color.RGBA{}, errors.Wrapf(err, "invalid color %q", s)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
