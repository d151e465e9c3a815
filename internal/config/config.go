package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/zhaoyu-io/folio/internal/visibility"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Content   ContentConfig   `yaml:"content"`
	Animation AnimationConfig `yaml:"animation"`
	Theme     ThemeConfig     `yaml:"theme"`
}

type ServerConfig struct {
	Port           int      `yaml:"port"`
	Host           string   `yaml:"host"`
	Dev            bool     `yaml:"dev"`
	FrontendDir    string   `yaml:"frontend_dir"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	// AuthToken guards the admin endpoints. Empty leaves them open.
	AuthToken         string        `yaml:"auth_token"`
	MaxConnections    int           `yaml:"max_connections"`
	BroadcastThrottle time.Duration `yaml:"broadcast_throttle"`
	SnapshotInterval  time.Duration `yaml:"snapshot_interval"`
}

type ContentConfig struct {
	Path           string        `yaml:"path"`
	Watch          bool          `yaml:"watch"`
	ReloadThrottle time.Duration `yaml:"reload_throttle"`
}

// AnimationConfig carries the scroll-animation presets. Pixel values are
// logical pixels; the terminal client maps cells onto them.
type AnimationConfig struct {
	visibility.Config  `yaml:",inline"`
	NavScrollThreshold float64       `yaml:"nav_scroll_threshold"`
	NavHysteresis      float64       `yaml:"nav_hysteresis"`
	NavDebounce        time.Duration `yaml:"nav_debounce"`
	FrameInterval      time.Duration `yaml:"frame_interval"`
}

type ThemeConfig struct {
	// Path of the file the chosen theme is persisted to. Empty selects
	// $XDG_CONFIG_HOME/folio/theme.
	Path string `yaml:"path"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:              8080,
			Host:              "0.0.0.0",
			MaxConnections:    256,
			BroadcastThrottle: 100 * time.Millisecond,
			SnapshotInterval:  5 * time.Minute,
		},
		Content: ContentConfig{
			Path:           "content.yaml",
			Watch:          true,
			ReloadThrottle: 250 * time.Millisecond,
		},
		Animation: AnimationConfig{
			Config:             visibility.DefaultConfig(),
			NavScrollThreshold: 20,
			NavHysteresis:      5,
			NavDebounce:        10 * time.Millisecond,
			FrameInterval:      time.Second / 60,
		},
	}
}

// Default returns the built-in configuration.
func Default() *Config {
	return defaultConfig()
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// LoadOrDefault behaves like Load but returns defaults when the file does
// not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return defaultConfig(), nil
	}
	return cfg, err
}

func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Server.MaxConnections < 0 {
		return fmt.Errorf("server.max_connections must not be negative")
	}
	if c.Server.SnapshotInterval < 0 {
		return fmt.Errorf("server.snapshot_interval must not be negative")
	}
	a := c.Animation
	if a.Breakpoint <= 0 {
		return fmt.Errorf("animation.breakpoint must be positive")
	}
	for name, p := range map[string]visibility.Preset{"desktop": a.Desktop, "mobile": a.Mobile} {
		if p.Threshold < 0 || p.Threshold > 1 {
			return fmt.Errorf("animation.%s.threshold %v outside [0,1]", name, p.Threshold)
		}
		if p.Debounce < 0 {
			return fmt.Errorf("animation.%s.debounce must not be negative", name)
		}
		if _, err := visibility.ParseMargin(p.RootMargin); err != nil {
			return fmt.Errorf("animation.%s: %w", name, err)
		}
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
