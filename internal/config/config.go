package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"touchgrip/internal/gesture"
)

// Config is the application configuration.
type Config struct {
	Version  int             `toml:"version"`
	Gestures GestureSettings `toml:"gestures"`
	Slider   SliderSettings  `toml:"slider"`
}

// GestureSettings holds the recognizer thresholds. The vertical window is
// stored in degrees because that is what people tune by hand.
type GestureSettings struct {
	MinDistanceX       float64 `toml:"min_distance_x"`
	MinDistanceY       float64 `toml:"min_distance_y"`
	TapZones           int     `toml:"tap_zones"`
	YAngleWindowDegree float64 `toml:"y_angle_window_deg"`
}

// SliderSettings holds the demo slider's value space.
type SliderSettings struct {
	Min  float64 `toml:"min"`
	Max  float64 `toml:"max"`
	Step float64 `toml:"step"`
}

// GestureConfig converts the settings into recognizer thresholds.
func (g GestureSettings) GestureConfig() gesture.Config {
	return gesture.Config{
		MinDistanceX: g.MinDistanceX,
		MinDistanceY: g.MinDistanceY,
		TapZones:     g.TapZones,
		YAngleWindow: g.YAngleWindowDegree * math.Pi / 180,
	}
}

// Service handles configuration management.
type Service interface {
	Load() (*Config, error)
	Save(cfg *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(cfg *Config, path string) error
}

type service struct {
	filePath string
}

// NewService creates a config service rooted at the user config directory.
func NewService() Service {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	dir := filepath.Join(configDir, "touchgrip")
	os.MkdirAll(dir, 0755)

	return &service{
		filePath: filepath.Join(dir, "config.toml"),
	}
}

// Load loads the configuration from the default path, falling back to
// defaults when no file exists yet.
func (s *service) Load() (*Config, error) {
	if _, err := os.Stat(s.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return s.LoadFromPath(s.filePath)
}

// Save saves the configuration to the default path.
func (s *service) Save(cfg *Config) error {
	return s.SaveToPath(cfg, s.filePath)
}

// LoadFromPath loads configuration from a specific path.
func (s *service) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// SaveToPath saves configuration to a specific path.
func (s *service) SaveToPath(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Gestures: GestureSettings{
			MinDistanceX:       gesture.DefaultMinDistanceX,
			MinDistanceY:       gesture.DefaultMinDistanceY,
			TapZones:           gesture.DefaultTapZones,
			YAngleWindowDegree: 90,
		},
		Slider: SliderSettings{
			Min:  0,
			Max:  100,
			Step: 1,
		},
	}
}

// applyDefaults fills fields a hand-edited file may have dropped.
func applyDefaults(cfg *Config) {
	def := DefaultConfig()
	if cfg.Gestures.MinDistanceX <= 0 {
		cfg.Gestures.MinDistanceX = def.Gestures.MinDistanceX
	}
	if cfg.Gestures.MinDistanceY <= 0 {
		cfg.Gestures.MinDistanceY = def.Gestures.MinDistanceY
	}
	if cfg.Gestures.TapZones == 0 {
		cfg.Gestures.TapZones = def.Gestures.TapZones
	}
	if cfg.Gestures.YAngleWindowDegree <= 0 {
		cfg.Gestures.YAngleWindowDegree = def.Gestures.YAngleWindowDegree
	}
	if cfg.Slider.Max <= cfg.Slider.Min {
		cfg.Slider = def.Slider
	}
}
