package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid config")

type Window struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Camera struct {
	FOV       float64 `yaml:"fov"` // degrees
	Near      float64 `yaml:"near"`
	Far       float64 `yaml:"far"`
	Distance  float64 `yaml:"distance"`
	Pitch     float64 `yaml:"pitch"` // degrees
	Smoothing float64 `yaml:"smoothing"`
}

type Player struct {
	Mass              float64 `yaml:"mass"`
	Radius            float64 `yaml:"radius"`
	RollingResistance float64 `yaml:"rolling_resistance"`
	Strength          float64 `yaml:"strength"`
	TerminalVelocity  float64 `yaml:"terminal_velocity"`
}

type Config struct {
	TickInterval int     `yaml:"tick_interval_ms"`
	Lives        int     `yaml:"lives"`
	Workers      int     `yaml:"workers"`
	DeathDepth   float64 `yaml:"death_depth"`
	// LevelDir holds level1.txt..levelN.txt. Empty means the embedded campaign.
	LevelDir   string `yaml:"level_dir"`
	LevelCount int    `yaml:"level_count"`

	Window Window `yaml:"window"`
	Camera Camera `yaml:"camera"`
	Player Player `yaml:"player"`
}

func Default() Config {
	return Config{
		TickInterval: 50,
		Lives:        3,
		Workers:      4,
		DeathDepth:   -10,
		LevelCount:   8,
		Window: Window{
			Width:  640,
			Height: 480,
		},
		Camera: Camera{
			FOV:       45,
			Near:      0.01,
			Far:       50,
			Distance:  6,
			Pitch:     35,
			Smoothing: 0.1,
		},
		Player: Player{
			Mass:              0.010,
			Radius:            0.5,
			RollingResistance: 0.005,
			Strength:          0.1,
			TerminalVelocity:  3.0,
		},
	}
}

// Interval is the fixed tick duration
func (c Config) Interval() time.Duration {
	return time.Duration(c.TickInterval) * time.Millisecond
}

// Load reads a YAML file on top of the defaults
func Load(path string) (Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("could not read config %s: %w", path, err)
	}

	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return config, fmt.Errorf("could not parse config %s: %w", path, err)
	}

	return config, config.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.TickInterval <= 0:
		return fmt.Errorf("%w: tick_interval_ms must be positive", ErrInvalid)
	case c.Lives < 1:
		return fmt.Errorf("%w: lives must be at least 1", ErrInvalid)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be at least 1", ErrInvalid)
	case c.LevelCount < 1:
		return fmt.Errorf("%w: level_count must be at least 1", ErrInvalid)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size must be positive", ErrInvalid)
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return fmt.Errorf("%w: camera fov must be in (0, 180)", ErrInvalid)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("%w: camera planes must satisfy 0 < near < far", ErrInvalid)
	case c.Camera.Smoothing <= 0 || c.Camera.Smoothing > 1:
		return fmt.Errorf("%w: camera smoothing must be in (0, 1]", ErrInvalid)
	case c.Player.Mass <= 0:
		return fmt.Errorf("%w: player mass must be positive", ErrInvalid)
	case c.Player.Radius <= 0 || c.Player.Radius > 0.5:
		return fmt.Errorf("%w: player radius must be in (0, 0.5]", ErrInvalid)
	case c.Player.TerminalVelocity <= 0:
		return fmt.Errorf("%w: player terminal_velocity must be positive", ErrInvalid)
	}

	return nil
}

func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
