// Package config provides configuration loading for the game.
package config

import (
	_ "embed"
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// EnvPath names an optional YAML file merged over the defaults.
const EnvPath = "ASTEROIDS_CONFIG"

// Config holds all game configuration parameters.
type Config struct {
	Screen    ScreenConfig        `yaml:"screen"`
	Player    PlayerConfig        `yaml:"player"`
	Asteroid  AsteroidConfig      `yaml:"asteroid"`
	Laser     LaserConfig         `yaml:"laser"`
	Waves     WavesConfig         `yaml:"waves"`
	Keys      map[string][]string `yaml:"keys"`
	Log       LogConfig           `yaml:"log"`
	Telemetry TelemetryConfig     `yaml:"telemetry"`
	Debug     DebugConfig         `yaml:"debug"`
	Textures  TexturesConfig      `yaml:"textures"`
}

type ScreenConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type PlayerConfig struct {
	RotationSpeed float64 `yaml:"rotation_speed"`
	MaxSpeed      float64 `yaml:"max_speed"`
	Friction      float64 `yaml:"friction"`
	StartHealth   int     `yaml:"start_health"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
}

// AsteroidConfig holds the ranges new asteroids are drawn from.
type AsteroidConfig struct {
	MinSpeed         float64 `yaml:"min_speed"`
	MaxSpeed         float64 `yaml:"max_speed"`
	MinRotationSpeed float64 `yaml:"min_rotation_speed"`
	MaxRotationSpeed float64 `yaml:"max_rotation_speed"`
	MinSize          float64 `yaml:"min_size"`
	MaxSize          float64 `yaml:"max_size"`
	Friction         float64 `yaml:"friction"`
}

type LaserConfig struct {
	Speed   float64 `yaml:"speed"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	MaxLive int     `yaml:"max_live"` // fire requests beyond this are dropped
}

type WavesConfig struct {
	ScorePerLevel     int    `yaml:"score_per_level"`
	AsteroidsPerLevel int    `yaml:"asteroids_per_level"`
	MassSpawnCount    int    `yaml:"mass_spawn_count"`
	Seed              uint64 `yaml:"seed"` // 0 picks a random seed
}

type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// TelemetryConfig controls the per-wave CSV log.
type TelemetryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

type DebugConfig struct {
	Overlay   bool   `yaml:"overlay"`
	ToggleKey string `yaml:"toggle_key"`
	Bounds    bool   `yaml:"bounds"` // outline collision circles
}

// TexturesConfig names the image files under Dir.
type TexturesConfig struct {
	Dir      string `yaml:"dir"`
	Player   string `yaml:"player"`
	Asteroid string `yaml:"asteroid"`
	Laser    string `yaml:"laser"`
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(eris.Wrap(err, "embedded defaults are invalid"))
	}
	return cfg
}

// FromEnv loads the defaults merged with the file named by ASTEROIDS_CONFIG,
// if it is set.
func FromEnv() (*Config, error) {
	return Load(os.Getenv(EnvPath))
}

// Load reads the embedded defaults and merges the file at path over them.
// An empty path uses the defaults alone.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, eris.Wrap(err, "parsing embedded defaults")
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, eris.Wrap(err, "reading config file")
		}
		// Only fields present in the file are overwritten.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, eris.Wrap(err, "parsing config file")
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = eris.New("invalid config")

// Validate checks that values are usable by the simulation.
func (c *Config) Validate() error {
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return eris.Wrapf(ErrInvalid, "screen size %dx%d", c.Screen.Width, c.Screen.Height)
	case c.Player.MaxSpeed <= 0:
		return eris.Wrapf(ErrInvalid, "player.max_speed %v", c.Player.MaxSpeed)
	case c.Player.Friction < 0:
		return eris.Wrapf(ErrInvalid, "player.friction %v", c.Player.Friction)
	case c.Player.StartHealth < 1:
		return eris.Wrapf(ErrInvalid, "player.start_health %d", c.Player.StartHealth)
	case c.Asteroid.MinSpeed > c.Asteroid.MaxSpeed:
		return eris.Wrap(ErrInvalid, "asteroid speed range is inverted")
	case c.Asteroid.MinRotationSpeed > c.Asteroid.MaxRotationSpeed:
		return eris.Wrap(ErrInvalid, "asteroid rotation speed range is inverted")
	case c.Asteroid.MinSize <= 0 || c.Asteroid.MinSize > c.Asteroid.MaxSize:
		return eris.Wrapf(ErrInvalid, "asteroid size range [%v, %v]", c.Asteroid.MinSize, c.Asteroid.MaxSize)
	case c.Asteroid.MaxSize >= float64(min(c.Screen.Width, c.Screen.Height))/2:
		return eris.Wrapf(ErrInvalid, "asteroid.max_size %v does not fit a screen quadrant", c.Asteroid.MaxSize)
	case c.Laser.Speed <= 0:
		return eris.Wrapf(ErrInvalid, "laser.speed %v", c.Laser.Speed)
	case c.Laser.MaxLive < 0:
		return eris.Wrapf(ErrInvalid, "laser.max_live %d", c.Laser.MaxLive)
	case c.Waves.AsteroidsPerLevel < 1:
		return eris.Wrapf(ErrInvalid, "waves.asteroids_per_level %d", c.Waves.AsteroidsPerLevel)
	case c.Waves.MassSpawnCount < 0:
		return eris.Wrapf(ErrInvalid, "waves.mass_spawn_count %d", c.Waves.MassSpawnCount)
	}
	return nil
}

// WriteYAML writes the configuration to path.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return eris.Wrap(err, "marshaling config")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrap(err, "writing config file")
	}
	return nil
}
