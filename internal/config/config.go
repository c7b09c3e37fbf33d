// Package config loads arena settings from defaults, an optional YAML file
// and AGENTFSM_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. AGENTFSM_TPS.
const EnvPrefix = "AGENTFSM"

// Config is the full set of runtime settings.
type Config struct {
	Window WindowConfig `mapstructure:"window"`
	TPS    int          `mapstructure:"tps"`
	Seed   int64        `mapstructure:"seed"` // 0 picks a time-based seed
	Agents AgentsConfig `mapstructure:"agents"`
	Pickup PointConfig  `mapstructure:"pickup"`
	Tuning TuningConfig `mapstructure:"tuning"`
	Log    LogConfig    `mapstructure:"log"`
}

// WindowConfig sizes the playfield; the thought panel is added to the width.
type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// AgentsConfig controls how many agents spawn and where.
type AgentsConfig struct {
	Count  int     `mapstructure:"count"`
	SpawnX float64 `mapstructure:"spawn_x"`
	SpawnY float64 `mapstructure:"spawn_y"`
	// Spacing offsets each additional agent's spawn along x.
	Spacing float64 `mapstructure:"spacing"`
}

// PointConfig is an arena position.
type PointConfig struct {
	X float64 `mapstructure:"x"`
	Y float64 `mapstructure:"y"`
}

// TuningConfig holds the per-agent movement and perception constants.
type TuningConfig struct {
	MaxSpeed          float64 `mapstructure:"max_speed"`
	MaxForce          float64 `mapstructure:"max_force"`
	SightRange        float64 `mapstructure:"sight_range"`
	MaxHealth         int     `mapstructure:"max_health"`
	SteeringCorrected bool    `mapstructure:"steering_corrected"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Timestamps bool   `mapstructure:"timestamps"`
}

// Default returns the stock configuration: one agent in a 1280×720 arena
// with the pickup in the centre.
func Default() Config {
	return Config{
		Window: WindowConfig{Width: 1280, Height: 720, Title: "Agent FSM"},
		TPS:    60,
		Agents: AgentsConfig{Count: 1, SpawnX: 100, SpawnY: 100, Spacing: 40},
		Pickup: PointConfig{X: 640, Y: 360},
		Tuning: TuningConfig{
			MaxSpeed:   4,
			MaxForce:   0.1,
			SightRange: 250,
			MaxHealth:  100,
		},
		Log: LogConfig{Level: "info", Timestamps: true},
	}
}

// Load builds a Config. If path is empty, agentfsm.yaml is looked up in the
// working directory and $HOME/.config/agentfsm; a missing file is not an
// error. Environment variables override file values.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("agentfsm")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/agentfsm")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override keys that
// are absent from the file.
func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)
	v.SetDefault("window.title", d.Window.Title)
	v.SetDefault("tps", d.TPS)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("agents.count", d.Agents.Count)
	v.SetDefault("agents.spawn_x", d.Agents.SpawnX)
	v.SetDefault("agents.spawn_y", d.Agents.SpawnY)
	v.SetDefault("agents.spacing", d.Agents.Spacing)
	v.SetDefault("pickup.x", d.Pickup.X)
	v.SetDefault("pickup.y", d.Pickup.Y)
	v.SetDefault("tuning.max_speed", d.Tuning.MaxSpeed)
	v.SetDefault("tuning.max_force", d.Tuning.MaxForce)
	v.SetDefault("tuning.sight_range", d.Tuning.SightRange)
	v.SetDefault("tuning.max_health", d.Tuning.MaxHealth)
	v.SetDefault("tuning.steering_corrected", d.Tuning.SteeringCorrected)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.timestamps", d.Log.Timestamps)
}

// Validate reports the first setting that cannot produce a working arena.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	case c.TPS <= 0:
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	case c.Agents.Count <= 0:
		return fmt.Errorf("agents.count must be positive, got %d", c.Agents.Count)
	case c.Tuning.MaxSpeed <= 0:
		return fmt.Errorf("tuning.max_speed must be positive, got %g", c.Tuning.MaxSpeed)
	case c.Tuning.MaxForce < 0:
		return fmt.Errorf("tuning.max_force must not be negative, got %g", c.Tuning.MaxForce)
	case c.Tuning.SightRange <= 0:
		return fmt.Errorf("tuning.sight_range must be positive, got %g", c.Tuning.SightRange)
	case c.Tuning.MaxHealth <= 0:
		return fmt.Errorf("tuning.max_health must be positive, got %d", c.Tuning.MaxHealth)
	}
	return nil
}
