package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS      = 60
	DefaultTheme    = "neon"
	DefaultDuration = 45.0
	DefaultMinGap   = 0.2
	DefaultMaxGap   = 0.8
	DefaultMinBurst = 450
	DefaultMaxBurst = 750
)

type Config struct {
	FPS    int        `yaml:"fps"`
	Theme  string     `yaml:"theme"`
	Mute   bool       `yaml:"mute"`
	Seed   uint64     `yaml:"seed"`
	Target string     `yaml:"target"`
	Show   ShowConfig `yaml:"show"`
}

type ShowConfig struct {
	Duration float64  `yaml:"duration"`
	MinGap   float64  `yaml:"min_gap"`
	MaxGap   float64  `yaml:"max_gap"`
	MinBurst int      `yaml:"min_burst"`
	MaxBurst int      `yaml:"max_burst"`
	Patterns []string `yaml:"patterns"`
}

func DefaultConfig() *Config {
	return &Config{
		FPS:   DefaultFPS,
		Theme: DefaultTheme,
		Show: ShowConfig{
			Duration: DefaultDuration,
			MinGap:   DefaultMinGap,
			MaxGap:   DefaultMaxGap,
			MinBurst: DefaultMinBurst,
			MaxBurst: DefaultMaxBurst,
			Patterns: []string{"peony", "ring", "willow"},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects values the show loop cannot run with.
func (c *Config) Validate() error {
	if c.FPS < 1 || c.FPS > 240 {
		return fmt.Errorf("fps %d outside 1..240", c.FPS)
	}
	if c.Show.Duration <= 0 {
		return fmt.Errorf("show duration %.1f must be positive", c.Show.Duration)
	}
	if c.Show.MinGap < 0 || c.Show.MaxGap < c.Show.MinGap || c.Show.MaxGap <= 0 {
		return fmt.Errorf("launch gap range %.2f..%.2f is invalid", c.Show.MinGap, c.Show.MaxGap)
	}
	if c.Show.MinBurst < 1 || c.Show.MaxBurst < c.Show.MinBurst {
		return fmt.Errorf("burst range %d..%d is invalid", c.Show.MinBurst, c.Show.MaxBurst)
	}
	return nil
}
