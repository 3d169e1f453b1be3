package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds the parameters of a simulation run.
type Config struct {
	Width  float64 `yaml:"width" toml:"width"`   // viewport, pixels
	Height float64 `yaml:"height" toml:"height"` // viewport, pixels

	Template string `yaml:"template" toml:"template"` // prefab name, empty for the built-in human
	Script   string `yaml:"script" toml:"script"`     // pointer script for autopilot and headless runs

	// Ragdoll parameters
	Gravity     float64 `yaml:"gravity" toml:"gravity"`           // unit: px/frame²
	SizeFactor  float64 `yaml:"size_factor" toml:"size_factor"`   // body unit as a fraction of viewport height
	HumanSpread float64 `yaml:"human_spread" toml:"human_spread"` // figures per body unit of viewport width
	HookMass    float64 `yaml:"hook_mass" toml:"hook_mass"`

	// Collider parameters
	BallFactor   float64 `yaml:"ball_factor" toml:"ball_factor"` // radius as a fraction of min(width, height)
	BallMass     float64 `yaml:"ball_mass" toml:"ball_mass"`
	PointerEase  float64 `yaml:"pointer_ease" toml:"pointer_ease"`   // 0..1, fraction of the gap closed per frame
	WarmupFrames int     `yaml:"warmup_frames" toml:"warmup_frames"` // frames simulated before the first draw

	// Headless runs only
	Frames int    `yaml:"frames" toml:"frames"`
	Output string `yaml:"output" toml:"output"`
}

// Default returns the parameters of the original demo.
func Default() *Config {
	return &Config{
		Width:        1280,
		Height:       720,
		Script:       "orbit",
		Gravity:      0.2,
		SizeFactor:   0.075,
		HumanSpread:  0.2,
		HookMass:     100,
		BallFactor:   0.3,
		BallMass:     1000,
		PointerEase:  0.33,
		WarmupFrames: 10,
		Frames:       600,
	}
}

// Load reads path over the defaults. The format follows the extension:
// .toml for TOML, anything else is parsed as YAML.
func Load(path string) (*Config, error) {
	conf := Default()
	if path == "" {
		return conf, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), conf); err != nil {
			return nil, fmt.Errorf("config: decode %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, conf); err != nil {
			return nil, fmt.Errorf("config: decode %s: %w", path, err)
		}
	}

	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return conf, nil
}

// Validate rejects parameters the simulation cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("viewport %vx%v must be positive", c.Width, c.Height)
	case c.SizeFactor <= 0:
		return fmt.Errorf("size_factor must be positive")
	case c.HumanSpread < 0:
		return fmt.Errorf("human_spread must not be negative")
	case c.BallFactor < 0:
		return fmt.Errorf("ball_factor must not be negative")
	case c.BallMass <= 0 || c.HookMass <= 0:
		return fmt.Errorf("ball_mass and hook_mass must be positive")
	case c.PointerEase < 0 || c.PointerEase > 1:
		return fmt.Errorf("pointer_ease must be within [0, 1]")
	case c.WarmupFrames < 0 || c.Frames < 0:
		return fmt.Errorf("frame counts must not be negative")
	}
	return nil
}
