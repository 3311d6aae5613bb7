// Package axiscfg loads the per-axis kinematic configuration from a
// YAML file and serves it as canon.Limits.
package axiscfg

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mastercactapus/gcanon/canon"
)

// AxisConfig is the limit set for one axis, external units.
type AxisConfig struct {
	MaxVelocity     float64 `yaml:"max_velocity"`
	MaxAcceleration float64 `yaml:"max_acceleration"`
	MaxJerk         float64 `yaml:"max_jerk"`
}

// Config holds the full axis configuration. Axes maps axis letters
// (x y z a b c u v w) to their limits; axes absent from the map are
// absent from the mask.
type Config struct {
	Axes map[string]AxisConfig `yaml:"axes"`

	// LengthUnits and AngleUnits are the external unit factors, in
	// user units per mm and per degree. Zero means 1.
	LengthUnits float64 `yaml:"length_units"`
	AngleUnits  float64 `yaml:"angle_units"`
}

var axisLetters = []string{"x", "y", "z", "a", "b", "c", "u", "v", "w"}

// Load reads a YAML file and returns the validated configuration.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks limits and applies defaults.
func (cfg *Config) Validate() error {
	if len(cfg.Axes) == 0 {
		return fmt.Errorf("at least one axis is required")
	}
	for name, ax := range cfg.Axes {
		if !validAxis(name) {
			return fmt.Errorf("unknown axis %q", name)
		}
		if ax.MaxVelocity <= 0 {
			return fmt.Errorf("axis %s: max_velocity must be > 0, got %g", name, ax.MaxVelocity)
		}
		if ax.MaxAcceleration <= 0 {
			return fmt.Errorf("axis %s: max_acceleration must be > 0, got %g", name, ax.MaxAcceleration)
		}
		if ax.MaxJerk <= 0 {
			return fmt.Errorf("axis %s: max_jerk must be > 0, got %g", name, ax.MaxJerk)
		}
	}
	if cfg.LengthUnits == 0 {
		cfg.LengthUnits = 1
	}
	if cfg.AngleUnits == 0 {
		cfg.AngleUnits = 1
	}
	return nil
}

func validAxis(name string) bool {
	for _, l := range axisLetters {
		if name == l {
			return true
		}
	}
	return false
}

// AxisMask returns the bitmask of configured axes.
func (cfg *Config) AxisMask() int {
	var mask int
	for i, l := range axisLetters {
		if _, ok := cfg.Axes[l]; ok {
			mask |= 1 << uint(i)
		}
	}
	return mask
}

// Limits adapts cfg to canon.Limits. Axes outside the mask report
// zero limits; the envelope never consults them.
type Limits struct {
	cfg *Config
}

var _ canon.Limits = Limits{}

func (cfg *Config) Limits() Limits { return Limits{cfg: cfg} }

func (l Limits) axis(n int) AxisConfig {
	if n < 0 || n >= len(axisLetters) {
		return AxisConfig{}
	}
	return l.cfg.Axes[axisLetters[n]]
}

func (l Limits) MaxVelocity(axis int) float64     { return l.axis(axis).MaxVelocity }
func (l Limits) MaxAcceleration(axis int) float64 { return l.axis(axis).MaxAcceleration }
func (l Limits) MaxJerk(axis int) float64         { return l.axis(axis).MaxJerk }

// ParseMask converts an axis-letter list like "xyza" to a mask.
func ParseMask(axes string) (int, error) {
	var mask int
	for _, r := range strings.ToLower(axes) {
		found := false
		for i, l := range axisLetters {
			if string(r) == l {
				mask |= 1 << uint(i)
				found = true
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown axis %q", string(r))
		}
	}
	return mask, nil
}
