package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"rocklab-sim/internal/common"
	"rocklab-sim/internal/scale"
	"rocklab-sim/internal/specimen"

	"gopkg.in/yaml.v3"
)

// Sample kinds accepted in a bench file.
const (
	KindRock             = "rock"
	KindBlueRock         = "blue_rock"
	KindSediment         = "sediment"
	KindMagneticSediment = "magnetic_sediment"
)

// Config describes a weighing session on the bench.
type Config struct {
	Scale   ScaleConfig  `yaml:"scale"`
	FieldH  float64      `yaml:"field_h"` // External field for magnetic reports (SI: A/m)
	Log     LogConfig    `yaml:"log"`
	Samples []SampleSpec `yaml:"samples"`
}

// ScaleConfig contains the scale settings.
type ScaleConfig struct {
	WeightLimit float64 `yaml:"weight_limit"`
}

// LogConfig contains logging settings for the CLI.
type LogConfig struct {
	Level   string `yaml:"level"`
	NoColor bool   `yaml:"no_color"`
}

// SampleSpec defines a single sample to create.
type SampleSpec struct {
	Kind           string   `yaml:"kind"`
	Color          string   `yaml:"color"`
	Weight         float64  `yaml:"weight"`
	Volume         *float64 `yaml:"volume,omitempty"` // Defaults to common.DefaultVolume
	GrainSize      float64  `yaml:"grainsize,omitempty"`
	Magnetization  float64  `yaml:"magnetization,omitempty"`
	Susceptibility float64  `yaml:"susceptibility,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Scale: ScaleConfig{WeightLimit: scale.DefaultWeightLimit},
		Log:   LogConfig{Level: "info"},
	}
}

// Load reads and validates a YAML configuration file.
// Fields missing from the file keep their Default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates YAML configuration data.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the bench cannot use.
func (c Config) Validate() error {
	var errs []error
	if c.Scale.WeightLimit < 0 {
		errs = append(errs, fmt.Errorf("scale.weight_limit must not be negative, got %g", c.Scale.WeightLimit))
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	for i, s := range c.Samples {
		if err := s.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("samples[%d]: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// SlogLevel converts the configured level name.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	name := l.Level
	if name == "" {
		name = "info"
	}
	if err := level.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

// Validate checks a single sample definition.
func (s SampleSpec) Validate() error {
	switch s.Kind {
	case KindRock, KindSediment, KindMagneticSediment:
		if s.Color == "" {
			return fmt.Errorf("%s requires a color", s.Kind)
		}
	case KindBlueRock:
		if s.Color != "" && s.Color != "blue" {
			return fmt.Errorf("%s cannot have color %q", s.Kind, s.Color)
		}
	default:
		return fmt.Errorf("unknown sample kind %q", s.Kind)
	}
	if s.Weight < 0 {
		return fmt.Errorf("weight must not be negative, got %g", s.Weight)
	}
	if s.Volume != nil && *s.Volume <= 0 {
		return fmt.Errorf("volume must be positive, got %g: %w", *s.Volume, common.ErrInvalidVolume)
	}
	return nil
}

func (s SampleSpec) volume() float64 {
	if s.Volume == nil {
		return common.DefaultVolume
	}
	return *s.Volume
}

// Build creates the sample described by s. Each call consumes one serial number.
func (s SampleSpec) Build(opts ...specimen.Option) (specimen.Sample, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	switch s.Kind {
	case KindRock:
		return specimen.NewRock(s.Color, s.Weight, append(opts[:len(opts):len(opts)], specimen.WithVolume(s.volume()))...), nil
	case KindBlueRock:
		return specimen.BlueRock(s.Weight, s.volume(), opts...), nil
	case KindSediment:
		return specimen.NewSediment(s.Color, s.Weight, append(opts[:len(opts):len(opts)],
			specimen.WithVolume(s.volume()),
			specimen.WithGrainSize(s.GrainSize),
		)...), nil
	default:
		return specimen.NewMagneticSediment(s.Color, s.Weight, s.volume(), append(opts[:len(opts):len(opts)],
			specimen.WithGrainSize(s.GrainSize),
			specimen.WithMagnetization(s.Magnetization),
			specimen.WithSusceptibility(s.Susceptibility),
		)...), nil
	}
}

// BuildSamples creates every sample of the configuration in order.
func (c Config) BuildSamples(opts ...specimen.Option) ([]specimen.Sample, error) {
	samples := make([]specimen.Sample, 0, len(c.Samples))
	for i, def := range c.Samples {
		s, err := def.Build(opts...)
		if err != nil {
			return nil, fmt.Errorf("samples[%d]: %w", i, err)
		}
		samples = append(samples, s)
	}
	return samples, nil
}
