// Package config loads the physics world settings from YAML or JSON.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"spheremove/internal/logging"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Physics Physics `yaml:"physics" json:"physics"`
	Log     Log     `yaml:"log" json:"log"`
}

type Physics struct {
	CellSize      float32 `yaml:"cell_size" json:"cell_size"`
	MaxIterations int     `yaml:"max_iterations" json:"max_iterations"`
	Skin          float32 `yaml:"skin" json:"skin"`
	MoveEpsilon   float32 `yaml:"move_epsilon" json:"move_epsilon"`
	LockVertical  bool    `yaml:"lock_vertical" json:"lock_vertical"`
	BaseSpeed     float32 `yaml:"base_speed" json:"base_speed"`
}

type Log struct {
	Level string `yaml:"level" json:"level"`
}

func Default() Config {
	return Config{
		Physics: Physics{
			CellSize:      2,
			MaxIterations: 3,
			Skin:          1e-6,
			MoveEpsilon:   1e-6,
			LockVertical:  true,
			BaseSpeed:     1,
		},
		Log: Log{Level: "info"},
	}
}

// LoadYAML decodes over Default, so absent keys keep their defaults.
func LoadYAML(r io.Reader) (Config, error) {
	c := Default()
	if err := yaml.NewDecoder(r).Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode yaml config: %w", err)
	}
	return c, c.Validate()
}

func LoadJSON(r io.Reader) (Config, error) {
	c := Default()
	if err := json.NewDecoder(r).Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode json config: %w", err)
	}
	return c, c.Validate()
}

// LoadFile picks the decoder from the extension: .json, otherwise YAML.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return LoadJSON(f)
	}
	return LoadYAML(f)
}

func (c Config) Validate() error {
	p := c.Physics
	switch {
	case !(p.CellSize > 0) || math.IsInf(float64(p.CellSize), 0):
		return fmt.Errorf("%w: physics.cell_size must be positive, got %v", ErrInvalidConfig, p.CellSize)
	case p.MaxIterations < 1:
		return fmt.Errorf("%w: physics.max_iterations must be at least 1, got %d", ErrInvalidConfig, p.MaxIterations)
	case !(p.Skin >= 0):
		return fmt.Errorf("%w: physics.skin must not be negative, got %v", ErrInvalidConfig, p.Skin)
	case !(p.MoveEpsilon >= 0):
		return fmt.Errorf("%w: physics.move_epsilon must not be negative, got %v", ErrInvalidConfig, p.MoveEpsilon)
	case !(p.BaseSpeed >= 0):
		return fmt.Errorf("%w: physics.base_speed must not be negative, got %v", ErrInvalidConfig, p.BaseSpeed)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// LogLevel returns the parsed level, falling back to info.
func (c Config) LogLevel() logging.Level {
	level, _ := logging.ParseLevel(c.Log.Level)
	return level
}
