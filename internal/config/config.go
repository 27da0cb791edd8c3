package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/zeusync/vecmath/internal/core/observability/log"
	"github.com/zeusync/vecmath/pkg/vector"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidWorkers = errors.New("workers must be at least 1")
	ErrInvalidEpsilon = errors.New("epsilon must be non-negative")
)

// Config holds the vecscript tool configuration
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Runner RunnerConfig `yaml:"runner"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// RunnerConfig controls script execution
type RunnerConfig struct {
	// Workers bounds how many scripts run at once.
	Workers int `yaml:"workers"`
	// Epsilon is used by expectations that don't set their own.
	Epsilon float64 `yaml:"epsilon"`
	// StopOnFailure cancels the remaining scripts after the first error.
	StopOnFailure bool `yaml:"stop_on_failure"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Log: LogConfig{
			Level: "info",
		},
		Runner: RunnerConfig{
			Workers: 4,
			Epsilon: vector.Epsilon,
		},
	}
}

// Load decodes YAML over the defaults, so absent keys keep their default value.
func Load(r io.Reader) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	return Load(f)
}

// Validate validates the configuration
func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Runner.Workers < 1 {
		return ErrInvalidWorkers
	}
	if c.Runner.Epsilon < 0 {
		return ErrInvalidEpsilon
	}
	return nil
}

// LogLevel returns the parsed log level, falling back to info.
func (c Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.LevelInfo
	}
	return level
}
