package utils

import (
	"encoding/json"
	"os"
	"runtime"
	"time"

	"github.com/pkg/errors"
)

const (
	ModeOutput = "output"
	ModeGrid   = "grid"
)

// Config holds the configuration for the simulator
type Config struct {
	Mode          string        `json:"mode"`
	Generations   int           `json:"generations"`
	FrameRate     time.Duration `json:"frame_rate"`
	UseParallel   bool          `json:"use_parallel"`
	Workers       int           `json:"workers"`
	UseMemoryPool bool          `json:"use_memory_pool"`
	PruneDead     bool          `json:"prune_dead"`
	ClearScreen   bool          `json:"clear_screen"`
	ShowStats     bool          `json:"show_stats"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Mode:          ModeOutput,
		Generations:   5,
		FrameRate:     0,
		UseParallel:   false,
		Workers:       runtime.NumCPU(),
		UseMemoryPool: true,
		PruneDead:     false,
		ClearScreen:   false,
		ShowStats:     false,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate rejects values the simulator cannot run with
func (c Config) Validate() error {
	if c.Mode != ModeOutput && c.Mode != ModeGrid {
		return errors.Errorf("unknown mode %q", c.Mode)
	}
	if c.Generations < 0 {
		return errors.Errorf("generations must not be negative, got %d", c.Generations)
	}
	if c.Workers < 0 {
		return errors.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}

// DecisionWorkers returns the number of goroutines for the decision phase
func (c Config) DecisionWorkers() int {
	if !c.UseParallel || c.Workers < 2 {
		return 1
	}
	return c.Workers
}
