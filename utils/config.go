package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// DefaultSeed is a glider next to a blinker
const DefaultSeed = `..........
..X.......
...X......
.XXX......
..........
..........
......XXX.
..........
..........
..........`

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	Seed                string        `json:"seed"`
	SeedFile            string        `json:"seed_file"`
	FrameRate           time.Duration `json:"frame_rate"`
	MaxGenerations      int           `json:"max_generations"`
	StopOnStagnation    bool          `json:"stop_on_stagnation"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	HistorySize         int           `json:"history_size"`
	ClearScreen         bool          `json:"clear_screen"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Seed:                DefaultSeed,
		FrameRate:           150 * time.Millisecond,
		MaxGenerations:      100,
		StopOnStagnation:    true,
		StagnationThreshold: 5,
		HistorySize:         5,
		ClearScreen:         true,
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

	return config, nil
}

// Validate checks that every numeric setting is usable
func (c Config) Validate() error {
	switch {
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative frame_rate: %v", c.FrameRate)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative max_generations: %d", c.MaxGenerations)
	case c.StagnationThreshold < 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] stagnation_threshold must be positive: %d", c.StagnationThreshold)
	case c.HistorySize < 3:
		// stagnation checks compare against the last three states
		return errors.Wrapf(ErrInvalidConfig, "[Validate] history_size must be at least 3: %d", c.HistorySize)
	}
	return nil
}

// SeedText returns the seed pattern, read from SeedFile when one is set
func (c Config) SeedText() (string, error) {
	if c.SeedFile == "" {
		return c.Seed, nil
	}

	data, err := os.ReadFile(c.SeedFile)
	if err != nil {
		return "", errors.Wrapf(err, "[SeedText] failed to read seed file: %+v", c.SeedFile)
	}
	return string(data), nil
}
