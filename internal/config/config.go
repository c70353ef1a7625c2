// Package config loads the settings of the pqcheck tool.
package config

import (
	"errors"
	"fmt"
)

// Implementation names accepted for Config.Impl.
const (
	ImplTree = "tree"
	ImplHeap = "heap"
)

// Defaults.
const (
	DefaultImpl      = ImplTree
	DefaultSize      = 10
	DefaultSeed      = 10
	DefaultBenchSize = 1000
	DefaultEvery     = 100
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

var (
	// ErrInvalidImpl indicates an unknown queue implementation.
	ErrInvalidImpl = errors.New("impl must be one of tree, heap")
	// ErrInvalidSize indicates the check size is not positive.
	ErrInvalidSize = errors.New("check.size must be positive")
	// ErrInvalidBenchSize indicates the bench size is not positive.
	ErrInvalidBenchSize = errors.New("bench.size must be positive")
	// ErrInvalidEvery indicates the sampling interval is not positive.
	ErrInvalidEvery = errors.New("bench.every must be positive")
)

// Config is the top-level configuration of pqcheck.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Impl  string      `mapstructure:"impl"`
	Check CheckConfig `mapstructure:"check"`
	Bench BenchConfig `mapstructure:"bench"`
	Log   LogConfig   `mapstructure:"log"`
}

// CheckConfig holds the settings of the correctness check.
type CheckConfig struct {
	Size int   `mapstructure:"size"`
	Seed int64 `mapstructure:"seed"`
}

// BenchConfig holds the settings of the RemoveMin benchmark.
type BenchConfig struct {
	Size  int `mapstructure:"size"`
	Every int `mapstructure:"every"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.Impl {
	case ImplTree, ImplHeap:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidImpl, c.Impl)
	}
	if c.Check.Size <= 0 {
		return ErrInvalidSize
	}
	if c.Bench.Size <= 0 {
		return ErrInvalidBenchSize
	}
	if c.Bench.Every <= 0 {
		return ErrInvalidEvery
	}
	return nil
}
