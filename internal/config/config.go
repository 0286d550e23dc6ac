// Package config loads kernelbench settings from defaults, an optional YAML
// file and KERNELBENCH_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g.
// KERNELBENCH_BENCH_ITERATIONS.
const EnvPrefix = "KERNELBENCH"

// Config represents the application configuration
type Config struct {
	Bench   BenchConfig   `mapstructure:"bench"`
	Kernel  KernelConfig  `mapstructure:"kernel"`
	Verify  VerifyConfig  `mapstructure:"verify"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type BenchConfig struct {
	Iterations     int   `mapstructure:"iterations"`
	ElementwiseLen int   `mapstructure:"elementwise_len"`
	SignalLen      int   `mapstructure:"signal_len"`
	ResponseLen    int   `mapstructure:"response_len"`
	Seed           int64 `mapstructure:"seed"`

	// Shape selects the seeded input generator for bench and verify:
	// "noise" or "sine".
	Shape string `mapstructure:"shape"`
}

type KernelConfig struct {
	// ForceGeneric pins dispatch to the scalar backend.
	ForceGeneric bool `mapstructure:"force_generic"`

	// LaneWidth overrides the backend lane width; 0 keeps the detected one.
	LaneWidth int `mapstructure:"lane_width"`
}

type VerifyConfig struct {
	Tolerance float64 `mapstructure:"tolerance"`
}

type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	File    string `mapstructure:"file"`
	Console bool   `mapstructure:"console"`
}

// DefaultConfig returns configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Bench: BenchConfig{
			Iterations:     10,
			ElementwiseLen: 1_000_000,
			SignalLen:      4096,
			ResponseLen:    64,
			Seed:           1,
			Shape:          "noise",
		},
		Kernel: KernelConfig{
			ForceGeneric: false,
			LaneWidth:    0,
		},
		Verify: VerifyConfig{
			Tolerance: 1e-5,
		},
		Logging: LoggingConfig{
			Level:   "info",
			File:    "",
			Console: true,
		},
	}
}

// Load loads configuration from file, environment, and defaults. An empty
// cfgFile searches ./kernelbench.yaml and $HOME/.kernelbench/kernelbench.yaml;
// a missing file there is not an error.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	cfg := DefaultConfig()
	setDefaults(v, cfg)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".kernelbench"))
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("kernelbench")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.Logging.File = expandPath(cfg.Logging.File)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Bench.Iterations < 1 {
		return errors.New("bench.iterations must be at least 1")
	}
	if c.Bench.ElementwiseLen < 1 {
		return errors.New("bench.elementwise_len must be at least 1")
	}
	if c.Bench.SignalLen < 1 || c.Bench.ResponseLen < 1 {
		return errors.New("bench.signal_len and bench.response_len must be at least 1")
	}

	validShapes := []string{"noise", "sine"}
	if !lo.Contains(validShapes, c.Bench.Shape) {
		return fmt.Errorf("bench.shape must be one of: %v", validShapes)
	}

	switch c.Kernel.LaneWidth {
	case 0, 4, 8:
	default:
		return fmt.Errorf("kernel.lane_width must be 0, 4 or 8, got %d", c.Kernel.LaneWidth)
	}

	if c.Verify.Tolerance <= 0 {
		return errors.New("verify.tolerance must be positive")
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	if !lo.Contains(validLevels, c.Logging.Level) {
		return fmt.Errorf("logging.level must be one of: %v", validLevels)
	}

	return nil
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return os.ExpandEnv(path)
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("bench.iterations", cfg.Bench.Iterations)
	v.SetDefault("bench.elementwise_len", cfg.Bench.ElementwiseLen)
	v.SetDefault("bench.signal_len", cfg.Bench.SignalLen)
	v.SetDefault("bench.response_len", cfg.Bench.ResponseLen)
	v.SetDefault("bench.seed", cfg.Bench.Seed)
	v.SetDefault("bench.shape", cfg.Bench.Shape)

	v.SetDefault("kernel.force_generic", cfg.Kernel.ForceGeneric)
	v.SetDefault("kernel.lane_width", cfg.Kernel.LaneWidth)

	v.SetDefault("verify.tolerance", cfg.Verify.Tolerance)

	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.console", cfg.Logging.Console)
}
