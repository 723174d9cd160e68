// Package config loads runtime settings from defaults, an optional YAML file and
// ANAGRAM_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds every tunable of the anagram tooling.
type Config struct {
	DictionaryPath string `yaml:"dictionary_path" env:"DICTIONARY"`
	OutputDir      string `yaml:"output_dir" env:"OUTPUT_DIR"`
	Seed           int64  `yaml:"seed" env:"SEED"`
	MaxAttempts    int    `yaml:"max_attempts" env:"MAX_ATTEMPTS"`
	TrainPerLevel  int    `yaml:"train_per_level" env:"TRAIN_PER_LEVEL"`
	TestPerLevel   int    `yaml:"test_per_level" env:"TEST_PER_LEVEL"`
	TestSeed       int64  `yaml:"test_seed" env:"TEST_SEED"`
	MaxDictWords   int    `yaml:"max_dictionary_words" env:"MAX_DICTIONARY_WORDS"`
	Addr           string `yaml:"addr" env:"ADDR"`
	LogLevel       string `yaml:"log_level" env:"LOG_LEVEL"`
	Solver         string `yaml:"solver" env:"SOLVER"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DictionaryPath: "dictionary.txt",
		OutputDir:      "./data",
		MaxAttempts:    100,
		TrainPerLevel:  200,
		TestPerLevel:   50,
		TestSeed:       42,
		MaxDictWords:   500_000,
		Addr:           ":8080",
		LogLevel:       "info",
		Solver:         "indexed",
	}
}

// Load applies the YAML file at path (skipped when empty or missing) and then the
// environment over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "ANAGRAM_"}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate rejects settings the generator and solver cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.MaxAttempts <= 0 {
		errs = append(errs, fmt.Errorf("max_attempts must be positive, got %d", c.MaxAttempts))
	}
	if c.TrainPerLevel < 0 || c.TestPerLevel < 0 {
		errs = append(errs, fmt.Errorf("per-level counts must not be negative"))
	}
	if c.MaxDictWords <= 0 {
		errs = append(errs, fmt.Errorf("max_dictionary_words must be positive, got %d", c.MaxDictWords))
	}
	switch c.Solver {
	case "indexed", "scan":
	default:
		errs = append(errs, fmt.Errorf("solver must be indexed or scan, got %q", c.Solver))
	}
	return errors.Join(errs...)
}

// Save writes cfg as YAML, for `anagram config init`.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
