// Package config provides scoring configuration loading and validation.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/talent-match/internal/scoring"
	"github.com/jonathan/talent-match/internal/types"
)

// Config is the scoring configuration that can be loaded from a JSON file.
// All fields are optional; missing values fall back to the built-in defaults.
type Config struct {
	// Weights is the fallback weight vector applied to jobs that define none
	// of their own.
	Weights *types.ScoreWeights `json:"weights,omitempty"`

	// EducationScores maps education-level keys (none, diploma, bachelors,
	// masters, phd) to the base score used when a job sets no education
	// minimum.
	EducationScores map[string]float64 `json:"education_scores,omitempty"`
}

// Default returns the built-in scoring configuration.
func Default() *Config {
	weights := types.DefaultWeights()
	return &Config{
		Weights: &weights,
		EducationScores: map[string]float64{
			"phd":       100,
			"masters":   85,
			"bachelors": 70,
			"diploma":   50,
			"none":      40,
		},
	}
}

// Load reads configuration from a JSON file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Weights != nil {
		if err := c.Weights.Validate(); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}
	for key, score := range c.EducationScores {
		if parsed := types.ParseEducationLevel(key); parsed == types.EducationNone && key != "none" {
			return fmt.Errorf("config error: unknown education level %q", key)
		}
		if score < 0 || score > 100 {
			return fmt.Errorf("config error: education score for %q must be in [0,100], got %g", key, score)
		}
	}
	return nil
}

// ScoringConfig converts the configuration into the scorer's typed form,
// filling gaps from the defaults.
func (c *Config) ScoringConfig() scoring.Config {
	cfg := scoring.DefaultConfig()
	if c.Weights != nil {
		cfg.DefaultWeights = *c.Weights
	}
	for key, score := range c.EducationScores {
		cfg.EducationBase[types.ParseEducationLevel(key)] = score
	}
	return cfg
}
