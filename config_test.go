package slidegraph

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.LambdaD != 3e-3 {
		t.Errorf("LambdaD = %v, want 3e-3", cfg.LambdaD)
	}
	if cfg.LambdaF != 1e-3 {
		t.Errorf("LambdaF = %v, want 1e-3", cfg.LambdaF)
	}
	if cfg.LambdaH != 0.8 {
		t.Errorf("LambdaH = %v, want 0.8", cfg.LambdaH)
	}
	if cfg.ConnectivityDistance != 4000 {
		t.Errorf("ConnectivityDistance = %v, want 4000", cfg.ConnectivityDistance)
	}
	if cfg.NeighbourSearchRadius != 2000 {
		t.Errorf("NeighbourSearchRadius = %v, want 2000", cfg.NeighbourSearchRadius)
	}
	if cfg.FeatureRangeThresh != 1e-4 {
		t.Errorf("FeatureRangeThresh = %v, want 1e-4", cfg.FeatureRangeThresh)
	}
	if cfg.LeafSize != 40 {
		t.Errorf("LeafSize = %v, want 40", cfg.LeafSize)
	}
}

func TestValidateConfig_RejectsInvalid(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative LambdaD", func(c *Config) { c.LambdaD = -1 }},
		{"negative LambdaF", func(c *Config) { c.LambdaF = -0.5 }},
		{"LambdaH above 1", func(c *Config) { c.LambdaH = 1.5 }},
		{"NaN LambdaH", func(c *Config) { c.LambdaH = math.NaN() }},
		{"negative ConnectivityDistance", func(c *Config) { c.ConnectivityDistance = -4000 }},
		{"negative NeighbourSearchRadius", func(c *Config) { c.NeighbourSearchRadius = -2000 }},
		{"negative FeatureRangeThresh", func(c *Config) { c.FeatureRangeThresh = -1e-4 }},
		{"negative LeafSize", func(c *Config) { c.LeafSize = -1 }},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(&cfg)
		if err := validateConfig(&cfg); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}

func TestValidateConfig_AcceptsZeroDecayRates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LambdaD = 0
	cfg.LambdaF = 0
	if err := validateConfig(&cfg); err != nil {
		t.Errorf("zero decay rates are valid parameterizations, got %v", err)
	}
}

func TestApplyDefaults_FillsMeaninglessZeros(t *testing.T) {
	var cfg Config
	applyDefaults(&cfg)
	if cfg.NeighbourSearchRadius != 2000 {
		t.Errorf("NeighbourSearchRadius = %v, want 2000", cfg.NeighbourSearchRadius)
	}
	if cfg.ConnectivityDistance != 4000 {
		t.Errorf("ConnectivityDistance = %v, want 4000", cfg.ConnectivityDistance)
	}
	if cfg.LambdaH != 0.8 {
		t.Errorf("LambdaH = %v, want 0.8", cfg.LambdaH)
	}
	if cfg.LeafSize != 40 {
		t.Errorf("LeafSize = %v, want 40", cfg.LeafSize)
	}
	// Decay rates pass through: zero means zero.
	if cfg.LambdaD != 0 || cfg.LambdaF != 0 {
		t.Errorf("decay rates must not be defaulted: LambdaD=%v LambdaF=%v", cfg.LambdaD, cfg.LambdaF)
	}
}
