package slidegraph

import (
	"fmt"
	"math"
)

// Config controls graph construction behavior.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// LambdaD weights spatial distance in the similarity kernel. Larger
	// values make similarity decay faster with spatial separation.
	// Must be >= 0. A value of 0 degrades to pure feature-based similarity
	// inside the search radius. Default: 3e-3.
	LambdaD float64

	// LambdaF weights feature-space distance in the similarity kernel.
	// Must be >= 0. Default: 1e-3.
	LambdaF float64

	// LambdaH is the dendrogram cut threshold, applied to kernel output in
	// [0, 1] where 1 means maximally dissimilar. Looser (higher) thresholds
	// merge more aggressively. Must be in [0, 1]. Default: 0.8.
	LambdaH float64

	// ConnectivityDistance is the spatial cutoff for centroid connectivity:
	// triangulation edges longer than this are pruned. Must be > 0.
	// Default: 4000.
	ConnectivityDistance float64

	// NeighbourSearchRadius bounds the spatial neighborhood considered by
	// the similarity kernel. Point pairs further apart are assigned maximal
	// dissimilarity without evaluating the kernel. Must be > 0.
	// Default: 2000.
	NeighbourSearchRadius float64

	// FeatureRangeThresh is the minimal range (max - min across all points)
	// for a feature dimension to be considered significant. Near-constant
	// dimensions are dropped before any distance computation. Must be >= 0.
	// Default: 1e-4.
	FeatureRangeThresh float64

	// LeafSize controls the maximum number of points in a KD-tree leaf node.
	// Larger values trade query precision for faster tree construction.
	// Default: 40.
	LeafSize int
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		LambdaD:               3e-3,
		LambdaF:               1e-3,
		LambdaH:               0.8,
		ConnectivityDistance:  4000,
		NeighbourSearchRadius: 2000,
		FeatureRangeThresh:    1e-4,
		LeafSize:              40,
	}
}

// applyDefaults fills in config fields whose zero value is meaningless.
// LambdaD and LambdaF pass through untouched: zero decay rates are valid
// parameterizations, not missing values.
func applyDefaults(cfg *Config) {
	if cfg.ConnectivityDistance == 0 {
		cfg.ConnectivityDistance = 4000
	}
	if cfg.NeighbourSearchRadius == 0 {
		cfg.NeighbourSearchRadius = 2000
	}
	if cfg.LambdaH == 0 {
		cfg.LambdaH = 0.8
	}
	if cfg.LeafSize == 0 {
		cfg.LeafSize = 40
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive
// error wrapping ErrInvalidInput if not.
func validateConfig(cfg *Config) error {
	if cfg.LambdaD < 0 || math.IsNaN(cfg.LambdaD) {
		return fmt.Errorf("%w: LambdaD must be >= 0, got %v", ErrInvalidInput, cfg.LambdaD)
	}
	if cfg.LambdaF < 0 || math.IsNaN(cfg.LambdaF) {
		return fmt.Errorf("%w: LambdaF must be >= 0, got %v", ErrInvalidInput, cfg.LambdaF)
	}
	if cfg.LambdaH < 0 || cfg.LambdaH > 1 || math.IsNaN(cfg.LambdaH) {
		return fmt.Errorf("%w: LambdaH must be in [0, 1], got %v", ErrInvalidInput, cfg.LambdaH)
	}
	if cfg.ConnectivityDistance <= 0 || math.IsNaN(cfg.ConnectivityDistance) {
		return fmt.Errorf("%w: ConnectivityDistance must be > 0, got %v", ErrInvalidInput, cfg.ConnectivityDistance)
	}
	if cfg.NeighbourSearchRadius <= 0 || math.IsNaN(cfg.NeighbourSearchRadius) {
		return fmt.Errorf("%w: NeighbourSearchRadius must be > 0, got %v", ErrInvalidInput, cfg.NeighbourSearchRadius)
	}
	if cfg.FeatureRangeThresh < 0 || math.IsNaN(cfg.FeatureRangeThresh) {
		return fmt.Errorf("%w: FeatureRangeThresh must be >= 0, got %v", ErrInvalidInput, cfg.FeatureRangeThresh)
	}
	if cfg.LeafSize < 1 {
		return fmt.Errorf("%w: LeafSize must be >= 1, got %d", ErrInvalidInput, cfg.LeafSize)
	}
	return nil
}
