package analysis

import (
	"math"

	"varlens/domain/core"
)

// Configuration defaults. The variability threshold defaults to 2.0: a
// category is flagged when its standard deviation exceeds twice its mean.
const (
	DefaultVariabilityThreshold = 2.0
	DefaultOutputPath           = "analysis_results.png"
)

// Config is the immutable per-run configuration. Build it with NewConfig;
// a Config obtained any other way carries no validation guarantee.
type Config struct {
	// VariabilityThreshold is the multiplier applied to a category's mean
	// when deciding whether its standard deviation is high. Always > 0.
	VariabilityThreshold float64

	// OutputPath is the destination for the rendered chart. Its existence
	// is not checked at construction time; the renderer overwrites it.
	OutputPath string
}

// NewConfig validates and constructs a Config. The threshold must be a
// positive finite number and the output path must be non-empty.
func NewConfig(variabilityThreshold float64, outputPath string) (Config, error) {
	if math.IsNaN(variabilityThreshold) || math.IsInf(variabilityThreshold, 0) {
		return Config{}, core.NewInvalidArgumentError("variability threshold", "must be a finite number")
	}
	if variabilityThreshold <= 0 {
		return Config{}, core.NewInvalidArgumentError("variability threshold", "must be greater than zero")
	}
	if outputPath == "" {
		return Config{}, core.NewInvalidArgumentError("output path", "must not be empty")
	}
	return Config{
		VariabilityThreshold: variabilityThreshold,
		OutputPath:           outputPath,
	}, nil
}

// DefaultConfig returns the package defaults.
func DefaultConfig() Config {
	cfg, _ := NewConfig(DefaultVariabilityThreshold, DefaultOutputPath)
	return cfg
}
