// Package analyze applies the variability threshold to an aggregated table.
package analyze

import (
	"math"

	"varlens/domain/analysis"

	"gonum.org/v1/gonum/floats"
)

// Run flags every category whose standard deviation exceeds
// threshold * mean and computes the overall totals. It is a pure function
// of its inputs.
//
// The predicate is relative (coefficient-of-variation style): a NaN
// standard deviation never passes it, and a zero or negative mean makes
// the comparison trivially true for any positive deviation. AnomalyRate is
// NaN when the aggregated table is empty.
func Run(aggregated []analysis.CategoryStat, cfg analysis.Config) analysis.Results {
	var flagged []analysis.CategoryStat
	counts := make([]float64, len(aggregated))

	for i, row := range aggregated {
		counts[i] = float64(row.Count)
		if row.Std > cfg.VariabilityThreshold*row.Mean {
			flagged = append(flagged, row)
		}
	}

	rate := math.NaN()
	if len(aggregated) > 0 {
		rate = float64(len(flagged)) / float64(len(aggregated))
	}

	return analysis.Results{
		HighVariance: flagged,
		TotalSamples: int(floats.Sum(counts)),
		AnomalyRate:  rate,
	}
}
