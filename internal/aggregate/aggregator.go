// Package aggregate computes per-category summary statistics from a raw
// table: validate the schema, drop incomplete rows, then group by category
// and compute count, mean and sample standard deviation.
package aggregate

import (
	"math"
	"sort"
	"strconv"

	"varlens/domain/analysis"
	"varlens/domain/core"
	"varlens/domain/table"

	"github.com/montanaflynn/stats"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats"
)

// Aggregator groups raw rows by category. The logger is the diagnostic
// side-channel for cleaning; it never affects results.
type Aggregator struct {
	log zerolog.Logger
}

// New creates an Aggregator that reports dropped rows to the given logger.
func New(log zerolog.Logger) *Aggregator {
	return &Aggregator{log: log}
}

// Aggregate validates the table, cleans it, and returns one CategoryStat per
// distinct category, sorted by category name. It fails with
// core.ErrMissingColumns when a required column is absent and with
// core.ErrComputation when a value cell cannot be used numerically.
func (a *Aggregator) Aggregate(tbl *table.Table) ([]analysis.CategoryStat, error) {
	if missing := tbl.MissingColumns(analysis.ColumnCategory, analysis.ColumnValue); len(missing) > 0 {
		sort.Strings(missing)
		return nil, core.NewMissingColumnsError(missing)
	}

	clean := a.dropIncomplete(tbl)

	groups := make(map[string][]float64)
	for _, row := range clean {
		category := row[analysis.ColumnCategory]
		value, err := strconv.ParseFloat(row[analysis.ColumnValue], 64)
		if err != nil {
			return nil, core.NewComputationError("non-numeric value in category "+category, err)
		}
		groups[category] = append(groups[category], value)
	}

	result := make([]analysis.CategoryStat, 0, len(groups))
	for category, values := range groups {
		stat, err := summarize(category, values)
		if err != nil {
			return nil, err
		}
		result = append(result, stat)
	}

	// Map iteration order is random; sort for a deterministic table.
	sort.Slice(result, func(i, j int) bool {
		return result[i].Category < result[j].Category
	})

	return result, nil
}

// dropIncomplete removes every row with a missing cell in any column and
// logs how many were removed.
func (a *Aggregator) dropIncomplete(tbl *table.Table) []table.Row {
	clean := make([]table.Row, 0, len(tbl.Rows))
	for _, row := range tbl.Rows {
		if row.IsComplete(tbl.Headers) {
			clean = append(clean, row)
		}
	}

	if dropped := len(tbl.Rows) - len(clean); dropped > 0 {
		a.log.Info().
			Int("rows_dropped", dropped).
			Int("rows_kept", len(clean)).
			Msg("dropped rows with missing values")
	}

	return clean
}

// summarize computes the statistics for one category group. The group is
// never empty: a category only exists because at least one clean row
// carried it. The sample (n-1) standard deviation is undefined for a single
// observation, reported as NaN.
func summarize(category string, values []float64) (analysis.CategoryStat, error) {
	mean, err := stats.Mean(values)
	if err != nil {
		return analysis.CategoryStat{}, core.NewComputationError("mean of category "+category, err)
	}

	std := math.NaN()
	if len(values) > 1 {
		std, err = stats.StandardDeviationSample(values)
		if err != nil {
			return analysis.CategoryStat{}, core.NewComputationError("stddev of category "+category, err)
		}
	}

	// ParseFloat accepts "Inf" and "NaN" spellings; reject groups they poison.
	if math.IsNaN(mean) || math.IsNaN(floats.Sum(values)) {
		return analysis.CategoryStat{}, core.NewComputationError("non-finite values in category "+category, nil)
	}

	return analysis.CategoryStat{
		Category: category,
		Mean:     mean,
		Std:      std,
		Count:    len(values),
	}, nil
}
