// Package app orchestrates the analysis pipeline: load, aggregate, analyze,
// render. Each run operates on freshly constructed values and holds no
// state between invocations.
package app

import (
	"context"
	"math"
	"time"

	"varlens/adapters/chart"
	"varlens/adapters/tabular"
	"varlens/domain/analysis"
	"varlens/internal/aggregate"
	"varlens/internal/analyze"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RunReport summarizes one completed pipeline run.
type RunReport struct {
	RunID        string   `json:"run_id"`
	InputPath    string   `json:"input_path"`
	OutputPath   string   `json:"output_path"`
	Categories   int      `json:"categories"`
	Flagged      []string `json:"flagged_categories"`
	TotalSamples int      `json:"total_samples"`
	// AnomalyRate is nil when no categories were analyzed (the domain
	// sentinel for that case is NaN, which JSON cannot carry).
	AnomalyRate *float64      `json:"anomaly_rate,omitempty"`
	Duration    time.Duration `json:"duration_ns"`
}

// Pipeline wires the four stages together.
type Pipeline struct {
	log      zerolog.Logger
	renderer *chart.Renderer
}

// NewPipeline creates a pipeline that logs diagnostics to the given logger.
func NewPipeline(log zerolog.Logger) *Pipeline {
	return &Pipeline{
		log:      log,
		renderer: chart.NewRenderer(),
	}
}

// Run executes one end-to-end analysis of the input file and saves the
// chart to cfg.OutputPath. The first failing stage aborts the run; errors
// carry the domain sentinel of the stage that failed.
func (p *Pipeline) Run(ctx context.Context, inputPath string, cfg analysis.Config) (*RunReport, error) {
	runID := uuid.NewString()
	log := p.log.With().Str("run_id", runID).Str("input", inputPath).Logger()
	start := time.Now()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tbl, err := tabular.NewReader(inputPath).Read()
	if err != nil {
		return nil, err
	}
	log.Debug().Int("rows", len(tbl.Rows)).Int("columns", len(tbl.Headers)).Msg("loaded input")

	aggregated, err := aggregate.New(log).Aggregate(tbl)
	if err != nil {
		return nil, err
	}

	results := analyze.Run(aggregated, cfg)

	rendered, err := p.renderer.Render(results, cfg)
	if err != nil {
		return nil, err
	}

	flagged := make([]string, len(results.HighVariance))
	for i, row := range results.HighVariance {
		flagged[i] = row.Category
	}

	report := &RunReport{
		RunID:        runID,
		InputPath:    inputPath,
		OutputPath:   rendered.Path,
		Categories:   len(aggregated),
		Flagged:      flagged,
		TotalSamples: results.TotalSamples,
		Duration:     time.Since(start),
	}
	if !math.IsNaN(results.AnomalyRate) {
		rate := results.AnomalyRate
		report.AnomalyRate = &rate
	}

	log.Info().
		Int("categories", report.Categories).
		Int("flagged", len(flagged)).
		Int("total_samples", report.TotalSamples).
		Float64("anomaly_rate", results.AnomalyRate).
		Str("chart", report.OutputPath).
		Dur("duration", report.Duration).
		Msg("analysis complete")

	return report, nil
}
