package app

import (
	"context"
	"path/filepath"
	"strings"

	"varlens/domain/analysis"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// BatchRequest describes a batch of independent analysis runs. Every input
// gets its own pipeline invocation with the chart written to
// OutDir/<input-stem>.<ext of cfg.OutputPath>.
type BatchRequest struct {
	Inputs      []string
	OutDir      string
	Config      analysis.Config
	Concurrency int // <= 0 means unbounded
}

// RunBatch processes every input with an isolated pipeline run. Runs share
// nothing but the read-only configuration; the first failure cancels the
// remaining runs. Reports come back in input order.
func RunBatch(ctx context.Context, log zerolog.Logger, req BatchRequest) ([]*RunReport, error) {
	reports := make([]*RunReport, len(req.Inputs))

	g, ctx := errgroup.WithContext(ctx)
	if req.Concurrency > 0 {
		g.SetLimit(req.Concurrency)
	}

	for i, input := range req.Inputs {
		g.Go(func() error {
			cfg, err := analysis.NewConfig(req.Config.VariabilityThreshold, outputFor(req.OutDir, input, req.Config.OutputPath))
			if err != nil {
				return err
			}

			report, err := NewPipeline(log).Run(ctx, input, cfg)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// outputFor derives a per-input chart path: the input's base name with the
// configured output path's extension, placed in outDir.
func outputFor(outDir, input, configuredOutput string) string {
	ext := filepath.Ext(configuredOutput)
	if ext == "" {
		ext = ".png"
	}
	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(outDir, stem+ext)
}
