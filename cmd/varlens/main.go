package main

import (
	"encoding/json"
	"fmt"
	"os"

	"varlens/app"
	"varlens/domain/analysis"
	"varlens/internal/config"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	// Optional .env for VARLENS_* overrides; absence is not an error.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "varlens",
		Short: "Flag high-variability categories in tabular data and chart them",
	}

	var cfgFile string
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default varlens.yaml in the working directory)")

	rootCmd.AddCommand(
		newRunCmd(&cfgFile),
		newBatchCmd(&cfgFile),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRunCmd(cfgFile *string) *cobra.Command {
	var threshold float64
	var output string

	cmd := &cobra.Command{
		Use:   "run [input-file]",
		Short: "Analyze one CSV or XLSX file and save the bar chart",
		Long: `Load a tabular file with "category" and "value" columns, compute
per-category statistics, flag categories whose standard deviation exceeds
threshold * mean, and save a bar chart of the flagged categories.

Example: varlens run measurements.csv --threshold 0.5 --output out.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, log, err := setup(*cfgFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("threshold") {
				settings.Threshold = threshold
			}
			if cmd.Flags().Changed("output") {
				settings.OutputPath = output
			}

			cfg, err := settings.AnalysisConfig()
			if err != nil {
				return err
			}

			report, err := app.NewPipeline(log).Run(cmd.Context(), args[0], cfg)
			if err != nil {
				return err
			}
			return printReport(report)
		},
	}

	cmd.Flags().Float64Var(&threshold, "threshold", analysis.DefaultVariabilityThreshold, "variability threshold (std > threshold * mean flags a category)")
	cmd.Flags().StringVar(&output, "output", analysis.DefaultOutputPath, "chart output path (format follows the extension)")

	return cmd
}

func newBatchCmd(cfgFile *string) *cobra.Command {
	var threshold float64
	var outDir string
	var parallel int

	cmd := &cobra.Command{
		Use:   "batch [input-files...]",
		Short: "Analyze several files as independent runs",
		Long: `Run the analysis pipeline over every input file. Runs are isolated:
each gets its own chart, named after the input, in the output directory.

Example: varlens batch q1.csv q2.csv q3.csv --out-dir charts --parallel 4`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, log, err := setup(*cfgFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("threshold") {
				settings.Threshold = threshold
			}

			cfg, err := settings.AnalysisConfig()
			if err != nil {
				return err
			}

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}

			reports, err := app.RunBatch(cmd.Context(), log, app.BatchRequest{
				Inputs:      args,
				OutDir:      outDir,
				Config:      cfg,
				Concurrency: parallel,
			})
			if err != nil {
				return err
			}

			for _, report := range reports {
				if err := printReport(report); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&threshold, "threshold", analysis.DefaultVariabilityThreshold, "variability threshold applied to every run")
	cmd.Flags().StringVar(&outDir, "out-dir", ".", "directory for the rendered charts")
	cmd.Flags().IntVar(&parallel, "parallel", 4, "maximum concurrent runs")

	return cmd
}

func setup(cfgFile string) (*config.Settings, zerolog.Logger, error) {
	settings, err := config.Load(cfgFile)
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("load configuration: %w", err)
	}

	level, err := zerolog.ParseLevel(settings.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()

	return settings, log, nil
}

func printReport(report *app.RunReport) error {
	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
