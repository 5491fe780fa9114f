package main

import (
	"fmt"

	"github.com/careercalc/career-calculator/internal/config"
	"github.com/careercalc/career-calculator/internal/domain"
	"github.com/careercalc/career-calculator/internal/output"
	"github.com/spf13/cobra"
)

type compareOptions struct {
	configPath string
	format     string
	outputPath string
	baseline   string
	challenger string
	allPairs   bool
}

func newCompareCmd(root *rootOptions) *cobra.Command {
	opts := &compareOptions{}
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Project every career and report the break-even year",
		Long: `Project cumulative net earnings for every configured career and report when the
challenger career catches up with the baseline career.

Examples:
  careercalc compare                                  # built-in example careers
  careercalc compare --config careers.yaml
  careercalc compare --format svg --output chart.svg
  careercalc compare --baseline "MLS Degree" --all-pairs`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, root, opts)
		},
	}
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to a YAML configuration (default: built-in example careers)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "console", "Output format: "+fmt.Sprint(output.AvailableFormatterNames()))
	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "-", "Output file, '-' for stdout, '' for a timestamped file")
	cmd.Flags().StringVar(&opts.baseline, "baseline", "", "Career the challenger is measured against")
	cmd.Flags().StringVar(&opts.challenger, "challenger", "", "Career searched for the break-even year")
	cmd.Flags().BoolVar(&opts.allPairs, "all-pairs", false, "Also compute break-even for every ordered pair of careers")
	return cmd
}

func runCompare(cmd *cobra.Command, root *rootOptions, opts *compareOptions) error {
	cfg, err := loadConfiguration(opts.configPath)
	if err != nil {
		return err
	}
	if opts.baseline != "" {
		cfg.Comparison.Baseline = opts.baseline
	}
	if opts.challenger != "" {
		cfg.Comparison.Challenger = opts.challenger
	}
	if opts.allPairs {
		cfg.Comparison.AllPairs = true
	}
	if err := config.NewInputParser().ValidateConfiguration(cfg); err != nil {
		return fmt.Errorf("invalid comparison: %w", err)
	}

	engine, err := root.engine(cmd)
	if err != nil {
		return err
	}
	results, err := engine.RunComparison(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}

	if opts.outputPath == "-" {
		return output.GenerateReport(cmd.OutOrStdout(), results, opts.format)
	}
	written, err := output.GenerateReportFile(results, opts.format, opts.outputPath)
	if err != nil {
		return err
	}
	engine.Logger.Infof("report written to %s", written)
	fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", written)
	return nil
}

// loadConfiguration reads the given file or falls back to the built-in examples.
func loadConfiguration(path string) (*domain.Configuration, error) {
	if path == "" {
		return config.DefaultConfiguration(), nil
	}
	return config.NewInputParser().LoadFromFile(path)
}
