package main

import (
	"fmt"
	"os"

	"github.com/careercalc/career-calculator/internal/calculation"
	"github.com/careercalc/career-calculator/internal/logging"
	"github.com/spf13/cobra"
)

// rootOptions holds flags shared by every subcommand
type rootOptions struct {
	logLevel string
	logJSON  bool
}

// newRootCmd builds the careercalc command tree.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:   "careercalc",
		Short: "Compare cumulative net earnings of alternative career paths",
		Long: `careercalc projects cumulative net earnings for career paths that start with
years of education costs followed by years of salary with compounding raises,
and finds the first year one career's cumulative earnings catch up with another's.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug|info|warn|error|disabled)")
	rootCmd.PersistentFlags().BoolVar(&opts.logJSON, "log-json", false, "Emit logs as JSON instead of console text")

	rootCmd.AddCommand(
		newCompareCmd(opts),
		newProjectCmd(),
		newFormatsCmd(),
		newInitConfigCmd(),
	)
	return rootCmd
}

// engine creates a comparison engine logging to the command's stderr.
func (o *rootOptions) engine(cmd *cobra.Command) (*calculation.ComparisonEngine, error) {
	logger, err := logging.New(cmd.ErrOrStderr(), o.logLevel, o.logJSON)
	if err != nil {
		return nil, err
	}
	engine := calculation.NewComparisonEngine()
	engine.SetLogger(logger)
	return engine, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
