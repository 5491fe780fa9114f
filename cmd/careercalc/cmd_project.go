package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/careercalc/career-calculator/internal/calculation"
	"github.com/careercalc/career-calculator/internal/domain"
	"github.com/careercalc/career-calculator/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type projectOptions struct {
	name           string
	educationYears int
	educationCost  string
	salary         string
	raise          string
	workingYears   int
	format         string
}

func newProjectCmd() *cobra.Command {
	opts := &projectOptions{}
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Print the cumulative earnings of a single career",
		Long: `Project one career given on the command line.

Example:
  careercalc project --education-years 4 --education-cost 25000 --salary 120000 --raise 0.03 --working-years 41`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProject(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.name, "name", "Career", "Career name")
	cmd.Flags().IntVar(&opts.educationYears, "education-years", 0, "Years of education before income starts")
	cmd.Flags().StringVar(&opts.educationCost, "education-cost", "0", "Cost per education year")
	cmd.Flags().StringVar(&opts.salary, "salary", "0", "Salary in the first working year")
	cmd.Flags().StringVar(&opts.raise, "raise", "0", "Annual raise rate as a fraction (0.03 = 3%)")
	cmd.Flags().IntVar(&opts.workingYears, "working-years", 0, "Years of income")
	cmd.Flags().StringVar(&opts.format, "format", "table", "Output format: table or json")
	return cmd
}

func runProject(cmd *cobra.Command, opts *projectOptions) error {
	profile := domain.CareerProfile{
		Name:           opts.name,
		EducationYears: opts.educationYears,
		WorkingYears:   opts.workingYears,
	}
	var err error
	if profile.EducationCostPerYear, err = parseAmount("education-cost", opts.educationCost); err != nil {
		return err
	}
	if profile.StartingSalary, err = parseAmount("salary", opts.salary); err != nil {
		return err
	}
	if profile.AnnualRaiseRate, err = parseAmount("raise", opts.raise); err != nil {
		return err
	}

	series, err := calculation.ProjectValidated(profile)
	if err != nil {
		return err
	}

	switch strings.ToLower(opts.format) {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Profile domain.CareerProfile  `json:"profile"`
			Series  domain.EarningsSeries `json:"series"`
		}{profile, series})
	case "table":
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "Year\tPhase\tAnnual\tCumulative")
		for i, v := range series {
			phase := "working"
			if i < profile.EducationYears {
				phase = "education"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i, phase, output.FormatDollars(series.AnnualNet(i)), output.FormatDollars(v))
		}
		return w.Flush()
	default:
		return fmt.Errorf("%w: %q (use table or json)", output.ErrUnsupportedFormat, opts.format)
	}
}

func parseAmount(flag, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid --%s %q: %w", flag, value, err)
	}
	return d, nil
}
