package calculation

import (
	"context"
	"errors"
	"fmt"

	"github.com/careercalc/career-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrUnknownCareer is returned when a comparison names a career that is not configured.
var ErrUnknownCareer = errors.New("unknown career")

// ErrSameCareer is returned when the resolved baseline and challenger are the same career.
var ErrSameCareer = errors.New("baseline and challenger must be different careers")

// ComparisonEngine projects every configured career and runs the break-even searches
type ComparisonEngine struct {
	Logger Logger
}

// NewComparisonEngine creates a new comparison engine
func NewComparisonEngine() *ComparisonEngine {
	return &ComparisonEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (ce *ComparisonEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// SummarizeCareer projects a single career and derives its summary metrics.
func (ce *ComparisonEngine) SummarizeCareer(profile domain.CareerProfile) (domain.CareerSummary, error) {
	series, err := ProjectValidated(profile)
	if err != nil {
		return domain.CareerSummary{}, fmt.Errorf("career %q: %w", profile.Name, err)
	}

	summary := domain.CareerSummary{
		Name:               profile.Name,
		Profile:            profile,
		Series:             series,
		TotalEducationCost: profile.TotalEducationCost(),
		FinalSalary:        decimal.Zero,
	}
	if final, ok := series.Final(); ok {
		summary.FinalNetEarnings = final
	}
	if profile.WorkingYears > 0 {
		summary.FinalSalary = SalaryInWorkingYear(profile, profile.WorkingYears-1)
	}
	if idx, ok := FindPayback(series); ok {
		summary.PaybackYear = &idx
	}

	ce.Logger.Debugf("projected %q: %d years, final net %s", profile.Name, series.Len(), summary.FinalNetEarnings.StringFixed(2))
	return summary, nil
}

// ComparePair runs the break-even search of challenger against baseline.
func (ce *ComparisonEngine) ComparePair(baseline, challenger *domain.CareerSummary) domain.PairResult {
	result := domain.PairResult{Baseline: baseline.Name, Challenger: challenger.Name}
	if be, ok := FindBreakEven(baseline.Series, challenger.Series); ok {
		result.BreakEven = &be
		ce.Logger.Debugf("%q reaches %q in year %d", challenger.Name, baseline.Name, be.YearIndex)
	} else {
		ce.Logger.Debugf("%q never reaches %q", challenger.Name, baseline.Name)
	}
	return result
}

// RunComparison projects every career in the configuration and computes the primary
// break-even pair, plus every ordered pair when AllPairs is set.
func (ce *ComparisonEngine) RunComparison(ctx context.Context, config *domain.Configuration) (*domain.CareerComparison, error) {
	if len(config.Careers) < 2 {
		return nil, fmt.Errorf("at least two careers are required for a comparison, got %d", len(config.Careers))
	}

	comparison := &domain.CareerComparison{
		Careers: make([]domain.CareerSummary, 0, len(config.Careers)),
		Chart:   config.Chart,
	}
	for _, profile := range config.Careers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		summary, err := ce.SummarizeCareer(profile)
		if err != nil {
			return nil, err
		}
		comparison.Careers = append(comparison.Careers, summary)
	}

	baselineName, challengerName := ResolvePair(config)
	if baselineName == challengerName {
		return nil, fmt.Errorf("%w: %q", ErrSameCareer, baselineName)
	}
	baseline, ok := comparison.FindCareer(baselineName)
	if !ok {
		return nil, fmt.Errorf("%w: baseline %q", ErrUnknownCareer, baselineName)
	}
	challenger, ok := comparison.FindCareer(challengerName)
	if !ok {
		return nil, fmt.Errorf("%w: challenger %q", ErrUnknownCareer, challengerName)
	}
	comparison.Primary = ce.ComparePair(baseline, challenger)

	if config.Comparison.AllPairs {
		for i := range comparison.Careers {
			for j := range comparison.Careers {
				if i == j {
					continue
				}
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				comparison.Pairs = append(comparison.Pairs, ce.ComparePair(&comparison.Careers[i], &comparison.Careers[j]))
			}
		}
	}

	ce.Logger.Infof("compared %d careers (primary: %q vs %q, found=%t)", len(comparison.Careers), baselineName, challengerName, comparison.Primary.Found())
	return comparison, nil
}

// ResolvePair returns the baseline and challenger names. An unset side defaults to the
// first career that is not the other side.
func ResolvePair(config *domain.Configuration) (string, string) {
	baseline := config.Comparison.Baseline
	challenger := config.Comparison.Challenger
	if baseline == "" {
		baseline = firstCareerOtherThan(config, challenger)
	}
	if challenger == "" {
		challenger = firstCareerOtherThan(config, baseline)
	}
	return baseline, challenger
}

func firstCareerOtherThan(config *domain.Configuration, name string) string {
	for _, cp := range config.Careers {
		if cp.Name != name {
			return cp.Name
		}
	}
	return ""
}
