package output

import (
	"sort"

	"github.com/careercalc/career-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the career with the highest lifetime net earnings.
type Recommendation struct {
	CareerName       string
	FinalNetEarnings decimal.Decimal
	LeadOverNext     decimal.Decimal // lead over the runner-up; zero with a single career
}

// AnalyzeCareers ranks careers by final cumulative net earnings.
// Ties keep configuration order.
func AnalyzeCareers(results *domain.CareerComparison) Recommendation {
	if len(results.Careers) == 0 {
		return Recommendation{}
	}
	ranked := append([]domain.CareerSummary(nil), results.Careers...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].FinalNetEarnings.GreaterThan(ranked[j].FinalNetEarnings)
	})
	rec := Recommendation{CareerName: ranked[0].Name, FinalNetEarnings: ranked[0].FinalNetEarnings}
	if len(ranked) > 1 {
		rec.LeadOverNext = ranked[0].FinalNetEarnings.Sub(ranked[1].FinalNetEarnings)
	}
	return rec
}

// BreakEvenSentence renders a pair result the way the summary report phrases it.
func BreakEvenSentence(pr domain.PairResult) string {
	if !pr.Found() {
		return "No break-even point: " + pr.Baseline + " always ahead"
	}
	return "Break-even: " + pr.Challenger + " surpasses " + pr.Baseline +
		" in Year " + intToString(pr.BreakEven.YearIndex) +
		" (Net: " + FormatDollars(pr.BreakEven.Value) + ")"
}
