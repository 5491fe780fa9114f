package domain

import (
	"github.com/shopspring/decimal"
)

// EarningsSeries holds cumulative net earnings, one entry per elapsed year.
// Index 0 is the first education year, or the first working year when there is no education.
type EarningsSeries []decimal.Decimal

// Len returns the number of years covered.
func (es EarningsSeries) Len() int { return len(es) }

// Final returns the cumulative total at the end of the timeline.
func (es EarningsSeries) Final() (decimal.Decimal, bool) {
	if len(es) == 0 {
		return decimal.Zero, false
	}
	return es[len(es)-1], true
}

// AnnualNet returns the per-year delta at index i (the difference to the previous entry).
// Indexes outside the series yield zero.
func (es EarningsSeries) AnnualNet(i int) decimal.Decimal {
	if i < 0 || i >= len(es) {
		return decimal.Zero
	}
	if i == 0 {
		return es[0]
	}
	return es[i].Sub(es[i-1])
}

// Bounds returns the smallest and largest cumulative values.
func (es EarningsSeries) Bounds() (lo, hi decimal.Decimal) {
	for i, v := range es {
		if i == 0 || v.LessThan(lo) {
			lo = v
		}
		if i == 0 || v.GreaterThan(hi) {
			hi = v
		}
	}
	return lo, hi
}

// BreakEven marks the first year a challenger's cumulative earnings met or exceeded the baseline's.
type BreakEven struct {
	YearIndex int             `json:"year_index"`
	Value     decimal.Decimal `json:"value"` // challenger's cumulative earnings at YearIndex
}

// PairResult is the outcome of a break-even search between two careers.
// BreakEven is nil when the challenger never catches up within the overlapping years.
type PairResult struct {
	Baseline   string     `json:"baseline"`
	Challenger string     `json:"challenger"`
	BreakEven  *BreakEven `json:"break_even,omitempty"`
}

// Found reports whether a break-even year exists.
func (pr PairResult) Found() bool { return pr.BreakEven != nil }

// CareerSummary provides the key metrics for one projected career
type CareerSummary struct {
	Name               string          `json:"name"`
	Profile            CareerProfile   `json:"profile"`
	Series             EarningsSeries  `json:"series"`
	FinalNetEarnings   decimal.Decimal `json:"final_net_earnings"`
	TotalEducationCost decimal.Decimal `json:"total_education_cost"`
	FinalSalary        decimal.Decimal `json:"final_salary"` // salary paid in the last working year

	// PaybackYear is the first index at which cumulative earnings are back to zero or above
	// after the education segment; nil when that never happens.
	PaybackYear *int `json:"payback_year,omitempty"`
}

// CareerComparison provides the projections of all careers and the break-even outcomes
type CareerComparison struct {
	Careers []CareerSummary `json:"careers"`
	Primary PairResult      `json:"primary"`
	Pairs   []PairResult    `json:"pairs,omitempty"`
	Chart   ChartSettings   `json:"chart,omitempty"`
}

// ExtraPairs returns the all-pairs results other than the primary pair.
func (cc *CareerComparison) ExtraPairs() []PairResult {
	extra := make([]PairResult, 0, len(cc.Pairs))
	for _, pr := range cc.Pairs {
		if pr.Baseline == cc.Primary.Baseline && pr.Challenger == cc.Primary.Challenger {
			continue
		}
		extra = append(extra, pr)
	}
	return extra
}

// FindCareer returns the summary with the given name.
func (cc *CareerComparison) FindCareer(name string) (*CareerSummary, bool) {
	for i := range cc.Careers {
		if cc.Careers[i].Name == name {
			return &cc.Careers[i], true
		}
	}
	return nil, false
}
