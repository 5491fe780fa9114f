package calculation

import (
	"github.com/careercalc/career-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// FindBreakEven returns the first year index, within the years both series cover, at which
// the challenger's cumulative earnings meet or exceed the baseline's. A tie counts.
// The second return value is false when no such year exists, including when either
// series is empty.
func FindBreakEven(baseline, challenger domain.EarningsSeries) (domain.BreakEven, bool) {
	n := min(len(baseline), len(challenger))
	for i := 0; i < n; i++ {
		if challenger[i].GreaterThanOrEqual(baseline[i]) {
			return domain.BreakEven{YearIndex: i, Value: challenger[i]}, true
		}
	}
	return domain.BreakEven{}, false
}

// FindPayback returns the first year index at which a series is at or above zero
// after having been negative, i.e. the year education costs are earned back.
// A series that never dips below zero has no payback year.
func FindPayback(series domain.EarningsSeries) (int, bool) {
	wasNegative := false
	for i, v := range series {
		if v.IsNegative() {
			wasNegative = true
			continue
		}
		if wasNegative && v.GreaterThanOrEqual(decimal.Zero) {
			return i, true
		}
	}
	return 0, false
}
