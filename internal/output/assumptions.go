package output

import (
	"fmt"

	"github.com/careercalc/career-calculator/internal/domain"
)

// DefaultAssumptions lists the modeling assumptions shared by every projection.
var DefaultAssumptions = []string{
	"Education costs are paid in full each education year, with no financing or interest",
	"Salary raises take effect the year after they are earned",
	"No taxes, inflation or discounting; all figures are nominal",
	"Break-even compares cumulative totals year by year over the years both careers cover",
}

// GenerateAssumptions lists the shared assumptions followed by one line per career.
func GenerateAssumptions(results *domain.CareerComparison) []string {
	out := append([]string(nil), DefaultAssumptions...)
	for _, c := range results.Careers {
		p := c.Profile
		out = append(out, fmt.Sprintf("%s: %d education years at %s/yr, then %d working years from %s with %s annual raises",
			c.Name, p.EducationYears, FormatDollars(p.EducationCostPerYear), p.WorkingYears, FormatDollars(p.StartingSalary), FormatPercentage(p.AnnualRaiseRate)))
	}
	return out
}
