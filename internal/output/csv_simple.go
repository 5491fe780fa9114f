package output

import (
	"bytes"
	"encoding/csv"

	"github.com/careercalc/career-calculator/internal/domain"
)

// CSVSummarizer implements the summary CSV output (one row per career, configuration order).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string      { return "csv" }
func (c CSVSummarizer) Extension() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.CareerComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Career", "EducationYears", "EducationCostPerYear", "StartingSalary", "AnnualRaiseRate", "WorkingYears", "TotalEducationCost", "FinalSalary", "FinalNetEarnings", "PaybackYear", "BreakEvenYear"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, career := range results.Careers {
		p := career.Profile
		payback := ""
		if career.PaybackYear != nil {
			payback = intToString(*career.PaybackYear)
		}
		breakEven := ""
		if career.Name == results.Primary.Challenger && results.Primary.Found() {
			breakEven = intToString(results.Primary.BreakEven.YearIndex)
		}
		row := []string{
			career.Name,
			intToString(p.EducationYears),
			p.EducationCostPerYear.StringFixed(2),
			p.StartingSalary.StringFixed(2),
			p.AnnualRaiseRate.String(),
			intToString(p.WorkingYears),
			career.TotalEducationCost.StringFixed(2),
			career.FinalSalary.StringFixed(2),
			career.FinalNetEarnings.StringFixed(2),
			payback,
			breakEven,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
