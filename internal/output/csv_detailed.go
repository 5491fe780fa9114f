package output

import (
	"bytes"
	"encoding/csv"

	"github.com/careercalc/career-calculator/internal/domain"
)

// CSVDetailedExporter provides the raw projection per career/year.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string      { return "detailed-csv" }
func (c CSVDetailedExporter) Extension() string { return "csv" }

func (c CSVDetailedExporter) Format(results *domain.CareerComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Career", "Year", "Phase", "AnnualNet", "CumulativeNet", "IsBreakEven"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, career := range results.Careers {
		for y, cumulative := range career.Series {
			phase := "working"
			if y < career.Profile.EducationYears {
				phase = "education"
			}
			isBreakEven := results.Primary.Found() &&
				career.Name == results.Primary.Challenger &&
				results.Primary.BreakEven.YearIndex == y
			row := []string{
				career.Name,
				intToString(y),
				phase,
				career.Series.AnnualNet(y).StringFixed(2),
				cumulative.StringFixed(2),
				boolToString(isBreakEven),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
