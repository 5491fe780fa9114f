package output

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/careercalc/career-calculator/internal/domain"
)

// ConsoleVerboseFormatter renders the summary, the assumptions and a year-by-year table
// of cumulative net earnings for every career.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string      { return "console-verbose" }
func (c ConsoleVerboseFormatter) Extension() string { return "txt" }

func (c ConsoleVerboseFormatter) Format(results *domain.CareerComparison) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 80))
	fmt.Fprintln(&buf, "DETAILED CAREER EARNINGS ANALYSIS")
	fmt.Fprintln(&buf, strings.Repeat("=", 80))
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range GenerateAssumptions(results) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	for i, career := range results.Careers {
		fmt.Fprintf(&buf, "CAREER %d: %s\n", i+1, career.Name)
		fmt.Fprintln(&buf, strings.Repeat("-", 50))
		fmt.Fprintf(&buf, "  Total education cost:  %s\n", FormatDollars(career.TotalEducationCost))
		fmt.Fprintf(&buf, "  Final salary:          %s\n", FormatDollars(career.FinalSalary))
		fmt.Fprintf(&buf, "  Final net earnings:    %s\n", FormatDollars(career.FinalNetEarnings))
		if career.PaybackYear != nil {
			fmt.Fprintf(&buf, "  Education paid back:   Year %d\n", *career.PaybackYear)
		}
		fmt.Fprintln(&buf)
	}

	fmt.Fprintln(&buf, "BREAK-EVEN")
	fmt.Fprintln(&buf, strings.Repeat("-", 50))
	fmt.Fprintln(&buf, BreakEvenSentence(results.Primary))
	for _, pr := range results.ExtraPairs() {
		fmt.Fprintf(&buf, "  %s\n", BreakEvenSentence(pr))
	}
	fmt.Fprintln(&buf)

	rec := AnalyzeCareers(results)
	if rec.CareerName != "" {
		fmt.Fprintf(&buf, "Highest lifetime net earnings: %s (%s, ahead by %s)\n\n", rec.CareerName, FormatDollars(rec.FinalNetEarnings), FormatDollars(rec.LeadOverNext))
	}

	writeYearTable(&buf, results)
	return buf.Bytes(), nil
}

// writeYearTable prints one row per year index and one column per career.
func writeYearTable(buf *bytes.Buffer, results *domain.CareerComparison) {
	w := tabwriter.NewWriter(buf, 0, 0, 2, ' ', tabwriter.AlignRight)
	header := []string{"Year"}
	years := 0
	for _, c := range results.Careers {
		header = append(header, c.Name)
		years = max(years, c.Series.Len())
	}
	fmt.Fprintln(w, strings.Join(header, "\t")+"\t")

	var be *domain.BreakEven
	if results.Primary.Found() {
		be = results.Primary.BreakEven
	}
	for y := 0; y < years; y++ {
		row := []string{intToString(y)}
		for _, c := range results.Careers {
			cell := ""
			if y < c.Series.Len() {
				cell = FormatDollars(c.Series[y])
				if be != nil && be.YearIndex == y && c.Name == results.Primary.Challenger {
					cell = "*" + cell
				}
			}
			row = append(row, cell)
		}
		fmt.Fprintln(w, strings.Join(row, "\t")+"\t")
	}
	w.Flush()
}
