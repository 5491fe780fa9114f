package output

import (
	"bytes"
	"fmt"

	"github.com/careercalc/career-calculator/internal/domain"
)

// ConsoleFormatter prints the career earnings summary: final net earnings per career
// followed by the break-even outcome of the primary pair.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(results *domain.CareerComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "===== Career Earnings Summary =====")
	for _, career := range results.Careers {
		fmt.Fprintf(&buf, "%s: Final Net Earnings = %s\n", career.Name, FormatDollars(career.FinalNetEarnings))
	}
	fmt.Fprintln(&buf, BreakEvenSentence(results.Primary))
	for _, pr := range results.ExtraPairs() {
		fmt.Fprintf(&buf, "  %s\n", BreakEvenSentence(pr))
	}
	return buf.Bytes(), nil
}
