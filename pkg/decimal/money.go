package decimal

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// String returns the amount rounded to cents
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format formats the amount as dollars and cents without grouping, e.g. "$1234.50"
func (m Money) Format() string {
	return "$" + m.String()
}

// FormatGrouped formats the amount with thousands separators and the given number of
// decimal places, e.g. "$1,234,567" or "-$12,000.50".
func (m Money) FormatGrouped(places int32) string {
	rounded := m.Decimal.Round(places)
	abs := rounded.Abs()

	s := "$" + humanize.Comma(abs.IntPart())
	if places > 0 {
		fixed := abs.StringFixed(places)
		s += fixed[strings.IndexByte(fixed, '.'):]
	}
	if rounded.IsNegative() {
		return "-" + s
	}
	return s
}
