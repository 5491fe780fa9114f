package output

import (
	"strconv"

	money "github.com/careercalc/career-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as USD currency with 2 decimals and no grouping, for CSV.
func FormatCurrency(amount decimal.Decimal) string { return money.NewMoneyFromDecimal(amount).Format() }

// FormatDollars formats a decimal as whole dollars with thousands separators ("$1,234,567").
func FormatDollars(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).FormatGrouped(0)
}

// FormatPercentage formats a fractional rate (0.03) as a percentage with 2 decimals ("3.00%").
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimalHundred).StringFixed(2) + "%"
}

var decimalHundred = decimal.NewFromInt(100)

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
