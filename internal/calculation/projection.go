package calculation

import (
	"errors"
	"fmt"

	"github.com/careercalc/career-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrInvalidProfile is returned when a career profile cannot be projected.
var ErrInvalidProfile = errors.New("invalid career profile")

// Project returns the cumulative net earnings of a career, one entry per year.
// Education years each subtract EducationCostPerYear; working years each add the current
// salary, and the raise is applied after the year's salary has been counted.
// Inputs are not validated; see ProjectValidated.
func Project(profile domain.CareerProfile) domain.EarningsSeries {
	series := make(domain.EarningsSeries, 0, max(profile.TotalYears(), 0))
	total := decimal.Zero

	for i := 0; i < profile.EducationYears; i++ {
		total = total.Sub(profile.EducationCostPerYear)
		series = append(series, total)
	}

	growth := decimal.NewFromInt(1).Add(profile.AnnualRaiseRate)
	salary := profile.StartingSalary
	for i := 0; i < profile.WorkingYears; i++ {
		total = total.Add(salary)
		series = append(series, total)
		salary = salary.Mul(growth)
	}

	return series
}

// ProjectValidated checks the profile before projecting it.
func ProjectValidated(profile domain.CareerProfile) (domain.EarningsSeries, error) {
	if err := ValidateProfile(profile); err != nil {
		return nil, err
	}
	return Project(profile), nil
}

// ValidateProfile rejects profiles whose year counts are negative.
// Negative costs and raise rates are legitimate inputs and are left alone.
func ValidateProfile(profile domain.CareerProfile) error {
	if profile.EducationYears < 0 {
		return fmt.Errorf("%w: education years cannot be negative (got %d)", ErrInvalidProfile, profile.EducationYears)
	}
	if profile.WorkingYears < 0 {
		return fmt.Errorf("%w: working years cannot be negative (got %d)", ErrInvalidProfile, profile.WorkingYears)
	}
	return nil
}

// SalaryInWorkingYear returns the salary paid in the given 0-based working year.
func SalaryInWorkingYear(profile domain.CareerProfile, year int) decimal.Decimal {
	growth := decimal.NewFromInt(1).Add(profile.AnnualRaiseRate)
	salary := profile.StartingSalary
	for i := 0; i < year; i++ {
		salary = salary.Mul(growth)
	}
	return salary
}
