package config

import (
	"github.com/careercalc/career-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultConfiguration returns the built-in example careers:
// a two-year master's, a four-year pharmacy doctorate and a two-year MLS program.
func DefaultConfiguration() *domain.Configuration {
	raise := decimal.RequireFromString("0.03")
	return &domain.Configuration{
		Careers: []domain.CareerProfile{
			{
				Name:                 "Food Scientist Master's Degree",
				EducationYears:       2,
				EducationCostPerYear: decimal.Zero,
				StartingSalary:       decimal.NewFromInt(70000),
				AnnualRaiseRate:      raise,
				WorkingYears:         43,
			},
			{
				Name:                 "Pharmacist Doctorate Degree",
				EducationYears:       4,
				EducationCostPerYear: decimal.NewFromInt(25000),
				StartingSalary:       decimal.NewFromInt(120000),
				AnnualRaiseRate:      raise,
				WorkingYears:         41,
			},
			{
				Name:                 "MLS Degree",
				EducationYears:       2,
				EducationCostPerYear: decimal.NewFromInt(12000),
				StartingSalary:       decimal.NewFromInt(60000),
				AnnualRaiseRate:      raise,
				WorkingYears:         43,
			},
		},
		Comparison: domain.ComparisonSettings{
			Baseline:   "Food Scientist Master's Degree",
			Challenger: "Pharmacist Doctorate Degree",
		},
		Chart: domain.ChartSettings{
			Title: "Career Earnings Comparison",
		},
	}
}
