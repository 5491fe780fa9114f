package domain

import (
	"github.com/shopspring/decimal"
)

// CareerProfile describes one career path: a run of education years that cost money
// followed by a run of working years whose salary compounds by AnnualRaiseRate.
type CareerProfile struct {
	Name                 string          `yaml:"name" json:"name"`
	EducationYears       int             `yaml:"education_years" json:"education_years"`
	EducationCostPerYear decimal.Decimal `yaml:"education_cost_per_year" json:"education_cost_per_year"`
	StartingSalary       decimal.Decimal `yaml:"starting_salary" json:"starting_salary"`
	AnnualRaiseRate      decimal.Decimal `yaml:"annual_raise_rate" json:"annual_raise_rate"` // 0.03 = 3%
	WorkingYears         int             `yaml:"working_years" json:"working_years"`
}

// TotalYears returns the length of the combined education and working timeline.
func (cp CareerProfile) TotalYears() int {
	return cp.EducationYears + cp.WorkingYears
}

// TotalEducationCost returns the undiscounted cost of all education years.
func (cp CareerProfile) TotalEducationCost() decimal.Decimal {
	return cp.EducationCostPerYear.Mul(decimal.NewFromInt(int64(cp.EducationYears)))
}

// ComparisonSettings selects which pair of careers the break-even search runs on.
// Empty names fall back to the first two careers in the configuration.
type ComparisonSettings struct {
	Baseline   string `yaml:"baseline,omitempty" json:"baseline,omitempty"`
	Challenger string `yaml:"challenger,omitempty" json:"challenger,omitempty"`
	AllPairs   bool   `yaml:"all_pairs,omitempty" json:"all_pairs,omitempty"`
}

// ChartSettings controls the rendered chart. Zero values use the renderer defaults.
type ChartSettings struct {
	Title  string `yaml:"title,omitempty" json:"title,omitempty"`
	Width  int    `yaml:"width,omitempty" json:"width,omitempty"`
	Height int    `yaml:"height,omitempty" json:"height,omitempty"`
}

// Configuration is the top-level input document.
type Configuration struct {
	Careers    []CareerProfile    `yaml:"careers" json:"careers"`
	Comparison ComparisonSettings `yaml:"comparison,omitempty" json:"comparison,omitempty"`
	Chart      ChartSettings      `yaml:"chart,omitempty" json:"chart,omitempty"`
}

// FindCareer returns the career with the given name.
func (c *Configuration) FindCareer(name string) (CareerProfile, bool) {
	for _, cp := range c.Careers {
		if cp.Name == name {
			return cp, true
		}
	}
	return CareerProfile{}, false
}
