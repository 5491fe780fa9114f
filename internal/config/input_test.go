package config

import (
	"errors"
	"os"
	"testing"

	"github.com/careercalc/career-calculator/internal/calculation"
	"github.com/careercalc/career-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	testConfig := "careers:\n" +
		"  - name: \"Master's\"\n" +
		"    education_years: 2\n" +
		"    education_cost_per_year: 0\n" +
		"    starting_salary: 70000\n" +
		"    annual_raise_rate: 0.03\n" +
		"    working_years: 43\n" +
		"  - name: \"Doctorate\"\n" +
		"    education_years: 4\n" +
		"    education_cost_per_year: 25000\n" +
		"    starting_salary: 120000\n" +
		"    annual_raise_rate: \"0.03\"\n" +
		"    working_years: 41\n" +
		"comparison:\n" +
		"  baseline: \"Master's\"\n" +
		"  challenger: \"Doctorate\"\n" +
		"  all_pairs: true\n" +
		"chart:\n" +
		"  title: \"Test Chart\"\n" +
		"  width: 800\n"

	tmpfile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	_, err = tmpfile.Write([]byte(testConfig))
	require.NoError(t, err)
	tmpfile.Close()

	parser := NewInputParser()
	config, err := parser.LoadFromFile(tmpfile.Name())

	require.NoError(t, err)
	require.Len(t, config.Careers, 2)
	doc := config.Careers[1]
	assert.Equal(t, "Doctorate", doc.Name)
	assert.Equal(t, 4, doc.EducationYears)
	assert.True(t, doc.EducationCostPerYear.Equal(decimal.NewFromInt(25000)))
	assert.True(t, doc.StartingSalary.Equal(decimal.NewFromInt(120000)))
	assert.True(t, doc.AnnualRaiseRate.Equal(decimal.RequireFromString("0.03")))
	assert.True(t, config.Careers[0].AnnualRaiseRate.Equal(decimal.RequireFromString("0.03")))
	assert.True(t, config.Comparison.AllPairs)
	assert.Equal(t, "Test Chart", config.Chart.Title)
	assert.Equal(t, 800, config.Chart.Width)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestParse_InvalidYAML(t *testing.T) {
	testConfig := `
careers:
	- name: "tabs are not allowed"
`
	config, err := NewInputParser().Parse([]byte(testConfig))
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestParse_InvalidDecimal(t *testing.T) {
	testConfig := "careers:\n  - name: A\n    starting_salary: not-a-number\n    working_years: 1\n"
	_, err := NewInputParser().Parse([]byte(testConfig))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestValidateConfiguration_Default(t *testing.T) {
	parser := NewInputParser()
	assert.NoError(t, parser.ValidateConfiguration(DefaultConfiguration()))
}

func TestValidateConfiguration_Failures(t *testing.T) {
	testCases := []struct {
		desc    string
		mutate  func(c *domain.Configuration)
		wantMsg string
		wantErr error
	}{
		{
			desc:    "single career",
			mutate:  func(c *domain.Configuration) { c.Careers = c.Careers[:1] },
			wantMsg: "at least two careers",
		},
		{
			desc:    "missing name",
			mutate:  func(c *domain.Configuration) { c.Careers[2].Name = "" },
			wantMsg: "name is required",
			wantErr: calculation.ErrInvalidProfile,
		},
		{
			desc:    "negative education years",
			mutate:  func(c *domain.Configuration) { c.Careers[0].EducationYears = -2 },
			wantMsg: "education years cannot be negative",
			wantErr: calculation.ErrInvalidProfile,
		},
		{
			desc:    "negative working years",
			mutate:  func(c *domain.Configuration) { c.Careers[1].WorkingYears = -1 },
			wantMsg: "working years cannot be negative",
			wantErr: calculation.ErrInvalidProfile,
		},
		{
			desc:    "duplicate names",
			mutate:  func(c *domain.Configuration) { c.Careers[2].Name = c.Careers[0].Name },
			wantMsg: "duplicate career name",
		},
		{
			desc:    "unknown baseline",
			mutate:  func(c *domain.Configuration) { c.Comparison.Baseline = "Astronaut" },
			wantMsg: "baseline \"Astronaut\"",
			wantErr: calculation.ErrUnknownCareer,
		},
		{
			desc:    "unknown challenger",
			mutate:  func(c *domain.Configuration) { c.Comparison.Challenger = "Astronaut" },
			wantErr: calculation.ErrUnknownCareer,
		},
		{
			desc: "same career twice",
			mutate: func(c *domain.Configuration) {
				c.Comparison.Challenger = c.Comparison.Baseline
			},
			wantMsg: "must be different",
			wantErr: calculation.ErrSameCareer,
		},
		{
			desc:    "negative chart size",
			mutate:  func(c *domain.Configuration) { c.Chart.Height = -10 },
			wantMsg: "chart dimensions",
		},
	}

	parser := NewInputParser()
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			cfg := DefaultConfiguration()
			tc.mutate(cfg)
			err := parser.ValidateConfiguration(cfg)
			require.Error(t, err)
			if tc.wantMsg != "" {
				assert.Contains(t, err.Error(), tc.wantMsg)
			}
			if tc.wantErr != nil {
				assert.True(t, errors.Is(err, tc.wantErr), "expected %v in chain, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestValidateConfiguration_ChallengerOnly(t *testing.T) {
	cfg := DefaultConfiguration()
	cfg.Comparison = domain.ComparisonSettings{Challenger: cfg.Careers[0].Name}
	require.NoError(t, NewInputParser().ValidateConfiguration(cfg))

	baseline, challenger := calculation.ResolvePair(cfg)
	assert.Equal(t, cfg.Careers[1].Name, baseline)
	assert.Equal(t, cfg.Careers[0].Name, challenger)
}

func TestValidateConfiguration_NegativeMoneyAllowed(t *testing.T) {
	cfg := DefaultConfiguration()
	cfg.Careers[0].EducationCostPerYear = decimal.NewFromInt(-5000)
	cfg.Careers[1].AnnualRaiseRate = decimal.RequireFromString("-0.01")
	assert.NoError(t, NewInputParser().ValidateConfiguration(cfg))
}

func TestDefaultConfiguration(t *testing.T) {
	cfg := DefaultConfiguration()
	require.Len(t, cfg.Careers, 3)
	assert.Equal(t, "Food Scientist Master's Degree", cfg.Comparison.Baseline)
	assert.Equal(t, "Pharmacist Doctorate Degree", cfg.Comparison.Challenger)
	for _, c := range cfg.Careers {
		assert.Equal(t, 45, c.TotalYears(), c.Name)
	}
}
