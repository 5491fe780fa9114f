package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCompare_DefaultCareers(t *testing.T) {
	out, _, err := execute(t, "compare")
	require.NoError(t, err)
	assert.Contains(t, out, "===== Career Earnings Summary =====")
	assert.Contains(t, out, "Food Scientist Master's Degree: Final Net Earnings = $5,983,872")
	assert.Contains(t, out, "Pharmacist Doctorate Degree: Final Net Earnings = $9,339,596")
	assert.Contains(t, out, "MLS Degree: Final Net Earnings = $5,105,034")
	assert.Contains(t, out, "Break-even: Pharmacist Doctorate Degree surpasses Food Scientist Master's Degree in Year 8 (Net: $537,096)")
}

func TestCompare_SwappedPairNeverBreaksEven(t *testing.T) {
	out, _, err := execute(t, "compare", "--baseline", "Pharmacist Doctorate Degree", "--challenger", "MLS Degree")
	require.NoError(t, err)
	assert.Contains(t, out, "Break-even: MLS Degree surpasses Pharmacist Doctorate Degree in Year 0 (Net: -$12,000)")

	out, _, err = execute(t, "compare", "--baseline", "Food Scientist Master's Degree", "--challenger", "MLS Degree")
	require.NoError(t, err)
	assert.Contains(t, out, "No break-even point: Food Scientist Master's Degree always ahead")
}

func TestCompare_UnknownCareer(t *testing.T) {
	_, _, err := execute(t, "compare", "--challenger", "Astronaut")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Astronaut")
}

func TestCompare_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.svg")
	out, _, err := execute(t, "compare", "--format", "chart", "--output", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Report written to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg ")
	assert.Contains(t, string(data), ">Break-even Year 8</text>")
}

func TestCompare_LogsAtDebug(t *testing.T) {
	_, errOut, err := execute(t, "compare", "--log-level", "debug", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, errOut, "compared 3 careers")
}

func TestCompare_ConfigFileAndBadFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "careers.yaml")
	_, _, err := execute(t, "init-config", path)
	require.NoError(t, err)

	out, _, err := execute(t, "compare", "--config", path, "--format", "csv")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Career,EducationYears,"))

	_, _, err = execute(t, "compare", "--config", path, "--format", "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report format")

	_, _, err = execute(t, "init-config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestProject_Table(t *testing.T) {
	out, _, err := execute(t, "project", "--salary", "100", "--raise", "0.10", "--working-years", "3")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[3], "$331")
}

func TestProject_JSONAndValidation(t *testing.T) {
	out, _, err := execute(t, "project", "--education-years", "2", "--education-cost", "50", "--working-years", "1", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"-100"`)

	_, _, err = execute(t, "project", "--working-years", "-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid career profile")

	_, _, err = execute(t, "project", "--salary", "lots")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--salary")
}

func TestFormatsAndInitConfigStdout(t *testing.T) {
	out, _, err := execute(t, "formats")
	require.NoError(t, err)
	assert.Contains(t, out, "console-verbose")
	assert.Contains(t, out, "Aliases:")

	out, _, err = execute(t, "init-config")
	require.NoError(t, err)
	assert.Contains(t, out, "careers:")
	assert.Contains(t, out, "Pharmacist Doctorate Degree")
}

func TestCompare_ChallengerOnlyUsesAnotherBaseline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "careers.yaml")
	cfg := `careers:
  - name: Alpha
    starting_salary: 100
    annual_raise_rate: 0.1
    working_years: 3
  - name: Beta
    education_years: 1
    education_cost_per_year: 50
    starting_salary: 200
    working_years: 2
`
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))

	out, _, err := execute(t, "compare", "--config", path, "--challenger", "Alpha")
	require.NoError(t, err)
	assert.Contains(t, out, "Break-even: Alpha surpasses Beta in Year 0 (Net: $100)")
	assert.NotContains(t, out, "Alpha surpasses Alpha")
}
