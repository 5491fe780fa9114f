package integration

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/careercalc/career-calculator/internal/calculation"
	"github.com/careercalc/career-calculator/internal/config"
)

// TestComparisonSnapshot pins the headline numbers of the example comparison.
func TestComparisonSnapshot(t *testing.T) {
	cfg, err := config.NewInputParser().LoadFromFile("../testdata/example_config.yaml")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	res, err := calculation.NewComparisonEngine().RunComparison(context.Background(), cfg)
	if err != nil {
		t.Fatalf("run comparison: %v", err)
	}

	type career struct {
		Name        string `json:"name"`
		Years       int    `json:"years"`
		Final       string `json:"final_net_earnings"`
		Year10      string `json:"year_10"`
		PaybackYear int    `json:"payback_year"`
	}
	type pair struct {
		Baseline   string `json:"baseline"`
		Challenger string `json:"challenger"`
		YearIndex  int    `json:"year_index"`
		Value      string `json:"value"`
	}
	var out struct {
		Careers []career `json:"careers"`
		Pairs   []pair   `json:"pairs"`
	}
	for _, c := range res.Careers {
		payback := -1
		if c.PaybackYear != nil {
			payback = *c.PaybackYear
		}
		out.Careers = append(out.Careers, career{
			Name:        c.Name,
			Years:       c.Series.Len(),
			Final:       c.FinalNetEarnings.StringFixed(2),
			Year10:      c.Series[10].StringFixed(2),
			PaybackYear: payback,
		})
	}
	for _, p := range res.Pairs {
		row := pair{Baseline: p.Baseline, Challenger: p.Challenger, YearIndex: -1}
		if p.Found() {
			row.YearIndex = p.BreakEven.YearIndex
			row.Value = p.BreakEven.Value.StringFixed(2)
		}
		out.Pairs = append(out.Pairs, row)
	}
	data, _ := json.MarshalIndent(out, "", "  ")

	goldenPath := filepath.Join("testdata", "comparison_snapshot.golden.json")
	if os.Getenv("UPDATE_GOLDEN") == "1" {
		if err := os.WriteFile(goldenPath, data, 0644); err != nil {
			t.Fatalf("write golden: %v", err)
		}
	}
	golden, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	if strings.TrimSpace(string(golden)) != strings.TrimSpace(string(data)) {
		t.Fatalf("comparison snapshot drift; run UPDATE_GOLDEN=1 to accept\n--- have ---\n%s\n--- want ---\n%s", data, golden)
	}
}
