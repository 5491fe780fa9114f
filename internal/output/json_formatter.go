package output

import (
	"encoding/json"

	"github.com/careercalc/career-calculator/internal/domain"
)

// JSONFormatter serializes the career comparison as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string      { return "json" }
func (j JSONFormatter) Extension() string { return "json" }

func (j JSONFormatter) Format(results *domain.CareerComparison) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}
