package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/careercalc/career-calculator/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with the inline SVG chart.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string      { return "html" }
func (h HTMLFormatter) Extension() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"dollars":   FormatDollars,
	"pct":       FormatPercentage,
	"breakeven": BreakEvenSentence,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(results *domain.CareerComparison) ([]byte, error) {
	var buf bytes.Buffer
	chart := NewChartRenderer(results.Chart)
	svg, err := chart.RenderInline(results)
	if err != nil {
		return nil, err
	}

	data := struct {
		*domain.CareerComparison
		Title          string
		ChartSVG       template.HTML
		Recommendation Recommendation
		Assumptions    []string
	}{
		CareerComparison: results,
		Title:            chart.Title,
		ChartSVG:         template.HTML(svg),
		Recommendation:   AnalyzeCareers(results),
		Assumptions:      GenerateAssumptions(results),
	}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
