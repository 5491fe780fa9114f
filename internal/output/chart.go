package output

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/careercalc/career-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgsvg"
)

const (
	defaultChartWidth  = 1000
	defaultChartHeight = 600
	defaultChartTitle  = "Career Earnings Comparison"

	chartXLabel = "Years (including college)"
	chartYLabel = "Cumulative Net Earnings ($)"
)

var breakEvenColor = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}

// ChartRenderer draws cumulative earnings as an SVG line chart, one line per career,
// with a marker and annotation at the primary break-even point.
type ChartRenderer struct {
	Title  string
	Width  int
	Height int
}

// NewChartRenderer applies defaults to unset chart settings.
func NewChartRenderer(settings domain.ChartSettings) ChartRenderer {
	cr := ChartRenderer{Title: settings.Title, Width: settings.Width, Height: settings.Height}
	if cr.Title == "" {
		cr.Title = defaultChartTitle
	}
	if cr.Width <= 0 {
		cr.Width = defaultChartWidth
	}
	if cr.Height <= 0 {
		cr.Height = defaultChartHeight
	}
	return cr
}

// Plot builds the chart without rendering it.
func (cr ChartRenderer) Plot(results *domain.CareerComparison) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = cr.Title
	p.X.Label.Text = chartXLabel
	p.Y.Label.Text = chartYLabel
	p.Y.Tick.Marker = dollarTicks{}
	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.XOffs = vg.Points(8)
	p.Legend.YOffs = -vg.Points(8)

	grid := plotter.NewGrid()
	grid.Vertical.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	grid.Horizontal.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(grid)

	for i, career := range results.Careers {
		if career.Series.Len() == 0 {
			continue
		}
		line, err := plotter.NewLine(seriesXYs(career.Series))
		if err != nil {
			return nil, fmt.Errorf("plotting %q: %w", career.Name, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(2)
		p.Add(line)
		p.Legend.Add(career.Name, line)
	}

	if results.Primary.Found() {
		if err := addBreakEven(p, results.Primary.BreakEven); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Render produces a standalone SVG document.
func (cr ChartRenderer) Render(results *domain.CareerComparison) ([]byte, error) {
	p, err := cr.Plot(results)
	if err != nil {
		return nil, err
	}

	canvas := vgsvg.New(vg.Points(float64(cr.Width)), vg.Points(float64(cr.Height)))
	p.Draw(draw.New(canvas))

	var buf bytes.Buffer
	if _, err := canvas.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write chart: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderInline returns the SVG element without the XML prolog, for embedding in HTML.
func (cr ChartRenderer) RenderInline(results *domain.CareerComparison) ([]byte, error) {
	out, err := cr.Render(results)
	if err != nil {
		return nil, err
	}
	if i := bytes.Index(out, []byte("<svg")); i > 0 {
		out = out[i:]
	}
	return out, nil
}

func addBreakEven(p *plot.Plot, be *domain.BreakEven) error {
	pt := plotter.XYs{{X: float64(be.YearIndex), Y: be.Value.InexactFloat64()}}

	marker, err := plotter.NewScatter(pt)
	if err != nil {
		return fmt.Errorf("plotting break-even marker: %w", err)
	}
	marker.GlyphStyle = draw.GlyphStyle{
		Color:  breakEvenColor,
		Radius: vg.Points(5),
		Shape:  draw.CircleGlyph{},
	}

	label, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    pt,
		Labels: []string{fmt.Sprintf("Break-even Year %d\n(%s)", be.YearIndex, FormatDollars(be.Value))},
	})
	if err != nil {
		return fmt.Errorf("plotting break-even annotation: %w", err)
	}
	label.TextStyle[0].Color = breakEvenColor
	label.Offset = vg.Point{X: vg.Points(10), Y: -vg.Points(30)}

	p.Add(marker, label)
	return nil
}

func seriesXYs(series domain.EarningsSeries) plotter.XYs {
	xys := make(plotter.XYs, series.Len())
	for i, v := range series {
		xys[i].X = float64(i)
		xys[i].Y = v.InexactFloat64()
	}
	return xys
}

// dollarTicks labels the default tick positions as whole dollars.
type dollarTicks struct{}

func (dollarTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i := range ticks {
		if ticks[i].Label != "" {
			ticks[i].Label = FormatDollars(decimal.NewFromFloat(ticks[i].Value))
		}
	}
	return ticks
}

// SVGFormatter exposes the chart through the formatter registry.
type SVGFormatter struct{}

func (s SVGFormatter) Name() string      { return "svg" }
func (s SVGFormatter) Extension() string { return "svg" }

func (s SVGFormatter) Format(results *domain.CareerComparison) ([]byte, error) {
	return NewChartRenderer(results.Chart).Render(results)
}
