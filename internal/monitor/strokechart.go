// Package monitor renders debugging views of captured strokes. These are
// development-only pages (no auth) for eyeballing what the pipeline saw
// without a frontend.
package monitor

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/gesture.report/internal/gesture"
	"github.com/banshee-data/gesture.report/internal/session"
)

// RenderStrokeChart writes an HTML page with two scatter charts: the raw
// captured stroke and its simplified+normalized form, titled with the
// classification outcome.
func RenderStrokeChart(w io.Writer, s session.Stroke, normalized []gesture.Point) error {
	page := components.NewPage()
	page.AddCharts(
		strokeScatter("Captured stroke",
			fmt.Sprintf("stroke=%s symbol=%q confidence=%d", s.StrokeID, s.Result.Symbol, s.Result.Confidence),
			s.Points),
		strokeScatter("Simplified + normalized",
			fmt.Sprintf("points=%d", len(normalized)),
			normalized),
	)

	return page.Render(w)
}

func strokeScatter(title, subtitle string, pts []gesture.Point) *charts.Scatter {
	data := make([]opts.ScatterData, 0, len(pts))
	for _, p := range pts {
		data = append(data, opts.ScatterData{Value: []interface{}{p.X, p.Y}})
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Stroke Debug", Theme: "dark", Width: "600px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	scatter.AddSeries("points", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 6}))
	return scatter
}
