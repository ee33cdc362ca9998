package chart

import (
	"fmt"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/aerissecure/scorechart/series"
)

// missingValue is how echarts marks a data point it cannot plot.
const missingValue = "-"

// NewBar builds the interactive bar chart for points. Categories follow the
// order of points; wrapped labels are drawn one line per label line.
func NewBar(points []series.ChartPoint, o Options) (*charts.Bar, error) {
	o = o.withDefaults()
	color, err := ParseColor(o.Color)
	if err != nil {
		return nil, err
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:      fmt.Sprintf("%dpx", o.Width),
			Height:     fmt.Sprintf("%dpx", o.Height),
			AssetsHost: o.AssetsHost,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: o.XAxisTitle,
			Type: "category",
			AxisLabel: &opts.AxisLabel{
				Show:     opts.Bool(true),
				Interval: "0",
				Rotate:   o.LabelRotate,
				FontSize: int(o.LabelFontSize),
				Color:    "#000000",
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: o.YAxisTitle,
			Type: "value",
		}),
		charts.WithGridOpts(opts.Grid{
			Left:   "8%",
			Right:  "4%",
			Bottom: "35%",
		}),
	)

	categories := make([]string, len(points))
	data := make([]opts.BarData, len(points))
	for i, p := range points {
		categories[i] = p.Label.Join("\n")
		data[i] = opts.BarData{Value: barValue(p.Value)}
	}

	bar.SetXAxis(categories)
	bar.AddSeries(o.YAxisTitle, data,
		charts.WithItemStyleOpts(opts.ItemStyle{
			Color: color,
		}),
	)
	return bar, nil
}

// barValue returns v as a plottable number, or the echarts missing marker.
func barValue(v any) any {
	f, ok := series.Number(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return missingValue
	}
	return f
}
