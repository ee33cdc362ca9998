package chart

import (
	"fmt"
	"io"
	"math"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/aerissecure/scorechart/series"
)

// Format is a raster or vector image format for RenderImage.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

const (
	barWidth   = 72
	barSpacing = 24
	sidePad    = 96
)

// RenderImage draws points as a static bar chart. Values without a numeric
// view are drawn as zero-height bars.
func RenderImage(w io.Writer, points []series.ChartPoint, o Options, format Format) error {
	if len(points) == 0 {
		return ErrNoPoints
	}
	o = o.withDefaults()
	hex, err := ParseColor(o.Color)
	if err != nil {
		return err
	}
	var provider gochart.RendererProvider
	switch format {
	case FormatPNG, "":
		provider = gochart.PNG
	case FormatSVG:
		provider = gochart.SVG
	default:
		return fmt.Errorf("chart: unsupported image format %q", format)
	}

	col := drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
	bars := make([]gochart.Value, len(points))
	lo, hi := 0.0, 0.0
	lines := 1
	for i, p := range points {
		v, ok := series.Number(p.Value)
		if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
			v = 0
		}
		lo, hi = math.Min(lo, v), math.Max(hi, v)
		if n := len(p.Label.Lines); n > lines {
			lines = n
		}
		bars[i] = gochart.Value{
			Label: p.Label.Join("\n"),
			Value: v,
			Style: gochart.Style{FillColor: col, StrokeColor: col, StrokeWidth: 1},
		}
	}
	if hi == lo {
		hi = lo + 1
	}

	width := o.Width
	if need := len(points)*(barWidth+barSpacing) + 2*sidePad; need > width {
		width = need
	}

	bc := gochart.BarChart{
		Width:      width,
		Height:     o.Height,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 24, Left: 16, Right: 16, Bottom: 16 + lines*int(o.LabelFontSize*1.5)},
		},
		XAxis: gochart.Style{
			FontSize:  o.LabelFontSize,
			FontColor: drawing.ColorBlack,
			TextWrap:  gochart.TextWrapWord,
		},
		YAxis: gochart.YAxis{
			Name:  o.YAxisTitle,
			Range: &gochart.ContinuousRange{Min: lo, Max: hi},
		},
		Bars: bars,
	}
	if err := bc.Render(provider, w); err != nil {
		return fmt.Errorf("chart: render %s: %w", format, err)
	}
	return nil
}
