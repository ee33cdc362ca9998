// Package chart renders chart points as a labelled bar chart, either as an
// interactive go-echarts chart for HTML reports or as a go-chart raster for
// image and PDF exports.
package chart

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// DefaultColor is the bar colour used when none is chosen.
const DefaultColor = "#3366ff"

// DefaultAssetsHost serves the echarts scripts referenced by HTML output.
const DefaultAssetsHost = "https://go-echarts.github.io/go-echarts-assets/assets/"

var (
	// ErrNoPoints is returned when an image is requested for an empty series.
	ErrNoPoints = errors.New("chart: no points to render")
	// ErrInvalidColor is returned by ParseColor for anything but #rgb or #rrggbb.
	ErrInvalidColor = errors.New("chart: invalid color")
)

var hexColorRe = regexp.MustCompile(`^[0-9a-fA-F]{3}([0-9a-fA-F]{3})?$`)

// Options controls chart appearance. Zero fields fall back to the defaults of
// DefaultOptions.
type Options struct {
	Color         string  `yaml:"color"`
	XAxisTitle    string  `yaml:"x_axis_title"`
	YAxisTitle    string  `yaml:"y_axis_title"`
	LabelRotate   float64 `yaml:"label_rotate"`
	LabelFontSize float64 `yaml:"label_font_size"`
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	AssetsHost    string  `yaml:"assets_host"`
}

// DefaultOptions returns the options of the feedback report chart.
func DefaultOptions() Options {
	return Options{
		Color:         DefaultColor,
		XAxisTitle:    "Label",
		YAxisTitle:    "Average Score",
		LabelRotate:   -90,
		LabelFontSize: 8,
		Width:         1024,
		Height:        600,
		AssetsHost:    DefaultAssetsHost,
	}
}

// withDefaults fills zero fields from DefaultOptions. LabelRotate is kept as
// given since zero is a meaningful rotation.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Color == "" {
		o.Color = d.Color
	}
	if o.XAxisTitle == "" {
		o.XAxisTitle = d.XAxisTitle
	}
	if o.YAxisTitle == "" {
		o.YAxisTitle = d.YAxisTitle
	}
	if o.LabelFontSize <= 0 {
		o.LabelFontSize = d.LabelFontSize
	}
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.AssetsHost == "" {
		o.AssetsHost = d.AssetsHost
	}
	return o
}

// ParseColor validates a #rgb or #rrggbb colour (the leading # is optional)
// and returns it as lowercase #rrggbb.
func ParseColor(s string) (string, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if !hexColorRe.MatchString(hex) {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	hex = strings.ToLower(hex)
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	return "#" + hex, nil
}
