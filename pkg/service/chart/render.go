package chart

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/bogun-lab/facildash/pkg/domain/model"
	"github.com/bogun-lab/facildash/pkg/domain/types"
)

// ValueMode selects what the bar height represents
type ValueMode string

const (
	ModePercentage ValueMode = "percentage"
	ModeCount      ValueMode = "count"
)

// Options controls chart rendering
type Options struct {
	Mode   ValueMode
	Width  float64 // inches
	Height float64 // inches
}

// DefaultOptions returns the rendering defaults
func DefaultOptions() Options {
	return Options{
		Mode:   ModePercentage,
		Width:  10,
		Height: 6,
	}
}

// RenderPNG draws one region's bar chart to a PNG file. Each facility
// type becomes one bar, colored per the assigned color; gonum's
// BarChart has a single color per plotter, so every bar gets its own
// plotter sharing the nominal X axis.
func RenderPNG(data *model.ChartData, opt Options, path string) error {
	if data == nil {
		return goerr.New("chart data is nil")
	}
	if len(data.Items) == 0 {
		return goerr.Wrap(model.ErrUnknownRegion, "no data to render",
			goerr.V("region", data.Region))
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s 보건의료기관 유형별 비율", data.Region)
	p.X.Label.Text = "기관 유형"
	switch opt.Mode {
	case ModeCount:
		p.Y.Label.Text = "개수"
	default:
		p.Y.Label.Text = "비율 (%)"
		p.Y.Min = 0
		p.Y.Max = 100
	}

	labels := make([]string, len(data.Items))
	barWidth := vg.Points(30)

	for i, item := range data.Items {
		labels[i] = item.Label

		values := make(plotter.Values, len(data.Items))
		if opt.Mode == ModeCount {
			values[i] = float64(item.Count)
		} else {
			values[i] = item.Value
		}

		bars, err := plotter.NewBarChart(values, barWidth)
		if err != nil {
			return goerr.Wrap(err, "failed to build bar",
				goerr.V("label", item.Label))
		}

		c, err := ParseHex(item.Color)
		if err != nil {
			return goerr.Wrap(err, "invalid bar color",
				goerr.V("label", item.Label), goerr.V("color", item.Color))
		}
		bars.Color = c
		bars.LineStyle.Width = 0
		p.Add(bars)
	}

	p.NominalX(labels...)
	p.Add(plotter.NewGrid())

	if err := p.Save(vg.Length(opt.Width)*vg.Inch, vg.Length(opt.Height)*vg.Inch, path); err != nil {
		return goerr.Wrap(err, "failed to save chart",
			goerr.V("path", path), goerr.V("region", data.Region))
	}
	return nil
}

// ParseHex converts a "#RRGGBB" color to color.RGBA
func ParseHex(hex types.ColorHex) (color.RGBA, error) {
	s := hex.String()
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, goerr.New("malformed hex color", goerr.V("color", s))
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, goerr.Wrap(err, "malformed hex color", goerr.V("color", s))
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, nil
}
