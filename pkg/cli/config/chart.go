package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/bogun-lab/facildash/pkg/service/chart"
)

// Chart holds chart rendering configuration
type Chart struct {
	Output string
	Values string
	Width  float64
	Height float64
}

// Flags returns CLI flags for Chart configuration
func (c *Chart) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Output PNG file (single region) or directory (all regions)",
			Category:    "Chart",
			Value:       "chart.png",
			Sources:     cli.EnvVars("FACILDASH_OUTPUT"),
			Destination: &c.Output,
		},
		&cli.StringFlag{
			Name:        "values",
			Usage:       "Bar values: percentage or count",
			Category:    "Chart",
			Value:       "percentage",
			Sources:     cli.EnvVars("FACILDASH_VALUES"),
			Destination: &c.Values,
		},
		&cli.FloatFlag{
			Name:        "width",
			Usage:       "Chart width in inches",
			Category:    "Chart",
			Value:       10,
			Destination: &c.Width,
		},
		&cli.FloatFlag{
			Name:        "height",
			Usage:       "Chart height in inches",
			Category:    "Chart",
			Value:       6,
			Destination: &c.Height,
		},
	}
}

// Configure validates the configuration and returns rendering options
func (c *Chart) Configure() (chart.Options, error) {
	opt := chart.DefaultOptions()
	switch c.Values {
	case "percentage", "":
		opt.Mode = chart.ModePercentage
	case "count":
		opt.Mode = chart.ModeCount
	default:
		return chart.Options{}, goerr.New("invalid values mode", goerr.V("values", c.Values))
	}

	if c.Width <= 0 || c.Height <= 0 {
		return chart.Options{}, goerr.New("chart dimensions must be positive",
			goerr.V("width", c.Width), goerr.V("height", c.Height))
	}
	opt.Width = c.Width
	opt.Height = c.Height
	return opt, nil
}

// LogValue returns structured log value
func (c Chart) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("output", c.Output),
		slog.String("values", c.Values),
		slog.Float64("width", c.Width),
		slog.Float64("height", c.Height),
	)
}
