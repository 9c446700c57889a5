package cli

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/bogun-lab/facildash/pkg/cli/config"
	"github.com/bogun-lab/facildash/pkg/domain/types"
	chartSvc "github.com/bogun-lab/facildash/pkg/service/chart"
	"github.com/bogun-lab/facildash/pkg/usecase"
)

func cmdChart() *cli.Command {
	var (
		datasetCfg config.Dataset
		chartCfg   config.Chart
		region     string
	)

	flags := joinFlags(
		datasetCfg.Flags(),
		chartCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "region",
				Aliases:     []string{"r"},
				Usage:       "Region to render; omit to render every region into the output directory",
				Category:    "Chart",
				Sources:     cli.EnvVars("FACILDASH_REGION"),
				Destination: &region,
			},
		},
	)

	return &cli.Command{
		Name:  "chart",
		Usage: "Render a PNG bar chart for one region or for all regions",
		Description: "Renders bar charts to PNG files. With --region, writes a single chart " +
			"to --output; without it, writes one chart per region into the --output directory " +
			"(created if missing).\n\nText is drawn with the embedded Liberation fonts, which " +
			"carry Latin glyphs only; titles and labels outside that range (e.g. Hangul region " +
			"names) appear blank in the PNG output.",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			source, err := datasetCfg.Configure(ctx)
			if err != nil {
				return err
			}
			opt, err := chartCfg.Configure()
			if err != nil {
				return err
			}

			statsUC := usecase.NewStats(source)

			regions, err := statsUC.ListRegions(ctx)
			if err != nil {
				return err
			}

			if region != "" {
				if !containsRegion(regions, types.Region(region)) {
					return goerr.New("region not present in dataset",
						goerr.V("region", region))
				}
				return renderOne(ctx, statsUC, types.Region(region), opt, chartCfg.Output)
			}

			// Batch mode: one file per region under the output directory
			if err := os.MkdirAll(chartCfg.Output, 0755); err != nil {
				return goerr.Wrap(err, "failed to create output directory",
					goerr.V("dir", chartCfg.Output))
			}
			for _, r := range regions {
				path := filepath.Join(chartCfg.Output, r.String()+".png")
				if err := renderOne(ctx, statsUC, r, opt, path); err != nil {
					return err
				}
			}
			logger.Info("Rendered charts for all regions",
				slog.Int("regions", len(regions)),
				slog.String("dir", chartCfg.Output),
			)
			return nil
		},
	}
}

func renderOne(ctx context.Context, statsUC usecase.Stats, region types.Region, opt chartSvc.Options, path string) error {
	data, err := statsUC.ChartData(ctx, region)
	if err != nil {
		return err
	}
	if err := chartSvc.RenderPNG(data, opt, path); err != nil {
		return err
	}

	ctxlog.From(ctx).Info("Chart rendered",
		slog.String("region", region.String()),
		slog.String("path", path),
		slog.Int("bars", len(data.Items)),
	)
	return nil
}

func containsRegion(regions []types.Region, r types.Region) bool {
	for _, candidate := range regions {
		if candidate == r {
			return true
		}
	}
	return false
}
