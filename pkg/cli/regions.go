package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/bogun-lab/facildash/pkg/cli/config"
	"github.com/bogun-lab/facildash/pkg/usecase"
)

func cmdRegions() *cli.Command {
	var datasetCfg config.Dataset

	return &cli.Command{
		Name:  "regions",
		Usage: "Print the regions present in the dataset, one per line",
		Flags: datasetCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			source, err := datasetCfg.Configure(ctx)
			if err != nil {
				return err
			}

			regions, err := usecase.NewStats(source).ListRegions(ctx)
			if err != nil {
				return err
			}

			for _, r := range regions {
				fmt.Println(r)
			}
			return nil
		},
	}
}
