package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/bogun-lab/facildash/pkg/domain/interfaces"
	"github.com/bogun-lab/facildash/pkg/domain/model"
	"github.com/bogun-lab/facildash/pkg/repository"
)

// Dataset holds input dataset configuration
type Dataset struct {
	Input   string
	Columns string
}

// Flags returns CLI flags for Dataset configuration
func (d *Dataset) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "Path to the facility dataset (.csv or .xlsx)",
			Category:    "Dataset",
			Required:    true,
			Sources:     cli.EnvVars("FACILDASH_INPUT"),
			Destination: &d.Input,
		},
		&cli.StringFlag{
			Name:        "columns",
			Usage:       "Optional YAML file mapping the region and facility type column headers",
			Category:    "Dataset",
			Sources:     cli.EnvVars("FACILDASH_COLUMNS"),
			Destination: &d.Columns,
		},
	}
}

// Configure builds the data source for the configured input file and
// loads it once so a missing or broken file fails at startup instead of
// on the first request.
func (d *Dataset) Configure(ctx context.Context) (interfaces.DataSource, error) {
	columns, err := d.loadColumns()
	if err != nil {
		return nil, err
	}

	var source interfaces.DataSource
	switch strings.ToLower(filepath.Ext(d.Input)) {
	case ".xlsx", ".xlsm":
		source = repository.NewXLSX(d.Input, columns)
	default:
		source = repository.NewCSV(d.Input, columns)
	}

	if _, err := source.Dataset(ctx); err != nil {
		return nil, goerr.Wrap(err, "failed to load dataset",
			goerr.V("input", d.Input))
	}
	return source, nil
}

// loadColumns reads the column mapping YAML, falling back to the
// dataset's original Korean headers when no file is given
func (d *Dataset) loadColumns() (model.ColumnMapping, error) {
	if d.Columns == "" {
		return model.DefaultColumnMapping(), nil
	}

	data, err := os.ReadFile(d.Columns)
	if err != nil {
		return model.ColumnMapping{}, goerr.Wrap(err, "failed to read column mapping file",
			goerr.V("path", d.Columns))
	}

	var columns model.ColumnMapping
	if err := yaml.Unmarshal(data, &columns); err != nil {
		return model.ColumnMapping{}, goerr.Wrap(err, "failed to parse column mapping YAML",
			goerr.V("path", d.Columns))
	}

	if err := columns.Validate(); err != nil {
		return model.ColumnMapping{}, goerr.Wrap(err, "invalid column mapping",
			goerr.V("path", d.Columns))
	}

	return columns, nil
}

// LogValue returns structured log value
func (d Dataset) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("input", d.Input),
		slog.String("columns", d.Columns),
	)
}
