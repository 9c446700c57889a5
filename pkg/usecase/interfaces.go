package usecase

import (
	"context"

	"github.com/bogun-lab/facildash/pkg/domain/model"
	"github.com/bogun-lab/facildash/pkg/domain/types"
)

// Stats defines the aggregation operations the controllers consume
type Stats interface {
	// ListRegions returns the distinct regions of the dataset, sorted
	// ascending
	ListRegions(ctx context.Context) ([]types.Region, error)

	// Aggregate returns per-facility-type counts and percentages for one
	// region, sorted by count descending. An unknown region yields an
	// empty result, not an error.
	Aggregate(ctx context.Context, region types.Region) ([]model.TypeStat, error)

	// ChartData returns the aggregated rows with assigned colors in a
	// shape ready for chart rendering
	ChartData(ctx context.Context, region types.Region) (*model.ChartData, error)
}
