package usecase

import (
	"context"
	"sort"

	"github.com/m-mizutani/goerr/v2"

	"github.com/bogun-lab/facildash/pkg/domain/interfaces"
	"github.com/bogun-lab/facildash/pkg/domain/model"
	"github.com/bogun-lab/facildash/pkg/domain/types"
	"github.com/bogun-lab/facildash/pkg/service/palette"
)

// StatsUseCase implements the Stats interface over an injected data
// source. It is stateless beyond the immutable dataset snapshot, so one
// instance serves any number of requests.
type StatsUseCase struct {
	source interfaces.DataSource
}

// NewStats creates a new StatsUseCase instance
func NewStats(source interfaces.DataSource) Stats {
	return &StatsUseCase{
		source: source,
	}
}

// ListRegions returns the distinct regions of the dataset, sorted
// ascending
func (u *StatsUseCase) ListRegions(ctx context.Context) ([]types.Region, error) {
	dataset, err := u.source.Dataset(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load dataset")
	}

	seen := make(map[types.Region]struct{})
	regions := make([]types.Region, 0)
	for _, rec := range dataset.Records {
		if _, ok := seen[rec.Region]; ok {
			continue
		}
		seen[rec.Region] = struct{}{}
		regions = append(regions, rec.Region)
	}

	sort.Slice(regions, func(i, j int) bool {
		return regions[i] < regions[j]
	})
	return regions, nil
}

// Aggregate returns per-facility-type counts and percentages for one
// region, sorted by count descending with ties broken by facility type
// name ascending. Sorting uses the precise percentage, never the
// rounded display value.
func (u *StatsUseCase) Aggregate(ctx context.Context, region types.Region) ([]model.TypeStat, error) {
	dataset, err := u.source.Dataset(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load dataset",
			goerr.V("region", region))
	}

	counts := make(map[types.FacilityType]int)
	total := 0
	for _, rec := range dataset.Records {
		if rec.Region != region {
			continue
		}
		counts[rec.FacilityType]++
		total++
	}
	if total == 0 {
		return []model.TypeStat{}, nil
	}

	stats := make([]model.TypeStat, 0, len(counts))
	for facilityType, count := range counts {
		stats = append(stats, model.NewTypeStat(facilityType, count, total))
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].FacilityType < stats[j].FacilityType
	})
	return stats, nil
}

// ChartData returns the aggregated rows with assigned colors in a shape
// ready for chart rendering
func (u *StatsUseCase) ChartData(ctx context.Context, region types.Region) (*model.ChartData, error) {
	stats, err := u.Aggregate(ctx, region)
	if err != nil {
		return nil, err
	}

	colors := palette.Assign(stats)
	items := make([]model.ChartItem, 0, len(stats))
	for _, st := range stats {
		items = append(items, model.ChartItem{
			Label: st.FacilityType.String(),
			Value: st.RoundedPercentage,
			Count: st.Count,
			Color: colors[st.FacilityType],
		})
	}

	return &model.ChartData{
		Region: region,
		Items:  items,
	}, nil
}
