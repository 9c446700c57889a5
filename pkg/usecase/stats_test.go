package usecase_test

import (
	"context"
	"math"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/bogun-lab/facildash/pkg/domain/model"
	"github.com/bogun-lab/facildash/pkg/domain/types"
	"github.com/bogun-lab/facildash/pkg/repository"
	"github.com/bogun-lab/facildash/pkg/service/palette"
	"github.com/bogun-lab/facildash/pkg/usecase"
)

func record(region, facilityType string) model.Record {
	return model.Record{
		Region:       types.Region(region),
		FacilityType: types.FacilityType(facilityType),
	}
}

func TestAggregate(t *testing.T) {
	ctx := context.Background()

	t.Run("counts, percentages and ordering", func(t *testing.T) {
		statsUC := usecase.NewStats(repository.NewMemory([]model.Record{
			record("Seoul", "Hospital"),
			record("Seoul", "Clinic"),
			record("Seoul", "Clinic"),
			record("Busan", "Hospital"),
		}))

		stats, err := statsUC.Aggregate(ctx, "Seoul")
		gt.NoError(t, err)
		gt.A(t, stats).Length(2)

		gt.Equal(t, stats[0].FacilityType, types.FacilityType("Clinic"))
		gt.Equal(t, stats[0].Count, 2)
		gt.Equal(t, stats[0].RoundedPercentage, 66.67)

		gt.Equal(t, stats[1].FacilityType, types.FacilityType("Hospital"))
		gt.Equal(t, stats[1].Count, 1)
		gt.Equal(t, stats[1].RoundedPercentage, 33.33)
	})

	t.Run("count sum equals region record count", func(t *testing.T) {
		records := []model.Record{
			record("Seoul", "Hospital"),
			record("Seoul", "Clinic"),
			record("Seoul", "Clinic"),
			record("Seoul", "Pharmacy"),
			record("Busan", "Hospital"),
			record("Busan", "Clinic"),
		}
		statsUC := usecase.NewStats(repository.NewMemory(records))

		regions, err := statsUC.ListRegions(ctx)
		gt.NoError(t, err)

		for _, region := range regions {
			expected := 0
			for _, rec := range records {
				if rec.Region == region {
					expected++
				}
			}

			stats, err := statsUC.Aggregate(ctx, region)
			gt.NoError(t, err)

			sum := 0
			pctSum := 0.0
			for _, st := range stats {
				sum += st.Count
				pctSum += st.Percentage
			}
			gt.Equal(t, sum, expected)
			gt.B(t, math.Abs(pctSum-100.0) < 1e-9).True()
		}
	})

	t.Run("sorted descending with alphabetical tie-break", func(t *testing.T) {
		statsUC := usecase.NewStats(repository.NewMemory([]model.Record{
			record("Seoul", "Clinic"),
			record("Seoul", "Hospital"),
			record("Seoul", "Pharmacy"),
			record("Seoul", "Pharmacy"),
			record("Seoul", "Agency"),
		}))

		for i := 0; i < 3; i++ {
			stats, err := statsUC.Aggregate(ctx, "Seoul")
			gt.NoError(t, err)
			gt.A(t, stats).Length(4)

			gt.Equal(t, stats[0].FacilityType, types.FacilityType("Pharmacy"))
			// Equal counts fall back to name ascending
			gt.Equal(t, stats[1].FacilityType, types.FacilityType("Agency"))
			gt.Equal(t, stats[2].FacilityType, types.FacilityType("Clinic"))
			gt.Equal(t, stats[3].FacilityType, types.FacilityType("Hospital"))

			for j := 1; j < len(stats); j++ {
				gt.B(t, stats[j-1].Count >= stats[j].Count).True()
			}
		}
	})

	t.Run("unknown region yields empty result without error", func(t *testing.T) {
		statsUC := usecase.NewStats(repository.NewMemory([]model.Record{
			record("Seoul", "Hospital"),
		}))

		stats, err := statsUC.Aggregate(ctx, "Atlantis")
		gt.NoError(t, err)
		gt.A(t, stats).Length(0)
	})

	t.Run("empty dataset yields empty result", func(t *testing.T) {
		statsUC := usecase.NewStats(repository.NewMemory(nil))

		stats, err := statsUC.Aggregate(ctx, "Seoul")
		gt.NoError(t, err)
		gt.A(t, stats).Length(0)
	})
}

func TestListRegions(t *testing.T) {
	ctx := context.Background()

	t.Run("distinct and sorted even with duplicate rows", func(t *testing.T) {
		statsUC := usecase.NewStats(repository.NewMemory([]model.Record{
			record("Seoul", "Hospital"),
			record("Busan", "Clinic"),
			record("Seoul", "Clinic"),
			record("Busan", "Clinic"),
			record("Daegu", "Hospital"),
		}))

		regions, err := statsUC.ListRegions(ctx)
		gt.NoError(t, err)
		gt.Equal(t, regions, []types.Region{"Busan", "Daegu", "Seoul"})
	})

	t.Run("empty dataset yields empty list", func(t *testing.T) {
		statsUC := usecase.NewStats(repository.NewMemory(nil))

		regions, err := statsUC.ListRegions(ctx)
		gt.NoError(t, err)
		gt.A(t, regions).Length(0)
	})
}

func TestChartData(t *testing.T) {
	ctx := context.Background()

	t.Run("items carry rounded values, counts and colors", func(t *testing.T) {
		statsUC := usecase.NewStats(repository.NewMemory([]model.Record{
			record("Seoul", "Hospital"),
			record("Seoul", "Clinic"),
			record("Seoul", "Clinic"),
			record("Busan", "Hospital"),
		}))

		data, err := statsUC.ChartData(ctx, "Seoul")
		gt.NoError(t, err)
		gt.Equal(t, data.Region, types.Region("Seoul"))
		gt.A(t, data.Items).Length(2)

		gt.Equal(t, data.Items[0].Label, "Clinic")
		gt.Equal(t, data.Items[0].Value, 66.67)
		gt.Equal(t, data.Items[0].Count, 2)
		gt.Equal(t, data.Items[0].Color, palette.Highlight)

		gt.Equal(t, data.Items[1].Label, "Hospital")
		gt.Equal(t, data.Items[1].Value, 33.33)
		gt.Equal(t, data.Items[1].Count, 1)
		gt.Equal(t, data.Items[1].Color, palette.Blues[0])
	})

	t.Run("unknown region yields empty items", func(t *testing.T) {
		statsUC := usecase.NewStats(repository.NewMemory([]model.Record{
			record("Seoul", "Hospital"),
		}))

		data, err := statsUC.ChartData(ctx, "Atlantis")
		gt.NoError(t, err)
		gt.A(t, data.Items).Length(0)
	})
}
