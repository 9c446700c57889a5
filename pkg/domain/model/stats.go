package model

import (
	"math"

	"github.com/bogun-lab/facildash/pkg/domain/types"
)

// TypeStat is the aggregated result for one facility type within a
// region: how many facilities of that type exist and what share of the
// region's total they represent.
type TypeStat struct {
	FacilityType types.FacilityType `json:"facilityType"`
	Count        int                `json:"count"`
	// Percentage keeps full float precision and is what ordering is
	// based on. RoundedPercentage is the 2-decimal display value.
	Percentage        float64 `json:"percentage"`
	RoundedPercentage float64 `json:"roundedPercentage"`
}

// NewTypeStat computes the percentage fields from a count and the
// region total. total must be > 0; callers never build stats for an
// empty region.
func NewTypeStat(facilityType types.FacilityType, count, total int) TypeStat {
	pct := 100 * float64(count) / float64(total)
	return TypeStat{
		FacilityType:      facilityType,
		Count:             count,
		Percentage:        pct,
		RoundedPercentage: Round2(pct),
	}
}

// Round2 rounds to 2 decimal places, half away from zero
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
