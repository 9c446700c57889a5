package palette_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/bogun-lab/facildash/pkg/domain/model"
	"github.com/bogun-lab/facildash/pkg/domain/types"
	"github.com/bogun-lab/facildash/pkg/service/palette"
)

func sortedStats(counts ...int) []model.TypeStat {
	total := 0
	for _, c := range counts {
		total += c
	}
	stats := make([]model.TypeStat, len(counts))
	for i, c := range counts {
		stats[i] = model.NewTypeStat(types.FacilityType(rune('A'+i)), c, total)
	}
	return stats
}

func TestAssign(t *testing.T) {
	t.Run("empty input yields empty mapping", func(t *testing.T) {
		colors := palette.Assign(nil)
		gt.Equal(t, len(colors), 0)
	})

	t.Run("single row gets only the highlight", func(t *testing.T) {
		colors := palette.Assign(sortedStats(5))
		gt.Equal(t, len(colors), 1)
		gt.Equal(t, colors["A"], palette.Highlight)
	})

	t.Run("single remaining row gets the darkest blue", func(t *testing.T) {
		colors := palette.Assign(sortedStats(5, 3))
		gt.Equal(t, colors["A"], palette.Highlight)
		gt.Equal(t, colors["B"], palette.Blues[0])
	})

	t.Run("two remaining rows span the full gradient", func(t *testing.T) {
		colors := palette.Assign(sortedStats(5, 3, 1))
		gt.Equal(t, colors["A"], palette.Highlight)
		gt.Equal(t, colors["B"], palette.Blues[0])
		gt.Equal(t, colors["C"], palette.Blues[len(palette.Blues)-1])
	})

	t.Run("exactly one highlight, never reused", func(t *testing.T) {
		stats := sortedStats(9, 7, 5, 4, 3, 2, 1)
		colors := palette.Assign(stats)
		gt.Equal(t, len(colors), len(stats))

		highlights := 0
		for _, c := range colors {
			if c == palette.Highlight {
				highlights++
			}
		}
		gt.Equal(t, highlights, 1)
		gt.Equal(t, colors["A"], palette.Highlight)
	})

	t.Run("more categories than palette stops stays in bounds", func(t *testing.T) {
		counts := make([]int, 25)
		for i := range counts {
			counts[i] = 25 - i
		}
		stats := sortedStats(counts...)
		colors := palette.Assign(stats)
		gt.Equal(t, len(colors), len(stats))

		blues := map[types.ColorHex]bool{}
		for _, c := range palette.Blues {
			blues[c] = true
		}
		for _, st := range stats[1:] {
			gt.B(t, blues[colors[st.FacilityType]]).True()
		}
		// Endpoints always land on the gradient extremes
		gt.Equal(t, colors[stats[1].FacilityType], palette.Blues[0])
		gt.Equal(t, colors[stats[len(stats)-1].FacilityType], palette.Blues[len(palette.Blues)-1])
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		stats := sortedStats(8, 6, 4, 2, 1)
		first := palette.Assign(stats)
		second := palette.Assign(stats)
		gt.Equal(t, first, second)
	})

	t.Run("gradient is monotonic dark to light", func(t *testing.T) {
		stats := sortedStats(6, 5, 4, 3, 2, 1)
		colors := palette.Assign(stats)

		rank := func(c types.ColorHex) int {
			for i, b := range palette.Blues {
				if b == c {
					return i
				}
			}
			t.Fatalf("color %s not in gradient", c)
			return -1
		}

		prev := -1
		for _, st := range stats[1:] {
			idx := rank(colors[st.FacilityType])
			gt.B(t, idx >= prev).True()
			prev = idx
		}
	})
}
